package persona

import (
	"context"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"sync"
)

var _ chatClient = &chatClientMock{}

type chatClientMock struct {
	ChatFunc         func(ctx context.Context, sessionID string, message string) (domain.ChatReply, error)
	SelectAuthorFunc func(ctx context.Context, sessionID string, author string) error
	UploadDataFunc   func(ctx context.Context, sessionID string, records []domain.PersonaRecord) error

	calls struct {
		Chat []struct {
			Ctx       context.Context
			SessionID string
			Message   string
		}
		SelectAuthor []struct {
			Ctx       context.Context
			SessionID string
			Author    string
		}
		UploadData []struct {
			Ctx       context.Context
			SessionID string
			Records   []domain.PersonaRecord
		}
	}
	lockChat         sync.RWMutex
	lockSelectAuthor sync.RWMutex
	lockUploadData   sync.RWMutex
}

func (mock *chatClientMock) Chat(ctx context.Context, sessionID string, message string) (domain.ChatReply, error) {
	if mock.ChatFunc == nil {
		panic("chatClientMock.ChatFunc: method is nil but chatClient.Chat was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
		Message   string
	}{Ctx: ctx, SessionID: sessionID, Message: message}
	mock.lockChat.Lock()
	mock.calls.Chat = append(mock.calls.Chat, callInfo)
	mock.lockChat.Unlock()
	return mock.ChatFunc(ctx, sessionID, message)
}

func (mock *chatClientMock) ChatCalls() []struct {
	Ctx       context.Context
	SessionID string
	Message   string
} {
	mock.lockChat.RLock()
	calls := mock.calls.Chat
	mock.lockChat.RUnlock()
	return calls
}

func (mock *chatClientMock) SelectAuthor(ctx context.Context, sessionID string, author string) error {
	if mock.SelectAuthorFunc == nil {
		panic("chatClientMock.SelectAuthorFunc: method is nil but chatClient.SelectAuthor was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
		Author    string
	}{Ctx: ctx, SessionID: sessionID, Author: author}
	mock.lockSelectAuthor.Lock()
	mock.calls.SelectAuthor = append(mock.calls.SelectAuthor, callInfo)
	mock.lockSelectAuthor.Unlock()
	return mock.SelectAuthorFunc(ctx, sessionID, author)
}

func (mock *chatClientMock) SelectAuthorCalls() []struct {
	Ctx       context.Context
	SessionID string
	Author    string
} {
	mock.lockSelectAuthor.RLock()
	calls := mock.calls.SelectAuthor
	mock.lockSelectAuthor.RUnlock()
	return calls
}

func (mock *chatClientMock) UploadData(ctx context.Context, sessionID string, records []domain.PersonaRecord) error {
	if mock.UploadDataFunc == nil {
		panic("chatClientMock.UploadDataFunc: method is nil but chatClient.UploadData was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
		Records   []domain.PersonaRecord
	}{Ctx: ctx, SessionID: sessionID, Records: records}
	mock.lockUploadData.Lock()
	mock.calls.UploadData = append(mock.calls.UploadData, callInfo)
	mock.lockUploadData.Unlock()
	return mock.UploadDataFunc(ctx, sessionID, records)
}

func (mock *chatClientMock) UploadDataCalls() []struct {
	Ctx       context.Context
	SessionID string
	Records   []domain.PersonaRecord
} {
	mock.lockUploadData.RLock()
	calls := mock.calls.UploadData
	mock.lockUploadData.RUnlock()
	return calls
}
