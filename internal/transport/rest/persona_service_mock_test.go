package rest

import (
	"context"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/persona"
	"sync"
)

var _ personaService = &personaServiceMock{}

type personaServiceMock struct {
	ChatFunc         func(ctx context.Context, input persona.ChatInput) (domain.ChatReply, error)
	StartSessionFunc func(ctx context.Context, readerName string, books []domain.Book) (*persona.Session, error)

	calls struct {
		Chat []struct {
			Ctx   context.Context
			Input persona.ChatInput
		}
		StartSession []struct {
			Ctx        context.Context
			ReaderName string
			Books      []domain.Book
		}
	}
	lockChat         sync.RWMutex
	lockStartSession sync.RWMutex
}

func (mock *personaServiceMock) Chat(ctx context.Context, input persona.ChatInput) (domain.ChatReply, error) {
	if mock.ChatFunc == nil {
		panic("personaServiceMock.ChatFunc: method is nil but personaService.Chat was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input persona.ChatInput
	}{Ctx: ctx, Input: input}
	mock.lockChat.Lock()
	mock.calls.Chat = append(mock.calls.Chat, callInfo)
	mock.lockChat.Unlock()
	return mock.ChatFunc(ctx, input)
}

func (mock *personaServiceMock) ChatCalls() []struct {
	Ctx   context.Context
	Input persona.ChatInput
} {
	mock.lockChat.RLock()
	calls := mock.calls.Chat
	mock.lockChat.RUnlock()
	return calls
}

func (mock *personaServiceMock) StartSession(ctx context.Context, readerName string, books []domain.Book) (*persona.Session, error) {
	if mock.StartSessionFunc == nil {
		panic("personaServiceMock.StartSessionFunc: method is nil but personaService.StartSession was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ReaderName string
		Books      []domain.Book
	}{Ctx: ctx, ReaderName: readerName, Books: books}
	mock.lockStartSession.Lock()
	mock.calls.StartSession = append(mock.calls.StartSession, callInfo)
	mock.lockStartSession.Unlock()
	return mock.StartSessionFunc(ctx, readerName, books)
}

func (mock *personaServiceMock) StartSessionCalls() []struct {
	Ctx        context.Context
	ReaderName string
	Books      []domain.Book
} {
	mock.lockStartSession.RLock()
	calls := mock.calls.StartSession
	mock.lockStartSession.RUnlock()
	return calls
}
