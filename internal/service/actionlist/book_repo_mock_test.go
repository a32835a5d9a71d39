package actionlist

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"sync"
)

var _ bookRepo = &bookRepoMock{}

type bookRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *bookRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if mock.GetByIDFunc == nil {
		panic("bookRepoMock.GetByIDFunc: method is nil but bookRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *bookRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
