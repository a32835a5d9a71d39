package book

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"sync"
)

var _ bookRepo = &bookRepoMock{}

type bookRepoMock struct {
	CreateFunc  func(ctx context.Context, b domain.Book) (*domain.Book, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	ListFunc    func(ctx context.Context) ([]domain.Book, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, p domain.BookUpdateParams) (*domain.Book, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			B   domain.Book
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			Id  uuid.UUID
			P   domain.BookUpdateParams
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *bookRepoMock) Create(ctx context.Context, b domain.Book) (*domain.Book, error) {
	if mock.CreateFunc == nil {
		panic("bookRepoMock.CreateFunc: method is nil but bookRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   domain.Book
	}{Ctx: ctx, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bookRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   domain.Book
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *bookRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("bookRepoMock.DeleteFunc: method is nil but bookRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *bookRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *bookRepoMock) List(ctx context.Context) ([]domain.Book, error) {
	if mock.ListFunc == nil {
		panic("bookRepoMock.ListFunc: method is nil but bookRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *bookRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *bookRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.BookUpdateParams) (*domain.Book, error) {
	if mock.UpdateFunc == nil {
		panic("bookRepoMock.UpdateFunc: method is nil but bookRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		P   domain.BookUpdateParams
	}{Ctx: ctx, Id: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *bookRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	P   domain.BookUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
