package club

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/book"
	"sync"
)

var _ bookService = &bookServiceMock{}

type bookServiceMock struct {
	CreateFunc func(ctx context.Context, input book.CreateInput) (*domain.Book, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	ListFunc   func(ctx context.Context) ([]domain.Book, error)
	UpdateFunc func(ctx context.Context, input book.UpdateInput) (*domain.Book, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input book.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Input book.UpdateInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *bookServiceMock) Create(ctx context.Context, input book.CreateInput) (*domain.Book, error) {
	if mock.CreateFunc == nil {
		panic("bookServiceMock.CreateFunc: method is nil but bookService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input book.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *bookServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input book.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *bookServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("bookServiceMock.DeleteFunc: method is nil but bookService.Delete was just called")
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

func (mock *bookServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *bookServiceMock) List(ctx context.Context) ([]domain.Book, error) {
	if mock.ListFunc == nil {
		panic("bookServiceMock.ListFunc: method is nil but bookService.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *bookServiceMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *bookServiceMock) Update(ctx context.Context, input book.UpdateInput) (*domain.Book, error) {
	if mock.UpdateFunc == nil {
		panic("bookServiceMock.UpdateFunc: method is nil but bookService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input book.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *bookServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input book.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
