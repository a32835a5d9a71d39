package club

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/actionlist"
	"sync"
)

var _ actionListService = &actionListServiceMock{}

type actionListServiceMock struct {
	CreateFunc         func(ctx context.Context, input actionlist.CreateInput) (*domain.ActionList, error)
	CreateFromBookFunc func(ctx context.Context, input actionlist.FromBookInput) (*domain.ActionList, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	ListFunc           func(ctx context.Context) ([]domain.ActionList, error)
	UpdateFunc         func(ctx context.Context, input actionlist.UpdateInput) (*domain.ActionList, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input actionlist.CreateInput
		}
		CreateFromBook []struct {
			Ctx   context.Context
			Input actionlist.FromBookInput
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
			Input actionlist.UpdateInput
		}
	}
	lockCreate         sync.RWMutex
	lockCreateFromBook sync.RWMutex
	lockDelete         sync.RWMutex
	lockList           sync.RWMutex
	lockUpdate         sync.RWMutex
}

func (mock *actionListServiceMock) Create(ctx context.Context, input actionlist.CreateInput) (*domain.ActionList, error) {
	if mock.CreateFunc == nil {
		panic("actionListServiceMock.CreateFunc: method is nil but actionListService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input actionlist.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *actionListServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input actionlist.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *actionListServiceMock) CreateFromBook(ctx context.Context, input actionlist.FromBookInput) (*domain.ActionList, error) {
	if mock.CreateFromBookFunc == nil {
		panic("actionListServiceMock.CreateFromBookFunc: method is nil but actionListService.CreateFromBook was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input actionlist.FromBookInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateFromBook.Lock()
	mock.calls.CreateFromBook = append(mock.calls.CreateFromBook, callInfo)
	mock.lockCreateFromBook.Unlock()
	return mock.CreateFromBookFunc(ctx, input)
}

func (mock *actionListServiceMock) CreateFromBookCalls() []struct {
	Ctx   context.Context
	Input actionlist.FromBookInput
} {
	mock.lockCreateFromBook.RLock()
	calls := mock.calls.CreateFromBook
	mock.lockCreateFromBook.RUnlock()
	return calls
}

func (mock *actionListServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("actionListServiceMock.DeleteFunc: method is nil but actionListService.Delete was just called")
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

func (mock *actionListServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *actionListServiceMock) List(ctx context.Context) ([]domain.ActionList, error) {
	if mock.ListFunc == nil {
		panic("actionListServiceMock.ListFunc: method is nil but actionListService.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *actionListServiceMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *actionListServiceMock) Update(ctx context.Context, input actionlist.UpdateInput) (*domain.ActionList, error) {
	if mock.UpdateFunc == nil {
		panic("actionListServiceMock.UpdateFunc: method is nil but actionListService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input actionlist.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *actionListServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input actionlist.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
