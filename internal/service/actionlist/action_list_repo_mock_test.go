package actionlist

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"sync"
)

var _ actionListRepo = &actionListRepoMock{}

type actionListRepoMock struct {
	CreateFunc func(ctx context.Context, a domain.ActionList) (*domain.ActionList, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	ListFunc   func(ctx context.Context) ([]domain.ActionList, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, p domain.ActionListUpdateParams) (*domain.ActionList, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   domain.ActionList
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			Id  uuid.UUID
			P   domain.ActionListUpdateParams
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *actionListRepoMock) Create(ctx context.Context, a domain.ActionList) (*domain.ActionList, error) {
	if mock.CreateFunc == nil {
		panic("actionListRepoMock.CreateFunc: method is nil but actionListRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.ActionList
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *actionListRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.ActionList
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *actionListRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("actionListRepoMock.DeleteFunc: method is nil but actionListRepo.Delete was just called")
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

func (mock *actionListRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *actionListRepoMock) List(ctx context.Context) ([]domain.ActionList, error) {
	if mock.ListFunc == nil {
		panic("actionListRepoMock.ListFunc: method is nil but actionListRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *actionListRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *actionListRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.ActionListUpdateParams) (*domain.ActionList, error) {
	if mock.UpdateFunc == nil {
		panic("actionListRepoMock.UpdateFunc: method is nil but actionListRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		P   domain.ActionListUpdateParams
	}{Ctx: ctx, Id: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *actionListRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	P   domain.ActionListUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
