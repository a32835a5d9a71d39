package club

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/reader"
	"sync"
)

var _ readerService = &readerServiceMock{}

type readerServiceMock struct {
	CreateFunc          func(ctx context.Context, input reader.CreateInput) (*domain.Reader, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	ListFunc            func(ctx context.Context) ([]domain.Reader, error)
	ResolveOrCreateFunc func(ctx context.Context, name string) (*domain.Reader, bool, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input reader.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		ResolveOrCreate []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockCreate          sync.RWMutex
	lockDelete          sync.RWMutex
	lockList            sync.RWMutex
	lockResolveOrCreate sync.RWMutex
}

func (mock *readerServiceMock) Create(ctx context.Context, input reader.CreateInput) (*domain.Reader, error) {
	if mock.CreateFunc == nil {
		panic("readerServiceMock.CreateFunc: method is nil but readerService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reader.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *readerServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input reader.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *readerServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("readerServiceMock.DeleteFunc: method is nil but readerService.Delete was just called")
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

func (mock *readerServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *readerServiceMock) List(ctx context.Context) ([]domain.Reader, error) {
	if mock.ListFunc == nil {
		panic("readerServiceMock.ListFunc: method is nil but readerService.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *readerServiceMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *readerServiceMock) ResolveOrCreate(ctx context.Context, name string) (*domain.Reader, bool, error) {
	if mock.ResolveOrCreateFunc == nil {
		panic("readerServiceMock.ResolveOrCreateFunc: method is nil but readerService.ResolveOrCreate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockResolveOrCreate.Lock()
	mock.calls.ResolveOrCreate = append(mock.calls.ResolveOrCreate, callInfo)
	mock.lockResolveOrCreate.Unlock()
	return mock.ResolveOrCreateFunc(ctx, name)
}

func (mock *readerServiceMock) ResolveOrCreateCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockResolveOrCreate.RLock()
	calls := mock.calls.ResolveOrCreate
	mock.lockResolveOrCreate.RUnlock()
	return calls
}
