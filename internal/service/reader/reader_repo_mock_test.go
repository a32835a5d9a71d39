package reader

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"sync"
)

var _ readerRepo = &readerRepoMock{}

type readerRepoMock struct {
	CountReferencesFunc func(ctx context.Context, id uuid.UUID) (int, error)
	CreateFunc          func(ctx context.Context, r domain.Reader) (*domain.Reader, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	FindByNameFunc      func(ctx context.Context, name string) (*domain.Reader, error)
	ListFunc            func(ctx context.Context) ([]domain.Reader, error)

	calls struct {
		CountReferences []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			R   domain.Reader
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		FindByName []struct {
			Ctx  context.Context
			Name string
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockCountReferences sync.RWMutex
	lockCreate          sync.RWMutex
	lockDelete          sync.RWMutex
	lockFindByName      sync.RWMutex
	lockList            sync.RWMutex
}

func (mock *readerRepoMock) CountReferences(ctx context.Context, id uuid.UUID) (int, error) {
	if mock.CountReferencesFunc == nil {
		panic("readerRepoMock.CountReferencesFunc: method is nil but readerRepo.CountReferences was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockCountReferences.Lock()
	mock.calls.CountReferences = append(mock.calls.CountReferences, callInfo)
	mock.lockCountReferences.Unlock()
	return mock.CountReferencesFunc(ctx, id)
}

func (mock *readerRepoMock) CountReferencesCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockCountReferences.RLock()
	calls := mock.calls.CountReferences
	mock.lockCountReferences.RUnlock()
	return calls
}

func (mock *readerRepoMock) Create(ctx context.Context, r domain.Reader) (*domain.Reader, error) {
	if mock.CreateFunc == nil {
		panic("readerRepoMock.CreateFunc: method is nil but readerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.Reader
	}{Ctx: ctx, R: r}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *readerRepoMock) CreateCalls() []struct {
	Ctx context.Context
	R   domain.Reader
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *readerRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("readerRepoMock.DeleteFunc: method is nil but readerRepo.Delete was just called")
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

func (mock *readerRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *readerRepoMock) FindByName(ctx context.Context, name string) (*domain.Reader, error) {
	if mock.FindByNameFunc == nil {
		panic("readerRepoMock.FindByNameFunc: method is nil but readerRepo.FindByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockFindByName.Lock()
	mock.calls.FindByName = append(mock.calls.FindByName, callInfo)
	mock.lockFindByName.Unlock()
	return mock.FindByNameFunc(ctx, name)
}

func (mock *readerRepoMock) FindByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockFindByName.RLock()
	calls := mock.calls.FindByName
	mock.lockFindByName.RUnlock()
	return calls
}

func (mock *readerRepoMock) List(ctx context.Context) ([]domain.Reader, error) {
	if mock.ListFunc == nil {
		panic("readerRepoMock.ListFunc: method is nil but readerRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *readerRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
