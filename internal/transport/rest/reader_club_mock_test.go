package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/reader"
	"sync"
)

var _ readerClub = &readerClubMock{}

type readerClubMock struct {
	AddReaderFunc     func(ctx context.Context, input reader.CreateInput) (*domain.Reader, error)
	DeleteReaderFunc  func(ctx context.Context, id uuid.UUID) error
	ReadersFunc       func() []domain.Reader
	ResolveReaderFunc func(ctx context.Context, name string) (*domain.Reader, bool, error)

	calls struct {
		AddReader []struct {
			Ctx   context.Context
			Input reader.CreateInput
		}
		DeleteReader []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Readers       []struct{}
		ResolveReader []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockAddReader     sync.RWMutex
	lockDeleteReader  sync.RWMutex
	lockReaders       sync.RWMutex
	lockResolveReader sync.RWMutex
}

func (mock *readerClubMock) AddReader(ctx context.Context, input reader.CreateInput) (*domain.Reader, error) {
	if mock.AddReaderFunc == nil {
		panic("readerClubMock.AddReaderFunc: method is nil but readerClub.AddReader was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reader.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockAddReader.Lock()
	mock.calls.AddReader = append(mock.calls.AddReader, callInfo)
	mock.lockAddReader.Unlock()
	return mock.AddReaderFunc(ctx, input)
}

func (mock *readerClubMock) AddReaderCalls() []struct {
	Ctx   context.Context
	Input reader.CreateInput
} {
	mock.lockAddReader.RLock()
	calls := mock.calls.AddReader
	mock.lockAddReader.RUnlock()
	return calls
}

func (mock *readerClubMock) DeleteReader(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteReaderFunc == nil {
		panic("readerClubMock.DeleteReaderFunc: method is nil but readerClub.DeleteReader was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteReader.Lock()
	mock.calls.DeleteReader = append(mock.calls.DeleteReader, callInfo)
	mock.lockDeleteReader.Unlock()
	return mock.DeleteReaderFunc(ctx, id)
}

func (mock *readerClubMock) DeleteReaderCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteReader.RLock()
	calls := mock.calls.DeleteReader
	mock.lockDeleteReader.RUnlock()
	return calls
}

func (mock *readerClubMock) Readers() []domain.Reader {
	if mock.ReadersFunc == nil {
		panic("readerClubMock.ReadersFunc: method is nil but readerClub.Readers was just called")
	}
	mock.lockReaders.Lock()
	mock.calls.Readers = append(mock.calls.Readers, struct{}{})
	mock.lockReaders.Unlock()
	return mock.ReadersFunc()
}

func (mock *readerClubMock) ReadersCalls() []struct{} {
	mock.lockReaders.RLock()
	calls := mock.calls.Readers
	mock.lockReaders.RUnlock()
	return calls
}

func (mock *readerClubMock) ResolveReader(ctx context.Context, name string) (*domain.Reader, bool, error) {
	if mock.ResolveReaderFunc == nil {
		panic("readerClubMock.ResolveReaderFunc: method is nil but readerClub.ResolveReader was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockResolveReader.Lock()
	mock.calls.ResolveReader = append(mock.calls.ResolveReader, callInfo)
	mock.lockResolveReader.Unlock()
	return mock.ResolveReaderFunc(ctx, name)
}

func (mock *readerClubMock) ResolveReaderCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockResolveReader.RLock()
	calls := mock.calls.ResolveReader
	mock.lockResolveReader.RUnlock()
	return calls
}
