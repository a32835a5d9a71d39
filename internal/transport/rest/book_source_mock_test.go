package rest

import (
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"sync"
)

var _ bookSource = &bookSourceMock{}

type bookSourceMock struct {
	BooksFunc func() []domain.Book

	calls struct {
		Books []struct{}
	}
	lockBooks sync.RWMutex
}

func (mock *bookSourceMock) Books() []domain.Book {
	if mock.BooksFunc == nil {
		panic("bookSourceMock.BooksFunc: method is nil but bookSource.Books was just called")
	}
	mock.lockBooks.Lock()
	mock.calls.Books = append(mock.calls.Books, struct{}{})
	mock.lockBooks.Unlock()
	return mock.BooksFunc()
}

func (mock *bookSourceMock) BooksCalls() []struct{} {
	mock.lockBooks.RLock()
	calls := mock.calls.Books
	mock.lockBooks.RUnlock()
	return calls
}
