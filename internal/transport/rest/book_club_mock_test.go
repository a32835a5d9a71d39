package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/book"
	"sync"
)

var _ bookClub = &bookClubMock{}

type bookClubMock struct {
	AddBookFunc    func(ctx context.Context, input book.CreateInput) (*domain.Book, error)
	BookFunc       func(id uuid.UUID) (domain.Book, bool)
	BooksFunc      func() []domain.Book
	DeleteBookFunc func(ctx context.Context, id uuid.UUID) error
	FallbackFunc   func() bool
	NoticeFunc     func() string
	UpdateBookFunc func(ctx context.Context, input book.UpdateInput) (*domain.Book, error)

	calls struct {
		AddBook []struct {
			Ctx   context.Context
			Input book.CreateInput
		}
		Book []struct {
			Id uuid.UUID
		}
		Books      []struct{}
		DeleteBook []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Fallback   []struct{}
		Notice     []struct{}
		UpdateBook []struct {
			Ctx   context.Context
			Input book.UpdateInput
		}
	}
	lockAddBook    sync.RWMutex
	lockBook       sync.RWMutex
	lockBooks      sync.RWMutex
	lockDeleteBook sync.RWMutex
	lockFallback   sync.RWMutex
	lockNotice     sync.RWMutex
	lockUpdateBook sync.RWMutex
}

func (mock *bookClubMock) AddBook(ctx context.Context, input book.CreateInput) (*domain.Book, error) {
	if mock.AddBookFunc == nil {
		panic("bookClubMock.AddBookFunc: method is nil but bookClub.AddBook was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input book.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockAddBook.Lock()
	mock.calls.AddBook = append(mock.calls.AddBook, callInfo)
	mock.lockAddBook.Unlock()
	return mock.AddBookFunc(ctx, input)
}

func (mock *bookClubMock) AddBookCalls() []struct {
	Ctx   context.Context
	Input book.CreateInput
} {
	mock.lockAddBook.RLock()
	calls := mock.calls.AddBook
	mock.lockAddBook.RUnlock()
	return calls
}

func (mock *bookClubMock) Book(id uuid.UUID) (domain.Book, bool) {
	if mock.BookFunc == nil {
		panic("bookClubMock.BookFunc: method is nil but bookClub.Book was just called")
	}
	callInfo := struct{ Id uuid.UUID }{Id: id}
	mock.lockBook.Lock()
	mock.calls.Book = append(mock.calls.Book, callInfo)
	mock.lockBook.Unlock()
	return mock.BookFunc(id)
}

func (mock *bookClubMock) BookCalls() []struct{ Id uuid.UUID } {
	mock.lockBook.RLock()
	calls := mock.calls.Book
	mock.lockBook.RUnlock()
	return calls
}

func (mock *bookClubMock) Books() []domain.Book {
	if mock.BooksFunc == nil {
		panic("bookClubMock.BooksFunc: method is nil but bookClub.Books was just called")
	}
	mock.lockBooks.Lock()
	mock.calls.Books = append(mock.calls.Books, struct{}{})
	mock.lockBooks.Unlock()
	return mock.BooksFunc()
}

func (mock *bookClubMock) BooksCalls() []struct{} {
	mock.lockBooks.RLock()
	calls := mock.calls.Books
	mock.lockBooks.RUnlock()
	return calls
}

func (mock *bookClubMock) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteBookFunc == nil {
		panic("bookClubMock.DeleteBookFunc: method is nil but bookClub.DeleteBook was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteBook.Lock()
	mock.calls.DeleteBook = append(mock.calls.DeleteBook, callInfo)
	mock.lockDeleteBook.Unlock()
	return mock.DeleteBookFunc(ctx, id)
}

func (mock *bookClubMock) DeleteBookCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteBook.RLock()
	calls := mock.calls.DeleteBook
	mock.lockDeleteBook.RUnlock()
	return calls
}

func (mock *bookClubMock) Fallback() bool {
	if mock.FallbackFunc == nil {
		panic("bookClubMock.FallbackFunc: method is nil but bookClub.Fallback was just called")
	}
	mock.lockFallback.Lock()
	mock.calls.Fallback = append(mock.calls.Fallback, struct{}{})
	mock.lockFallback.Unlock()
	return mock.FallbackFunc()
}

func (mock *bookClubMock) FallbackCalls() []struct{} {
	mock.lockFallback.RLock()
	calls := mock.calls.Fallback
	mock.lockFallback.RUnlock()
	return calls
}

func (mock *bookClubMock) Notice() string {
	if mock.NoticeFunc == nil {
		panic("bookClubMock.NoticeFunc: method is nil but bookClub.Notice was just called")
	}
	mock.lockNotice.Lock()
	mock.calls.Notice = append(mock.calls.Notice, struct{}{})
	mock.lockNotice.Unlock()
	return mock.NoticeFunc()
}

func (mock *bookClubMock) NoticeCalls() []struct{} {
	mock.lockNotice.RLock()
	calls := mock.calls.Notice
	mock.lockNotice.RUnlock()
	return calls
}

func (mock *bookClubMock) UpdateBook(ctx context.Context, input book.UpdateInput) (*domain.Book, error) {
	if mock.UpdateBookFunc == nil {
		panic("bookClubMock.UpdateBookFunc: method is nil but bookClub.UpdateBook was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input book.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateBook.Lock()
	mock.calls.UpdateBook = append(mock.calls.UpdateBook, callInfo)
	mock.lockUpdateBook.Unlock()
	return mock.UpdateBookFunc(ctx, input)
}

func (mock *bookClubMock) UpdateBookCalls() []struct {
	Ctx   context.Context
	Input book.UpdateInput
} {
	mock.lockUpdateBook.RLock()
	calls := mock.calls.UpdateBook
	mock.lockUpdateBook.RUnlock()
	return calls
}
