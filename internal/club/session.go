// Package club holds the in-memory state of the club: the collections shown
// to members, the book open in the detail view and the views derived from
// them. All changes go through the services and are applied locally only
// after the store accepted them.
package club

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/actionlist"
	"github.com/heartmarshall/bookclub-backend/internal/service/book"
	"github.com/heartmarshall/bookclub-backend/internal/service/reader"
)

// ErrBusy is returned when a change is requested while another one is still
// in flight.
var ErrBusy = errors.New("another change is in progress")

type bookService interface {
	List(ctx context.Context) ([]domain.Book, error)
	Create(ctx context.Context, input book.CreateInput) (*domain.Book, error)
	Update(ctx context.Context, input book.UpdateInput) (*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type readerService interface {
	List(ctx context.Context) ([]domain.Reader, error)
	Create(ctx context.Context, input reader.CreateInput) (*domain.Reader, error)
	ResolveOrCreate(ctx context.Context, name string) (*domain.Reader, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type actionListService interface {
	List(ctx context.Context) ([]domain.ActionList, error)
	Create(ctx context.Context, input actionlist.CreateInput) (*domain.ActionList, error)
	CreateFromBook(ctx context.Context, input actionlist.FromBookInput) (*domain.ActionList, error)
	Update(ctx context.Context, input actionlist.UpdateInput) (*domain.ActionList, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Session owns the club collections. Reads return copies; changes are
// serialized and a second change fails with ErrBusy instead of queueing.
type Session struct {
	books   bookService
	readers readerService
	actions actionListService
	log     *slog.Logger

	// changing is held for the whole duration of a change.
	changing sync.Mutex

	mu         sync.RWMutex
	bookList   []domain.Book
	readerList []domain.Reader
	actionList []domain.ActionList
	notices    []string
	fallback   bool
	detail     uuid.UUID
	detailOpen bool
}

// NewSession creates an empty session. Call Load before serving it.
func NewSession(log *slog.Logger, books bookService, readers readerService, actions actionListService) *Session {
	return &Session{
		books:   books,
		readers: readers,
		actions: actions,
		log:     log.With("component", "club"),
	}
}

// Books returns a copy of the book collection, newest first.
func (s *Session) Books() []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bookList)
}

// Readers returns a copy of the reader collection.
func (s *Session) Readers() []domain.Reader {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.readerList)
}

// ActionLists returns a copy of the action item collection, newest first.
func (s *Session) ActionLists() []domain.ActionList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.actionList)
}

// Notice returns the message to show alongside the collections, if any.
func (s *Session) Notice() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.Join(s.notices, " ")
}

// Fallback reports whether the books shown are the built-in samples.
func (s *Session) Fallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

// Book looks a book up in the collection.
func (s *Session) Book(id uuid.UUID) (domain.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.bookList, id)
	if i < 0 {
		return domain.Book{}, false
	}
	return s.bookList[i], true
}

// Open shows the book in the detail view. The detail view is state of an
// in-process controller that owns the session; the HTTP API is stateless
// and serves GET /books/{id} through Book instead.
func (s *Session) Open(id uuid.UUID) error {
	if _, ok := s.Book(id); !ok {
		return domain.NewQueryError("book", "open", domain.ErrNotFound)
	}
	s.mu.Lock()
	s.detail = id
	s.detailOpen = true
	s.mu.Unlock()
	return nil
}

// Detail returns the book in the detail view, if one is open.
func (s *Session) Detail() (domain.Book, bool) {
	s.mu.RLock()
	open, id := s.detailOpen, s.detail
	s.mu.RUnlock()
	if !open {
		return domain.Book{}, false
	}
	return s.Book(id)
}

// Close closes the detail view.
func (s *Session) Close() {
	s.mu.Lock()
	s.detailOpen = false
	s.detail = uuid.Nil
	s.mu.Unlock()
}
