package club

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/actionlist"
	"github.com/heartmarshall/bookclub-backend/internal/service/book"
	"github.com/heartmarshall/bookclub-backend/internal/service/reader"
)

type identified interface {
	domain.Book | domain.Reader | domain.ActionList
}

func idOf[T identified](v T) uuid.UUID {
	switch x := any(v).(type) {
	case domain.Book:
		return x.ID
	case domain.Reader:
		return x.ID
	case domain.ActionList:
		return x.ID
	}
	return uuid.Nil
}

func indexOf[T identified](list []T, id uuid.UUID) int {
	return slices.IndexFunc(list, func(v T) bool { return idOf(v) == id })
}

// prepend returns a new slice with v first.
func prepend[T identified](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, v)
	return append(out, list...)
}

// replaceByID returns a new slice with the element matching v replaced in
// place, or v prepended when it is not in the list.
func replaceByID[T identified](list []T, v T) []T {
	i := indexOf(list, idOf(v))
	if i < 0 {
		return prepend(list, v)
	}
	out := slices.Clone(list)
	out[i] = v
	return out
}

func removeByID[T identified](list []T, id uuid.UUID) []T {
	return slices.DeleteFunc(slices.Clone(list), func(v T) bool { return idOf(v) == id })
}

// change runs fn while holding the change lock. Errors are logged with the
// action name and returned unchanged.
func (s *Session) change(ctx context.Context, action string, fn func() error) error {
	if !s.changing.TryLock() {
		return ErrBusy
	}
	defer s.changing.Unlock()

	if err := fn(); err != nil {
		s.log.ErrorContext(ctx, "club action failed",
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// AddBook stores a new review and puts it first in the collection.
func (s *Session) AddBook(ctx context.Context, input book.CreateInput) (*domain.Book, error) {
	var created *domain.Book
	err := s.change(ctx, "add book", func() error {
		var err error
		if created, err = s.books.Create(ctx, input); err != nil {
			return err
		}
		s.mu.Lock()
		s.bookList = prepend(s.bookList, *created)
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateBook applies a partial update and replaces the review in place.
func (s *Session) UpdateBook(ctx context.Context, input book.UpdateInput) (*domain.Book, error) {
	var updated *domain.Book
	err := s.change(ctx, "update book", func() error {
		var err error
		if updated, err = s.books.Update(ctx, input); err != nil {
			return err
		}
		s.mu.Lock()
		s.bookList = replaceByID(s.bookList, *updated)
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBook removes a review. The detail view closes when it showed it.
func (s *Session) DeleteBook(ctx context.Context, id uuid.UUID) error {
	return s.change(ctx, "delete book", func() error {
		if err := s.books.Delete(ctx, id); err != nil {
			return err
		}
		s.mu.Lock()
		s.bookList = removeByID(s.bookList, id)
		if s.detailOpen && s.detail == id {
			s.detailOpen = false
			s.detail = uuid.Nil
		}
		s.mu.Unlock()
		return nil
	})
}

// AddReader registers a reader and refreshes the reader collection.
func (s *Session) AddReader(ctx context.Context, input reader.CreateInput) (*domain.Reader, error) {
	var created *domain.Reader
	err := s.change(ctx, "add reader", func() error {
		var err error
		if created, err = s.readers.Create(ctx, input); err != nil {
			return err
		}
		s.refreshReaders(ctx, func(list []domain.Reader) []domain.Reader {
			return prepend(list, *created)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ResolveReader returns the reader with the given name, registering one
// when nobody has it. The flag reports whether a reader was created.
func (s *Session) ResolveReader(ctx context.Context, name string) (*domain.Reader, bool, error) {
	var (
		resolved *domain.Reader
		created  bool
	)
	err := s.change(ctx, "resolve reader", func() error {
		var err error
		if resolved, created, err = s.readers.ResolveOrCreate(ctx, name); err != nil {
			return err
		}
		if created {
			s.refreshReaders(ctx, func(list []domain.Reader) []domain.Reader {
				return prepend(list, *resolved)
			})
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return resolved, created, nil
}

// DeleteReader removes a reader that nothing references any more.
func (s *Session) DeleteReader(ctx context.Context, id uuid.UUID) error {
	return s.change(ctx, "delete reader", func() error {
		if err := s.readers.Delete(ctx, id); err != nil {
			return err
		}
		s.refreshReaders(ctx, func(list []domain.Reader) []domain.Reader {
			return removeByID(list, id)
		})
		return nil
	})
}

// refreshReaders reloads the reader collection after a reader change. When
// the reload fails the change is applied locally with patch.
func (s *Session) refreshReaders(ctx context.Context, patch func([]domain.Reader) []domain.Reader) {
	list, err := s.readers.List(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.WarnContext(ctx, "refresh readers", slog.String("error", err.Error()))
		s.readerList = patch(s.readerList)
		return
	}
	s.readerList = list
}

// AddActionList stores a new action item and puts it first.
func (s *Session) AddActionList(ctx context.Context, input actionlist.CreateInput) (*domain.ActionList, error) {
	return s.addActionList(ctx, "add action list", func() (*domain.ActionList, error) {
		return s.actions.Create(ctx, input)
	})
}

// AddActionListFromBook stores an action item seeded from a book.
func (s *Session) AddActionListFromBook(ctx context.Context, input actionlist.FromBookInput) (*domain.ActionList, error) {
	return s.addActionList(ctx, "add action list from book", func() (*domain.ActionList, error) {
		return s.actions.CreateFromBook(ctx, input)
	})
}

func (s *Session) addActionList(ctx context.Context, action string, create func() (*domain.ActionList, error)) (*domain.ActionList, error) {
	var created *domain.ActionList
	err := s.change(ctx, action, func() error {
		var err error
		if created, err = create(); err != nil {
			return err
		}
		s.mu.Lock()
		s.actionList = prepend(s.actionList, *created)
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateActionList applies a partial update and replaces the item in place.
func (s *Session) UpdateActionList(ctx context.Context, input actionlist.UpdateInput) (*domain.ActionList, error) {
	var updated *domain.ActionList
	err := s.change(ctx, "update action list", func() error {
		var err error
		if updated, err = s.actions.Update(ctx, input); err != nil {
			return err
		}
		s.mu.Lock()
		s.actionList = replaceByID(s.actionList, *updated)
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteActionList removes an action item.
func (s *Session) DeleteActionList(ctx context.Context, id uuid.UUID) error {
	return s.change(ctx, "delete action list", func() error {
		if err := s.actions.Delete(ctx, id); err != nil {
			return err
		}
		s.mu.Lock()
		s.actionList = removeByID(s.actionList, id)
		s.mu.Unlock()
		return nil
	})
}
