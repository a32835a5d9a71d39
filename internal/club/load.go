package club

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

const (
	noticeSampleBooks = "Reviews could not be loaded, showing sample data."
	noticeNoReaders   = "Readers could not be loaded."
	noticeNoActions   = "Action lists could not be loaded."
)

type collections struct {
	books   []domain.Book
	readers []domain.Reader
	actions []domain.ActionList
}

// Load fetches all collections concurrently. A failed book load falls back
// to the sample reviews; failed reader or action list loads leave those
// collections empty. Each failure adds a notice and all of them are returned
// joined.
func (s *Session) Load(ctx context.Context) error {
	var (
		c                             collections
		booksErr, readersErr, actsErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		c.books, booksErr = s.books.List(ctx)
		return nil
	})
	g.Go(func() error {
		c.readers, readersErr = s.readers.List(ctx)
		return nil
	})
	g.Go(func() error {
		c.actions, actsErr = s.actions.List(ctx)
		return nil
	})
	_ = g.Wait()

	var notices []string
	fallback := false
	if booksErr != nil {
		s.log.ErrorContext(ctx, "load books", slog.String("error", booksErr.Error()))
		c.books = domain.SampleBooks()
		fallback = true
		notices = append(notices, noticeSampleBooks)
	}
	if readersErr != nil {
		s.log.ErrorContext(ctx, "load readers", slog.String("error", readersErr.Error()))
		c.readers = nil
		notices = append(notices, noticeNoReaders)
	}
	if actsErr != nil {
		s.log.ErrorContext(ctx, "load action lists", slog.String("error", actsErr.Error()))
		c.actions = nil
		notices = append(notices, noticeNoActions)
	}

	s.mu.Lock()
	s.replace(c)
	s.notices = notices
	s.fallback = fallback
	s.mu.Unlock()

	s.log.InfoContext(ctx, "club loaded",
		slog.Int("books", len(c.books)),
		slog.Int("readers", len(c.readers)),
		slog.Int("action_lists", len(c.actions)),
		slog.Bool("fallback", fallback),
	)

	return errors.Join(booksErr, readersErr, actsErr)
}

// Reload refreshes every collection. When any fetch fails the current
// snapshot is kept and the error is returned.
func (s *Session) Reload(ctx context.Context) error {
	if !s.changing.TryLock() {
		return ErrBusy
	}
	defer s.changing.Unlock()

	var c collections

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if c.books, err = s.books.List(gctx); err != nil {
			return fmt.Errorf("reload books: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if c.readers, err = s.readers.List(gctx); err != nil {
			return fmt.Errorf("reload readers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if c.actions, err = s.actions.List(gctx); err != nil {
			return fmt.Errorf("reload action lists: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "reload club", slog.String("error", err.Error()))
		return err
	}

	s.mu.Lock()
	s.replace(c)
	s.notices = nil
	s.fallback = false
	s.mu.Unlock()

	return nil
}

// replace swaps all collections and closes the detail view when its book
// is gone. Callers hold mu.
func (s *Session) replace(c collections) {
	s.bookList = c.books
	s.readerList = c.readers
	s.actionList = c.actions
	if s.detailOpen && indexOf(s.bookList, s.detail) < 0 {
		s.detailOpen = false
	}
}
