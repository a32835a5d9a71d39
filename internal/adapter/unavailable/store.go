// Package unavailable provides repositories that fail every call with
// domain.ErrStoreUnavailable. They back the service when no store is
// configured so the process stays up in a visibly disabled state.
package unavailable

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

func queryErr(entity, op, reason string) error {
	return domain.NewQueryError(entity, op, fmt.Errorf("%s: %w", reason, domain.ErrStoreUnavailable))
}

func writeErr(entity, op string, id uuid.UUID, reason string) error {
	return domain.NewWriteError(entity, op, id, fmt.Errorf("%s: %w", reason, domain.ErrStoreUnavailable))
}

// Books fails every book operation.
type Books struct{ Reason string }

func (s Books) List(context.Context) ([]domain.Book, error) {
	return nil, queryErr("book", "list", s.Reason)
}

func (s Books) GetByID(_ context.Context, _ uuid.UUID) (*domain.Book, error) {
	return nil, queryErr("book", "get", s.Reason)
}

func (s Books) Create(context.Context, domain.Book) (*domain.Book, error) {
	return nil, writeErr("book", "create", uuid.Nil, s.Reason)
}

func (s Books) Update(_ context.Context, id uuid.UUID, _ domain.BookUpdateParams) (*domain.Book, error) {
	return nil, writeErr("book", "update", id, s.Reason)
}

func (s Books) Delete(_ context.Context, id uuid.UUID) error {
	return writeErr("book", "delete", id, s.Reason)
}

// Readers fails every reader operation.
type Readers struct{ Reason string }

func (s Readers) List(context.Context) ([]domain.Reader, error) {
	return nil, queryErr("reader", "list", s.Reason)
}

func (s Readers) GetByID(_ context.Context, _ uuid.UUID) (*domain.Reader, error) {
	return nil, queryErr("reader", "get", s.Reason)
}

func (s Readers) FindByName(context.Context, string) (*domain.Reader, error) {
	return nil, queryErr("reader", "find by name", s.Reason)
}

func (s Readers) Create(context.Context, domain.Reader) (*domain.Reader, error) {
	return nil, writeErr("reader", "create", uuid.Nil, s.Reason)
}

func (s Readers) Delete(_ context.Context, id uuid.UUID) error {
	return writeErr("reader", "delete", id, s.Reason)
}

func (s Readers) CountReferences(_ context.Context, _ uuid.UUID) (int, error) {
	return 0, queryErr("reader", "count references", s.Reason)
}

// ActionLists fails every action list operation.
type ActionLists struct{ Reason string }

func (s ActionLists) List(context.Context) ([]domain.ActionList, error) {
	return nil, queryErr("action_list", "list", s.Reason)
}

func (s ActionLists) GetByID(_ context.Context, _ uuid.UUID) (*domain.ActionList, error) {
	return nil, queryErr("action_list", "get", s.Reason)
}

func (s ActionLists) Create(context.Context, domain.ActionList) (*domain.ActionList, error) {
	return nil, writeErr("action_list", "create", uuid.Nil, s.Reason)
}

func (s ActionLists) Update(_ context.Context, id uuid.UUID, _ domain.ActionListUpdateParams) (*domain.ActionList, error) {
	return nil, writeErr("action_list", "update", id, s.Reason)
}

func (s ActionLists) Delete(_ context.Context, id uuid.UUID) error {
	return writeErr("action_list", "delete", id, s.Reason)
}

// Ping always reports the store as down.
func Ping(reason string) func(context.Context) error {
	return func(context.Context) error {
		return fmt.Errorf("%s: %w", reason, domain.ErrStoreUnavailable)
	}
}
