package book

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/validation"
)

type bookRepo interface {
	List(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	Create(ctx context.Context, b domain.Book) (*domain.Book, error)
	Update(ctx context.Context, id uuid.UUID, p domain.BookUpdateParams) (*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var validate = validation.New()

// Service provides reading record operations.
type Service struct {
	books bookRepo
	log   *slog.Logger
}

// NewService creates a new Book service.
func NewService(log *slog.Logger, books bookRepo) *Service {
	return &Service{
		books: books,
		log:   log.With("service", "book"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimPtr trims a present value and keeps "" so that it clears the field.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// cleanList trims every item and drops blank ones. Never returns nil.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
