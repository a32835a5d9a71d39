package book

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// List returns every review, newest first, with reader names joined.
func (s *Service) List(ctx context.Context) ([]domain.Book, error) {
	return s.books.List(ctx)
}

// Get returns a single review.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "is required")
	}
	return s.books.GetByID(ctx, id)
}
