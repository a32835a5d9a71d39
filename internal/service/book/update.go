package book

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Update applies a partial update to a review and returns the stored result.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Book, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.books.Update(ctx, input.ID, input.params())
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book updated",
		slog.String("book_id", updated.ID.String()),
	)

	return updated, nil
}
