package book

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Delete removes a review.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "is required")
	}

	if err := s.books.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "book deleted", slog.String("book_id", id.String()))
	return nil
}
