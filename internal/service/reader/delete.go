package reader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Delete removes a reader. Readers that still own books or action lists
// cannot be deleted.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "is required")
	}

	refs, err := s.readers.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.NewWriteError("reader", "delete", id,
			fmt.Errorf("referenced by %d records: %w", refs, domain.ErrConflict))
	}

	if err := s.readers.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "reader deleted", slog.String("reader_id", id.String()))
	return nil
}
