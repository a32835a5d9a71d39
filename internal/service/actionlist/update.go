package actionlist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Update applies a partial update to an action item.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.ActionList, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.actions.Update(ctx, input.ID, input.params())
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "action list updated",
		slog.String("action_list_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// Delete removes an action item.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "is required")
	}

	if err := s.actions.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "action list deleted", slog.String("action_list_id", id.String()))
	return nil
}
