package actionlist

import (
	"context"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// List returns every action item, newest first.
func (s *Service) List(ctx context.Context) ([]domain.ActionList, error) {
	return s.actions.List(ctx)
}
