package reader

import (
	"context"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// List returns every reader, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Reader, error) {
	return s.readers.List(ctx)
}
