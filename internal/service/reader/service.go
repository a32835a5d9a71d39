package reader

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/validation"
)

type readerRepo interface {
	List(ctx context.Context) ([]domain.Reader, error)
	FindByName(ctx context.Context, name string) (*domain.Reader, error)
	Create(ctx context.Context, r domain.Reader) (*domain.Reader, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountReferences(ctx context.Context, id uuid.UUID) (int, error)
}

var validate = validation.New()

// Service provides club member operations.
type Service struct {
	readers readerRepo
	log     *slog.Logger
}

// NewService creates a new Reader service.
func NewService(log *slog.Logger, readers readerRepo) *Service {
	return &Service{
		readers: readers,
		log:     log.With("service", "reader"),
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
