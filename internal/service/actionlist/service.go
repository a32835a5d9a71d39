package actionlist

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/validation"
)

type actionListRepo interface {
	List(ctx context.Context) ([]domain.ActionList, error)
	Create(ctx context.Context, a domain.ActionList) (*domain.ActionList, error)
	Update(ctx context.Context, id uuid.UUID, p domain.ActionListUpdateParams) (*domain.ActionList, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
}

var validate = validation.New()

// Service provides action item operations.
type Service struct {
	actions actionListRepo
	books   bookRepo
	log     *slog.Logger
}

// NewService creates a new ActionList service.
func NewService(log *slog.Logger, actions actionListRepo, books bookRepo) *Service {
	return &Service{
		actions: actions,
		books:   books,
		log:     log.With("service", "actionlist"),
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

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// cleanMonths trims tokens and drops blanks and repeats, keeping order.
func cleanMonths(months []string) []string {
	out := make([]string, 0, len(months))
	seen := make(map[string]bool, len(months))
	for _, m := range months {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
