package reader

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Create registers a new reader. Duplicate names are allowed.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Reader, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.readers.Create(ctx, domain.Reader{
		Name:  input.Name,
		Email: input.Email,
		Bio:   input.Bio,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reader created",
		slog.String("reader_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// ResolveOrCreate returns the oldest reader with the given name, creating
// one when nobody has it yet. The flag reports whether a reader was created.
func (s *Service) ResolveOrCreate(ctx context.Context, name string) (*domain.Reader, bool, error) {
	input := CreateInput{Name: name}.normalize()
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	found, err := s.readers.FindByName(ctx, input.Name)
	if err == nil {
		return found, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	created, err := s.Create(ctx, input)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}
