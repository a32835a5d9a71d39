package actionlist

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Create validates and stores a new action item. The status defaults to
// NOT_STARTED.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.ActionList, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.actions.Create(ctx, domain.ActionList{
		Title:        input.Title,
		ReaderID:     input.ReaderID,
		BookTitle:    input.BookTitle,
		Content:      input.Content,
		TargetMonths: input.TargetMonths,
		ActionTime:   input.ActionTime,
		Status:       input.Status,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "action list created",
		slog.String("action_list_id", created.ID.String()),
		slog.String("reader_id", created.ReaderID.String()),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}

// CreateFromBook creates an action item for the reader of a book, copying
// the book title. A blank title falls back to the book title.
func (s *Service) CreateFromBook(ctx context.Context, input FromBookInput) (*domain.ActionList, error) {
	if input.BookID == uuid.Nil {
		return nil, domain.NewValidationError("bookId", "is required")
	}

	book, err := s.books.GetByID(ctx, input.BookID)
	if err != nil {
		return nil, err
	}

	return s.Create(ctx, FromBook(*book, input))
}

// FromBook builds the create input for an action item derived from b.
func FromBook(b domain.Book, input FromBookInput) CreateInput {
	title := input.Title
	if strings.TrimSpace(title) == "" {
		title = b.Title
	}
	return CreateInput{
		Title:        title,
		ReaderID:     b.ReaderID,
		BookTitle:    b.Title,
		Content:      input.Content,
		TargetMonths: input.TargetMonths,
		ActionTime:   input.ActionTime,
		Status:       input.Status,
	}
}
