package book

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Create validates the input and stores a new review. Nothing is sent to the
// store when validation fails.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Book, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.books.Create(ctx, domain.Book{
		Title:           input.Title,
		Author:          input.Author,
		ReaderID:        input.ReaderID,
		Review:          input.Review,
		Rating:          input.Rating,
		ReadDate:        domain.DateOf(input.ReadDate),
		Presentation:    input.Presentation,
		Tags:            input.Tags,
		Genre:           input.Genre,
		PurchaseLink:    input.PurchaseLink,
		OneLiner:        input.OneLiner,
		Motivation:      input.Motivation,
		MemorableQuotes: input.MemorableQuotes,
		Emotion:         input.Emotion,
		EmotionScore:    input.EmotionScore,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book created",
		slog.String("book_id", created.ID.String()),
		slog.String("reader_id", created.ReaderID.String()),
		slog.String("title", created.Title),
	)

	return created, nil
}
