// Package persona builds chat sessions in which the persona service answers
// in the voice of one club member, trained on that member's reviews.
package persona

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/validation"
)

type chatClient interface {
	UploadData(ctx context.Context, sessionID string, records []domain.PersonaRecord) error
	SelectAuthor(ctx context.Context, sessionID, author string) error
	Chat(ctx context.Context, sessionID, message string) (domain.ChatReply, error)
}

var validate = validation.New()

// Service provides persona chat operations.
type Service struct {
	client chatClient
	log    *slog.Logger
}

// NewService creates a new Persona service.
func NewService(log *slog.Logger, client chatClient) *Service {
	return &Service{
		client: client,
		log:    log.With("service", "persona"),
	}
}
