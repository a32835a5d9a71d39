package persona

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

const sessionPrefix = "session_"

// Session is an open persona chat.
type Session struct {
	ID      string `json:"sessionId"`
	Author  string `json:"author"`
	Records int    `json:"records"`
}

// ChatInput is one message sent to an open session.
type ChatInput struct {
	SessionID string `json:"sessionId" validate:"notblank"`
	Message   string `json:"message"   validate:"notblank,max=2000"`
}

// StartSession exports the reviews of readerName, uploads them under a new
// session id and selects the reader as the persona author.
func (s *Service) StartSession(ctx context.Context, readerName string, books []domain.Book) (*Session, error) {
	readerName = strings.TrimSpace(readerName)
	if readerName == "" {
		return nil, domain.NewValidationError("author", "is required")
	}

	records := Export(books, readerName)
	if len(records) == 0 {
		return nil, domain.NewValidationError("author", "has no reviews to learn from")
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	if err := s.client.UploadData(ctx, id, records); err != nil {
		return nil, fmt.Errorf("upload persona data: %w: %w", domain.ErrUpstream, err)
	}
	if err := s.client.SelectAuthor(ctx, id, readerName); err != nil {
		return nil, fmt.Errorf("select persona author: %w: %w", domain.ErrUpstream, err)
	}

	s.log.InfoContext(ctx, "persona session started",
		slog.String("session_id", id),
		slog.String("author", readerName),
		slog.Int("records", len(records)),
	)

	return &Session{ID: id, Author: readerName, Records: len(records)}, nil
}

// Chat sends one message to an open session.
func (s *Service) Chat(ctx context.Context, input ChatInput) (domain.ChatReply, error) {
	input.SessionID = strings.TrimSpace(input.SessionID)
	input.Message = strings.TrimSpace(input.Message)
	if err := validate.Validate(input); err != nil {
		return domain.ChatReply{}, err
	}

	reply, err := s.client.Chat(ctx, input.SessionID, input.Message)
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("persona chat: %w: %w", domain.ErrUpstream, err)
	}
	return reply, nil
}

func newSessionID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return sessionPrefix + id, nil
}
