package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/persona"
)

type personaService interface {
	StartSession(ctx context.Context, readerName string, books []domain.Book) (*persona.Session, error)
	Chat(ctx context.Context, input persona.ChatInput) (domain.ChatReply, error)
}

type bookSource interface {
	Books() []domain.Book
}

// PersonaHandler serves the persona chat endpoints. Reviews are taken from
// the current club snapshot.
type PersonaHandler struct {
	svc   personaService
	books bookSource
	log   *slog.Logger
}

// NewPersonaHandler creates a PersonaHandler.
func NewPersonaHandler(svc personaService, books bookSource, logger *slog.Logger) *PersonaHandler {
	return &PersonaHandler{svc: svc, books: books, log: logger.With("handler", "persona")}
}

type startSessionRequest struct {
	Author string `json:"author"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response    string `json:"response"`
	TokensUsed  int    `json:"tokensUsed"`
	SearchCount int    `json:"searchCount"`
	PromptType  string `json:"promptType,omitempty"`
}

// Authors handles GET /api/v1/persona/authors.
func (h *PersonaHandler) Authors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]persona.AuthorCount{
		"authors": persona.Authors(h.books.Books()),
	})
}

// StartSession handles POST /api/v1/persona/sessions.
func (h *PersonaHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sess, err := h.svc.StartSession(r.Context(), req.Author, h.books.Books())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// Chat handles POST /api/v1/persona/sessions/{id}/chat.
func (h *PersonaHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	reply, err := h.svc.Chat(r.Context(), persona.ChatInput{
		SessionID: chi.URLParam(r, "id"),
		Message:   req.Message,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Response:    reply.Response,
		TokensUsed:  reply.TokensUsed,
		SearchCount: reply.SearchCount,
		PromptType:  reply.PromptType,
	})
}
