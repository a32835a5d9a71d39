package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/reader"
)

type readerClub interface {
	Readers() []domain.Reader
	AddReader(ctx context.Context, input reader.CreateInput) (*domain.Reader, error)
	ResolveReader(ctx context.Context, name string) (*domain.Reader, bool, error)
	DeleteReader(ctx context.Context, id uuid.UUID) error
}

// ReaderHandler serves the club member endpoints.
type ReaderHandler struct {
	club readerClub
	log  *slog.Logger
}

// NewReaderHandler creates a ReaderHandler.
func NewReaderHandler(club readerClub, logger *slog.Logger) *ReaderHandler {
	return &ReaderHandler{club: club, log: logger.With("handler", "reader")}
}

type resolveReaderRequest struct {
	Name string `json:"name"`
}

type resolveReaderResponse struct {
	Reader  readerResponse `json:"reader"`
	Created bool           `json:"created"`
}

// List handles GET /api/v1/readers.
func (h *ReaderHandler) List(w http.ResponseWriter, r *http.Request) {
	readers := h.club.Readers()
	out := make([]readerResponse, 0, len(readers))
	for _, rd := range readers {
		out = append(out, toReaderResponse(rd))
	}
	writeJSON(w, http.StatusOK, map[string][]readerResponse{"readers": out})
}

// Create handles POST /api/v1/readers.
func (h *ReaderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input reader.CreateInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rd, err := h.club.AddReader(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReaderResponse(*rd))
}

// Resolve handles POST /api/v1/readers/resolve. It answers 201 when the
// reader had to be created and 200 when an existing one was found.
func (h *ReaderHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveReaderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rd, created, err := h.club.ResolveReader(r.Context(), req.Name)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, resolveReaderResponse{Reader: toReaderResponse(*rd), Created: created})
}

// Delete handles DELETE /api/v1/readers/{id}.
func (h *ReaderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.club.DeleteReader(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
