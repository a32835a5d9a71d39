package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/book"
)

// bookClub is the part of the club session the book routes need.
type bookClub interface {
	Books() []domain.Book
	Book(id uuid.UUID) (domain.Book, bool)
	Notice() string
	Fallback() bool
	AddBook(ctx context.Context, input book.CreateInput) (*domain.Book, error)
	UpdateBook(ctx context.Context, input book.UpdateInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

// BookHandler serves the reading record endpoints.
type BookHandler struct {
	club bookClub
	log  *slog.Logger
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(club bookClub, logger *slog.Logger) *BookHandler {
	return &BookHandler{club: club, log: logger.With("handler", "book")}
}

type bookListResponse struct {
	Books    []bookResponse `json:"books"`
	Notice   string         `json:"notice,omitempty"`
	Fallback bool           `json:"fallback"`
}

// createBookRequest shadows the date fields so they can be sent as
// YYYY-MM-DD.
type createBookRequest struct {
	book.CreateInput
	ReadDate string `json:"readDate"`
}

type updateBookRequest struct {
	book.UpdateInput
	ReadDate *string `json:"readDate"`
}

// List handles GET /api/v1/books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, bookListResponse{
		Books:    toBookResponses(h.club.Books()),
		Notice:   h.club.Notice(),
		Fallback: h.club.Fallback(),
	})
}

// Get handles GET /api/v1/books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	b, ok := h.club.Book(id)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, toBookResponse(b))
}

// Create handles POST /api/v1/books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := req.CreateInput
	if req.ReadDate != "" {
		d, err := parseReadDate(req.ReadDate)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.ReadDate = d
	}

	b, err := h.club.AddBook(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookResponse(*b))
}

// Update handles PATCH /api/v1/books/{id}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := req.UpdateInput
	input.ID = id
	if req.ReadDate != nil {
		d, err := parseReadDate(*req.ReadDate)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.ReadDate = &d
	}

	b, err := h.club.UpdateBook(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookResponse(*b))
}

// Delete handles DELETE /api/v1/books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.club.DeleteBook(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseReadDate(s string) (time.Time, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("readDate", "must be a date in YYYY-MM-DD format")
	}
	return d, nil
}
