package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/club"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/actionlist"
	"github.com/heartmarshall/bookclub-backend/internal/stats"
)

type actionListClub interface {
	ActionOverview() club.ActionOverview
	AddActionList(ctx context.Context, input actionlist.CreateInput) (*domain.ActionList, error)
	AddActionListFromBook(ctx context.Context, input actionlist.FromBookInput) (*domain.ActionList, error)
	UpdateActionList(ctx context.Context, input actionlist.UpdateInput) (*domain.ActionList, error)
	DeleteActionList(ctx context.Context, id uuid.UUID) error
}

// ActionListHandler serves the follow-up action endpoints.
type ActionListHandler struct {
	club actionListClub
	log  *slog.Logger
}

// NewActionListHandler creates an ActionListHandler.
func NewActionListHandler(club actionListClub, logger *slog.Logger) *ActionListHandler {
	return &ActionListHandler{club: club, log: logger.With("handler", "action_list")}
}

type actionStatsResponse struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	NotStarted int `json:"notStarted"`
	InProgress int `json:"inProgress"`
	OnHold     int `json:"onHold"`
}

type actionOverviewResponse struct {
	ActionLists []actionListResponse `json:"actionLists"`
	Stats       actionStatsResponse  `json:"stats"`
	Statuses    []stats.Count        `json:"statuses"`
	Quarters    []stats.Count        `json:"quarters"`
}

// List handles GET /api/v1/action-lists.
func (h *ActionListHandler) List(w http.ResponseWriter, r *http.Request) {
	ov := h.club.ActionOverview()

	items := make([]actionListResponse, 0, len(ov.Items))
	for _, it := range ov.Items {
		resp := toActionListResponse(it.ActionList)
		resp.Quarter = it.Quarter
		items = append(items, resp)
	}

	writeJSON(w, http.StatusOK, actionOverviewResponse{
		ActionLists: items,
		Stats: actionStatsResponse{
			Total:      ov.Stats.Total,
			Done:       ov.Stats.Done,
			NotStarted: ov.Stats.NotStarted,
			InProgress: ov.Stats.InProgress,
			OnHold:     ov.Stats.OnHold,
		},
		Statuses: nonNilCounts(ov.Statuses),
		Quarters: nonNilCounts(ov.Quarters),
	})
}

// Create handles POST /api/v1/action-lists.
func (h *ActionListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input actionlist.CreateInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	a, err := h.club.AddActionList(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActionListResponse(*a))
}

// CreateFromBook handles POST /api/v1/books/{id}/action-lists.
func (h *ActionListHandler) CreateFromBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var input actionlist.FromBookInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.BookID = bookID

	a, err := h.club.AddActionListFromBook(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActionListResponse(*a))
}

// Update handles PATCH /api/v1/action-lists/{id}.
func (h *ActionListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var input actionlist.UpdateInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.ID = id

	a, err := h.club.UpdateActionList(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toActionListResponse(*a))
}

// Delete handles DELETE /api/v1/action-lists/{id}.
func (h *ActionListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.club.DeleteActionList(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func nonNilCounts(c []stats.Count) []stats.Count {
	if c == nil {
		return []stats.Count{}
	}
	return c
}
