package postgrest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

const actionListEntity = "action_list"

// ActionListRepo is the action_lists table over PostgREST.
type ActionListRepo struct {
	client *Client
	now    func() time.Time
}

// NewActionListRepo creates an action list repository on client.
func NewActionListRepo(client *Client) *ActionListRepo {
	return &ActionListRepo{client: client, now: time.Now}
}

// List returns all action lists with their reader name, newest first.
func (r *ActionListRepo) List(ctx context.Context) ([]domain.ActionList, error) {
	var rows []actionListRow
	resp, err := r.client.request(ctx).
		SetQueryParam("select", selectWithReader).
		SetQueryParam("order", newestFirst).
		SetResult(&rows).
		Get("/action_lists")
	if err != nil {
		return nil, domain.NewQueryError(actionListEntity, "list", transportError(err, actionListEntity, uuid.Nil))
	}
	if resp.IsError() {
		return nil, domain.NewQueryError(actionListEntity, "list", responseError(resp, actionListEntity, uuid.Nil, domain.ErrNotFound))
	}

	out := make([]domain.ActionList, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// GetByID returns one action list.
func (r *ActionListRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActionList, error) {
	var rows []actionListRow
	resp, err := r.client.request(ctx).
		SetQueryParam("select", selectWithReader).
		SetQueryParam("id", eq(id.String())).
		SetResult(&rows).
		Get("/action_lists")
	if err != nil {
		return nil, domain.NewQueryError(actionListEntity, "get", transportError(err, actionListEntity, id))
	}
	if resp.IsError() {
		return nil, domain.NewQueryError(actionListEntity, "get", responseError(resp, actionListEntity, id, domain.ErrNotFound))
	}
	if len(rows) == 0 {
		return nil, domain.NewQueryError(actionListEntity, "get", notFound(actionListEntity, id))
	}

	out := rows[0].toDomain()
	return &out, nil
}

// Create inserts an action list. An empty status defaults to NOT_STARTED.
func (r *ActionListRepo) Create(ctx context.Context, in domain.ActionList) (*domain.ActionList, error) {
	var rows []actionListRow
	resp, err := r.client.request(ctx).
		SetHeader(preferHeader, returnRows).
		SetQueryParam("select", selectWithReader).
		SetBody(newActionListInsert(in)).
		SetResult(&rows).
		Post("/action_lists")
	if err != nil {
		return nil, domain.NewWriteError(actionListEntity, "create", uuid.Nil, transportError(err, actionListEntity, uuid.Nil))
	}
	if resp.IsError() {
		return nil, domain.NewWriteError(actionListEntity, "create", uuid.Nil, responseError(resp, actionListEntity, uuid.Nil, domain.ErrNotFound))
	}
	if len(rows) == 0 {
		return nil, domain.NewWriteError(actionListEntity, "create", uuid.Nil, notFound(actionListEntity, uuid.Nil))
	}

	out := rows[0].toDomain()
	return &out, nil
}

// Update sends only the present fields of p.
func (r *ActionListRepo) Update(ctx context.Context, id uuid.UUID, p domain.ActionListUpdateParams) (*domain.ActionList, error) {
	var rows []actionListRow
	resp, err := r.client.request(ctx).
		SetHeader(preferHeader, returnRows).
		SetQueryParam("id", eq(id.String())).
		SetQueryParam("select", selectWithReader).
		SetBody(actionListPatch(p, r.now().UTC())).
		SetResult(&rows).
		Patch("/action_lists")
	if err != nil {
		return nil, domain.NewWriteError(actionListEntity, "update", id, transportError(err, actionListEntity, id))
	}
	if resp.IsError() {
		return nil, domain.NewWriteError(actionListEntity, "update", id, responseError(resp, actionListEntity, id, domain.ErrNotFound))
	}
	if len(rows) == 0 {
		return nil, domain.NewWriteError(actionListEntity, "update", id, notFound(actionListEntity, id))
	}

	out := rows[0].toDomain()
	return &out, nil
}

// Delete removes an action list.
func (r *ActionListRepo) Delete(ctx context.Context, id uuid.UUID) error {
	var rows []actionListRow
	resp, err := r.client.request(ctx).
		SetHeader(preferHeader, returnRows).
		SetQueryParam("id", eq(id.String())).
		SetResult(&rows).
		Delete("/action_lists")
	if err != nil {
		return domain.NewWriteError(actionListEntity, "delete", id, transportError(err, actionListEntity, id))
	}
	if resp.IsError() {
		return domain.NewWriteError(actionListEntity, "delete", id, responseError(resp, actionListEntity, id, domain.ErrConflict))
	}
	if len(rows) == 0 {
		return domain.NewWriteError(actionListEntity, "delete", id, notFound(actionListEntity, id))
	}
	return nil
}
