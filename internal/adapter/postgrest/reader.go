package postgrest

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

const readerEntity = "reader"

// ReaderRepo is the readers table over PostgREST.
type ReaderRepo struct {
	client *Client
}

// NewReaderRepo creates a reader repository on client.
func NewReaderRepo(client *Client) *ReaderRepo {
	return &ReaderRepo{client: client}
}

// List returns all readers, newest first.
func (r *ReaderRepo) List(ctx context.Context) ([]domain.Reader, error) {
	var rows []readerRow
	resp, err := r.client.request(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "created_at.desc,id.asc").
		SetResult(&rows).
		Get("/readers")
	if err != nil {
		return nil, domain.NewQueryError(readerEntity, "list", transportError(err, readerEntity, uuid.Nil))
	}
	if resp.IsError() {
		return nil, domain.NewQueryError(readerEntity, "list", responseError(resp, readerEntity, uuid.Nil, domain.ErrNotFound))
	}
	return toReaders(rows), nil
}

// GetByID returns one reader.
func (r *ReaderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reader, error) {
	return r.first(ctx, "get", id, map[string]string{"id": eq(id.String())})
}

// FindByName returns the oldest reader with exactly the trimmed name.
func (r *ReaderRepo) FindByName(ctx context.Context, name string) (*domain.Reader, error) {
	return r.first(ctx, "find by name", uuid.Nil, map[string]string{
		"name":  eq(strings.TrimSpace(name)),
		"order": "created_at.asc",
		"limit": "1",
	})
}

func (r *ReaderRepo) first(ctx context.Context, op string, id uuid.UUID, params map[string]string) (*domain.Reader, error) {
	var rows []readerRow
	req := r.client.request(ctx).SetQueryParam("select", "*").SetResult(&rows)
	for k, v := range params {
		req.SetQueryParam(k, v)
	}

	resp, err := req.Get("/readers")
	if err != nil {
		return nil, domain.NewQueryError(readerEntity, op, transportError(err, readerEntity, id))
	}
	if resp.IsError() {
		return nil, domain.NewQueryError(readerEntity, op, responseError(resp, readerEntity, id, domain.ErrNotFound))
	}
	if len(rows) == 0 {
		return nil, domain.NewQueryError(readerEntity, op, notFound(readerEntity, id))
	}

	out := rows[0].toDomain()
	return &out, nil
}

// Create inserts a reader.
func (r *ReaderRepo) Create(ctx context.Context, in domain.Reader) (*domain.Reader, error) {
	var rows []readerRow
	resp, err := r.client.request(ctx).
		SetHeader(preferHeader, returnRows).
		SetBody(readerInsert{Name: in.Name, Email: in.Email, Bio: in.Bio}).
		SetResult(&rows).
		Post("/readers")
	if err != nil {
		return nil, domain.NewWriteError(readerEntity, "create", uuid.Nil, transportError(err, readerEntity, uuid.Nil))
	}
	if resp.IsError() {
		return nil, domain.NewWriteError(readerEntity, "create", uuid.Nil, responseError(resp, readerEntity, uuid.Nil, domain.ErrNotFound))
	}
	if len(rows) == 0 {
		return nil, domain.NewWriteError(readerEntity, "create", uuid.Nil, notFound(readerEntity, uuid.Nil))
	}

	out := rows[0].toDomain()
	return &out, nil
}

// Delete removes a reader. A foreign key violation (reader still referenced)
// maps to domain.ErrConflict.
func (r *ReaderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	var rows []readerRow
	resp, err := r.client.request(ctx).
		SetHeader(preferHeader, returnRows).
		SetQueryParam("id", eq(id.String())).
		SetResult(&rows).
		Delete("/readers")
	if err != nil {
		return domain.NewWriteError(readerEntity, "delete", id, transportError(err, readerEntity, id))
	}
	if resp.IsError() {
		return domain.NewWriteError(readerEntity, "delete", id, responseError(resp, readerEntity, id, domain.ErrConflict))
	}
	if len(rows) == 0 {
		return domain.NewWriteError(readerEntity, "delete", id, notFound(readerEntity, id))
	}
	return nil
}

type idRow struct {
	ID uuid.UUID `json:"id"`
}

// CountReferences counts books and action lists owned by the reader.
func (r *ReaderRepo) CountReferences(ctx context.Context, id uuid.UUID) (int, error) {
	total := 0
	for _, table := range []string{"/books", "/action_lists"} {
		var rows []idRow
		resp, err := r.client.request(ctx).
			SetQueryParam("select", "id").
			SetQueryParam("reader_id", eq(id.String())).
			SetResult(&rows).
			Get(table)
		if err != nil {
			return 0, domain.NewQueryError(readerEntity, "count references", transportError(err, readerEntity, id))
		}
		if resp.IsError() {
			return 0, domain.NewQueryError(readerEntity, "count references", responseError(resp, readerEntity, id, domain.ErrNotFound))
		}
		total += len(rows)
	}
	return total, nil
}

func toReaders(rows []readerRow) []domain.Reader {
	out := make([]domain.Reader, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
