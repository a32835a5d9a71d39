package postgrest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

const bookEntity = "book"

// BookRepo is the books table over PostgREST.
type BookRepo struct {
	client *Client
	now    func() time.Time
}

// NewBookRepo creates a book repository on client.
func NewBookRepo(client *Client) *BookRepo {
	return &BookRepo{client: client, now: time.Now}
}

// List returns all books with their reader name, newest first.
func (r *BookRepo) List(ctx context.Context) ([]domain.Book, error) {
	var rows []bookRow
	resp, err := r.client.request(ctx).
		SetQueryParam("select", selectWithReader).
		SetQueryParam("order", newestFirst).
		SetResult(&rows).
		Get("/books")
	if err != nil {
		return nil, domain.NewQueryError(bookEntity, "list", transportError(err, bookEntity, uuid.Nil))
	}
	if resp.IsError() {
		return nil, domain.NewQueryError(bookEntity, "list", responseError(resp, bookEntity, uuid.Nil, domain.ErrNotFound))
	}

	books := make([]domain.Book, len(rows))
	for i, row := range rows {
		books[i] = row.toDomain()
	}
	return books, nil
}

// GetByID returns one book with its reader name.
func (r *BookRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	var rows []bookRow
	resp, err := r.client.request(ctx).
		SetQueryParam("select", selectWithReader).
		SetQueryParam("id", eq(id.String())).
		SetResult(&rows).
		Get("/books")
	if err != nil {
		return nil, domain.NewQueryError(bookEntity, "get", transportError(err, bookEntity, id))
	}
	if resp.IsError() {
		return nil, domain.NewQueryError(bookEntity, "get", responseError(resp, bookEntity, id, domain.ErrNotFound))
	}
	if len(rows) == 0 {
		return nil, domain.NewQueryError(bookEntity, "get", notFound(bookEntity, id))
	}

	b := rows[0].toDomain()
	return &b, nil
}

// Create inserts a book and returns the stored representation.
func (r *BookRepo) Create(ctx context.Context, in domain.Book) (*domain.Book, error) {
	var rows []bookRow
	resp, err := r.client.request(ctx).
		SetHeader(preferHeader, returnRows).
		SetQueryParam("select", selectWithReader).
		SetBody(newBookInsert(in)).
		SetResult(&rows).
		Post("/books")
	if err != nil {
		return nil, domain.NewWriteError(bookEntity, "create", uuid.Nil, transportError(err, bookEntity, uuid.Nil))
	}
	if resp.IsError() {
		return nil, domain.NewWriteError(bookEntity, "create", uuid.Nil, responseError(resp, bookEntity, uuid.Nil, domain.ErrNotFound))
	}
	if len(rows) == 0 {
		return nil, domain.NewWriteError(bookEntity, "create", uuid.Nil, notFound(bookEntity, uuid.Nil))
	}

	b := rows[0].toDomain()
	return &b, nil
}

// Update sends only the present fields of p.
func (r *BookRepo) Update(ctx context.Context, id uuid.UUID, p domain.BookUpdateParams) (*domain.Book, error) {
	var rows []bookRow
	resp, err := r.client.request(ctx).
		SetHeader(preferHeader, returnRows).
		SetQueryParam("id", eq(id.String())).
		SetQueryParam("select", selectWithReader).
		SetBody(bookPatch(p, r.now().UTC())).
		SetResult(&rows).
		Patch("/books")
	if err != nil {
		return nil, domain.NewWriteError(bookEntity, "update", id, transportError(err, bookEntity, id))
	}
	if resp.IsError() {
		return nil, domain.NewWriteError(bookEntity, "update", id, responseError(resp, bookEntity, id, domain.ErrNotFound))
	}
	if len(rows) == 0 {
		return nil, domain.NewWriteError(bookEntity, "update", id, notFound(bookEntity, id))
	}

	b := rows[0].toDomain()
	return &b, nil
}

// Delete removes a book. An empty representation means the id was unknown.
func (r *BookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	var rows []bookRow
	resp, err := r.client.request(ctx).
		SetHeader(preferHeader, returnRows).
		SetQueryParam("id", eq(id.String())).
		SetResult(&rows).
		Delete("/books")
	if err != nil {
		return domain.NewWriteError(bookEntity, "delete", id, transportError(err, bookEntity, id))
	}
	if resp.IsError() {
		return domain.NewWriteError(bookEntity, "delete", id, responseError(resp, bookEntity, id, domain.ErrConflict))
	}
	if len(rows) == 0 {
		return domain.NewWriteError(bookEntity, "delete", id, notFound(bookEntity, id))
	}
	return nil
}
