// Package reader implements the Reader repository using PostgreSQL.
package reader

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bookclub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

const entity = "reader"

var columns = []string{"id", "name", "email", "bio", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     *string   `db:"email"`
	Bio       *string   `db:"bio"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Reader {
	return domain.Reader{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Bio:       r.Bio,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides reader persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reader repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns all readers, newest first.
// Returns an empty slice (not nil) when there are no readers.
func (r *Repo) List(ctx context.Context) ([]domain.Reader, error) {
	b := postgres.Builder().Select(columns...).From("readers").OrderBy("created_at DESC", "id")

	readers, err := r.collect(ctx, b)
	if err != nil {
		return nil, domain.NewQueryError(entity, "list", postgres.MapError(err, entity, uuid.Nil))
	}
	return readers, nil
}

// GetByID returns a reader by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reader, error) {
	b := postgres.Builder().Select(columns...).From("readers").Where(sq.Eq{"id": id})

	got, err := r.one(ctx, b)
	if err != nil {
		return nil, domain.NewQueryError(entity, "get", postgres.MapError(err, entity, id))
	}
	return got, nil
}

// FindByName returns the oldest reader whose name equals the trimmed name.
func (r *Repo) FindByName(ctx context.Context, name string) (*domain.Reader, error) {
	b := postgres.Builder().Select(columns...).From("readers").
		Where(sq.Eq{"name": strings.TrimSpace(name)}).
		OrderBy("created_at").
		Limit(1)

	got, err := r.one(ctx, b)
	if err != nil {
		return nil, domain.NewQueryError(entity, "find by name", postgres.MapError(err, entity, uuid.Nil))
	}
	return got, nil
}

// Create inserts a reader. The id and created_at are assigned by the database.
func (r *Repo) Create(ctx context.Context, in domain.Reader) (*domain.Reader, error) {
	b := postgres.Builder().Insert("readers").
		Columns("name", "email", "bio").
		Values(in.Name, in.Email, in.Bio).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	got, err := r.one(ctx, b)
	if err != nil {
		return nil, domain.NewWriteError(entity, "create", uuid.Nil, postgres.MapError(err, entity, uuid.Nil))
	}
	return got, nil
}

// Delete removes a reader. A reader still referenced by books or action
// lists is rejected with domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	b := postgres.Builder().Delete("readers").Where(sq.Eq{"id": id})

	tag, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return domain.NewWriteError(entity, "delete", id, postgres.MapDeleteError(err, entity, id))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewWriteError(entity, "delete", id, postgres.MapError(pgx.ErrNoRows, entity, id))
	}
	return nil
}

const countReferencesSQL = `
SELECT
    (SELECT count(*) FROM books WHERE reader_id = $1) +
    (SELECT count(*) FROM action_lists WHERE reader_id = $1)`

// CountReferences returns how many books and action lists point at the reader.
func (r *Repo) CountReferences(ctx context.Context, id uuid.UUID) (int, error) {
	var n int64
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countReferencesSQL, id).Scan(&n)
	if err != nil {
		return 0, domain.NewQueryError(entity, "count references", postgres.MapError(err, entity, id))
	}
	return int(n), nil
}

func (r *Repo) collect(ctx context.Context, b postgres.Sqlizer) ([]domain.Reader, error) {
	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, err
	}

	scanned, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, err
	}

	readers := make([]domain.Reader, len(scanned))
	for i, s := range scanned {
		readers[i] = s.toDomain()
	}
	return readers, nil
}

func (r *Repo) one(ctx context.Context, b postgres.Sqlizer) (*domain.Reader, error) {
	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, err
	}

	s, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, err
	}

	out := s.toDomain()
	return &out, nil
}
