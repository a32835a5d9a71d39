// Package actionlist implements the ActionList repository using PostgreSQL.
package actionlist

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

const entity = "action_list"

var columns = []string{
	"id", "title", "reader_id", "book_title", "content", "target_months",
	"action_time", "status", "created_at", "updated_at",
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Title        string    `db:"title"`
	ReaderID     uuid.UUID `db:"reader_id"`
	ReaderName   string    `db:"reader_name"`
	BookTitle    string    `db:"book_title"`
	Content      string    `db:"content"`
	TargetMonths []string  `db:"target_months"`
	ActionTime   *string   `db:"action_time"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.ActionList {
	return domain.ActionList{
		ID:           r.ID,
		Title:        r.Title,
		ReaderID:     r.ReaderID,
		ReaderName:   r.ReaderName,
		BookTitle:    r.BookTitle,
		Content:      r.Content,
		TargetMonths: r.TargetMonths,
		ActionTime:   r.ActionTime,
		Status:       domain.ActionStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides action list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new action list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectColumns(alias string) []string {
	cols := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		cols = append(cols, alias+"."+c)
	}
	return append(cols, "r.name AS reader_name")
}

// List returns all action lists, newest first, joined with the reader name.
func (r *Repo) List(ctx context.Context) ([]domain.ActionList, error) {
	b := postgres.Builder().Select(selectColumns("a")...).
		From("action_lists a").
		Join("readers r ON r.id = a.reader_id").
		OrderBy("a.created_at DESC", "a.id")

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, domain.NewQueryError(entity, "list", postgres.MapError(err, entity, uuid.Nil))
	}

	scanned, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, domain.NewQueryError(entity, "list", postgres.MapError(err, entity, uuid.Nil))
	}

	out := make([]domain.ActionList, len(scanned))
	for i, s := range scanned {
		out[i] = s.toDomain()
	}
	return out, nil
}

// GetByID returns one action list with its reader name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActionList, error) {
	b := postgres.Builder().Select(selectColumns("a")...).
		From("action_lists a").
		Join("readers r ON r.id = a.reader_id").
		Where(sq.Eq{"a.id": id})

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, domain.NewQueryError(entity, "get", postgres.MapError(err, entity, id))
	}

	s, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, domain.NewQueryError(entity, "get", postgres.MapError(err, entity, id))
	}
	out := s.toDomain()
	return &out, nil
}

// Create inserts an action list. An empty status defaults to NOT_STARTED.
func (r *Repo) Create(ctx context.Context, in domain.ActionList) (*domain.ActionList, error) {
	status := in.Status
	if status == "" {
		status = domain.ActionStatusNotStarted
	}
	months := in.TargetMonths
	if months == nil {
		months = []string{}
	}

	ins := postgres.Builder().Insert("action_lists").
		Columns("title", "reader_id", "book_title", "content", "target_months", "action_time", "status").
		Values(in.Title, in.ReaderID, in.BookTitle, in.Content, months, in.ActionTime, string(status)).
		Suffix("RETURNING *")

	got, err := r.returning(ctx, ins)
	if err != nil {
		return nil, domain.NewWriteError(entity, "create", uuid.Nil, postgres.MapError(err, entity, uuid.Nil))
	}
	return got, nil
}

// Update applies the present fields of p and touches updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.ActionListUpdateParams) (*domain.ActionList, error) {
	set := make(map[string]any)
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.BookTitle != nil {
		set["book_title"] = *p.BookTitle
	}
	if p.Content != nil {
		set["content"] = *p.Content
	}
	if p.TargetMonths != nil {
		months := *p.TargetMonths
		if months == nil {
			months = []string{}
		}
		set["target_months"] = months
	}
	if p.ActionTime != nil {
		if *p.ActionTime == "" {
			set["action_time"] = nil
		} else {
			set["action_time"] = *p.ActionTime
		}
	}
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}

	upd := postgres.Builder().Update("action_lists").
		SetMap(set).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING *")

	got, err := r.returning(ctx, upd)
	if err != nil {
		return nil, domain.NewWriteError(entity, "update", id, postgres.MapError(err, entity, id))
	}
	return got, nil
}

// Delete removes an action list. Unknown ids yield domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	b := postgres.Builder().Delete("action_lists").Where(sq.Eq{"id": id})

	tag, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return domain.NewWriteError(entity, "delete", id, postgres.MapDeleteError(err, entity, id))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewWriteError(entity, "delete", id, postgres.MapError(pgx.ErrNoRows, entity, id))
	}
	return nil
}

func (r *Repo) returning(ctx context.Context, stmt postgres.Sqlizer) (*domain.ActionList, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	query := "WITH m AS (" + sql + ") SELECT " + strings.Join(selectColumns("m"), ", ") +
		" FROM m JOIN readers r ON r.id = m.reader_id"

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
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
