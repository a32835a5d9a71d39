// Package book implements the Book repository using PostgreSQL.
// Every read joins readers so the returned books carry the reader's name.
package book

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

const entity = "book"

var bookColumns = []string{
	"id", "title", "author", "reader_id", "review", "rating", "read_date",
	"presentation", "tags", "genre", "purchase_link", "one_liner", "motivation",
	"memorable_quotes", "emotion", "emotion_score", "created_at", "updated_at",
}

type row struct {
	ID              uuid.UUID `db:"id"`
	Title           string    `db:"title"`
	Author          string    `db:"author"`
	ReaderID        uuid.UUID `db:"reader_id"`
	ReaderName      string    `db:"reader_name"`
	Review          string    `db:"review"`
	Rating          int16     `db:"rating"`
	ReadDate        time.Time `db:"read_date"`
	Presentation    *string   `db:"presentation"`
	Tags            []string  `db:"tags"`
	Genre           *string   `db:"genre"`
	PurchaseLink    *string   `db:"purchase_link"`
	OneLiner        *string   `db:"one_liner"`
	Motivation      *string   `db:"motivation"`
	MemorableQuotes []string  `db:"memorable_quotes"`
	Emotion         *string   `db:"emotion"`
	EmotionScore    *int16    `db:"emotion_score"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Book {
	b := domain.Book{
		ID:              r.ID,
		Title:           r.Title,
		Author:          r.Author,
		ReaderID:        r.ReaderID,
		ReaderName:      r.ReaderName,
		Review:          r.Review,
		Rating:          int(r.Rating),
		ReadDate:        domain.DateOf(r.ReadDate),
		Presentation:    r.Presentation,
		Tags:            r.Tags,
		Genre:           r.Genre,
		PurchaseLink:    r.PurchaseLink,
		OneLiner:        r.OneLiner,
		Motivation:      r.Motivation,
		MemorableQuotes: r.MemorableQuotes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Emotion != nil {
		e := domain.Emotion(*r.Emotion)
		b.Emotion = &e
	}
	if r.EmotionScore != nil {
		s := int(*r.EmotionScore)
		b.EmotionScore = &s
	}
	return b
}

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new book repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// joinedSelect selects books joined with their reader, aliased b and r.
func joinedSelect() sq.SelectBuilder {
	cols := make([]string, 0, len(bookColumns)+1)
	for _, c := range bookColumns {
		cols = append(cols, "b."+c)
	}
	cols = append(cols, "r.name AS reader_name")

	return postgres.Builder().Select(cols...).
		From("books b").
		Join("readers r ON r.id = b.reader_id")
}

// List returns all books, newest first, joined with the reader name.
// Returns an empty slice (not nil) when there are no books.
func (r *Repo) List(ctx context.Context) ([]domain.Book, error) {
	b := joinedSelect().OrderBy("b.created_at DESC", "b.id")

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, domain.NewQueryError(entity, "list", postgres.MapError(err, entity, uuid.Nil))
	}

	scanned, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, domain.NewQueryError(entity, "list", postgres.MapError(err, entity, uuid.Nil))
	}

	books := make([]domain.Book, len(scanned))
	for i, s := range scanned {
		books[i] = s.toDomain()
	}
	return books, nil
}

// GetByID returns a single book with its reader name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	got, err := r.one(ctx, joinedSelect().Where(sq.Eq{"b.id": id}))
	if err != nil {
		return nil, domain.NewQueryError(entity, "get", postgres.MapError(err, entity, id))
	}
	return got, nil
}

// Create inserts a book and returns it with the assigned id, timestamps and
// reader name. An unknown reader yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, in domain.Book) (*domain.Book, error) {
	ins := postgres.Builder().Insert("books").
		Columns(
			"title", "author", "reader_id", "review", "rating", "read_date",
			"presentation", "tags", "genre", "purchase_link", "one_liner", "motivation",
			"memorable_quotes", "emotion", "emotion_score",
		).
		Values(
			in.Title, in.Author, in.ReaderID, in.Review, in.Rating, domain.DateOf(in.ReadDate),
			in.Presentation, nonNil(in.Tags), in.Genre, in.PurchaseLink, in.OneLiner, in.Motivation,
			nonNil(in.MemorableQuotes), emotionValue(in.Emotion), in.EmotionScore,
		).
		Suffix("RETURNING *")

	got, err := r.returning(ctx, ins)
	if err != nil {
		return nil, domain.NewWriteError(entity, "create", uuid.Nil, postgres.MapError(err, entity, uuid.Nil))
	}
	return got, nil
}

// Update applies the present fields of p and touches updated_at.
// An empty p only touches updated_at. Unknown ids yield domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.BookUpdateParams) (*domain.Book, error) {
	upd := postgres.Builder().Update("books").
		SetMap(updateMap(p)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING *")

	got, err := r.returning(ctx, upd)
	if err != nil {
		return nil, domain.NewWriteError(entity, "update", id, postgres.MapError(err, entity, id))
	}
	return got, nil
}

// Delete removes a book. Unknown ids yield domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	b := postgres.Builder().Delete("books").Where(sq.Eq{"id": id})

	tag, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return domain.NewWriteError(entity, "delete", id, postgres.MapDeleteError(err, entity, id))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewWriteError(entity, "delete", id, postgres.MapError(pgx.ErrNoRows, entity, id))
	}
	return nil
}

// returning runs a data-modifying statement ending in RETURNING * inside a
// CTE and joins the result with readers.
func (r *Repo) returning(ctx context.Context, stmt postgres.Sqlizer) (*domain.Book, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	cols := make([]string, 0, len(bookColumns)+1)
	for _, c := range bookColumns {
		cols = append(cols, "m."+c)
	}
	cols = append(cols, "r.name AS reader_name")

	query := "WITH m AS (" + sql + ") SELECT " + strings.Join(cols, ", ") +
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

func (r *Repo) one(ctx context.Context, b postgres.Sqlizer) (*domain.Book, error) {
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

func updateMap(p domain.BookUpdateParams) map[string]any {
	m := make(map[string]any)
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Author != nil {
		m["author"] = *p.Author
	}
	if p.Review != nil {
		m["review"] = *p.Review
	}
	if p.Rating != nil {
		m["rating"] = *p.Rating
	}
	if p.ReadDate != nil {
		m["read_date"] = domain.DateOf(*p.ReadDate)
	}
	setText(m, "presentation", p.Presentation)
	setText(m, "genre", p.Genre)
	setText(m, "purchase_link", p.PurchaseLink)
	setText(m, "one_liner", p.OneLiner)
	setText(m, "motivation", p.Motivation)
	if p.Tags != nil {
		m["tags"] = nonNil(*p.Tags)
	}
	if p.MemorableQuotes != nil {
		m["memorable_quotes"] = nonNil(*p.MemorableQuotes)
	}
	if p.Emotion != nil {
		m["emotion"] = emotionValue(p.Emotion)
	}
	if p.EmotionScore != nil {
		if *p.EmotionScore == 0 {
			m["emotion_score"] = nil
		} else {
			m["emotion_score"] = *p.EmotionScore
		}
	}
	return m
}

// setText maps "" to NULL so optional text can be cleared.
func setText(m map[string]any, col string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		m[col] = nil
		return
	}
	m[col] = *v
}

func emotionValue(e *domain.Emotion) any {
	if e == nil || *e == "" {
		return nil
	}
	return string(*e)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
