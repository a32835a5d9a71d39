package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedReader inserts a reader with a unique name and returns it.
func SeedReader(t *testing.T, pool *pgxpool.Pool) domain.Reader {
	t.Helper()

	reader := domain.Reader{
		ID:        uuid.New(),
		Name:      "Reader " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO readers (id, name, created_at) VALUES ($1, $2, $3)`,
		reader.ID, reader.Name, reader.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReader: %v", err)
	}

	return reader
}

// SeedBook inserts a minimal book owned by reader and returns it with the
// reader name filled in.
func SeedBook(t *testing.T, pool *pgxpool.Pool, reader domain.Reader) domain.Book {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	book := domain.Book{
		ID:         uuid.New(),
		Title:      "Book " + uniqueSuffix(),
		Author:     "Author",
		ReaderID:   reader.ID,
		ReaderName: reader.Name,
		Review:     "review",
		Rating:     3,
		ReadDate:   domain.DateOf(now),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO books (id, title, author, reader_id, review, rating, read_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		book.ID, book.Title, book.Author, book.ReaderID, book.Review, book.Rating, book.ReadDate, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}

	return book
}

// SeedActionList inserts a NOT_STARTED action list owned by reader.
func SeedActionList(t *testing.T, pool *pgxpool.Pool, reader domain.Reader) domain.ActionList {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	action := domain.ActionList{
		ID:           uuid.New(),
		Title:        "Action " + uniqueSuffix(),
		ReaderID:     reader.ID,
		ReaderName:   reader.Name,
		BookTitle:    "Some book",
		Content:      "do the thing",
		TargetMonths: []string{"3월"},
		Status:       domain.ActionStatusNotStarted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO action_lists (id, title, reader_id, book_title, content, target_months, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		action.ID, action.Title, action.ReaderID, action.BookTitle, action.Content, action.TargetMonths,
		string(action.Status), action.CreatedAt, action.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActionList: %v", err)
	}

	return action
}
