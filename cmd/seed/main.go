// Command seed inserts the built-in demo readers and reviews into the
// PostgreSQL store. Readers that already exist by name are reused.
//
// Flags:
//
//	--force    insert the reviews even when the books table is not empty
//	--dry-run  report what would be inserted without writing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/adapter/postgres"
	pgbook "github.com/heartmarshall/bookclub-backend/internal/adapter/postgres/book"
	pgreader "github.com/heartmarshall/bookclub-backend/internal/adapter/postgres/reader"
	"github.com/heartmarshall/bookclub-backend/internal/app"
	"github.com/heartmarshall/bookclub-backend/internal/config"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

func main() {
	forceFlag := flag.Bool("force", false, "insert reviews even when books already exist")
	dryRunFlag := flag.Bool("dry-run", false, "report without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	if cfg.Database.DSN == "" {
		logger.Error("database.dsn is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	readers := pgreader.New(pool)
	books := pgbook.New(pool)

	existing, err := books.List(ctx)
	if err != nil {
		logger.Error("list books", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(existing) > 0 && !*forceFlag {
		logger.Info("books already present, nothing to do", slog.Int("books", len(existing)))
		return
	}

	if *dryRunFlag {
		logger.Info("dry run",
			slog.Int("readers", len(domain.SampleReaders())),
			slog.Int("books", len(domain.SampleBooks())),
		)
		return
	}

	start := time.Now()
	var inserted int
	err = postgres.NewTxManager(pool).RunInTx(ctx, func(ctx context.Context) error {
		ids, err := seedReaders(ctx, readers)
		if err != nil {
			return err
		}
		inserted, err = seedBooks(ctx, books, ids)
		return err
	})
	if err != nil {
		logger.Error("seed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed complete",
		slog.Int("books", inserted),
		slog.Duration("duration", time.Since(start)),
	)
}

// seedReaders returns the stored id of every sample reader keyed by its
// built-in id.
func seedReaders(ctx context.Context, repo *pgreader.Repo) (map[uuid.UUID]uuid.UUID, error) {
	ids := make(map[uuid.UUID]uuid.UUID)
	for _, r := range domain.SampleReaders() {
		found, err := repo.FindByName(ctx, r.Name)
		switch {
		case err == nil:
			ids[r.ID] = found.ID
			continue
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("find reader %q: %w", r.Name, err)
		}

		created, err := repo.Create(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("create reader %q: %w", r.Name, err)
		}
		ids[r.ID] = created.ID
	}
	return ids, nil
}

func seedBooks(ctx context.Context, repo *pgbook.Repo, readerIDs map[uuid.UUID]uuid.UUID) (int, error) {
	samples := domain.SampleBooks()
	for _, b := range samples {
		id, ok := readerIDs[b.ReaderID]
		if !ok {
			return 0, fmt.Errorf("book %q: unknown sample reader %s", b.Title, b.ReaderID)
		}
		b.ReaderID = id
		if _, err := repo.Create(ctx, b); err != nil {
			return 0, fmt.Errorf("create book %q: %w", b.Title, err)
		}
	}
	return len(samples), nil
}
