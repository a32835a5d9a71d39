package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/adapter/postgres"
	pgactionlist "github.com/heartmarshall/bookclub-backend/internal/adapter/postgres/actionlist"
	pgbook "github.com/heartmarshall/bookclub-backend/internal/adapter/postgres/book"
	pgreader "github.com/heartmarshall/bookclub-backend/internal/adapter/postgres/reader"
	"github.com/heartmarshall/bookclub-backend/internal/adapter/postgrest"
	"github.com/heartmarshall/bookclub-backend/internal/adapter/unavailable"
	"github.com/heartmarshall/bookclub-backend/internal/config"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// driverNone labels the unavailable store in logs and health reports.
const driverNone = "none"

type bookStore interface {
	List(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	Create(ctx context.Context, b domain.Book) (*domain.Book, error)
	Update(ctx context.Context, id uuid.UUID, p domain.BookUpdateParams) (*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type readerStore interface {
	List(ctx context.Context) ([]domain.Reader, error)
	FindByName(ctx context.Context, name string) (*domain.Reader, error)
	Create(ctx context.Context, r domain.Reader) (*domain.Reader, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountReferences(ctx context.Context, id uuid.UUID) (int, error)
}

type actionListStore interface {
	List(ctx context.Context) ([]domain.ActionList, error)
	Create(ctx context.Context, a domain.ActionList) (*domain.ActionList, error)
	Update(ctx context.Context, id uuid.UUID, p domain.ActionListUpdateParams) (*domain.ActionList, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// store bundles the repositories of one persistence driver.
type store struct {
	driver  string
	books   bookStore
	readers readerStore
	actions actionListStore
	ping    func(ctx context.Context) error
	close   func()
}

// openStore connects the driver selected by cfg. A missing configuration is
// not an error: the returned store then fails every call with
// domain.ErrStoreUnavailable.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store, error) {
	switch driver := cfg.ResolvedDriver(); driver {
	case config.DriverPostgres:
		if cfg.Database.DSN == "" {
			return unavailableStore(log, "database.dsn is not set"), nil
		}
		return openPostgres(ctx, cfg.Database, log)
	case config.DriverPostgREST:
		if !cfg.Supabase.Configured() {
			return unavailableStore(log, "SUPABASE_URL and SUPABASE_ANON_KEY are not set"), nil
		}
		return openPostgREST(ctx, cfg, log), nil
	default:
		return unavailableStore(log, "no store is configured"), nil
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	log.Info("store connected", slog.String("driver", config.DriverPostgres))
	return &store{
		driver:  config.DriverPostgres,
		books:   pgbook.New(pool),
		readers: pgreader.New(pool),
		actions: pgactionlist.New(pool),
		ping:    pool.Ping,
		close:   pool.Close,
	}, nil
}

func openPostgREST(ctx context.Context, cfg *config.Config, log *slog.Logger) *store {
	client := postgrest.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Store.RequestTimeout)

	if err := client.Ping(ctx); err != nil {
		log.Warn("store not reachable at startup",
			slog.String("driver", config.DriverPostgREST),
			slog.String("error", err.Error()),
		)
	} else {
		log.Info("store connected", slog.String("driver", config.DriverPostgREST))
	}

	return &store{
		driver:  config.DriverPostgREST,
		books:   postgrest.NewBookRepo(client),
		readers: postgrest.NewReaderRepo(client),
		actions: postgrest.NewActionListRepo(client),
		ping:    client.Ping,
		close:   func() { _ = client.Close() },
	}
}

func unavailableStore(log *slog.Logger, reason string) *store {
	log.Warn("store unavailable, running without persistence", slog.String("reason", reason))
	return &store{
		driver:  driverNone,
		books:   unavailable.Books{Reason: reason},
		readers: unavailable.Readers{Reason: reason},
		actions: unavailable.ActionLists{Reason: reason},
		ping:    unavailable.Ping(reason),
		close:   func() {},
	}
}
