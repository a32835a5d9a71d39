package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/bookclub-backend/internal/adapter/persona"
	"github.com/heartmarshall/bookclub-backend/internal/auth"
	"github.com/heartmarshall/bookclub-backend/internal/club"
	"github.com/heartmarshall/bookclub-backend/internal/config"
	"github.com/heartmarshall/bookclub-backend/internal/service/actionlist"
	"github.com/heartmarshall/bookclub-backend/internal/service/book"
	personasvc "github.com/heartmarshall/bookclub-backend/internal/service/persona"
	"github.com/heartmarshall/bookclub-backend/internal/service/reader"
	"github.com/heartmarshall/bookclub-backend/internal/transport/middleware"
	"github.com/heartmarshall/bookclub-backend/internal/transport/rest"
)

const (
	initialLoadTimeout = 30 * time.Second
	limiterCleanup     = time.Minute
)

// Run is the application entry point. It loads configuration, connects the
// store, loads the club snapshot and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("auth_enabled", cfg.Auth.Enabled()),
	)

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	chat := persona.NewClient(cfg.Persona.BaseURL, cfg.Persona.Timeout, cfg.Persona.SearchK)
	defer chat.Close() //nolint:errcheck

	srv := newServer(cfg, logger, st, chat)
	defer srv.stop()

	loadCtx, cancel := context.WithTimeout(ctx, initialLoadTimeout)
	if err := srv.session.Load(loadCtx); err != nil {
		logger.Warn("initial load incomplete", slog.String("error", err.Error()))
	}
	cancel()

	return serve(ctx, cfg.Server, logger, srv.handler)
}

// server holds the wired application graph.
type server struct {
	session *club.Session
	handler http.Handler
	stop    func()
}

// newServer wires services, the club session and the HTTP router.
func newServer(cfg *config.Config, logger *slog.Logger, st *store, chat *persona.Client) *server {
	books := book.NewService(logger, st.books)
	readers := reader.NewService(logger, st.readers)
	actions := actionlist.NewService(logger, st.actions, st.books)
	session := club.NewSession(logger, books, readers, actions)
	personaService := personasvc.NewService(logger, chat)

	limiter := middleware.NewRateLimiter(cfg.Persona.ChatPerMinute, limiterCleanup)

	opts := rest.RouterOptions{
		Logger:      logger,
		CORS:        cfg.CORS,
		ChatLimiter: limiter,
	}
	if cfg.Auth.Enabled() {
		opts.Auth = middleware.Auth(auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer))
	}

	handler := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(rest.PingFunc(st.ping), st.driver, BuildVersion()),
		Books:       rest.NewBookHandler(session, logger),
		Readers:     rest.NewReaderHandler(session, logger),
		ActionLists: rest.NewActionListHandler(session, logger),
		Views:       rest.NewViewHandler(session, logger),
		Persona:     rest.NewPersonaHandler(personaService, session, logger),
	}, opts)

	return &server{session: session, handler: handler, stop: limiter.Stop}
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg config.ServerConfig, logger *slog.Logger, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
