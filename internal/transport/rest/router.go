package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heartmarshall/bookclub-backend/internal/config"
	"github.com/heartmarshall/bookclub-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Books       *BookHandler
	Readers     *ReaderHandler
	ActionLists *ActionListHandler
	Views       *ViewHandler
	Persona     *PersonaHandler
}

// RouterOptions configures the middleware stack.
type RouterOptions struct {
	Logger *slog.Logger
	CORS   config.CORSConfig
	// Auth resolves bearer tokens. When nil, authentication is disabled and
	// write routes are open.
	Auth middleware.Middleware
	// ChatLimiter throttles the persona chat routes. Optional.
	ChatLimiter *middleware.RateLimiter
}

// NewRouter builds the HTTP routing tree.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		middleware.Recovery(opts.Logger),
		middleware.CORS(opts.CORS),
	))

	r.Get("/health", h.Health.Health)
	r.Get("/ready", h.Health.Ready)
	r.Get("/live", h.Health.Live)

	requireAuth := middleware.RequireAuth(opts.Auth != nil)

	r.Route("/api/v1", func(r chi.Router) {
		if opts.Auth != nil {
			r.Use(opts.Auth)
		}

		r.Route("/books", func(r chi.Router) {
			r.Get("/", h.Books.List)
			r.Get("/{id}", h.Books.Get)
			r.With(requireAuth).Post("/", h.Books.Create)
			r.With(requireAuth).Patch("/{id}", h.Books.Update)
			r.With(requireAuth).Delete("/{id}", h.Books.Delete)
			r.With(requireAuth).Post("/{id}/action-lists", h.ActionLists.CreateFromBook)
		})

		r.Route("/readers", func(r chi.Router) {
			r.Get("/", h.Readers.List)
			r.With(requireAuth).Post("/", h.Readers.Create)
			r.With(requireAuth).Post("/resolve", h.Readers.Resolve)
			r.With(requireAuth).Delete("/{id}", h.Readers.Delete)
		})

		r.Route("/action-lists", func(r chi.Router) {
			r.Get("/", h.ActionLists.List)
			r.With(requireAuth).Post("/", h.ActionLists.Create)
			r.With(requireAuth).Patch("/{id}", h.ActionLists.Update)
			r.With(requireAuth).Delete("/{id}", h.ActionLists.Delete)
		})

		r.Get("/dashboard", h.Views.Dashboard)
		r.Get("/meeting", h.Views.Meeting)
		r.With(requireAuth).Post("/reload", h.Views.Reload)

		r.Route("/persona", func(r chi.Router) {
			r.Get("/authors", h.Persona.Authors)
			r.Group(func(r chi.Router) {
				if opts.ChatLimiter != nil {
					r.Use(opts.ChatLimiter.Limit())
				}
				r.Post("/sessions", h.Persona.StartSession)
				r.Post("/sessions/{id}/chat", h.Persona.Chat)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
