package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/bookclub-backend/internal/auth"
	"github.com/heartmarshall/bookclub-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// Auth resolves a bearer token into the signed-in member. Requests without
// a token pass through anonymously; an invalid token is rejected.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if sw, ok := w.(*statusWriter); ok {
				sw.userID = id.UserID.String()
			}
			ctx := ctxutil.WithUser(r.Context(), ctxutil.User{ID: id.UserID, Email: id.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests when enabled. With auth disabled
// every request is let through.
func RequireAuth(enabled bool) Middleware {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "login required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
