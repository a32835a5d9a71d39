// Package ctxutil carries request-scoped values: the signed-in member and
// the request id.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userKey      ctxKey = "user"
	requestIDKey ctxKey = "request_id"
)

// User is the signed-in member of a request.
type User struct {
	ID    uuid.UUID
	Email string
}

// WithUser stores the signed-in member in the context.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromCtx extracts the signed-in member from the context.
// Returns false if the value is missing, has a nil ID, or has the wrong type.
func UserFromCtx(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	if !ok || u.ID == uuid.Nil {
		return User{}, false
	}
	return u, true
}

// UserIDFromCtx extracts the signed-in member's ID from the context.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	u, ok := UserFromCtx(ctx)
	return u.ID, ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
