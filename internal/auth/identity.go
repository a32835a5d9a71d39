package auth

import "github.com/google/uuid"

// Identity is the signed-in member described by a provider access token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}
