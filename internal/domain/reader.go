package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reader is a club member who writes reviews. Names are not unique.
type Reader struct {
	ID        uuid.UUID
	Name      string
	Email     *string
	Bio       *string
	CreatedAt time.Time
}
