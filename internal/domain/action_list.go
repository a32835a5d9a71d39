package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActionList is a follow-up action a reader commits to after a book.
// BookTitle is free text copied at creation time, not a reference.
type ActionList struct {
	ID           uuid.UUID
	Title        string
	ReaderID     uuid.UUID
	ReaderName   string
	BookTitle    string
	Content      string
	TargetMonths []string
	ActionTime   *string
	Status       ActionStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActionListUpdateParams is a partial update. Nil fields are left untouched;
// ActionTime ptr("") clears the hint.
type ActionListUpdateParams struct {
	Title        *string
	BookTitle    *string
	Content      *string
	TargetMonths *[]string
	ActionTime   *string
	Status       *ActionStatus
}

// IsEmpty reports whether no field is set.
func (p ActionListUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.BookTitle == nil && p.Content == nil &&
		p.TargetMonths == nil && p.ActionTime == nil && p.Status == nil
}

// ActionListStats summarizes action items by status.
type ActionListStats struct {
	Total      int
	Done       int
	NotStarted int
	InProgress int
	OnHold     int
}
