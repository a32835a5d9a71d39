package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format of calendar dates (read dates).
const DateLayout = "2006-01-02"

// Book is one reader's review of a book they finished.
// ReaderName is filled from the readers join on every read and is never stored.
type Book struct {
	ID              uuid.UUID
	Title           string
	Author          string
	ReaderID        uuid.UUID
	ReaderName      string
	Review          string
	Rating          int
	ReadDate        time.Time
	Presentation    *string
	Tags            []string
	Genre           *string
	PurchaseLink    *string
	OneLiner        *string
	Motivation      *string
	MemorableQuotes []string
	Emotion         *Emotion
	EmotionScore    *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookUpdateParams is a partial update. Nil fields are left untouched.
// For optional text fields ptr("") clears the value; an empty non-nil slice
// clears a list; EmotionScore ptr(0) clears the override.
type BookUpdateParams struct {
	Title           *string
	Author          *string
	Review          *string
	Rating          *int
	ReadDate        *time.Time
	Presentation    *string
	Tags            *[]string
	Genre           *string
	PurchaseLink    *string
	OneLiner        *string
	Motivation      *string
	MemorableQuotes *[]string
	Emotion         *Emotion
	EmotionScore    *int
}

// IsEmpty reports whether no field is set.
func (p BookUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Review == nil && p.Rating == nil &&
		p.ReadDate == nil && p.Presentation == nil && p.Tags == nil && p.Genre == nil &&
		p.PurchaseLink == nil && p.OneLiner == nil && p.Motivation == nil &&
		p.MemorableQuotes == nil && p.Emotion == nil && p.EmotionScore == nil
}

// Apply returns a copy of b with the present fields of p applied.
// Used by in-memory stores and the sample dataset; the SQL drivers
// apply the same rules server-side.
func (p BookUpdateParams) Apply(b Book) Book {
	out := b
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Author != nil {
		out.Author = *p.Author
	}
	if p.Review != nil {
		out.Review = *p.Review
	}
	if p.Rating != nil {
		out.Rating = *p.Rating
	}
	if p.ReadDate != nil {
		out.ReadDate = DateOf(*p.ReadDate)
	}
	out.Presentation = applyText(out.Presentation, p.Presentation)
	out.Genre = applyText(out.Genre, p.Genre)
	out.PurchaseLink = applyText(out.PurchaseLink, p.PurchaseLink)
	out.OneLiner = applyText(out.OneLiner, p.OneLiner)
	out.Motivation = applyText(out.Motivation, p.Motivation)
	if p.Tags != nil {
		out.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.MemorableQuotes != nil {
		out.MemorableQuotes = append([]string{}, (*p.MemorableQuotes)...)
	}
	if p.Emotion != nil {
		if *p.Emotion == "" {
			out.Emotion = nil
		} else {
			e := *p.Emotion
			out.Emotion = &e
		}
	}
	if p.EmotionScore != nil {
		if *p.EmotionScore == 0 {
			out.EmotionScore = nil
		} else {
			s := *p.EmotionScore
			out.EmotionScore = &s
		}
	}
	return out
}

func applyText(cur, next *string) *string {
	if next == nil {
		return cur
	}
	if *next == "" {
		return nil
	}
	v := *next
	return &v
}

// DateOf strips the time component, keeping the calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
