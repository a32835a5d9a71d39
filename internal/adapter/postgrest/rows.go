package postgrest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// date is a DATE column, serialized as YYYY-MM-DD.
type date time.Time

func (d date) MarshalJSON() ([]byte, error) {
	return json.Marshal(domain.FormatDate(time.Time(d)))
}

func (d *date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	*d = date(t)
	return nil
}

type embeddedReader struct {
	Name string `json:"name"`
}

type readerRow struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

func (r readerRow) toDomain() domain.Reader {
	return domain.Reader{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Bio:       r.Bio,
		CreatedAt: r.CreatedAt,
	}
}

type readerInsert struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Bio   *string `json:"bio"`
}

type bookRow struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	ReaderID        uuid.UUID       `json:"reader_id"`
	Review          string          `json:"review"`
	Rating          int             `json:"rating"`
	ReadDate        date            `json:"read_date"`
	Presentation    *string         `json:"presentation"`
	Tags            []string        `json:"tags"`
	Genre           *string         `json:"genre"`
	PurchaseLink    *string         `json:"purchase_link"`
	OneLiner        *string         `json:"one_liner"`
	Motivation      *string         `json:"motivation"`
	MemorableQuotes []string        `json:"memorable_quotes"`
	Emotion         *domain.Emotion `json:"emotion"`
	EmotionScore    *int            `json:"emotion_score"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Readers         *embeddedReader `json:"readers"`
}

func (r bookRow) toDomain() domain.Book {
	b := domain.Book{
		ID:              r.ID,
		Title:           r.Title,
		Author:          r.Author,
		ReaderID:        r.ReaderID,
		Review:          r.Review,
		Rating:          r.Rating,
		ReadDate:        time.Time(r.ReadDate),
		Presentation:    r.Presentation,
		Tags:            r.Tags,
		Genre:           r.Genre,
		PurchaseLink:    r.PurchaseLink,
		OneLiner:        r.OneLiner,
		Motivation:      r.Motivation,
		MemorableQuotes: r.MemorableQuotes,
		Emotion:         r.Emotion,
		EmotionScore:    r.EmotionScore,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Readers != nil {
		b.ReaderName = r.Readers.Name
	}
	return b
}

type bookInsert struct {
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	ReaderID        uuid.UUID       `json:"reader_id"`
	Review          string          `json:"review"`
	Rating          int             `json:"rating"`
	ReadDate        date            `json:"read_date"`
	Presentation    *string         `json:"presentation"`
	Tags            []string        `json:"tags"`
	Genre           *string         `json:"genre"`
	PurchaseLink    *string         `json:"purchase_link"`
	OneLiner        *string         `json:"one_liner"`
	Motivation      *string         `json:"motivation"`
	MemorableQuotes []string        `json:"memorable_quotes"`
	Emotion         *domain.Emotion `json:"emotion"`
	EmotionScore    *int            `json:"emotion_score"`
}

func newBookInsert(b domain.Book) bookInsert {
	return bookInsert{
		Title:           b.Title,
		Author:          b.Author,
		ReaderID:        b.ReaderID,
		Review:          b.Review,
		Rating:          b.Rating,
		ReadDate:        date(domain.DateOf(b.ReadDate)),
		Presentation:    b.Presentation,
		Tags:            nonNil(b.Tags),
		Genre:           b.Genre,
		PurchaseLink:    b.PurchaseLink,
		OneLiner:        b.OneLiner,
		Motivation:      b.Motivation,
		MemorableQuotes: nonNil(b.MemorableQuotes),
		Emotion:         b.Emotion,
		EmotionScore:    b.EmotionScore,
	}
}

// bookPatch renders only the present fields. Cleared optional values become null.
func bookPatch(p domain.BookUpdateParams, now time.Time) map[string]any {
	m := map[string]any{"updated_at": now}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Author != nil {
		m["author"] = *p.Author
	}
	if p.Review != nil {
		m["review"] = *p.Review
	}
	if p.Rating != nil {
		m["rating"] = *p.Rating
	}
	if p.ReadDate != nil {
		m["read_date"] = domain.FormatDate(*p.ReadDate)
	}
	patchText(m, "presentation", p.Presentation)
	patchText(m, "genre", p.Genre)
	patchText(m, "purchase_link", p.PurchaseLink)
	patchText(m, "one_liner", p.OneLiner)
	patchText(m, "motivation", p.Motivation)
	if p.Tags != nil {
		m["tags"] = nonNil(*p.Tags)
	}
	if p.MemorableQuotes != nil {
		m["memorable_quotes"] = nonNil(*p.MemorableQuotes)
	}
	if p.Emotion != nil {
		if *p.Emotion == "" {
			m["emotion"] = nil
		} else {
			m["emotion"] = string(*p.Emotion)
		}
	}
	if p.EmotionScore != nil {
		if *p.EmotionScore == 0 {
			m["emotion_score"] = nil
		} else {
			m["emotion_score"] = *p.EmotionScore
		}
	}
	return m
}

type actionListRow struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	ReaderID     uuid.UUID       `json:"reader_id"`
	BookTitle    string          `json:"book_title"`
	Content      string          `json:"content"`
	TargetMonths []string        `json:"target_months"`
	ActionTime   *string         `json:"action_time"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Readers      *embeddedReader `json:"readers"`
}

func (r actionListRow) toDomain() domain.ActionList {
	a := domain.ActionList{
		ID:           r.ID,
		Title:        r.Title,
		ReaderID:     r.ReaderID,
		BookTitle:    r.BookTitle,
		Content:      r.Content,
		TargetMonths: r.TargetMonths,
		ActionTime:   r.ActionTime,
		Status:       domain.ParseStoredActionStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Readers != nil {
		a.ReaderName = r.Readers.Name
	}
	return a
}

type actionListInsert struct {
	Title        string    `json:"title"`
	ReaderID     uuid.UUID `json:"reader_id"`
	BookTitle    string    `json:"book_title"`
	Content      string    `json:"content"`
	TargetMonths []string  `json:"target_months"`
	ActionTime   *string   `json:"action_time"`
	Status       string    `json:"status"`
}

func newActionListInsert(a domain.ActionList) actionListInsert {
	status := a.Status
	if status == "" {
		status = domain.ActionStatusNotStarted
	}
	return actionListInsert{
		Title:        a.Title,
		ReaderID:     a.ReaderID,
		BookTitle:    a.BookTitle,
		Content:      a.Content,
		TargetMonths: nonNil(a.TargetMonths),
		ActionTime:   a.ActionTime,
		Status:       string(status),
	}
}

func actionListPatch(p domain.ActionListUpdateParams, now time.Time) map[string]any {
	m := map[string]any{"updated_at": now}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.BookTitle != nil {
		m["book_title"] = *p.BookTitle
	}
	if p.Content != nil {
		m["content"] = *p.Content
	}
	if p.TargetMonths != nil {
		m["target_months"] = nonNil(*p.TargetMonths)
	}
	patchText(m, "action_time", p.ActionTime)
	if p.Status != nil {
		m["status"] = string(*p.Status)
	}
	return m
}

func patchText(m map[string]any, key string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		m[key] = nil
		return
	}
	m[key] = *v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
