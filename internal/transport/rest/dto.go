package rest

import (
	"time"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

type bookResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	ReaderID        string   `json:"readerId"`
	ReaderName      string   `json:"readerName"`
	Review          string   `json:"review"`
	Rating          int      `json:"rating"`
	ReadDate        string   `json:"readDate"`
	Presentation    *string  `json:"presentation,omitempty"`
	Tags            []string `json:"tags"`
	Genre           *string  `json:"genre,omitempty"`
	PurchaseLink    *string  `json:"purchaseLink,omitempty"`
	OneLiner        *string  `json:"oneLiner,omitempty"`
	Motivation      *string  `json:"motivation,omitempty"`
	MemorableQuotes []string `json:"memorableQuotes"`
	Emotion         *string  `json:"emotion,omitempty"`
	EmotionScore    *int     `json:"emotionScore,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

type readerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

type actionListResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ReaderID     string   `json:"readerId"`
	ReaderName   string   `json:"readerName"`
	BookTitle    string   `json:"bookTitle"`
	Content      string   `json:"content"`
	TargetMonths []string `json:"targetMonths"`
	ActionTime   *string  `json:"actionTime,omitempty"`
	Status       string   `json:"status"`
	Quarter      string   `json:"quarter,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toBookResponse(b domain.Book) bookResponse {
	resp := bookResponse{
		ID:              b.ID.String(),
		Title:           b.Title,
		Author:          b.Author,
		ReaderID:        b.ReaderID.String(),
		ReaderName:      b.ReaderName,
		Review:          b.Review,
		Rating:          b.Rating,
		ReadDate:        domain.FormatDate(b.ReadDate),
		Presentation:    b.Presentation,
		Tags:            nonNil(b.Tags),
		Genre:           b.Genre,
		PurchaseLink:    b.PurchaseLink,
		OneLiner:        b.OneLiner,
		Motivation:      b.Motivation,
		MemorableQuotes: nonNil(b.MemorableQuotes),
		EmotionScore:    b.EmotionScore,
		CreatedAt:       timestamp(b.CreatedAt),
		UpdatedAt:       timestamp(b.UpdatedAt),
	}
	if b.Emotion != nil {
		e := b.Emotion.String()
		resp.Emotion = &e
	}
	return resp
}

func toBookResponses(books []domain.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

func toReaderResponse(r domain.Reader) readerResponse {
	return readerResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Email:     r.Email,
		Bio:       r.Bio,
		CreatedAt: timestamp(r.CreatedAt),
	}
}

func toActionListResponse(a domain.ActionList) actionListResponse {
	return actionListResponse{
		ID:           a.ID.String(),
		Title:        a.Title,
		ReaderID:     a.ReaderID.String(),
		ReaderName:   a.ReaderName,
		BookTitle:    a.BookTitle,
		Content:      a.Content,
		TargetMonths: nonNil(a.TargetMonths),
		ActionTime:   a.ActionTime,
		Status:       a.Status.String(),
		CreatedAt:    timestamp(a.CreatedAt),
		UpdatedAt:    timestamp(a.UpdatedAt),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
