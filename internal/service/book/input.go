package book

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/validation"
)

// CreateInput holds the parameters for logging a new review.
type CreateInput struct {
	Title           string          `json:"title"           validate:"notblank,max=200"`
	Author          string          `json:"author"          validate:"notblank,max=200"`
	ReaderID        uuid.UUID       `json:"readerId"`
	Review          string          `json:"review"          validate:"notblank,max=10000"`
	Rating          int             `json:"rating"          validate:"min=1,max=5"`
	ReadDate        time.Time       `json:"readDate"`
	Presentation    *string         `json:"presentation"    validate:"omitempty,max=10000"`
	Tags            []string        `json:"tags"            validate:"max=20,dive,max=50"`
	Genre           *string         `json:"genre"           validate:"omitempty,max=50"`
	PurchaseLink    *string         `json:"purchaseLink"    validate:"omitempty,url"`
	OneLiner        *string         `json:"oneLiner"        validate:"omitempty,max=200"`
	Motivation      *string         `json:"motivation"      validate:"omitempty,max=2000"`
	MemorableQuotes []string        `json:"memorableQuotes" validate:"max=50,dive,max=1000"`
	Emotion         *domain.Emotion `json:"emotion"         validate:"omitempty,emotion"`
	EmotionScore    *int            `json:"emotionScore"    validate:"omitempty,min=1,max=10"`
}

// normalize trims text, drops blank optional values and blank list items.
func (i CreateInput) normalize() CreateInput {
	out := i
	out.Title = strings.TrimSpace(i.Title)
	out.Author = strings.TrimSpace(i.Author)
	out.Review = strings.TrimSpace(i.Review)
	out.Presentation = trimOrNil(i.Presentation)
	out.Genre = trimOrNil(i.Genre)
	out.PurchaseLink = trimOrNil(i.PurchaseLink)
	out.OneLiner = trimOrNil(i.OneLiner)
	out.Motivation = trimOrNil(i.Motivation)
	out.Tags = cleanList(i.Tags)
	out.MemorableQuotes = cleanList(i.MemorableQuotes)
	if i.Emotion != nil && *i.Emotion == "" {
		out.Emotion = nil
	}
	return out
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	errs, err := validation.Collect(nil, validate.Validate(i))
	if err != nil {
		return err
	}
	if i.ReaderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "readerId", Message: "is required"})
	}
	if i.ReadDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "readDate", Message: "is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial update of a review. Nil fields are left
// untouched; for optional text ptr("") clears the value.
type UpdateInput struct {
	ID              uuid.UUID       `json:"-"`
	Title           *string         `json:"title"           validate:"omitempty,notblank,max=200"`
	Author          *string         `json:"author"          validate:"omitempty,notblank,max=200"`
	Review          *string         `json:"review"          validate:"omitempty,notblank,max=10000"`
	Rating          *int            `json:"rating"          validate:"omitempty,min=1,max=5"`
	ReadDate        *time.Time      `json:"readDate"`
	Presentation    *string         `json:"presentation"    validate:"omitempty,max=10000"`
	Tags            *[]string       `json:"tags"`
	Genre           *string         `json:"genre"           validate:"omitempty,max=50"`
	PurchaseLink    *string         `json:"purchaseLink"`
	OneLiner        *string         `json:"oneLiner"        validate:"omitempty,max=200"`
	Motivation      *string         `json:"motivation"      validate:"omitempty,max=2000"`
	MemorableQuotes *[]string       `json:"memorableQuotes"`
	Emotion         *domain.Emotion `json:"emotion"`
	EmotionScore    *int            `json:"emotionScore"    validate:"omitempty,min=0,max=10"`
}

func (i UpdateInput) normalize() UpdateInput {
	out := i
	out.Title = trimPtr(i.Title)
	out.Author = trimPtr(i.Author)
	out.Review = trimPtr(i.Review)
	out.Presentation = trimPtr(i.Presentation)
	out.Genre = trimPtr(i.Genre)
	out.PurchaseLink = trimPtr(i.PurchaseLink)
	out.OneLiner = trimPtr(i.OneLiner)
	out.Motivation = trimPtr(i.Motivation)
	if i.Tags != nil {
		tags := cleanList(*i.Tags)
		out.Tags = &tags
	}
	if i.MemorableQuotes != nil {
		quotes := cleanList(*i.MemorableQuotes)
		out.MemorableQuotes = &quotes
	}
	return out
}

func (i UpdateInput) params() domain.BookUpdateParams {
	p := domain.BookUpdateParams{
		Title:           i.Title,
		Author:          i.Author,
		Review:          i.Review,
		Rating:          i.Rating,
		Presentation:    i.Presentation,
		Tags:            i.Tags,
		Genre:           i.Genre,
		PurchaseLink:    i.PurchaseLink,
		OneLiner:        i.OneLiner,
		Motivation:      i.Motivation,
		MemorableQuotes: i.MemorableQuotes,
		Emotion:         i.Emotion,
		EmotionScore:    i.EmotionScore,
	}
	if i.ReadDate != nil {
		d := domain.DateOf(*i.ReadDate)
		p.ReadDate = &d
	}
	return p
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	errs, err := validation.Collect(nil, validate.Validate(i))
	if err != nil {
		return err
	}
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "is required"})
	}
	if i.params().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.ReadDate != nil && i.ReadDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "readDate", Message: "is required"})
	}

	if i.Tags != nil {
		errs, err = validation.Collect(errs, validate.Var("tags", *i.Tags, "max=20,dive,max=50"))
	}
	if err == nil && i.MemorableQuotes != nil {
		errs, err = validation.Collect(errs, validate.Var("memorableQuotes", *i.MemorableQuotes, "max=50,dive,max=1000"))
	}
	if err == nil && i.PurchaseLink != nil && *i.PurchaseLink != "" {
		errs, err = validation.Collect(errs, validate.Var("purchaseLink", *i.PurchaseLink, "url"))
	}
	if err == nil && i.Emotion != nil && *i.Emotion != "" {
		errs, err = validation.Collect(errs, validate.Var("emotion", string(*i.Emotion), "emotion"))
	}
	if err != nil {
		return err
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
