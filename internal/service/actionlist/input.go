package actionlist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/validation"
)

// CreateInput holds the parameters for a new action item.
type CreateInput struct {
	Title        string              `json:"title"        validate:"notblank,max=200"`
	ReaderID     uuid.UUID           `json:"readerId"`
	BookTitle    string              `json:"bookTitle"    validate:"notblank,max=200"`
	Content      string              `json:"content"      validate:"notblank,max=5000"`
	TargetMonths []string            `json:"targetMonths" validate:"max=12,dive,month"`
	ActionTime   *string             `json:"actionTime"   validate:"omitempty,max=100"`
	Status       domain.ActionStatus `json:"status"       validate:"omitempty,actionstatus"`
}

func (i CreateInput) normalize() CreateInput {
	out := i
	out.Title = strings.TrimSpace(i.Title)
	out.BookTitle = strings.TrimSpace(i.BookTitle)
	out.Content = strings.TrimSpace(i.Content)
	out.TargetMonths = cleanMonths(i.TargetMonths)
	out.ActionTime = trimOrNil(i.ActionTime)
	if out.Status == "" {
		out.Status = domain.ActionStatusNotStarted
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
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FromBookInput holds the parameters for an action item pre-seeded from a
// book: the reader and book title are taken from the book.
type FromBookInput struct {
	BookID       uuid.UUID           `json:"-"`
	Title        string              `json:"title"`
	Content      string              `json:"content"`
	TargetMonths []string            `json:"targetMonths"`
	ActionTime   *string             `json:"actionTime"`
	Status       domain.ActionStatus `json:"status"`
}

// UpdateInput holds a partial update of an action item. Nil fields are left
// untouched; ActionTime ptr("") clears the hint.
type UpdateInput struct {
	ID           uuid.UUID            `json:"-"`
	Title        *string              `json:"title"        validate:"omitempty,notblank,max=200"`
	BookTitle    *string              `json:"bookTitle"    validate:"omitempty,notblank,max=200"`
	Content      *string              `json:"content"      validate:"omitempty,notblank,max=5000"`
	TargetMonths *[]string            `json:"targetMonths"`
	ActionTime   *string              `json:"actionTime"   validate:"omitempty,max=100"`
	Status       *domain.ActionStatus `json:"status"       validate:"omitempty,actionstatus"`
}

func (i UpdateInput) normalize() UpdateInput {
	out := i
	out.Title = trimPtr(i.Title)
	out.BookTitle = trimPtr(i.BookTitle)
	out.Content = trimPtr(i.Content)
	out.ActionTime = trimPtr(i.ActionTime)
	if i.TargetMonths != nil {
		months := cleanMonths(*i.TargetMonths)
		out.TargetMonths = &months
	}
	return out
}

func (i UpdateInput) params() domain.ActionListUpdateParams {
	return domain.ActionListUpdateParams{
		Title:        i.Title,
		BookTitle:    i.BookTitle,
		Content:      i.Content,
		TargetMonths: i.TargetMonths,
		ActionTime:   i.ActionTime,
		Status:       i.Status,
	}
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
	if i.TargetMonths != nil {
		errs, err = validation.Collect(errs, validate.Var("targetMonths", *i.TargetMonths, "max=12,dive,month"))
		if err != nil {
			return err
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
