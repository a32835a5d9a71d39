// Package validation wraps go-playground/validator and converts its errors
// into domain.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Validator checks input structs tagged with `validate:"..."`.
type Validator struct {
	v *validator.Validate
}

// New creates a validator that reports fields by their JSON names and knows
// the custom tags notblank, month, actionstatus and emotion.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "":
			return fld.Name
		case "-":
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("month", isMonthToken)
	_ = v.RegisterValidation("actionstatus", isActionStatus)
	_ = v.RegisterValidation("emotion", isEmotion)

	return &Validator{v: v}
}

// Validate validates a struct and returns a *domain.ValidationError listing
// every failing field, or nil.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		fields = append(fields, domain.FieldError{
			Field:   fieldPath(e),
			Message: friendlyMessage(e),
		})
	}
	return domain.NewValidationErrors(fields)
}

// Var validates a single value against tag and reports failures under
// the given field name.
func (v *Validator) Var(field string, value any, tag string) error {
	err := v.v.Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate %s: %w", field, err)
	}

	fields := make([]domain.FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		name := field
		if idx := e.Field(); strings.HasPrefix(idx, "[") {
			name += idx
		}
		fields = append(fields, domain.FieldError{Field: name, Message: friendlyMessage(e)})
	}
	return domain.NewValidationErrors(fields)
}

// Collect appends the field errors carried by err to errs. An err that is
// not a *domain.ValidationError is returned as is.
func Collect(errs []domain.FieldError, err error) ([]domain.FieldError, error) {
	if err == nil {
		return errs, nil
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return errs, err
	}
	return append(errs, ve.Errors...), nil
}

// fieldPath drops the root struct name from the namespace, keeping
// dive indexes (e.g. "tags[1]").
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return "must not exceed " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "month":
		return "must be a month token like 7월"
	case "actionstatus":
		return "must be one of: NOT_STARTED IN_PROGRESS DONE ON_HOLD"
	case "emotion":
		return "must be one of: sad calm thoughtful surprised happy excited"
	default:
		return "is invalid"
	}
}

func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return !f.IsZero()
	}
	return strings.TrimSpace(f.String()) != ""
}

func isMonthToken(fl validator.FieldLevel) bool {
	_, ok := domain.ParseMonth(fl.Field().String())
	return ok
}

func isActionStatus(fl validator.FieldLevel) bool {
	return domain.ActionStatus(fl.Field().String()).IsValid()
}

func isEmotion(fl validator.FieldLevel) bool {
	return domain.Emotion(fl.Field().String()).IsValid()
}
