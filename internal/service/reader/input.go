package reader

import (
	"strings"
)

// CreateInput holds the parameters for registering a reader.
type CreateInput struct {
	Name  string  `json:"name"  validate:"notblank,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
	Bio   *string `json:"bio"   validate:"omitempty,max=1000"`
}

func (i CreateInput) normalize() CreateInput {
	return CreateInput{
		Name:  strings.TrimSpace(i.Name),
		Email: trimOrNil(i.Email),
		Bio:   trimOrNil(i.Bio),
	}
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	return validate.Validate(i)
}
