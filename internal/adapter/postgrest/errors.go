package postgrest

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// apiError is the PostgREST error body.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *apiError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	codeNoRows              = "PGRST116"
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// responseError converts a non-2xx response to a domain error.
// onForeignKey is ErrNotFound for inserts and updates, ErrConflict for deletes.
func responseError(resp *resty.Response, entity string, id uuid.UUID, onForeignKey error) error {
	body := resp.String()

	var apiErr apiError
	if err := json.Unmarshal([]byte(body), &apiErr); err != nil || apiErr.Code == "" {
		return fmt.Errorf("%s %s: response error %d: %s", entity, id, resp.StatusCode(), body)
	}

	switch apiErr.Code {
	case codeNoRows:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	case codeUniqueViolation:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
	case codeForeignKeyViolation:
		return fmt.Errorf("%s %s: %w", entity, id, onForeignKey)
	case codeCheckViolation, codeNotNullViolation:
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
	}

	return fmt.Errorf("%s %s: response error %d: %w", entity, id, resp.StatusCode(), &apiErr)
}

func transportError(err error, entity string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

func notFound(entity string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}
