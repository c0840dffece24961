package impl

import (
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
)

// errNotFound is the in-transaction sentinel for missing records; it maps to
// a 404 result at the action boundary.
var errNotFound = domainerrors.ErrNotFound

// newFieldConflict builds the commit-time uniqueness failure for one field,
// e.g. "Category with this name already exists".
func newFieldConflict(resource, field string) *domainerrors.ConflictError {
	return domainerrors.NewConflictError(field, resource+" with this "+fieldNoun(field)+" already exists")
}

func fieldNoun(field string) string {
	if field == "phone" {
		return "phone number"
	}

	return field
}

// resultFromError converts expected domain failures into their result shape.
// Returns nil for unexpected errors, which the caller logs and converts to
// the generic 500 result so the cause never leaks to the client.
func resultFromError(err error) *usecase.Result {
	var conflict *domainerrors.ConflictError
	if errors.As(err, &conflict) {
		return usecase.FailWith(conflict.HTTPCode(), conflict.Message(), map[string]any{"field": conflict.Field()})
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return usecase.Fail(appErr.HTTPCode(), appErr.Message())
	}

	return nil
}
