// Package usecase contains the application-specific business rules.
package usecase

import (
	"net/http"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the acting user as resolved server-side from the session token.
// Never populated from client-supplied input.
type Actor struct {
	ID    uuid.UUID
	Roles entity.Roles
}

// Authenticated reports whether the actor was resolved from a valid session.
func (a Actor) Authenticated() bool {
	return a.ID != uuid.Nil
}

// HasRole reports whether the actor carries the given role.
func (a Actor) HasRole(role entity.Role) bool {
	return a.Roles.Contains(role)
}

// Result is the submission outcome shape shared by all commit-time actions.
// Failures are converted into this shape at the action boundary; nothing
// throws across it, so callers only branch on Success.
type Result struct {
	StatusCode  int    `json:"statusCode"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Data        any    `json:"data,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// OK builds a successful result.
func OK(statusCode int, message string, data any) *Result {
	return &Result{StatusCode: statusCode, Success: true, Message: message, Data: data}
}

// Fail builds a failed result.
func Fail(statusCode int, message string) *Result {
	return &Result{StatusCode: statusCode, Success: false, Message: message}
}

// FailWith builds a failed result carrying structured detail, e.g. the
// conflicting field or the list of missing field names.
func FailWith(statusCode int, message string, data any) *Result {
	return &Result{StatusCode: statusCode, Success: false, Message: message, Data: data}
}

// Canned results for the precondition chain shared by all submission actions.

// Unauthenticated is the 401 result for requests without a resolved user.
func Unauthenticated() *Result {
	return Fail(http.StatusUnauthorized, "Authentication required")
}

// Forbidden is the 403 result. Deliberately generic: it does not reveal
// which role would have been accepted.
func Forbidden() *Result {
	return Fail(http.StatusForbidden, "Unauthorized")
}

// Internal is the 500 result. The cause is logged server-side and never
// leaks to the caller.
func Internal() *Result {
	return Fail(http.StatusInternalServerError, "Something went wrong, please try again later")
}
