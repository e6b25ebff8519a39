package errors

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Error is a business error carrying the HTTP status it should be
// rendered with. Services return it; handlers pass it to response.JSON.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

var (
	ErrNotFound            = New("not found", http.StatusNotFound)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	ErrConflict            = New("conflict", http.StatusConflict)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
	ErrInvalidCredentials  = New("invalid email or password", http.StatusUnauthorized)
)

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NotFound builds a 404 for a named resource.
func NotFound(resource string) *Error {
	return New(fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// FromDB translates a data-access failure into the error taxonomy:
// record-not-found -> 404, duplicate key -> 409, foreign-key violation -> 400,
// anything else collapses to a generic message so no internals leak.
// Requires the gorm TranslateError mode so driver errors surface as the
// gorm sentinel values.
func FromDB(err error, fallback string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return New("duplicate field value detected", http.StatusConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return New("invalid reference: ensure all related entities exist", http.StatusBadRequest)
	default:
		return New(fallback, http.StatusInternalServerError)
	}
}
