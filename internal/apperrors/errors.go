package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure independently of transport codes.
// Services return exactly one kind per failed operation and the
// controllers map kinds to HTTP statuses in one place.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindForbidden  Kind = "FORBIDDEN"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
)

type Error struct {
	kind    Kind
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func Validation(message string) error {
	return &Error{kind: KindValidation, message: message}
}

func Forbidden(message string) error {
	return &Error{kind: KindForbidden, message: message}
}

func NotFound(message string) error {
	return &Error{kind: KindNotFound, message: message}
}

func Conflict(message string) error {
	return &Error{kind: KindConflict, message: message}
}

func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return ""
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsForbidden(err error) bool {
	return KindOf(err) == KindForbidden
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// StatusCode maps an error kind to its HTTP status. Unclassified
// errors surface as 400 with their message, matching how the rest
// of the API reports request failures.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
