package domain

import "errors"

type ErrorKind int

const (
	ErrValidation ErrorKind = iota
	ErrUnauthorized
	ErrForbidden
	ErrNotFound
	ErrConflict
	ErrInternal
)

// Error is the closed set of failures the flows and stores produce. Anything
// that reaches the HTTP boundary without this tag is reported as a server
// error.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: ErrForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: ErrConflict, Message: message}
}

// KindOf reports the tagged kind of err, or ErrInternal for untagged errors.
func KindOf(err error) ErrorKind {
	var domainErr *Error

	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}

	return ErrInternal
}

func IsNotFound(err error) bool {
	return KindOf(err) == ErrNotFound
}
