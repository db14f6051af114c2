package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure the way the UI reacts to it: validation failures
// block before any remote call, write failures surface a notification, read
// failures render an empty view.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindRemoteRead
	KindRemoteWrite
	KindNotFound
)

// Error carries a failure kind plus a message safe to show to the user.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation rejects input before any request is dispatched.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// RemoteWrite wraps a create/update/delete rejected by the store.
func RemoteWrite(message string, err error) *Error {
	return &Error{Kind: KindRemoteWrite, Message: message, Err: err}
}

// RemoteRead wraps a failed list/get against the store.
func RemoteRead(message string, err error) *Error {
	return &Error{Kind: KindRemoteRead, Message: message, Err: err}
}

// NotFound marks a row that the store reports as missing.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// KindOf extracts the kind from an error chain, KindUnknown if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf extracts the user-facing message, falling back to a generic one.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong"
}

// HTTPStatus maps a failure kind to a response status.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindRemoteRead, KindRemoteWrite:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
