package errors

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound   = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal   = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")

	// ErrCacheMiss is an internal sentinel returned by cache repositories; it
	// never reaches HTTP responses.
	ErrCacheMiss = New("CACHE_MISS", http.StatusInternalServerError, "cache miss")

	// Portal failures. The legacy enrollment portal answers with an ad-hoc
	// JavaScript envelope; these cover the two structural ways it can break.
	ErrMalformedEnvelope = New("MALFORMED_ENVELOPE", http.StatusBadGateway, "no se pudo interpretar la respuesta del portal")
	ErrInvalidPayload    = New("INVALID_PAYLOAD_JSON", http.StatusBadGateway, "JSON inválido en la respuesta del portal")
	ErrPortalUnavailable = New("PORTAL_UNAVAILABLE", http.StatusBadGateway, "el portal no respondió")
)

// InvalidPayload builds an ErrInvalidPayload carrying a truncated diagnostic
// snippet of the offending text. The cut lands on a rune boundary so the
// snippet stays valid UTF-8.
func InvalidPayload(err error, raw string) *Error {
	const maxSnippet = 400
	if len(raw) > maxSnippet {
		cut := maxSnippet
		for cut > 0 && !utf8.RuneStart(raw[cut]) {
			cut--
		}
		raw = raw[:cut]
	}
	return Wrap(err, ErrInvalidPayload.Code, ErrInvalidPayload.Status,
		fmt.Sprintf("%s: %s", ErrInvalidPayload.Message, raw))
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
