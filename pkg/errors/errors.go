package errors

import (
	stderrors "errors"
	"fmt"
)

// ParseError represents a configuration parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FetchKind classifies why a catalog entry could not be fetched.
type FetchKind int

const (
	// KindTransport means the request could not be sent or completed.
	KindTransport FetchKind = iota
	// KindDecode means a response arrived but its payload was not a valid entry.
	KindDecode
)

func (k FetchKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError reports a failure to fetch a single catalog entry.
type FetchError struct {
	ID   uint32
	Kind FetchKind
	Err  error
}

// NewTransportError constructs a FetchError for a failed request.
func NewTransportError(id uint32, err error) error {
	return &FetchError{ID: id, Kind: KindTransport, Err: err}
}

// NewDecodeError constructs a FetchError for an invalid payload.
func NewDecodeError(id uint32, err error) error {
	return &FetchError{ID: id, Kind: KindDecode, Err: err}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == KindDecode {
		return fmt.Sprintf("invalid response payload for id %d: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("request failed for id %d: %v", e.ID, e.Err)
}

// Unwrap exposes the root error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsTransport reports whether err wraps a transport FetchError.
func IsTransport(err error) bool {
	var fetchErr *FetchError
	return stderrors.As(err, &fetchErr) && fetchErr.Kind == KindTransport
}

// IsDecode reports whether err wraps a decode FetchError.
func IsDecode(err error) bool {
	var fetchErr *FetchError
	return stderrors.As(err, &fetchErr) && fetchErr.Kind == KindDecode
}
