package rapidapi

import (
	"errors"
	"fmt"
)

// Kind classifies why a call produced no payload
type Kind int

const (
	KindTransport Kind = iota + 1
	KindTimeout
	KindHTTP
	KindDecode
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Error is the failure half of every client call
type Error struct {
	Kind       Kind
	StatusCode int // set for KindHTTP
	Body       string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		if e.Body != "" {
			return fmt.Sprintf("rapidapi: API error (%d): %s", e.StatusCode, e.Body)
		}
		return fmt.Sprintf("rapidapi: API error (%d)", e.StatusCode)
	default:
		if e.Err != nil {
			return fmt.Sprintf("rapidapi: %s: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("rapidapi: %s", e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err carries a rapidapi failure of kind k
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// StatusCode returns the upstream HTTP status carried by err, or 0
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// KindOf returns the failure kind carried by err, or 0 when err is not a rapidapi error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
