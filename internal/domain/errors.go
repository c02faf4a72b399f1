package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRequest indicates the request URL could not be built.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidResponse indicates the transport produced no usable response.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrDecode indicates a success response whose body could not be decoded.
	ErrDecode = errors.New("undecodable payload")
	// ErrEmptyCart rejects order submission before any network call is made.
	ErrEmptyCart = errors.New("cart has no items")
)

// DecodeError carries the raw value that failed to decode.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %q: %v", e.Raw, e.Err)
	}
	return fmt.Sprintf("decode %q", e.Raw)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// ServerError is a non-2xx response with a classified domain meaning.
type ServerError struct {
	Message string
	Code    int
	Details []string
}

func (e *ServerError) Error() string {
	out := fmt.Sprintf("%s (%d)", e.Message, e.Code)
	if len(e.Details) > 0 {
		out += ": " + strings.Join(e.Details, "; ")
	}
	return out
}

// UserMessage derives a display message from an error: the server's own
// message when one exists, otherwise the call site's fallback.
func UserMessage(err error, fallback string) string {
	var srvErr *ServerError
	if errors.As(err, &srvErr) && srvErr.Message != "" {
		return srvErr.Message
	}
	if errors.Is(err, ErrEmptyCart) {
		return "Add at least one item before placing an order."
	}
	return fallback
}
