package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failure the controllers surface to the user.
type Kind int

const (
	// KindUnknown is any failure that is neither a transport nor a server error.
	KindUnknown Kind = iota
	// KindValidation is a local, pre-network failure. The gateway never
	// produces it; controllers do.
	KindValidation
	// KindNetwork means the request never got a response.
	KindNetwork
	// KindServer means the server answered with a non-2xx status.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks against *Error.
var (
	ErrValidation = errors.New("validation error")
	ErrNetwork    = errors.New("network error")
	ErrServer     = errors.New("server error")
	ErrUnknown    = errors.New("unknown error")
)

const noResponseMessage = "no response received from server"

// Error is the uniform failure shape returned by every gateway call.
type Error struct {
	Kind       Kind
	StatusCode int
	// Message is the user-facing text derived from the failure.
	Message string
	// Payload is the raw response body for server errors.
	Payload []byte
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindServer:
		return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
	case KindNetwork:
		if e.Err != nil {
			return fmt.Sprintf("network error: %v", e.Err)
		}
		return "network error"
	case KindValidation:
		return fmt.Sprintf("validation error: %s", e.Message)
	default:
		if e.Err != nil {
			return fmt.Sprintf("unknown error: %v", e.Err)
		}
		return fmt.Sprintf("unknown error: %s", e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrServer:
		return e.Kind == KindServer
	case ErrUnknown:
		return e.Kind == KindUnknown
	}
	return false
}

// NewValidationError builds the local validation failure used by controllers.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: noResponseMessage, Err: err}
}

func unknownError(err error) *Error {
	return &Error{Kind: KindUnknown, Message: err.Error(), Err: err}
}

func serverError(status int, body []byte) *Error {
	return &Error{
		Kind:       KindServer,
		StatusCode: status,
		Message:    payloadMessage(status, body),
		Payload:    body,
	}
}

// KindOf returns the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return KindUnknown
}

// Message derives the text shown to the user for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var gwErr *Error
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message
	}
	return err.Error()
}

// payloadMessage picks the server's own explanation out of an error body:
// a "message" or "error" field, a bare JSON string, or the raw text.
func payloadMessage(status int, body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return http.StatusText(status)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"message", "error"} {
			if v, ok := fields[key].(string); ok && v != "" {
				return v
			}
		}
		return trimmed
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil && s != "" {
		return s
	}
	return trimmed
}
