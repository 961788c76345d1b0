package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failed backend interaction.
type Kind string

const (
	// KindValidation is detected locally, before any network call.
	KindValidation Kind = "validation"
	// KindTransport is a request-level failure (connectivity, DNS, timeout).
	KindTransport Kind = "transport"
	// KindProtocol is an HTTP response whose status indicates failure.
	KindProtocol Kind = "protocol"
	// KindEmpty is a successful response with no usable records. It is
	// informational: views render it as a "no data" state, not an error.
	KindEmpty Kind = "empty"
)

// fallbackMessage covers failures that carry no message of their own.
const fallbackMessage = "request failed for an unknown reason"

// Error is a classified backend failure with a guaranteed human-readable
// message.
type Error struct {
	Kind    Kind
	Message string
	Status  int // HTTP status, protocol errors only
}

func (e *Error) Error() string {
	return e.Message
}

// Retryable reports whether re-issuing the same request could succeed.
// Validation failures need different input; empty results stay empty until
// the underlying data changes.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransport || e.Kind == KindProtocol
}

// Classify funnels any failure into a tagged *Error. Already-classified
// errors pass through; everything else becomes a transport error, with a
// generic fallback when the underlying error has no message.
func Classify(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	msg := ""
	if err != nil {
		msg = strings.TrimSpace(err.Error())
	}
	if msg == "" {
		msg = fallbackMessage
	}
	return &Error{Kind: KindTransport, Message: msg}
}

func validationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func transportError(err error) *Error {
	msg := fallbackMessage
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}
	return &Error{Kind: KindTransport, Message: msg}
}

func protocolError(status int, body []byte) *Error {
	text := http.StatusText(status)
	if text == "" {
		text = "unexpected status"
	}
	msg := fmt.Sprintf("server returned %d %s", status, text)
	if snippet := strings.TrimSpace(string(body)); snippet != "" {
		msg = fmt.Sprintf("%s: %s", msg, snippet)
	}
	return &Error{Kind: KindProtocol, Message: msg, Status: status}
}

func emptyError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindEmpty, Message: fmt.Sprintf(format, args...)}
}
