package client

import (
	"errors"
	"fmt"
)

// ConnectionErrorKind categorizes connection failures.
type ConnectionErrorKind int

const (
	// ErrKindInvalidAddress indicates a server address that is not an IP.
	ErrKindInvalidAddress ConnectionErrorKind = iota + 1
	// ErrKindConnectFailed indicates the TCP dial failed.
	ErrKindConnectFailed
	// ErrKindNotConnected indicates an operation that needs a live connection.
	ErrKindNotConnected
	// ErrKindWriteFailed indicates a command line could not be written.
	ErrKindWriteFailed
	// ErrKindReadFailed indicates the listener lost the connection.
	ErrKindReadFailed
	// ErrKindAlreadyConnected indicates Connect on a live client.
	ErrKindAlreadyConnected
)

func (k ConnectionErrorKind) String() string {
	switch k {
	case ErrKindInvalidAddress:
		return "invalid_address"
	case ErrKindConnectFailed:
		return "connect_failed"
	case ErrKindNotConnected:
		return "not_connected"
	case ErrKindWriteFailed:
		return "write_failed"
	case ErrKindReadFailed:
		return "read_failed"
	case ErrKindAlreadyConnected:
		return "already_connected"
	default:
		return "unknown"
	}
}

// ConnectionError is returned by every connection operation.
type ConnectionError struct {
	Kind    ConnectionErrorKind
	Message string
	Cause   error
}

var (
	ErrInvalidAddress   = &ConnectionError{Kind: ErrKindInvalidAddress}
	ErrConnectFailed    = &ConnectionError{Kind: ErrKindConnectFailed}
	ErrNotConnected     = &ConnectionError{Kind: ErrKindNotConnected}
	ErrWriteFailed      = &ConnectionError{Kind: ErrKindWriteFailed}
	ErrReadFailed       = &ConnectionError{Kind: ErrKindReadFailed}
	ErrAlreadyConnected = &ConnectionError{Kind: ErrKindAlreadyConnected}
)

// ErrInvalidLine rejects raw lines that are empty or contain a line break.
var ErrInvalidLine = errors.New("client: raw line must be a single non-empty line")

func (e *ConnectionError) Error() string {
	msg := "client: " + e.Kind.String()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Is matches on Kind so the package sentinels work with errors.Is.
func (e *ConnectionError) Is(target error) bool {
	t, ok := target.(*ConnectionError)
	return ok && t.Kind == e.Kind
}

func newConnectionError(kind ConnectionErrorKind, cause error, format string, args ...any) error {
	return &ConnectionError{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}
