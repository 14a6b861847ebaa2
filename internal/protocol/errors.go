package protocol

import (
	"errors"
	"fmt"
)

// ParseErrorKind categorizes line parsing failures.
type ParseErrorKind int

const (
	// ErrKindUnknownEvent indicates the first token names no known event.
	ErrKindUnknownEvent ParseErrorKind = iota + 1
	// ErrKindWrongArity indicates fewer positional tokens than the event requires.
	ErrKindWrongArity
	// ErrKindBadValue indicates a token that does not parse to its declared type.
	ErrKindBadValue
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrKindUnknownEvent:
		return "unknown_event"
	case ErrKindWrongArity:
		return "wrong_arity"
	case ErrKindBadValue:
		return "bad_value"
	default:
		return "unknown"
	}
}

// ParseError is returned for a line that cannot be turned into an event.
// Value holds the event name for UnknownEvent/WrongArity and the offending
// token for BadValue.
type ParseError struct {
	Kind  ParseErrorKind
	Value string
	Cause error
}

var (
	ErrUnknownEvent = &ParseError{Kind: ErrKindUnknownEvent}
	ErrWrongArity   = &ParseError{Kind: ErrKindWrongArity}
	ErrBadValue     = &ParseError{Kind: ErrKindBadValue}
)

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case ErrKindUnknownEvent:
		msg = fmt.Sprintf("protocol: unknown event %q", e.Value)
	case ErrKindWrongArity:
		msg = fmt.Sprintf("protocol: wrong arity for %q", e.Value)
	case ErrKindBadValue:
		msg = fmt.Sprintf("protocol: bad value %q", e.Value)
	default:
		msg = fmt.Sprintf("protocol: parse error %q", e.Value)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is matches any ParseError of the same kind, so the package sentinels work
// with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func NewUnknownEventError(name string) error {
	return &ParseError{Kind: ErrKindUnknownEvent, Value: name}
}

func NewWrongArityError(name string) error {
	return &ParseError{Kind: ErrKindWrongArity, Value: name}
}

func NewBadValueError(token string, cause error) error {
	return &ParseError{Kind: ErrKindBadValue, Value: token, Cause: cause}
}

// ParseErrorKindOf returns the kind of the first ParseError in err's chain.
func ParseErrorKindOf(err error) (ParseErrorKind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// ValueError reports a code outside a closed enumeration.
type ValueError struct {
	Enum string
	Code int
}

// ErrInvalidValue matches every ValueError.
var ErrInvalidValue = &ValueError{}

func (e *ValueError) Error() string {
	return fmt.Sprintf("protocol: invalid %s value %d", e.Enum, e.Code)
}

func (e *ValueError) Is(target error) bool {
	_, ok := target.(*ValueError)
	return ok
}
