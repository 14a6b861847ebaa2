package protocol

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errEmptyToken   = errors.New("protocol: empty token")
	errInvalidBool  = errors.New("protocol: invalid bool value")
	errNotAttribute = errors.New("protocol: expected Key=Value")
)

// Field is one value slot of a command or event, bound to the struct field it
// reads from and writes to.
type Field interface {
	Parse(token string) error
	Format() string
}

// OptionalField is a keyed field that may be absent.
type OptionalField interface {
	Field
	Present() bool
}

// Named binds an optional field to its canonical Key.
type Named struct {
	Key   string
	Field OptionalField
}

// Fields is the layout of one line: positional fields in fixed order followed
// by keyed optional fields in fixed order.
type Fields struct {
	Positional []Field
	Named      []Named
}

type uintField[T ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	p    *T
	bits int
}

// Parse accepts one optional leading '+'.
func (f uintField[T]) Parse(token string) error {
	v, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, f.bits)
	if err != nil {
		return err
	}
	*f.p = T(v)
	return nil
}

func (f uintField[T]) Format() string {
	return strconv.FormatUint(uint64(*f.p), 10)
}

func Uint8Field(p *uint8) Field   { return uintField[uint8]{p: p, bits: 8} }
func Uint16Field(p *uint16) Field { return uintField[uint16]{p: p, bits: 16} }
func Uint32Field(p *uint32) Field { return uintField[uint32]{p: p, bits: 32} }
func Uint64Field(p *uint64) Field { return uintField[uint64]{p: p, bits: 64} }

func SessionField(p *SessionID) Field     { return uintField[SessionID]{p: p, bits: 32} }
func ResourceField(p *ResourceID) Field   { return uintField[ResourceID]{p: p, bits: 32} }
func SampleRateField(p *SampleRate) Field { return uintField[SampleRate]{p: p, bits: 16} }

type stringField struct {
	p *string
}

func (f stringField) Parse(token string) error {
	*f.p = token
	return nil
}

func (f stringField) Format() string { return *f.p }

func StringField(p *string) Field { return stringField{p: p} }

type boolField struct {
	p *bool
}

// Parse accepts 1/0 and true/false in any case.
func (f boolField) Parse(token string) error {
	switch strings.ToLower(token) {
	case "1", "true":
		*f.p = true
	case "0", "false":
		*f.p = false
	default:
		return errInvalidBool
	}
	return nil
}

func (f boolField) Format() string {
	if *f.p {
		return "1"
	}
	return "0"
}

func BoolField(p *bool) Field { return boolField{p: p} }

type enumField[T Coded] struct {
	p    *T
	from func(int) (T, error)
}

func (f enumField[T]) Parse(token string) error {
	code, err := strconv.Atoi(token)
	if err != nil {
		return err
	}
	v, err := f.from(code)
	if err != nil {
		return err
	}
	*f.p = v
	return nil
}

func (f enumField[T]) Format() string {
	return strconv.Itoa((*f.p).Code())
}

// EnumField binds a closed enumeration; tokens are decimal codes validated by from.
func EnumField[T Coded](p *T, from func(int) (T, error)) Field {
	return enumField[T]{p: p, from: from}
}

func ChannelsField(p *Channels) Field       { return EnumField(p, ChannelsFromCode) }
func ECMField(p *ECM) Field                 { return EnumField(p, ECMFromCode) }
func PayloadTypeField(p *PayloadType) Field { return EnumField(p, PayloadTypeFromCode) }
func FaxSpeedField(p *FaxSpeed) Field       { return EnumField(p, FaxSpeedFromCode) }
func PaperSizeField(p *PaperSize) Field     { return EnumField(p, PaperSizeFromCode) }
func ResolutionField(p *Resolution) Field   { return EnumField(p, ResolutionFromCode) }

func StreamBufferStateField(p *StreamBufferState) Field {
	return EnumField(p, StreamBufferStateFromCode)
}

func RecorderStopReasonField(p *RecorderStopReason) Field {
	return EnumField(p, RecorderStopReasonFromCode)
}

type optField[T any] struct {
	p     **T
	inner func(*T) Field
}

func (f optField[T]) Present() bool { return *f.p != nil }

func (f optField[T]) Parse(token string) error {
	var v T
	if err := f.inner(&v).Parse(token); err != nil {
		return err
	}
	*f.p = &v
	return nil
}

func (f optField[T]) Format() string {
	if *f.p == nil {
		return ""
	}
	return f.inner(*f.p).Format()
}

// Opt binds a pointer field: nil is absent, parsing allocates a fresh value.
func Opt[T any](p **T, inner func(*T) Field) OptionalField {
	return optField[T]{p: p, inner: inner}
}

// Key is shorthand for a Named entry.
func Key[T any](key string, p **T, inner func(*T) Field) Named {
	return Named{Key: key, Field: Opt(p, inner)}
}
