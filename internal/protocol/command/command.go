package command

import (
	"fmt"
	"strings"

	"github.com/danmuck/gridctl/internal/protocol"
)

// Defaults applied by constructors.
const (
	DefaultCallTimeoutMS  uint32 = 30000
	DefaultPrivacy        uint8  = 0
	DefaultScreen         uint8  = 1
	DefaultDTMFDurationMS uint32 = 300
	DefaultDTMFDelayMS    uint32 = 200
	DefaultDTMFPauseMS    uint32 = 2000
	DefaultUseH450               = true
)

// Command is the closed set of commands; only types in this package implement it.
type Command interface {
	Name() string
	fields() protocol.Fields
}

// Encode renders cmd as a wire line without tag or terminator.
func Encode(cmd Command) string {
	return protocol.FormatLine(cmd.Name(), cmd.fields())
}

// ValidationError reports a value that cannot travel as a single token.
type ValidationError struct {
	Command string
	Value   string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("command: %s value %q %s", e.Command, e.Value, e.Reason)
}

// Validate rejects commands whose rendered values would break tokenizing on
// the server: empty values and values containing whitespace, '#' or '='.
func Validate(cmd Command) error {
	if cmd == nil {
		return &ValidationError{Reason: "is nil"}
	}
	fs := cmd.fields()
	for _, f := range fs.Positional {
		if err := checkToken(cmd.Name(), f.Format()); err != nil {
			return err
		}
	}
	for _, n := range fs.Named {
		if !n.Field.Present() {
			continue
		}
		if err := checkToken(cmd.Name(), n.Field.Format()); err != nil {
			return err
		}
	}
	return nil
}

func checkToken(name, value string) error {
	if value == "" {
		return &ValidationError{Command: name, Value: value, Reason: "is empty"}
	}
	if strings.ContainsAny(value, " \t\r\n\v\f") {
		return &ValidationError{Command: name, Value: value, Reason: "contains whitespace"}
	}
	if strings.ContainsAny(value, "#=") {
		return &ValidationError{Command: name, Value: value, Reason: "contains a reserved character"}
	}
	return nil
}

// Opt returns a pointer to v for setting optional fields.
func Opt[T any](v T) *T {
	return &v
}

func resource(id *protocol.ResourceID) protocol.Fields {
	return protocol.Fields{Positional: []protocol.Field{protocol.ResourceField(id)}}
}
