package event

import (
	"sort"

	"github.com/danmuck/gridctl/internal/protocol"
)

// Event is the closed set of server events; only types in this package
// implement it.
type Event interface {
	// Name is the wire name, including the leading 'E'.
	Name() string
	Session() protocol.SessionID
	fields() protocol.Fields
}

// ResourceEvent is implemented by every event scoped to a resource.
type ResourceEvent interface {
	Event
	Resource() protocol.ResourceID
}

// ResourceHeader is the <session> <resource> prefix shared by
// resource-scoped events.
type ResourceHeader struct {
	SessionID  protocol.SessionID
	ResourceID protocol.ResourceID
}

func (h *ResourceHeader) Session() protocol.SessionID   { return h.SessionID }
func (h *ResourceHeader) Resource() protocol.ResourceID { return h.ResourceID }

func (h *ResourceHeader) fields() protocol.Fields {
	return h.with()
}

// with returns the header followed by the event's own positional fields.
func (h *ResourceHeader) with(extra ...protocol.Field) protocol.Fields {
	pos := make([]protocol.Field, 0, 2+len(extra))
	pos = append(pos, protocol.SessionField(&h.SessionID), protocol.ResourceField(&h.ResourceID))
	return protocol.Fields{Positional: append(pos, extra...)}
}

// Parse decodes one inbound line. A line that is empty once its comment is
// stripped yields (nil, nil) and should be skipped. Failures are
// *protocol.ParseError values of kind UnknownEvent, WrongArity or BadValue.
func Parse(line string) (Event, error) {
	tokens := protocol.Tokenize(line)
	if len(tokens) == 0 {
		return nil, nil
	}
	f, ok := factories[tokens[0]]
	if !ok {
		return nil, protocol.NewUnknownEventError(tokens[0])
	}
	ev := f()
	if err := protocol.ParseFields(tokens, ev.fields()); err != nil {
		return nil, err
	}
	return ev, nil
}

// Format renders ev as its canonical wire line without terminator.
func Format(ev Event) string {
	return protocol.FormatLine(ev.Name(), ev.fields())
}

// Names returns every event wire name in sorted order.
func Names() []string {
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// New returns a zero event for a wire name.
func New(name string) (Event, bool) {
	f, ok := factories[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

var factories = map[string]func() Event{}

func register(fs ...func() Event) {
	for _, f := range fs {
		factories[f().Name()] = f
	}
}
