package event

import "github.com/danmuck/gridctl/internal/protocol"

func init() {
	register(
		func() Event { return &SessionCreated{} },
		func() Event { return &SessionDeleted{} },
		func() Event { return &ResourceCreated{} },
		func() Event { return &ResourceDeleted{} },
		func() Event { return &AudioLevelNotification{} },
		func() Event { return &StreamBufferStateNotification{} },
	)
}

// SessionCreated answers a successful Login.
type SessionCreated struct {
	SessionID protocol.SessionID
}

func (*SessionCreated) Name() string                  { return "ESessionCreated" }
func (e *SessionCreated) Session() protocol.SessionID { return e.SessionID }

func (e *SessionCreated) fields() protocol.Fields {
	return protocol.Fields{Positional: []protocol.Field{protocol.SessionField(&e.SessionID)}}
}

type SessionDeleted struct {
	SessionID protocol.SessionID
}

func (*SessionDeleted) Name() string                  { return "ESessionDeleted" }
func (e *SessionDeleted) Session() protocol.SessionID { return e.SessionID }

func (e *SessionDeleted) fields() protocol.Fields {
	return protocol.Fields{Positional: []protocol.Field{protocol.SessionField(&e.SessionID)}}
}

// ResourceCreated answers every ResourceCreate* command with the new id.
type ResourceCreated struct{ ResourceHeader }

func (*ResourceCreated) Name() string { return "EResourceCreated" }

type ResourceDeleted struct{ ResourceHeader }

func (*ResourceDeleted) Name() string { return "EResourceDeleted" }

// AudioLevelNotification reports talk detection and energy for a resource
// subscribed with AudioLevelNotificationSend.
type AudioLevelNotification struct {
	ResourceHeader
	InTalk      bool
	EnergyLevel uint8
}

func (*AudioLevelNotification) Name() string { return "EAudioLevelNotification" }

func (e *AudioLevelNotification) fields() protocol.Fields {
	return e.with(protocol.BoolField(&e.InTalk), protocol.Uint8Field(&e.EnergyLevel))
}

type StreamBufferStateNotification struct {
	ResourceHeader
	State protocol.StreamBufferState
}

func (*StreamBufferStateNotification) Name() string { return "EStreamBufferStateNotification" }

func (e *StreamBufferStateNotification) fields() protocol.Fields {
	return e.with(protocol.StreamBufferStateField(&e.State))
}
