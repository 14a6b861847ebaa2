package event

import "github.com/danmuck/gridctl/internal/protocol"

func init() {
	register(
		func() Event { return &CallIncoming{} },
		func() Event { return &CallOutgoing{} },
		func() Event { return &CallRemoteAlerting{} },
		func() Event { return &CallConnectionEstablished{} },
		func() Event { return &CallConnectionFailed{} },
		func() Event { return &CallCleared{} },
		func() Event { return &CallSendDTMFFinished{} },
		func() Event { return &CallKeyPress{} },
	)
}

// CallIncoming announces a new inbound call on a front-end.
type CallIncoming struct {
	ResourceHeader
	CallIdentifier string
	ANI            *string
	DNIS           *string
	RDN            *string
	RemoteName     *string
	RemoteAddress  *string
}

func (*CallIncoming) Name() string { return "ECallIncoming" }

func (e *CallIncoming) fields() protocol.Fields {
	fs := e.with(protocol.StringField(&e.CallIdentifier))
	fs.Named = []protocol.Named{
		protocol.Key("ANI", &e.ANI, protocol.StringField),
		protocol.Key("DNIS", &e.DNIS, protocol.StringField),
		protocol.Key("RDN", &e.RDN, protocol.StringField),
		protocol.Key("RemoteName", &e.RemoteName, protocol.StringField),
		protocol.Key("RemoteAddress", &e.RemoteAddress, protocol.StringField),
	}
	return fs
}

// CallOutgoing confirms a CallMake and carries the call identifier.
type CallOutgoing struct {
	ResourceHeader
	Address        string
	CallIdentifier string
}

func (*CallOutgoing) Name() string { return "ECallOutgoing" }

func (e *CallOutgoing) fields() protocol.Fields {
	return e.with(protocol.StringField(&e.Address), protocol.StringField(&e.CallIdentifier))
}

type CallRemoteAlerting struct {
	ResourceHeader
	User *string
}

func (*CallRemoteAlerting) Name() string { return "ECallRemoteAlerting" }

func (e *CallRemoteAlerting) fields() protocol.Fields {
	fs := e.with()
	fs.Named = []protocol.Named{protocol.Key("User", &e.User, protocol.StringField)}
	return fs
}

type CallConnectionEstablished struct{ ResourceHeader }

func (*CallConnectionEstablished) Name() string { return "ECallConnectionEstablished" }

// CallConnectionFailed reports a call that never connected.
type CallConnectionFailed struct {
	ResourceHeader
	Reason                 string
	ProtocolSpecificReason *string
}

func (*CallConnectionFailed) Name() string { return "ECallConnectionFailed" }

func (e *CallConnectionFailed) fields() protocol.Fields {
	return reasoned(&e.ResourceHeader, &e.Reason, &e.ProtocolSpecificReason)
}

// CallCleared reports the end of a connected call.
type CallCleared struct {
	ResourceHeader
	Reason                 string
	ProtocolSpecificReason *string
}

func (*CallCleared) Name() string { return "ECallCleared" }

func (e *CallCleared) fields() protocol.Fields {
	return reasoned(&e.ResourceHeader, &e.Reason, &e.ProtocolSpecificReason)
}

type CallSendDTMFFinished struct{ ResourceHeader }

func (*CallSendDTMFFinished) Name() string { return "ECallSendDTMFFinished" }

// CallKeyPress reports a DTMF digit detected on the call.
type CallKeyPress struct {
	ResourceHeader
	Key      string
	Duration *uint16 // ms
}

func (*CallKeyPress) Name() string { return "ECallKeyPress" }

func (e *CallKeyPress) fields() protocol.Fields {
	return keyed(&e.ResourceHeader, &e.Key, &e.Duration)
}

func reasoned(h *ResourceHeader, reason *string, specific **string) protocol.Fields {
	fs := h.with(protocol.StringField(reason))
	fs.Named = []protocol.Named{
		protocol.Key("ProtocolSpecificReason", specific, protocol.StringField),
	}
	return fs
}

func keyed(h *ResourceHeader, key *string, duration **uint16) protocol.Fields {
	fs := h.with(protocol.StringField(key))
	fs.Named = []protocol.Named{
		protocol.Key("Duration", duration, protocol.Uint16Field),
	}
	return fs
}
