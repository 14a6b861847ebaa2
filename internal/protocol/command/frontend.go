package command

import "github.com/danmuck/gridctl/internal/protocol"

// CallMake places an outgoing call on a front-end.
type CallMake struct {
	ResourceID    protocol.ResourceID
	Address       string
	Timeout       *uint32 // ms
	CallingNumber *string
	CallingName   *string
	Privacy       *uint8
	Screen        *uint8
}

// NewCallMake builds a CallMake with a 30s timeout, privacy 0 and screen 1.
func NewCallMake(id protocol.ResourceID, address string) *CallMake {
	return &CallMake{
		ResourceID: id,
		Address:    address,
		Timeout:    Opt(DefaultCallTimeoutMS),
		Privacy:    Opt(DefaultPrivacy),
		Screen:     Opt(DefaultScreen),
	}
}

func (*CallMake) Name() string { return "CallMake" }

func (c *CallMake) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(&c.ResourceID),
			protocol.StringField(&c.Address),
		},
		Named: []protocol.Named{
			protocol.Key("Timeout", &c.Timeout, protocol.Uint32Field),
			protocol.Key("CallingNumber", &c.CallingNumber, protocol.StringField),
			protocol.Key("CallingName", &c.CallingName, protocol.StringField),
			protocol.Key("Privacy", &c.Privacy, protocol.Uint8Field),
			protocol.Key("Screen", &c.Screen, protocol.Uint8Field),
		},
	}
}

type CallAnswer struct {
	ResourceID protocol.ResourceID
}

func NewCallAnswer(id protocol.ResourceID) *CallAnswer { return &CallAnswer{ResourceID: id} }

func (*CallAnswer) Name() string              { return "CallAnswer" }
func (c *CallAnswer) fields() protocol.Fields { return resource(&c.ResourceID) }

type CallClear struct {
	ResourceID protocol.ResourceID
	Reason     *string
}

func NewCallClear(id protocol.ResourceID) *CallClear { return &CallClear{ResourceID: id} }

func (*CallClear) Name() string { return "CallClear" }

func (c *CallClear) fields() protocol.Fields {
	fs := resource(&c.ResourceID)
	fs.Named = []protocol.Named{
		protocol.Key("Reason", &c.Reason, protocol.StringField),
	}
	return fs
}

// CallTransferConsultation joins the call on ResourceID with the consultation
// call on OtherResourceID.
type CallTransferConsultation struct {
	ResourceID      protocol.ResourceID
	OtherResourceID protocol.ResourceID
}

func NewCallTransferConsultation(id, other protocol.ResourceID) *CallTransferConsultation {
	return &CallTransferConsultation{ResourceID: id, OtherResourceID: other}
}

func (*CallTransferConsultation) Name() string { return "CallTransferConsultation" }

func (c *CallTransferConsultation) fields() protocol.Fields {
	return pair(&c.ResourceID, &c.OtherResourceID)
}

// CallTransferBlind redirects the call to Address without consultation.
type CallTransferBlind struct {
	ResourceID protocol.ResourceID
	Address    string
	UseH450    *bool
}

// NewCallTransferBlind builds a CallTransferBlind with UseH450 enabled.
func NewCallTransferBlind(id protocol.ResourceID, address string) *CallTransferBlind {
	return &CallTransferBlind{
		ResourceID: id,
		Address:    address,
		UseH450:    Opt(DefaultUseH450),
	}
}

func (*CallTransferBlind) Name() string { return "CallTransferBlind" }

func (c *CallTransferBlind) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(&c.ResourceID),
			protocol.StringField(&c.Address),
		},
		Named: []protocol.Named{
			protocol.Key("UseH450", &c.UseH450, protocol.BoolField),
		},
	}
}

type CallHold struct {
	ResourceID protocol.ResourceID
}

func NewCallHold(id protocol.ResourceID) *CallHold { return &CallHold{ResourceID: id} }

func (*CallHold) Name() string              { return "CallHold" }
func (c *CallHold) fields() protocol.Fields { return resource(&c.ResourceID) }

type CallRetrieve struct {
	ResourceID protocol.ResourceID
}

func NewCallRetrieve(id protocol.ResourceID) *CallRetrieve { return &CallRetrieve{ResourceID: id} }

func (*CallRetrieve) Name() string              { return "CallRetrieve" }
func (c *CallRetrieve) fields() protocol.Fields { return resource(&c.ResourceID) }

// DTMFTiming holds the optional tone timing shared by the DTMF commands.
type DTMFTiming struct {
	Duration *uint32 // ms per digit
	Delay    *uint32 // ms between digits
	Pause    *uint32 // ms for a ',' pause digit
}

// DefaultDTMFTiming is 300ms tones, 200ms gaps and 2000ms pauses.
func DefaultDTMFTiming() DTMFTiming {
	return DTMFTiming{
		Duration: Opt(DefaultDTMFDurationMS),
		Delay:    Opt(DefaultDTMFDelayMS),
		Pause:    Opt(DefaultDTMFPauseMS),
	}
}

func (t *DTMFTiming) named() []protocol.Named {
	return []protocol.Named{
		protocol.Key("Duration", &t.Duration, protocol.Uint32Field),
		protocol.Key("Delay", &t.Delay, protocol.Uint32Field),
		protocol.Key("Pause", &t.Pause, protocol.Uint32Field),
	}
}

// CallSendDTMF plays Digits into the call. The server answers with
// ECallSendDTMFFinished.
type CallSendDTMF struct {
	ResourceID protocol.ResourceID
	Digits     string
	DTMFTiming
}

func NewCallSendDTMF(id protocol.ResourceID, digits string) *CallSendDTMF {
	return &CallSendDTMF{ResourceID: id, Digits: digits, DTMFTiming: DefaultDTMFTiming()}
}

func (*CallSendDTMF) Name() string { return "CallSendDTMF" }

func (c *CallSendDTMF) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(&c.ResourceID),
			protocol.StringField(&c.Digits),
		},
		Named: c.DTMFTiming.named(),
	}
}

type CallStopActivity struct {
	ResourceID protocol.ResourceID
}

func NewCallStopActivity(id protocol.ResourceID) *CallStopActivity {
	return &CallStopActivity{ResourceID: id}
}

func (*CallStopActivity) Name() string              { return "CallStopActivity" }
func (c *CallStopActivity) fields() protocol.Fields { return resource(&c.ResourceID) }

// CallT38Relay relays T.38 fax between two front-ends.
type CallT38Relay struct {
	ResourceID      protocol.ResourceID
	OtherResourceID protocol.ResourceID
}

func NewCallT38Relay(id, other protocol.ResourceID) *CallT38Relay {
	return &CallT38Relay{ResourceID: id, OtherResourceID: other}
}

func (*CallT38Relay) Name() string              { return "CallT38Relay" }
func (c *CallT38Relay) fields() protocol.Fields { return pair(&c.ResourceID, &c.OtherResourceID) }

type CallsSetAlertingType struct {
	ResourceID   protocol.ResourceID
	AlertingType string
}

func NewCallsSetAlertingType(id protocol.ResourceID, alertingType string) *CallsSetAlertingType {
	return &CallsSetAlertingType{ResourceID: id, AlertingType: alertingType}
}

func (*CallsSetAlertingType) Name() string { return "CallsSetAlertingType" }

func (c *CallsSetAlertingType) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(&c.ResourceID),
			protocol.StringField(&c.AlertingType),
		},
	}
}

// CallsSetAccepting toggles whether the front-end accepts incoming calls.
type CallsSetAccepting struct {
	ResourceID protocol.ResourceID
	Accepting  bool
}

func NewCallsSetAccepting(id protocol.ResourceID, accepting bool) *CallsSetAccepting {
	return &CallsSetAccepting{ResourceID: id, Accepting: accepting}
}

func (*CallsSetAccepting) Name() string { return "CallsSetAccepting" }

func (c *CallsSetAccepting) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(&c.ResourceID),
			protocol.BoolField(&c.Accepting),
		},
	}
}

func pair(a, b *protocol.ResourceID) protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(a),
			protocol.ResourceField(b),
		},
	}
}
