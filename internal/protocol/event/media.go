package event

import "github.com/danmuck/gridctl/internal/protocol"

func init() {
	register(
		func() Event { return &PlayerStarted{} },
		func() Event { return &PlayerStopped{} },
		func() Event { return &PlayerError{} },
		func() Event { return &RecorderStarted{} },
		func() Event { return &RecorderStopped{} },
		func() Event { return &RecorderError{} },
		func() Event { return &RecorderVoiceTrigger{} },
		func() Event { return &RtpChannelStartedReceiving{} },
		func() Event { return &RtpChannelStartedSending{} },
		func() Event { return &RtpChannelSendDTMFFinished{} },
		func() Event { return &RtpChannelReceivedDTMF{} },
		func() Event { return &RtpChannelStopped{} },
		func() Event { return &SoundDeviceStarted{} },
		func() Event { return &SoundDeviceStopped{} },
		func() Event { return &SoundDeviceError{} },
	)
}

type PlayerStarted struct{ ResourceHeader }

func (*PlayerStarted) Name() string { return "EPlayerStarted" }

type PlayerStopped struct{ ResourceHeader }

func (*PlayerStopped) Name() string { return "EPlayerStopped" }

type PlayerError struct {
	ResourceHeader
	ErrorText string
}

func (*PlayerError) Name() string { return "EPlayerError" }

func (e *PlayerError) fields() protocol.Fields {
	return e.with(protocol.StringField(&e.ErrorText))
}

type RecorderStarted struct{ ResourceHeader }

func (*RecorderStarted) Name() string { return "ERecorderStarted" }

// RecorderStopped reports why a recording ended.
type RecorderStopped struct {
	ResourceHeader
	Reason protocol.RecorderStopReason
}

func (*RecorderStopped) Name() string { return "ERecorderStopped" }

func (e *RecorderStopped) fields() protocol.Fields {
	return e.with(protocol.RecorderStopReasonField(&e.Reason))
}

type RecorderError struct {
	ResourceHeader
	ErrorText string
}

func (*RecorderError) Name() string { return "ERecorderError" }

func (e *RecorderError) fields() protocol.Fields {
	return e.with(protocol.StringField(&e.ErrorText))
}

type RecorderVoiceTrigger struct{ ResourceHeader }

func (*RecorderVoiceTrigger) Name() string { return "ERecorderVoiceTrigger" }

// RtpChannelStartedReceiving reports the local addresses the server bound.
type RtpChannelStartedReceiving struct {
	ResourceHeader
	ReceiverDataAddress    string
	ReceiverControlAddress *string
	RtpPayloadType         *protocol.PayloadType
}

func (*RtpChannelStartedReceiving) Name() string { return "ERtpChannelStartedReceiving" }

func (e *RtpChannelStartedReceiving) fields() protocol.Fields {
	fs := e.with(protocol.StringField(&e.ReceiverDataAddress))
	fs.Named = []protocol.Named{
		protocol.Key("ReceiverControlAddress", &e.ReceiverControlAddress, protocol.StringField),
		protocol.Key("RtpPayloadType", &e.RtpPayloadType, protocol.PayloadTypeField),
	}
	return fs
}

type RtpChannelStartedSending struct {
	ResourceHeader
	SenderControlAddress *string
	RtpPayloadType       *protocol.PayloadType
}

func (*RtpChannelStartedSending) Name() string { return "ERtpChannelStartedSending" }

func (e *RtpChannelStartedSending) fields() protocol.Fields {
	fs := e.with()
	fs.Named = []protocol.Named{
		protocol.Key("SenderControlAddress", &e.SenderControlAddress, protocol.StringField),
		protocol.Key("RtpPayloadType", &e.RtpPayloadType, protocol.PayloadTypeField),
	}
	return fs
}

type RtpChannelSendDTMFFinished struct{ ResourceHeader }

func (*RtpChannelSendDTMFFinished) Name() string { return "ERtpChannelSendDTMFFinished" }

type RtpChannelReceivedDTMF struct {
	ResourceHeader
	Key      string
	Duration *uint16 // ms
}

func (*RtpChannelReceivedDTMF) Name() string { return "ERtpChannelReceivedDTMF" }

func (e *RtpChannelReceivedDTMF) fields() protocol.Fields {
	return keyed(&e.ResourceHeader, &e.Key, &e.Duration)
}

type RtpChannelStopped struct{ ResourceHeader }

func (*RtpChannelStopped) Name() string { return "ERtpChannelStopped" }

type SoundDeviceStarted struct{ ResourceHeader }

func (*SoundDeviceStarted) Name() string { return "ESoundDeviceStarted" }

type SoundDeviceStopped struct{ ResourceHeader }

func (*SoundDeviceStopped) Name() string { return "ESoundDeviceStopped" }

type SoundDeviceError struct{ ResourceHeader }

func (*SoundDeviceError) Name() string { return "ESoundDeviceError" }
