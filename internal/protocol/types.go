package protocol

import "fmt"

// SessionID is the server-assigned session handle. The client never creates one;
// it first appears in an ESessionCreated event.
type SessionID uint32

// ResourceID is the server-assigned resource handle, valid from EResourceCreated
// until the matching EResourceDeleted.
type ResourceID uint32

// SampleRate is an audio sample rate in Hz.
type SampleRate uint16

// Coded is implemented by every closed enumeration carried on the wire.
type Coded interface {
	comparable
	Code() int
}

// Channels is the audio channel count.
type Channels uint8

const (
	ChannelsMono   Channels = 1
	ChannelsStereo Channels = 2
)

var channelsNames = map[Channels]string{
	ChannelsMono:   "Mono",
	ChannelsStereo: "Stereo",
}

// ChannelsFromCode returns the Channels value for code.
func ChannelsFromCode(code int) (Channels, error) {
	return fromCode("Channels", channelsNames, code, 0xff)
}

func (c Channels) Code() int      { return int(c) }
func (c Channels) String() string { return enumString(channelsNames, c) }

// ECM is the fax error-correction mode.
type ECM uint8

const (
	ECMDisabled ECM = 0
	ECMEnabled  ECM = 1
)

var ecmNames = map[ECM]string{
	ECMDisabled: "Disabled",
	ECMEnabled:  "Enabled",
}

// ECMFromCode returns the ECM value for code.
func ECMFromCode(code int) (ECM, error) {
	return fromCode("ECM", ecmNames, code, 0xff)
}

func (e ECM) Code() int      { return int(e) }
func (e ECM) String() string { return enumString(ecmNames, e) }

// PayloadType is the RTP payload type of a media stream.
type PayloadType uint8

const (
	PayloadPCMU PayloadType = 0
	PayloadGSM  PayloadType = 3
	PayloadG723 PayloadType = 4
	PayloadPCMA PayloadType = 8
	PayloadG722 PayloadType = 9
	PayloadG728 PayloadType = 15
	PayloadG729 PayloadType = 18
)

var payloadTypeNames = map[PayloadType]string{
	PayloadPCMU: "PCMU",
	PayloadGSM:  "GSM",
	PayloadG723: "G723",
	PayloadPCMA: "PCMA",
	PayloadG722: "G722",
	PayloadG728: "G728",
	PayloadG729: "G729",
}

// PayloadTypeFromCode returns the PayloadType value for code.
func PayloadTypeFromCode(code int) (PayloadType, error) {
	return fromCode("PayloadType", payloadTypeNames, code, 0x7f)
}

func (p PayloadType) Code() int      { return int(p) }
func (p PayloadType) String() string { return enumString(payloadTypeNames, p) }

// FaxSpeed is a fax transmission bit rate. The wire code is the rate in bit/s.
type FaxSpeed uint16

const (
	FaxSpeed2400  FaxSpeed = 2400
	FaxSpeed4800  FaxSpeed = 4800
	FaxSpeed7200  FaxSpeed = 7200
	FaxSpeed9600  FaxSpeed = 9600
	FaxSpeed12000 FaxSpeed = 12000
	FaxSpeed14400 FaxSpeed = 14400
)

var faxSpeedNames = map[FaxSpeed]string{
	FaxSpeed2400:  "2400",
	FaxSpeed4800:  "4800",
	FaxSpeed7200:  "7200",
	FaxSpeed9600:  "9600",
	FaxSpeed12000: "12000",
	FaxSpeed14400: "14400",
}

// FaxSpeedFromCode returns the FaxSpeed value for code.
func FaxSpeedFromCode(code int) (FaxSpeed, error) {
	return fromCode("FaxSpeed", faxSpeedNames, code, 0xffff)
}

func (s FaxSpeed) Code() int      { return int(s) }
func (s FaxSpeed) String() string { return enumString(faxSpeedNames, s) }

// PaperSize is the page size a document is prepared for.
type PaperSize uint8

const (
	PaperA4 PaperSize = 0
	PaperB4 PaperSize = 1
	PaperA3 PaperSize = 2
)

var paperSizeNames = map[PaperSize]string{
	PaperA4: "A4",
	PaperB4: "B4",
	PaperA3: "A3",
}

// PaperSizeFromCode returns the PaperSize value for code.
func PaperSizeFromCode(code int) (PaperSize, error) {
	return fromCode("PaperSize", paperSizeNames, code, 0xff)
}

func (p PaperSize) Code() int      { return int(p) }
func (p PaperSize) String() string { return enumString(paperSizeNames, p) }

// Resolution is the vertical resolution a document is prepared for.
type Resolution uint8

const (
	ResolutionStandard  Resolution = 0
	ResolutionFine      Resolution = 1
	ResolutionSuperFine Resolution = 2
)

var resolutionNames = map[Resolution]string{
	ResolutionStandard:  "Standard",
	ResolutionFine:      "Fine",
	ResolutionSuperFine: "SuperFine",
}

// ResolutionFromCode returns the Resolution value for code.
func ResolutionFromCode(code int) (Resolution, error) {
	return fromCode("Resolution", resolutionNames, code, 0xff)
}

func (r Resolution) Code() int      { return int(r) }
func (r Resolution) String() string { return enumString(resolutionNames, r) }

// StreamBufferState reports the fill level of a streaming buffer.
type StreamBufferState uint8

const (
	StreamBufferEmpty StreamBufferState = 0
	StreamBufferLow   StreamBufferState = 1
	StreamBufferHigh  StreamBufferState = 2
	StreamBufferFull  StreamBufferState = 3
)

var streamBufferStateNames = map[StreamBufferState]string{
	StreamBufferEmpty: "Empty",
	StreamBufferLow:   "Low",
	StreamBufferHigh:  "High",
	StreamBufferFull:  "Full",
}

// StreamBufferStateFromCode returns the StreamBufferState value for code.
func StreamBufferStateFromCode(code int) (StreamBufferState, error) {
	return fromCode("StreamBufferState", streamBufferStateNames, code, 0xff)
}

func (s StreamBufferState) Code() int      { return int(s) }
func (s StreamBufferState) String() string { return enumString(streamBufferStateNames, s) }

// RecorderStopReason tells why a recorder stopped.
type RecorderStopReason uint8

const (
	RecorderStopRequested   RecorderStopReason = 0
	RecorderStopMaxDuration RecorderStopReason = 1
	RecorderStopMaxSilence  RecorderStopReason = 2
	RecorderStopError       RecorderStopReason = 3
)

var recorderStopReasonNames = map[RecorderStopReason]string{
	RecorderStopRequested:   "Requested",
	RecorderStopMaxDuration: "MaxDuration",
	RecorderStopMaxSilence:  "MaxSilence",
	RecorderStopError:       "Error",
}

// RecorderStopReasonFromCode returns the RecorderStopReason value for code.
func RecorderStopReasonFromCode(code int) (RecorderStopReason, error) {
	return fromCode("RecorderStopReason", recorderStopReasonNames, code, 0xff)
}

func (r RecorderStopReason) Code() int      { return int(r) }
func (r RecorderStopReason) String() string { return enumString(recorderStopReasonNames, r) }

func fromCode[T ~uint8 | ~uint16](enum string, names map[T]string, code int, max int) (T, error) {
	if code < 0 || code > max {
		return 0, &ValueError{Enum: enum, Code: code}
	}
	v := T(code)
	if _, ok := names[v]; !ok {
		return 0, &ValueError{Enum: enum, Code: code}
	}
	return v, nil
}

func enumString[T ~uint8 | ~uint16](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%d", v)
}
