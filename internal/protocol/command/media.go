package command

import "github.com/danmuck/gridctl/internal/protocol"

// StreamFormat describes raw audio exchanged over a transport channel.
type StreamFormat struct {
	SampleRate  *protocol.SampleRate
	Channels    *protocol.Channels
	PayloadType *protocol.PayloadType
}

func (f *StreamFormat) named() []protocol.Named {
	return []protocol.Named{
		protocol.Key("SampleRate", &f.SampleRate, protocol.SampleRateField),
		protocol.Key("Channels", &f.Channels, protocol.ChannelsField),
		protocol.Key("PayloadType", &f.PayloadType, protocol.PayloadTypeField),
	}
}

// PlayFile plays a server-side audio file.
type PlayFile struct {
	ResourceID protocol.ResourceID
	FileName   string
	Loop       *bool
}

func NewPlayFile(id protocol.ResourceID, fileName string) *PlayFile {
	return &PlayFile{ResourceID: id, FileName: fileName}
}

func (*PlayFile) Name() string { return "PlayFile" }

func (c *PlayFile) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(&c.ResourceID),
			protocol.StringField(&c.FileName),
		},
		Named: []protocol.Named{
			protocol.Key("Loop", &c.Loop, protocol.BoolField),
		},
	}
}

// PlayStream plays audio fed through a transport channel resource.
type PlayStream struct {
	ResourceID                 protocol.ResourceID
	TransportChannelResourceID protocol.ResourceID
	StreamFormat
}

func NewPlayStream(id, transport protocol.ResourceID) *PlayStream {
	return &PlayStream{ResourceID: id, TransportChannelResourceID: transport}
}

func (*PlayStream) Name() string { return "PlayStream" }

func (c *PlayStream) fields() protocol.Fields {
	fs := pair(&c.ResourceID, &c.TransportChannelResourceID)
	fs.Named = c.StreamFormat.named()
	return fs
}

// PlayTone plays a tone of Frequency Hz for Duration ms, optionally dual-tone.
type PlayTone struct {
	ResourceID protocol.ResourceID
	Frequency  uint16
	Duration   uint32
	Frequency2 *uint16
	Volume     *uint8
}

func NewPlayTone(id protocol.ResourceID, frequency uint16, durationMS uint32) *PlayTone {
	return &PlayTone{ResourceID: id, Frequency: frequency, Duration: durationMS}
}

func (*PlayTone) Name() string { return "PlayTone" }

func (c *PlayTone) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(&c.ResourceID),
			protocol.Uint16Field(&c.Frequency),
			protocol.Uint32Field(&c.Duration),
		},
		Named: []protocol.Named{
			protocol.Key("Frequency2", &c.Frequency2, protocol.Uint16Field),
			protocol.Key("Volume", &c.Volume, protocol.Uint8Field),
		},
	}
}

type PlayStop struct {
	ResourceID protocol.ResourceID
}

func NewPlayStop(id protocol.ResourceID) *PlayStop { return &PlayStop{ResourceID: id} }

func (*PlayStop) Name() string              { return "PlayStop" }
func (c *PlayStop) fields() protocol.Fields { return resource(&c.ResourceID) }

// RecordLimits bounds a recording. Zero values are sent as given; nil omits
// the limit.
type RecordLimits struct {
	MaxDuration  *uint32 // ms
	MaxSilence   *uint32 // ms
	VoiceTrigger *bool
}

func (l *RecordLimits) named() []protocol.Named {
	return []protocol.Named{
		protocol.Key("MaxDuration", &l.MaxDuration, protocol.Uint32Field),
		protocol.Key("MaxSilence", &l.MaxSilence, protocol.Uint32Field),
		protocol.Key("VoiceTrigger", &l.VoiceTrigger, protocol.BoolField),
	}
}

type RecorderStartToFile struct {
	ResourceID protocol.ResourceID
	FileName   string
	RecordLimits
}

func NewRecorderStartToFile(id protocol.ResourceID, fileName string) *RecorderStartToFile {
	return &RecorderStartToFile{ResourceID: id, FileName: fileName}
}

func (*RecorderStartToFile) Name() string { return "RecorderStartToFile" }

func (c *RecorderStartToFile) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(&c.ResourceID),
			protocol.StringField(&c.FileName),
		},
		Named: c.RecordLimits.named(),
	}
}

type RecorderStartToStream struct {
	ResourceID                 protocol.ResourceID
	TransportChannelResourceID protocol.ResourceID
	StreamFormat
	RecordLimits
}

func NewRecorderStartToStream(id, transport protocol.ResourceID) *RecorderStartToStream {
	return &RecorderStartToStream{ResourceID: id, TransportChannelResourceID: transport}
}

func (*RecorderStartToStream) Name() string { return "RecorderStartToStream" }

func (c *RecorderStartToStream) fields() protocol.Fields {
	fs := pair(&c.ResourceID, &c.TransportChannelResourceID)
	fs.Named = append(c.StreamFormat.named(), c.RecordLimits.named()...)
	return fs
}

type RecorderStop struct {
	ResourceID protocol.ResourceID
}

func NewRecorderStop(id protocol.ResourceID) *RecorderStop { return &RecorderStop{ResourceID: id} }

func (*RecorderStop) Name() string              { return "RecorderStop" }
func (c *RecorderStop) fields() protocol.Fields { return resource(&c.ResourceID) }

// RtpChannelStartReceiving opens the local RTP receiver. Addresses left nil are
// chosen by the server and reported in ERtpChannelStartedReceiving.
type RtpChannelStartReceiving struct {
	ResourceID             protocol.ResourceID
	ReceiverDataAddress    *string
	ReceiverControlAddress *string
	PayloadType            *protocol.PayloadType
}

func NewRtpChannelStartReceiving(id protocol.ResourceID) *RtpChannelStartReceiving {
	return &RtpChannelStartReceiving{ResourceID: id}
}

func (*RtpChannelStartReceiving) Name() string { return "RtpChannelStartReceiving" }

func (c *RtpChannelStartReceiving) fields() protocol.Fields {
	fs := resource(&c.ResourceID)
	fs.Named = []protocol.Named{
		protocol.Key("ReceiverDataAddress", &c.ReceiverDataAddress, protocol.StringField),
		protocol.Key("ReceiverControlAddress", &c.ReceiverControlAddress, protocol.StringField),
		protocol.Key("PayloadType", &c.PayloadType, protocol.PayloadTypeField),
	}
	return fs
}

type RtpChannelStartSending struct {
	ResourceID           protocol.ResourceID
	RemoteDataAddress    string
	RemoteControlAddress *string
	PayloadType          *protocol.PayloadType
}

func NewRtpChannelStartSending(id protocol.ResourceID, remoteDataAddress string) *RtpChannelStartSending {
	return &RtpChannelStartSending{ResourceID: id, RemoteDataAddress: remoteDataAddress}
}

func (*RtpChannelStartSending) Name() string { return "RtpChannelStartSending" }

func (c *RtpChannelStartSending) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(&c.ResourceID),
			protocol.StringField(&c.RemoteDataAddress),
		},
		Named: []protocol.Named{
			protocol.Key("RemoteControlAddress", &c.RemoteControlAddress, protocol.StringField),
			protocol.Key("PayloadType", &c.PayloadType, protocol.PayloadTypeField),
		},
	}
}

type RtpChannelStop struct {
	ResourceID protocol.ResourceID
}

func NewRtpChannelStop(id protocol.ResourceID) *RtpChannelStop { return &RtpChannelStop{ResourceID: id} }

func (*RtpChannelStop) Name() string              { return "RtpChannelStop" }
func (c *RtpChannelStop) fields() protocol.Fields { return resource(&c.ResourceID) }

// RtpChannelSendDTMF sends Digits as RTP telephone events.
type RtpChannelSendDTMF struct {
	ResourceID protocol.ResourceID
	Digits     string
	DTMFTiming
}

func NewRtpChannelSendDTMF(id protocol.ResourceID, digits string) *RtpChannelSendDTMF {
	return &RtpChannelSendDTMF{ResourceID: id, Digits: digits, DTMFTiming: DefaultDTMFTiming()}
}

func (*RtpChannelSendDTMF) Name() string { return "RtpChannelSendDTMF" }

func (c *RtpChannelSendDTMF) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(&c.ResourceID),
			protocol.StringField(&c.Digits),
		},
		Named: c.DTMFTiming.named(),
	}
}

type SoundDeviceStart struct {
	ResourceID protocol.ResourceID
	SampleRate *protocol.SampleRate
	Channels   *protocol.Channels
}

func NewSoundDeviceStart(id protocol.ResourceID) *SoundDeviceStart {
	return &SoundDeviceStart{ResourceID: id}
}

func (*SoundDeviceStart) Name() string { return "SoundDeviceStart" }

func (c *SoundDeviceStart) fields() protocol.Fields {
	fs := resource(&c.ResourceID)
	fs.Named = []protocol.Named{
		protocol.Key("SampleRate", &c.SampleRate, protocol.SampleRateField),
		protocol.Key("Channels", &c.Channels, protocol.ChannelsField),
	}
	return fs
}

type SoundDeviceStop struct {
	ResourceID protocol.ResourceID
}

func NewSoundDeviceStop(id protocol.ResourceID) *SoundDeviceStop { return &SoundDeviceStop{ResourceID: id} }

func (*SoundDeviceStop) Name() string              { return "SoundDeviceStop" }
func (c *SoundDeviceStop) fields() protocol.Fields { return resource(&c.ResourceID) }
