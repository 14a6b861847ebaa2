package command

import "github.com/danmuck/gridctl/internal/protocol"

// AudioSend routes audio from ResourceID to DestinationResourceID.
type AudioSend struct {
	ResourceID            protocol.ResourceID
	DestinationResourceID protocol.ResourceID
}

func NewAudioSend(id, destination protocol.ResourceID) *AudioSend {
	return &AudioSend{ResourceID: id, DestinationResourceID: destination}
}

func (*AudioSend) Name() string              { return "AudioSend" }
func (c *AudioSend) fields() protocol.Fields { return pair(&c.ResourceID, &c.DestinationResourceID) }

type AudioCancel struct {
	ResourceID            protocol.ResourceID
	DestinationResourceID protocol.ResourceID
}

func NewAudioCancel(id, destination protocol.ResourceID) *AudioCancel {
	return &AudioCancel{ResourceID: id, DestinationResourceID: destination}
}

func (*AudioCancel) Name() string              { return "AudioCancel" }
func (c *AudioCancel) fields() protocol.Fields { return pair(&c.ResourceID, &c.DestinationResourceID) }

// AudioLevelNotificationSend subscribes to EAudioLevelNotification for the
// resource, optionally every Interval ms.
type AudioLevelNotificationSend struct {
	ResourceID protocol.ResourceID
	Interval   *uint32
}

func NewAudioLevelNotificationSend(id protocol.ResourceID) *AudioLevelNotificationSend {
	return &AudioLevelNotificationSend{ResourceID: id}
}

func (*AudioLevelNotificationSend) Name() string { return "AudioLevelNotificationSend" }

func (c *AudioLevelNotificationSend) fields() protocol.Fields {
	fs := resource(&c.ResourceID)
	fs.Named = []protocol.Named{
		protocol.Key("Interval", &c.Interval, protocol.Uint32Field),
	}
	return fs
}

type AudioLevelNotificationCancel struct {
	ResourceID protocol.ResourceID
}

func NewAudioLevelNotificationCancel(id protocol.ResourceID) *AudioLevelNotificationCancel {
	return &AudioLevelNotificationCancel{ResourceID: id}
}

func (*AudioLevelNotificationCancel) Name() string              { return "AudioLevelNotificationCancel" }
func (c *AudioLevelNotificationCancel) fields() protocol.Fields { return resource(&c.ResourceID) }

type InBandSignalingDetectionEnable struct {
	ResourceID protocol.ResourceID
}

func NewInBandSignalingDetectionEnable(id protocol.ResourceID) *InBandSignalingDetectionEnable {
	return &InBandSignalingDetectionEnable{ResourceID: id}
}

func (*InBandSignalingDetectionEnable) Name() string              { return "InBandSignalingDetectionEnable" }
func (c *InBandSignalingDetectionEnable) fields() protocol.Fields { return resource(&c.ResourceID) }

type InBandSignalingDetectionDisable struct {
	ResourceID protocol.ResourceID
}

func NewInBandSignalingDetectionDisable(id protocol.ResourceID) *InBandSignalingDetectionDisable {
	return &InBandSignalingDetectionDisable{ResourceID: id}
}

func (*InBandSignalingDetectionDisable) Name() string              { return "InBandSignalingDetectionDisable" }
func (c *InBandSignalingDetectionDisable) fields() protocol.Fields { return resource(&c.ResourceID) }

// GetRtpStatistics requests RTP counters for an RTP channel.
type GetRtpStatistics struct {
	ResourceID protocol.ResourceID
}

func NewGetRtpStatistics(id protocol.ResourceID) *GetRtpStatistics {
	return &GetRtpStatistics{ResourceID: id}
}

func (*GetRtpStatistics) Name() string              { return "GetRtpStatistics" }
func (c *GetRtpStatistics) fields() protocol.Fields { return resource(&c.ResourceID) }
