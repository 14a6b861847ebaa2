package command

import "github.com/danmuck/gridctl/internal/protocol"

// ResourceCreateFrontEnd creates a call front-end. Address optionally binds the
// front-end to a local signaling address.
type ResourceCreateFrontEnd struct {
	Address *string
}

func (*ResourceCreateFrontEnd) Name() string { return "ResourceCreateFrontEnd" }

func (c *ResourceCreateFrontEnd) fields() protocol.Fields {
	return protocol.Fields{
		Named: []protocol.Named{
			protocol.Key("Address", &c.Address, protocol.StringField),
		},
	}
}

type ResourceCreatePlayer struct{}

func (*ResourceCreatePlayer) Name() string            { return "ResourceCreatePlayer" }
func (*ResourceCreatePlayer) fields() protocol.Fields { return protocol.Fields{} }

type ResourceCreateRecorder struct{}

func (*ResourceCreateRecorder) Name() string            { return "ResourceCreateRecorder" }
func (*ResourceCreateRecorder) fields() protocol.Fields { return protocol.Fields{} }

// ResourceCreateTransportChannel creates a channel that streams raw audio over
// the transport-channel port.
type ResourceCreateTransportChannel struct {
	SampleRate *protocol.SampleRate
	Channels   *protocol.Channels
}

func (*ResourceCreateTransportChannel) Name() string { return "ResourceCreateTransportChannel" }

func (c *ResourceCreateTransportChannel) fields() protocol.Fields {
	return protocol.Fields{
		Named: []protocol.Named{
			protocol.Key("SampleRate", &c.SampleRate, protocol.SampleRateField),
			protocol.Key("Channels", &c.Channels, protocol.ChannelsField),
		},
	}
}

type ResourceCreateRtpChannel struct {
	PayloadType *protocol.PayloadType
}

func (*ResourceCreateRtpChannel) Name() string { return "ResourceCreateRtpChannel" }

func (c *ResourceCreateRtpChannel) fields() protocol.Fields {
	return protocol.Fields{
		Named: []protocol.Named{
			protocol.Key("PayloadType", &c.PayloadType, protocol.PayloadTypeField),
		},
	}
}

type ResourceCreateSoundDevice struct {
	Device *string
}

func (*ResourceCreateSoundDevice) Name() string { return "ResourceCreateSoundDevice" }

func (c *ResourceCreateSoundDevice) fields() protocol.Fields {
	return protocol.Fields{
		Named: []protocol.Named{
			protocol.Key("Device", &c.Device, protocol.StringField),
		},
	}
}

type ResourceCreateFax struct{}

func (*ResourceCreateFax) Name() string            { return "ResourceCreateFax" }
func (*ResourceCreateFax) fields() protocol.Fields { return protocol.Fields{} }

type ResourceCreateDocument struct{}

func (*ResourceCreateDocument) Name() string            { return "ResourceCreateDocument" }
func (*ResourceCreateDocument) fields() protocol.Fields { return protocol.Fields{} }

// ResourceDelete releases a resource. The server answers with EResourceDeleted.
type ResourceDelete struct {
	ResourceID protocol.ResourceID
}

func NewResourceDelete(id protocol.ResourceID) *ResourceDelete {
	return &ResourceDelete{ResourceID: id}
}

func (*ResourceDelete) Name() string              { return "ResourceDelete" }
func (c *ResourceDelete) fields() protocol.Fields { return resource(&c.ResourceID) }

type ResourceGetStatus struct {
	ResourceID protocol.ResourceID
}

func NewResourceGetStatus(id protocol.ResourceID) *ResourceGetStatus {
	return &ResourceGetStatus{ResourceID: id}
}

func (*ResourceGetStatus) Name() string              { return "ResourceGetStatus" }
func (c *ResourceGetStatus) fields() protocol.Fields { return resource(&c.ResourceID) }
