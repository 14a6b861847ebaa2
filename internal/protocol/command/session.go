package command

import "github.com/danmuck/gridctl/internal/protocol"

// ProtocolVersion asks the server for the protocol version it speaks.
type ProtocolVersion struct{}

func (*ProtocolVersion) Name() string            { return "ProtocolVersion" }
func (*ProtocolVersion) fields() protocol.Fields { return protocol.Fields{} }

// GetVersion asks the server for its product version.
type GetVersion struct{}

func (*GetVersion) Name() string            { return "GetVersion" }
func (*GetVersion) fields() protocol.Fields { return protocol.Fields{} }

// Login opens a session. The server answers with ESessionCreated.
type Login struct {
	Username             string
	Password             string
	ProtocolMajorVersion *uint16
	ProtocolMinorVersion *uint16
	ProtocolRevision     *uint16
}

// NewLogin builds a Login for protocol version 2.3 with no revision.
func NewLogin(username, password string) *Login {
	return &Login{
		Username:             username,
		Password:             password,
		ProtocolMajorVersion: Opt(protocol.DefaultProtocolMajorVersion),
		ProtocolMinorVersion: Opt(protocol.DefaultProtocolMinorVersion),
	}
}

func (*Login) Name() string { return "Login" }

func (c *Login) fields() protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.StringField(&c.Username),
			protocol.StringField(&c.Password),
		},
		Named: []protocol.Named{
			protocol.Key("ProtocolMajorVersion", &c.ProtocolMajorVersion, protocol.Uint16Field),
			protocol.Key("ProtocolMinorVersion", &c.ProtocolMinorVersion, protocol.Uint16Field),
			protocol.Key("ProtocolRevision", &c.ProtocolRevision, protocol.Uint16Field),
		},
	}
}

// Logout closes the current session.
type Logout struct{}

func (*Logout) Name() string            { return "Logout" }
func (*Logout) fields() protocol.Fields { return protocol.Fields{} }

// Quit asks the server to close the control connection.
type Quit struct{}

func (*Quit) Name() string            { return "Quit" }
func (*Quit) fields() protocol.Fields { return protocol.Fields{} }
