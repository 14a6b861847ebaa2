package client

import (
	"time"

	"github.com/danmuck/gridctl/internal/protocol"
	"github.com/rs/zerolog"
)

// BackoffConfig defines connect retry backoff behavior.
type BackoffConfig struct {
	InitialDelay time.Duration
	Multiplier   float64
	MaxDelay     time.Duration
	Jitter       bool
}

// Config defines where and how the client connects.
//
// The default Username and Password are the server's example account and are
// not safe outside a lab.
type Config struct {
	Server               string
	ControlPort          uint16
	TransportChannelPort uint16

	Username             string
	Password             string
	ProtocolMajorVersion uint16
	ProtocolMinorVersion uint16

	ConnectTimeout time.Duration
	// WriteTimeout bounds one command write; 0 disables the deadline. A
	// blocked write is still released by Disconnect.
	WriteTimeout time.Duration
	// EventBuffer is the capacity of each connection's event channel.
	EventBuffer int
	// JournalSize bounds the sent-command journal; 0 disables it.
	JournalSize int
	Backoff     BackoffConfig

	// Logger defaults to the global logger tagged component=client.
	Logger *zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		Server:               "127.0.0.1",
		ControlPort:          protocol.DefaultControlPort,
		TransportChannelPort: protocol.DefaultTransportChannelPort,
		Username:             protocol.DefaultUsername,
		Password:             protocol.DefaultPassword,
		ProtocolMajorVersion: protocol.DefaultProtocolMajorVersion,
		ProtocolMinorVersion: protocol.DefaultProtocolMinorVersion,
		ConnectTimeout:       5 * time.Second,
		WriteTimeout:         15 * time.Second,
		EventBuffer:          64,
		JournalSize:          256,
		Backoff: BackoffConfig{
			InitialDelay: 250 * time.Millisecond,
			Multiplier:   2.0,
			MaxDelay:     5 * time.Second,
			Jitter:       true,
		},
	}
}

// UsesDefaultCredentials reports whether the example account is configured.
func (c Config) UsesDefaultCredentials() bool {
	return c.Username == protocol.DefaultUsername && c.Password == protocol.DefaultPassword
}
