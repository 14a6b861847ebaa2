package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/gridctl/internal/client"
)

type fileBackoff struct {
	InitialDelay string  `toml:"initial_delay"`
	Multiplier   float64 `toml:"multiplier"`
	MaxDelay     string  `toml:"max_delay"`
	Jitter       bool    `toml:"jitter"`
}

type fileConfig struct {
	Server               string      `toml:"server"`
	ControlPort          uint16      `toml:"control_port"`
	TransportChannelPort uint16      `toml:"transport_channel_port"`
	Username             string      `toml:"username"`
	Password             string      `toml:"password"`
	ProtocolMajorVersion uint16      `toml:"protocol_major_version"`
	ProtocolMinorVersion uint16      `toml:"protocol_minor_version"`
	ConnectTimeout       string      `toml:"connect_timeout"`
	WriteTimeout         string      `toml:"write_timeout"`
	EventBuffer          int         `toml:"event_buffer"`
	JournalSize          int         `toml:"journal_size"`
	ConnectAttempts      int         `toml:"connect_attempts"`
	MetricsAddr          string      `toml:"metrics_addr"`
	Backoff              fileBackoff `toml:"backoff"`
}

// runConfig is everything a gridctl subcommand needs: the client settings
// plus the options that only the CLI consumes.
type runConfig struct {
	Client          client.Config
	ConnectAttempts int
	MetricsAddr     string
}

func defaultRunConfig() runConfig {
	return runConfig{Client: client.DefaultConfig(), ConnectAttempts: 1}
}

// loadRunConfig overlays the keys defined in path onto the defaults. Keys
// left out of the file keep their default values.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load gridctl config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return runConfig{}, fmt.Errorf("load gridctl config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("server") {
		cfg.Client.Server = strings.TrimSpace(raw.Server)
	}
	if meta.IsDefined("control_port") {
		cfg.Client.ControlPort = raw.ControlPort
	}
	if meta.IsDefined("transport_channel_port") {
		cfg.Client.TransportChannelPort = raw.TransportChannelPort
	}
	if meta.IsDefined("username") {
		cfg.Client.Username = strings.TrimSpace(raw.Username)
	}
	if meta.IsDefined("password") {
		cfg.Client.Password = raw.Password
	}
	if meta.IsDefined("protocol_major_version") {
		cfg.Client.ProtocolMajorVersion = raw.ProtocolMajorVersion
	}
	if meta.IsDefined("protocol_minor_version") {
		cfg.Client.ProtocolMinorVersion = raw.ProtocolMinorVersion
	}
	if meta.IsDefined("event_buffer") {
		cfg.Client.EventBuffer = raw.EventBuffer
	}
	if meta.IsDefined("journal_size") {
		cfg.Client.JournalSize = raw.JournalSize
	}
	if meta.IsDefined("connect_attempts") {
		cfg.ConnectAttempts = raw.ConnectAttempts
	}
	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}
	if meta.IsDefined("backoff", "multiplier") {
		cfg.Client.Backoff.Multiplier = raw.Backoff.Multiplier
	}
	if meta.IsDefined("backoff", "jitter") {
		cfg.Client.Backoff.Jitter = raw.Backoff.Jitter
	}

	durations := []struct {
		key []string
		raw string
		dst *time.Duration
	}{
		{[]string{"connect_timeout"}, raw.ConnectTimeout, &cfg.Client.ConnectTimeout},
		{[]string{"write_timeout"}, raw.WriteTimeout, &cfg.Client.WriteTimeout},
		{[]string{"backoff", "initial_delay"}, raw.Backoff.InitialDelay, &cfg.Client.Backoff.InitialDelay},
		{[]string{"backoff", "max_delay"}, raw.Backoff.MaxDelay, &cfg.Client.Backoff.MaxDelay},
	}
	for _, d := range durations {
		if !meta.IsDefined(d.key...) {
			continue
		}
		v, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return runConfig{}, fmt.Errorf("parse %s: %w", strings.Join(d.key, "."), err)
		}
		*d.dst = v
	}

	if cfg.ConnectAttempts < 1 {
		return runConfig{}, fmt.Errorf("connect_attempts must be >= 1")
	}
	return cfg, nil
}
