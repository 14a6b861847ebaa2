package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/danmuck/gridctl/internal/client"
	"github.com/pelletier/go-toml/v2"
)

// GridConfig is the on-disk gridctl configuration. Durations are Go duration
// strings; empty or zero values keep the client defaults.
type GridConfig struct {
	Server               string        `toml:"server"`
	ControlPort          uint16        `toml:"control_port"`
	TransportChannelPort uint16        `toml:"transport_channel_port"`
	Username             string        `toml:"username"`
	Password             string        `toml:"password"`
	ProtocolMajorVersion uint16        `toml:"protocol_major_version"`
	ProtocolMinorVersion uint16        `toml:"protocol_minor_version"`
	ConnectTimeout       string        `toml:"connect_timeout"`
	WriteTimeout         string        `toml:"write_timeout"`
	EventBuffer          int           `toml:"event_buffer"`
	JournalSize          int           `toml:"journal_size"`
	ConnectAttempts      int           `toml:"connect_attempts"`
	MetricsAddr          string        `toml:"metrics_addr"`
	Backoff              BackoffConfig `toml:"backoff"`
}

type BackoffConfig struct {
	InitialDelay string  `toml:"initial_delay"`
	Multiplier   float64 `toml:"multiplier"`
	MaxDelay     string  `toml:"max_delay"`
	Jitter       *bool   `toml:"jitter"`
}

func LoadGridConfig(path string) (GridConfig, error) {
	var cfg GridConfig
	if err := loadToml(path, &cfg); err != nil {
		return GridConfig{}, err
	}
	if err := ValidateGridConfig(cfg); err != nil {
		return GridConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateGridConfig(cfg GridConfig) error {
	if s := strings.TrimSpace(cfg.Server); s != "" && net.ParseIP(s) == nil {
		return fmt.Errorf("server must be an IP address: %q", cfg.Server)
	}
	if strings.ContainsAny(cfg.Username, " \t#=") || strings.ContainsAny(cfg.Password, " \t#=") {
		return fmt.Errorf("username and password must be single tokens without '#' or '='")
	}
	if cfg.EventBuffer < 0 {
		return fmt.Errorf("event_buffer must be >= 0")
	}
	if cfg.JournalSize < 0 {
		return fmt.Errorf("journal_size must be >= 0")
	}
	if cfg.ConnectAttempts < 0 {
		return fmt.Errorf("connect_attempts must be >= 0")
	}
	if cfg.Backoff.Multiplier != 0 && cfg.Backoff.Multiplier < 1 {
		return fmt.Errorf("backoff.multiplier must be >= 1")
	}
	for key, raw := range map[string]string{
		"connect_timeout":       cfg.ConnectTimeout,
		"write_timeout":         cfg.WriteTimeout,
		"backoff.initial_delay": cfg.Backoff.InitialDelay,
		"backoff.max_delay":     cfg.Backoff.MaxDelay,
	} {
		if _, err := parseDuration(raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// Apply overlays every non-zero value onto base.
func (cfg GridConfig) Apply(base client.Config) (client.Config, error) {
	if err := ValidateGridConfig(cfg); err != nil {
		return client.Config{}, err
	}
	out := base
	if s := strings.TrimSpace(cfg.Server); s != "" {
		out.Server = s
	}
	if cfg.ControlPort != 0 {
		out.ControlPort = cfg.ControlPort
	}
	if cfg.TransportChannelPort != 0 {
		out.TransportChannelPort = cfg.TransportChannelPort
	}
	if cfg.Username != "" {
		out.Username = cfg.Username
	}
	if cfg.Password != "" {
		out.Password = cfg.Password
	}
	if cfg.ProtocolMajorVersion != 0 {
		out.ProtocolMajorVersion = cfg.ProtocolMajorVersion
	}
	if cfg.ProtocolMinorVersion != 0 {
		out.ProtocolMinorVersion = cfg.ProtocolMinorVersion
	}
	if cfg.EventBuffer != 0 {
		out.EventBuffer = cfg.EventBuffer
	}
	if cfg.JournalSize != 0 {
		out.JournalSize = cfg.JournalSize
	}
	if cfg.Backoff.Multiplier != 0 {
		out.Backoff.Multiplier = cfg.Backoff.Multiplier
	}
	if cfg.Backoff.Jitter != nil {
		out.Backoff.Jitter = *cfg.Backoff.Jitter
	}
	durations := []struct {
		raw string
		dst *time.Duration
	}{
		{cfg.ConnectTimeout, &out.ConnectTimeout},
		{cfg.WriteTimeout, &out.WriteTimeout},
		{cfg.Backoff.InitialDelay, &out.Backoff.InitialDelay},
		{cfg.Backoff.MaxDelay, &out.Backoff.MaxDelay},
	}
	for _, d := range durations {
		v, _ := parseDuration(d.raw)
		if v != 0 {
			*d.dst = v
		}
	}
	return out, nil
}

func parseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return d, nil
}
