package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/gridctl/internal/client"
	"github.com/danmuck/gridctl/internal/config"
	"github.com/danmuck/gridctl/internal/testutil/testlog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadRunConfigDefaultsAndOverrides(t *testing.T) {
	testlog.Start(t)
	cfg, err := loadRunConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	def := client.DefaultConfig()

	if cfg.Client.Server != "10.0.0.5" {
		t.Fatalf("unexpected server: %q", cfg.Client.Server)
	}
	if cfg.Client.ControlPort != 2234 {
		t.Fatalf("unexpected control port: %d", cfg.Client.ControlPort)
	}
	if cfg.Client.TransportChannelPort != def.TransportChannelPort {
		t.Fatalf("expected default transport port, got %d", cfg.Client.TransportChannelPort)
	}
	if cfg.Client.Username != "operator" || cfg.Client.Password != "s3cret" {
		t.Fatalf("unexpected credentials: %q/%q", cfg.Client.Username, cfg.Client.Password)
	}
	if cfg.Client.ProtocolMajorVersion != def.ProtocolMajorVersion || cfg.Client.ProtocolMinorVersion != 4 {
		t.Fatalf("unexpected protocol version: %d.%d", cfg.Client.ProtocolMajorVersion, cfg.Client.ProtocolMinorVersion)
	}
	if cfg.Client.ConnectTimeout != 2*time.Second {
		t.Fatalf("unexpected connect timeout: %v", cfg.Client.ConnectTimeout)
	}
	if cfg.Client.WriteTimeout != def.WriteTimeout {
		t.Fatalf("expected default write timeout, got %v", cfg.Client.WriteTimeout)
	}
	if cfg.Client.EventBuffer != 16 {
		t.Fatalf("unexpected event buffer: %d", cfg.Client.EventBuffer)
	}
	if cfg.ConnectAttempts != 3 {
		t.Fatalf("unexpected connect attempts: %d", cfg.ConnectAttempts)
	}
	if cfg.MetricsAddr != "127.0.0.1:9102" {
		t.Fatalf("unexpected metrics addr: %q", cfg.MetricsAddr)
	}
	if cfg.Client.Backoff.InitialDelay != 100*time.Millisecond {
		t.Fatalf("unexpected initial delay: %v", cfg.Client.Backoff.InitialDelay)
	}
	if cfg.Client.Backoff.MaxDelay != def.Backoff.MaxDelay {
		t.Fatalf("expected default max delay, got %v", cfg.Client.Backoff.MaxDelay)
	}
	if cfg.Client.Backoff.Jitter {
		t.Fatalf("expected jitter disabled")
	}
}

func TestLoadRunConfigZeroValuesOverride(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
write_timeout = "0s"
event_buffer = 0
`)
	cfg, err := loadRunConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Client.WriteTimeout != 0 {
		t.Fatalf("expected write deadline disabled, got %v", cfg.Client.WriteTimeout)
	}
	if cfg.Client.EventBuffer != 0 {
		t.Fatalf("expected unbuffered events, got %d", cfg.Client.EventBuffer)
	}
}

func TestLoadRunConfigErrors(t *testing.T) {
	testlog.Start(t)
	tests := map[string]string{
		"bad duration":   `connect_timeout = "abc"`,
		"unknown key":    `hostname = "pbx"`,
		"zero attempts":  `connect_attempts = 0`,
		"port overflow":  `control_port = 70000`,
		"nested unknown": "[backoff]\nfactor = 3",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := loadRunConfig(writeConfig(t, content)); err == nil {
				t.Fatalf("expected error for %q", content)
			}
		})
	}
	if _, err := loadRunConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadRunConfigAcceptsGeneratedTemplate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteTemplate(path, "gridctl", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := loadRunConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	def := client.DefaultConfig()
	if cfg.Client.Server != def.Server || cfg.Client.ControlPort != def.ControlPort {
		t.Fatalf("unexpected address: %s:%d", cfg.Client.Server, cfg.Client.ControlPort)
	}
	if cfg.Client.Backoff != def.Backoff {
		t.Fatalf("unexpected backoff: %+v", cfg.Client.Backoff)
	}
	if cfg.ConnectAttempts != 1 || cfg.MetricsAddr != "" {
		t.Fatalf("unexpected cli options: %+v", cfg)
	}
}
