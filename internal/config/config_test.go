package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/gridctl/internal/client"
	"github.com/danmuck/gridctl/internal/testutil/testlog"
)

func TestTemplatesLoadAndValidate(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	for _, kind := range []string{"gridctl", "minimal"} {
		path := filepath.Join(dir, kind+".toml")
		if err := WriteTemplate(path, kind, false); err != nil {
			t.Fatalf("write %s: %v", kind, err)
		}
		cfg, err := LoadGridConfig(path)
		if err != nil {
			t.Fatalf("load %s: %v", kind, err)
		}
		if cfg.Server != "127.0.0.1" || cfg.ControlPort != 1234 {
			t.Fatalf("%s: unexpected config %+v", kind, cfg)
		}
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "gridctl.toml")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write existing file: %v", err)
	}
	if err := WriteTemplate(path, "gridctl", false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if err := WriteTemplate(path, "gridctl", true); err != nil {
		t.Fatalf("forced write: %v", err)
	}
	if _, err := Template("pbx"); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}

func TestValidateGridConfig(t *testing.T) {
	testlog.Start(t)
	tests := []struct {
		name string
		cfg  GridConfig
		want string
	}{
		{"hostname", GridConfig{Server: "media.local"}, "IP address"},
		{"spaced password", GridConfig{Password: "a b"}, "single tokens"},
		{"negative buffer", GridConfig{EventBuffer: -1}, "event_buffer"},
		{"bad duration", GridConfig{WriteTimeout: "soon"}, "write_timeout"},
		{"negative duration", GridConfig{ConnectTimeout: "-1s"}, "connect_timeout"},
		{"shrinking backoff", GridConfig{Backoff: BackoffConfig{Multiplier: 0.5}}, "multiplier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGridConfig(tt.cfg)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
	if err := ValidateGridConfig(GridConfig{}); err != nil {
		t.Fatalf("empty config should be valid: %v", err)
	}
}

func TestApplyOverlaysNonZeroValues(t *testing.T) {
	testlog.Start(t)
	jitter := false
	cfg := GridConfig{
		Server:         "::1",
		Username:       "ops",
		WriteTimeout:   "2s",
		JournalSize:    8,
		Backoff:        BackoffConfig{InitialDelay: "1s", Jitter: &jitter},
		ConnectTimeout: "",
	}
	base := client.DefaultConfig()
	out, err := cfg.Apply(base)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Server != "::1" || out.Username != "ops" || out.Password != base.Password {
		t.Fatalf("unexpected identity fields: %+v", out)
	}
	if out.WriteTimeout != 2*time.Second || out.ConnectTimeout != base.ConnectTimeout {
		t.Fatalf("unexpected timeouts: %v %v", out.WriteTimeout, out.ConnectTimeout)
	}
	if out.JournalSize != 8 || out.Backoff.InitialDelay != time.Second || out.Backoff.Jitter {
		t.Fatalf("unexpected overlay: %+v", out)
	}
	if out.ControlPort != base.ControlPort {
		t.Fatalf("control port should keep default")
	}
}
