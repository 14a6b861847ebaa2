package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "gridctl", "full":
		return gridctlTemplate, nil
	case "minimal":
		return minimalTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const gridctlTemplate = `# gridctl control connection.
# user1/abc is the server's example account; replace it outside a lab.
server = "127.0.0.1"
control_port = 1234
transport_channel_port = 1235
username = "user1"
password = "abc"
protocol_major_version = 2
protocol_minor_version = 3
connect_timeout = "5s"
write_timeout = "15s"
event_buffer = 64
journal_size = 256
connect_attempts = 1
metrics_addr = ""

[backoff]
initial_delay = "250ms"
multiplier = 2.0
max_delay = "5s"
jitter = true
`

const minimalTemplate = `server = "127.0.0.1"
control_port = 1234
username = "user1"
password = "abc"
`
