package observability

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/gridctl/internal/testutil/testlog"
	"github.com/rs/zerolog"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordCommandSent("CallMake")
	RecordEventReceived("ECallIncoming")
	RecordParseError("bad_value")
	RecordWriteError()
	SetConnected(true)
	SetConnected(false)
	RecordHTTPRequest("gridctl", "GET", "/health", 200, 3*time.Millisecond)
}

func newTestServer() *StatusServer {
	return NewStatusServer("gridctl-test", zerolog.Nop(),
		func() any { return map[string]any{"connected": true} },
		func() any { return []string{"0 Login"} },
	)
}

func TestStatusServerRoutes(t *testing.T) {
	testlog.Start(t)
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status=%d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if body["node"] != "gridctl-test" {
		t.Fatalf("unexpected health body: %v", body)
	}

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/journal", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "0 Login") {
		t.Fatalf("unexpected journal response %d %q", rec.Code, rec.Body.String())
	}

	RecordCommandSent("Login")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "gridctl_client_commands_sent_total") {
		t.Fatalf("metrics output missing client counters")
	}
}

func TestStatusServerStopsOnCancel(t *testing.T) {
	testlog.Start(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer().Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
