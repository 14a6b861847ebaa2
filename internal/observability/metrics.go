package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	commandsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridctl",
			Subsystem: "client",
			Name:      "commands_sent_total",
			Help:      "Command lines written to the control connection.",
		},
		[]string{"command"},
	)
	eventsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridctl",
			Subsystem: "client",
			Name:      "events_received_total",
			Help:      "Events decoded from the control connection.",
		},
		[]string{"event"},
	)
	parseErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridctl",
			Subsystem: "client",
			Name:      "parse_errors_total",
			Help:      "Inbound lines that failed to decode.",
		},
		[]string{"kind"},
	)
	writeErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gridctl",
			Subsystem: "client",
			Name:      "write_errors_total",
			Help:      "Failed command writes.",
		},
	)
	connected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gridctl",
			Subsystem: "client",
			Name:      "connected",
			Help:      "1 while the control connection is up.",
		},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total status server requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gridctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Status server request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			commandsSent, eventsReceived, parseErrors, writeErrors, connected,
			httpRequests, httpDuration,
		)
	})
}

func RecordCommandSent(command string) {
	RegisterMetrics()
	commandsSent.WithLabelValues(command).Inc()
}

func RecordEventReceived(event string) {
	RegisterMetrics()
	eventsReceived.WithLabelValues(event).Inc()
}

func RecordParseError(kind string) {
	RegisterMetrics()
	parseErrors.WithLabelValues(kind).Inc()
}

func RecordWriteError() {
	RegisterMetrics()
	writeErrors.Inc()
}

func SetConnected(up bool) {
	RegisterMetrics()
	if up {
		connected.Set(1)
		return
	}
	connected.Set(0)
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}
