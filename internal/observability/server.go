package observability

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// StatusServer exposes client health, the sent-command journal and
// Prometheus metrics over HTTP.
type StatusServer struct {
	node    string
	router  *gin.Engine
	started time.Time
	logger  zerolog.Logger
}

// NewStatusServer builds the router. status and journal are polled per
// request and must be safe for concurrent use.
func NewStatusServer(node string, logger zerolog.Logger, status func() any, journal func() any) *StatusServer {
	RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(requestMetrics(node))

	s := &StatusServer{node: node, router: r, started: time.Now(), logger: logger}
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"node":   s.node,
			"uptime": time.Since(s.started).String(),
			"client": status(),
		})
	})
	r.GET("/journal", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"entries": journal()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return s
}

func (s *StatusServer) Handler() http.Handler {
	return s.router
}

// Serve runs on ln until ctx is cancelled, then shuts down gracefully.
func (s *StatusServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.router, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("status server listening")

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errc
		return nil
	}
}

// ListenAndServe binds addr and calls Serve.
func (s *StatusServer) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Debug()
		if status >= 500 {
			event = logger.Error()
		} else if status >= 400 {
			event = logger.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", routePath(c)).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("status_request")
	}
}

func requestMetrics(node string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		RecordHTTPRequest(node, c.Request.Method, routePath(c), c.Writer.Status(), time.Since(start))
	}
}

func routePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}
