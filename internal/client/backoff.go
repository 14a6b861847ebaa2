package client

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// NextBackoffDelay returns the retry delay for attempt N (1-based).
func NextBackoffDelay(cfg BackoffConfig, attempt int, rng *rand.Rand) time.Duration {
	if attempt <= 1 {
		return cfg.InitialDelay
	}
	if cfg.InitialDelay <= 0 {
		return 0
	}
	if cfg.Multiplier < 1.0 {
		cfg.Multiplier = 1.0
	}
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt-1))
	if cfg.MaxDelay > 0 && delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	if cfg.Jitter {
		f := 0.5
		if rng != nil {
			f = 0.5 + rng.Float64()
		}
		delay = delay * f
	}
	return time.Duration(delay)
}

// ConnectWithRetry calls Connect up to attempts times, sleeping per the
// configured backoff between failures. Only ConnectFailed is retried; the
// client never reconnects on its own once connected.
func (c *Client) ConnectWithRetry(ctx context.Context, attempts int) error {
	if attempts < 1 {
		attempts = 1
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = c.Connect(ctx); err == nil || !errors.Is(err, ErrConnectFailed) {
			return err
		}
		if attempt == attempts {
			break
		}
		delay := NextBackoffDelay(c.cfg.Backoff, attempt, rng)
		c.logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", delay).Msg("connect failed")
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return newConnectionError(ErrKindConnectFailed, ctx.Err(), "gave up after %d attempts", attempt)
		case <-timer.C:
		}
	}
	return err
}
