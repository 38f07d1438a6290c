package auth

import (
	"context"
	"time"
)

// DefaultSweepInterval is the cadence of the refresh token expiry sweep
const DefaultSweepInterval = 24 * time.Hour

// Sweeper runs the expiry sweep on a fixed cadence, independent of request
// traffic. A single goroutine owns the ticker, so runs never overlap. A
// failed sweep is logged and retried on the next tick; it never stops the
// loop or crashes the process.
type Sweeper struct {
	gate     Authenticator
	interval time.Duration
	logger   Logger
}

type SweeperOption func(*Sweeper)

// WithSweepInterval overrides the daily cadence
func WithSweepInterval(d time.Duration) SweeperOption {
	return func(s *Sweeper) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithSweeperLogger sets the sweeper logger
func WithSweeperLogger(l Logger) SweeperOption {
	return func(s *Sweeper) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSweeper returns a sweeper driving gate.SweepExpired
func NewSweeper(gate Authenticator, opts ...SweeperOption) *Sweeper {
	s := &Sweeper{
		gate:     gate,
		interval: DefaultSweepInterval,
		logger:   defLogger{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewSweeperFromConfig builds a sweeper with the cadence from cfg
func NewSweeperFromConfig(gate Authenticator, cfg Config, opts ...SweeperOption) *Sweeper {
	base := []SweeperOption{
		WithSweepInterval(time.Duration(cfg.GetSweepInterval()) * time.Hour),
	}
	return NewSweeper(gate, append(base, opts...)...)
}

// Interval returns the configured sweep cadence
func (s *Sweeper) Interval() time.Duration {
	return s.interval
}

// Run blocks, sweeping once per interval until ctx is cancelled. Callers
// start it on its own goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.gate.SweepExpired(ctx); err != nil {
				s.logger.Error("refresh token sweep failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
