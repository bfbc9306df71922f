package reconciler

import (
	"time"

	"go.uber.org/zap"
)

const (
	defaultQueryTimeout    = 15 * time.Second
	defaultFinalityTimeout = 60 * time.Second
)

type settings struct {
	logger          *zap.Logger
	queryTimeout    time.Duration
	finalityTimeout time.Duration
}

// Option configures the engine.
type Option func(*settings)

// WithLogger sets a custom logger for the engine.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithQueryTimeout bounds each ledger read.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *settings) { s.queryTimeout = d }
}

// WithFinalityTimeout bounds each claim add or revoke, including the wait
// for finality.
func WithFinalityTimeout(d time.Duration) Option {
	return func(s *settings) { s.finalityTimeout = d }
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger:          zap.NewNop(),
		queryTimeout:    defaultQueryTimeout,
		finalityTimeout: defaultFinalityTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
