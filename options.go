package uuidx

import (
	"crypto/rand"
	"io"
	"log/slog"
	"time"
)

type generatorConfig struct {
	randReader io.Reader
	clock      func() time.Time
	logger     *slog.Logger
}

// Option configures a Generator.
type Option func(cfg *generatorConfig)

func defaultOptions() *generatorConfig {
	return applyOptions(&generatorConfig{},
		WithRandReader(rand.Reader),
		WithClock(time.Now),
		WithNoopLogger(),
	)
}

func applyOptions(cfg *generatorConfig, opts ...Option) *generatorConfig {
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRandReader sets the source of the random bits. Deterministic readers
// are useful in tests.
func WithRandReader(r io.Reader) Option {
	return func(cfg *generatorConfig) {
		cfg.randReader = r
	}
}

// WithClock sets the time source used by Generator.New.
func WithClock(now func() time.Time) Option {
	return func(cfg *generatorConfig) {
		cfg.clock = now
	}
}

// WithLogger makes the generator report clock regressions and counter
// overflows at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *generatorConfig) {
		cfg.logger = logger
	}
}

// WithNoopLogger discards the generator's log records. It is the default.
func WithNoopLogger() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
