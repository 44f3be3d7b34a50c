// SPDX-License-Identifier: MIT

package meshio

import (
	"io"
	"log/slog"
)

// Option configures a read or write call.
type Option func(cfg *config)

type config struct {
	logger *slog.Logger
}

// WithLogger routes load and save summaries to l at Debug level.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("meshio: WithLogger(nil)")
	}

	return func(cfg *config) { cfg.logger = l }
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
