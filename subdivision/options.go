// SPDX-License-Identifier: MIT

package subdivision

import "fmt"

// Option configures Loop.
type Option func(cfg *config)

type config struct {
	iterations int
}

// WithIterations applies the scheme n times. Panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("subdivision: WithIterations(%d): must be ≥ 1", n))
	}

	return func(cfg *config) { cfg.iterations = n }
}

func newConfig(opts ...Option) config {
	cfg := config{iterations: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
