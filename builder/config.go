// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • mode     = mutation.Transacted
//   • logger   = logrus.New()
//   • reversed = false (faces wound as documented per constructor)

package builder

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmesh/mutation"
)

// builderConfig aggregates the knobs read by constructors and BuildGraph.
// It is passed by value to constructors.
type builderConfig struct {
	mode     mutation.Mode
	logger   logrus.FieldLogger
	reversed bool
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{mode: mutation.Transacted}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logrus.New()
	}

	return cfg
}

// sessionOptions translates the config into options for the build session.
func (c builderConfig) sessionOptions() []mutation.Option {
	return []mutation.Option{mutation.WithMode(c.mode), mutation.WithLogger(c.logger)}
}
