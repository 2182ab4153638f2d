// SPDX-License-Identifier: MIT
// Package: lvmesh/mutation
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Defaults: Transacted mode, logrus.New() logger, random UUID session id.

package mutation

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Option customizes a Mutation before it takes ownership of the core.
type Option func(*config)

type config struct {
	mode   Mode
	logger logrus.FieldLogger
	id     string
}

func newConfig(opts ...Option) config {
	cfg := config{mode: Transacted}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logrus.New()
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}

	return cfg
}

// WithMode selects Transacted or Immediate mode for the whole session.
func WithMode(mode Mode) Option {
	if mode != Transacted && mode != Immediate {
		panic("mutation: WithMode(unknown mode)")
	}
	return func(c *config) { c.mode = mode }
}

// WithLogger routes session logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("mutation: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithID sets the session identifier reported in logs.
func WithID(id string) Option {
	if id == "" {
		panic("mutation: WithID(\"\")")
	}
	return func(c *config) { c.id = id }
}
