// SPDX-License-Identifier: MIT

package graph

import "github.com/sirupsen/logrus"

// GraphOption configures a Graph at construction.
type GraphOption func(*config)

type config struct {
	logger logrus.FieldLogger
}

// WithLogger routes the logs of the Graph and of every session it opens to l.
func WithLogger(l logrus.FieldLogger) GraphOption {
	if l == nil {
		panic("graph: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

func newConfig(opts ...GraphOption) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logrus.New()
	}

	return cfg
}
