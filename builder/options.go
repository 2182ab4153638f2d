// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go — functional options for BuildGraph.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Constructors and BuildGraph never panic.

package builder

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmesh/mutation"
)

// BuilderOption customizes a build before any constructor runs.
type BuilderOption func(*builderConfig)

// WithMode selects the session mode used to realize the recipe.
// Immediate skips journaling; a failed build is discarded either way.
func WithMode(mode mutation.Mode) BuilderOption {
	if mode != mutation.Transacted && mode != mutation.Immediate {
		panic("builder: WithMode(unknown mode)")
	}
	return func(c *builderConfig) { c.mode = mode }
}

// WithLogger routes the build session's logs, and those of the returned
// Graph, to l.
func WithLogger(l logrus.FieldLogger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// WithReversedWinding flips the orientation of every face the constructors
// record.
func WithReversedWinding() BuilderOption {
	return func(c *builderConfig) { c.reversed = true }
}
