// SPDX-License-Identifier: MIT

package mutation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// malformed wraps a violation so it matches core.ErrTopologyMalformed.
func malformed(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), core.ErrTopologyMalformed)
}

// validate checks every visible entity and joins all violations.
func (m *Mutation[V, A, E, F]) validate() error {
	var errs []error

	for k, v := range m.vertices.All() {
		switch {
		case v.Arc.IsZero():
			errs = append(errs, malformed("vertex %s: no leading arc", k))
		case v.Arc.Source != k:
			errs = append(errs, malformed("vertex %s: leading arc %s leaves another vertex", k, v.Arc))
		case !m.arcs.Contains(v.Arc):
			errs = append(errs, malformed("vertex %s: leading arc %s missing", k, v.Arc))
		}
	}

	// Arcs reachable from their face's leading arc. A face whose ring is
	// broken is reported once, not once per arc.
	ringed := make(map[core.ArcKey]bool, m.arcs.Len())
	broken := make(map[core.FaceKey]bool)
	for k := range m.faces.Keys() {
		ring, err := core.FaceRing[V, A, E, F](m, k)
		if err != nil {
			errs = append(errs, err)
			broken[k] = true
			continue
		}
		for _, ab := range ring {
			ringed[ab] = true
		}
	}

	for k, a := range m.arcs.All() {
		if !m.vertices.Contains(k.Source) || !m.vertices.Contains(k.Destination) {
			errs = append(errs, malformed("arc %s: dangling endpoint", k))
		}
		if !m.arcs.Contains(k.Opposite()) {
			errs = append(errs, malformed("arc %s: no opposite", k))
		}
		if e, ok := m.edges.Get(a.Edge); !ok || (e.Arc != k && e.Arc != k.Opposite()) {
			errs = append(errs, malformed("arc %s: edge %s does not hold it", k, a.Edge))
		}
		if a.Face.IsZero() {
			if !a.Next.IsZero() || !a.Previous.IsZero() {
				errs = append(errs, malformed("arc %s: boundary arc carries links", k))
			}
			continue
		}
		switch {
		case !m.faces.Contains(a.Face):
			errs = append(errs, malformed("arc %s: face %s missing", k, a.Face))
		case !ringed[k] && !broken[a.Face]:
			errs = append(errs, malformed("arc %s: off the ring of face %s", k, a.Face))
		}
		next, ok := m.arcs.Get(a.Next)
		if !ok || a.Next.Source != k.Destination || next.Previous != k {
			errs = append(errs, malformed("arc %s: broken link to next %s", k, a.Next))
		}
	}

	for k, e := range m.edges.All() {
		if a, ok := m.arcs.Get(e.Arc); !ok || a.Edge != k {
			errs = append(errs, malformed("edge %s: arc %s does not name it", k, e.Arc))
		}
	}

	return errors.Join(errs...)
}
