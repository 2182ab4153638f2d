// SPDX-License-Identifier: MIT

package mutation

import (
	"errors"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/storage"
)

// ErrClosed indicates a mutation used after Commit or Abort.
var ErrClosed = errors.New("mutation: session closed")

// Mode selects how primitives reach the storages.
type Mode uint8

const (
	// Transacted stages every write in a journal until Commit.
	Transacted Mode = iota
	// Immediate writes straight into the storages.
	Immediate
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Transacted:
		return "transacted"
	case Immediate:
		return "immediate"
	default:
		return "unknown"
	}
}

// Rekeying maps keys handed out during a Transacted session to the keys the
// entities received at commit. Every lookup falls back to the identity, so
// keys of entities that already existed, and all keys of an Immediate
// session, resolve to themselves.
type Rekeying struct {
	Vertices storage.Rekeying[core.VertexKey]
	Arcs     storage.Rekeying[core.ArcKey]
	Edges    storage.Rekeying[core.EdgeKey]
	Faces    storage.Rekeying[core.FaceKey]
}

// Vertex resolves a vertex key.
func (r Rekeying) Vertex(k core.VertexKey) core.VertexKey { return r.Vertices.Resolve(k) }

// Arc resolves an arc key. Arc keys are derived from vertex keys, so this
// holds for arcs removed later as well.
func (r Rekeying) Arc(k core.ArcKey) core.ArcKey {
	if k.IsZero() {
		return k
	}

	return core.ArcKey{Source: r.Vertex(k.Source), Destination: r.Vertex(k.Destination)}
}

// Edge resolves an edge key.
func (r Rekeying) Edge(k core.EdgeKey) core.EdgeKey { return r.Edges.Resolve(k) }

// Face resolves a face key.
func (r Rekeying) Face(k core.FaceKey) core.FaceKey { return r.Faces.Resolve(k) }
