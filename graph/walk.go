// SPDX-License-Identifier: MIT
// Package: lvmesh/graph
//
// walk.go — breadth-first walks across faces that share an edge.
//
// Two faces are neighbors when an arc of one is the opposite of an arc of
// the other. Neighbors are explored in ring order from each face's leading
// arc, so a walk is deterministic for a given mesh.

package graph

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmesh/core"
)

// ErrOptionViolation is returned when an invalid WalkOption is supplied.
var ErrOptionViolation = errors.New("graph: invalid walk option")

// WalkOption configures WalkFaces. An invalid option is recorded and
// surfaced as ErrOptionViolation when the walk starts.
type WalkOption func(*walkOptions)

type walkOptions struct {
	ctx      context.Context
	onVisit  func(f core.FaceKey, depth int) error
	maxDepth int
	filter   func(from, to core.FaceKey) bool
	err      error
}

func defaultWalkOptions() walkOptions {
	return walkOptions{
		ctx:     context.Background(),
		onVisit: func(core.FaceKey, int) error { return nil },
		filter:  func(_, _ core.FaceKey) bool { return true },
	}
}

// WithContext aborts the walk when ctx is done.
func WithContext(ctx context.Context) WalkOption {
	return func(o *walkOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit calls fn for every face in visit order; an error from fn
// stops the walk and is returned wrapped.
func WithOnVisit(fn func(f core.FaceKey, depth int) error) WalkOption {
	return func(o *walkOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at depth d (d > 0); d == 0 means no limit.
func WithMaxDepth(d int) WalkOption {
	return func(o *walkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithFilterNeighbor skips the step from -> to when fn returns false.
func WithFilterNeighbor(fn func(from, to core.FaceKey) bool) WalkOption {
	return func(o *walkOptions) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// WalkResult is the outcome of a walk:
//   - Order: faces in visit order.
//   - Depth: number of edge crossings from the start face.
//   - Parent: predecessor of each reached face except the start.
type WalkResult struct {
	Order  []core.FaceKey
	Depth  map[core.FaceKey]int
	Parent map[core.FaceKey]core.FaceKey
}

// PathTo returns the faces from the start of the walk to dest.
func (r *WalkResult) PathTo(dest core.FaceKey) ([]core.FaceKey, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("PathTo(%s): not reached: %w", dest, core.ErrEntityNotFound)
	}
	path := []core.FaceKey{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}

// WalkFaces walks breadth-first from start across shared edges.
//
// Errors:
//   - ErrOptionViolation for an invalid option.
//   - core.ErrEntityNotFound if start is not live.
//   - the context's error on cancellation, or the OnVisit error.
func (g *Graph[V, A, E, F]) WalkFaces(start core.FaceKey, opts ...WalkOption) (*WalkResult, error) {
	o := defaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.core.Faces().Contains(start) {
		return nil, fmt.Errorf("WalkFaces(%s): %w", start, core.ErrEntityNotFound)
	}

	return walk[V, A, E, F](g.core, start, o)
}

// Patches splits the faces into edge-connected components. Components are
// ordered by their smallest face key; each lists faces in walk order from it.
func (g *Graph[V, A, E, F]) Patches() ([][]core.FaceKey, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	seen := make(map[core.FaceKey]bool, g.core.Faces().Len())
	var out [][]core.FaceKey
	for _, f := range slices.SortedFunc(g.core.Faces().Keys(), core.FaceKey.Compare) {
		if seen[f] {
			continue
		}
		res, err := walk[V, A, E, F](g.core, f, defaultWalkOptions())
		if err != nil {
			return nil, fmt.Errorf("Patches: %w", err)
		}
		for _, k := range res.Order {
			seen[k] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// walk runs the queue loop over src.
func walk[V, A, E, F any](src core.Source[V, A, E, F], start core.FaceKey, o walkOptions) (*WalkResult, error) {
	res := &WalkResult{
		Depth:  map[core.FaceKey]int{start: 0},
		Parent: make(map[core.FaceKey]core.FaceKey),
	}
	queue := []core.FaceKey{start}
	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}
		f := queue[0]
		queue = queue[1:]
		depth := res.Depth[f]
		res.Order = append(res.Order, f)
		if err := o.onVisit(f, depth); err != nil {
			return nil, fmt.Errorf("walk: OnVisit error at %s: %w", f, err)
		}
		if o.maxDepth > 0 && depth >= o.maxDepth {
			continue
		}
		ring, err := core.FaceRing(src, f)
		if err != nil {
			return nil, err
		}
		for _, ab := range ring {
			opposite, ok := src.Arcs().Get(ab.Opposite())
			if !ok || opposite.Face.IsZero() {
				continue
			}
			next := opposite.Face
			if _, seen := res.Depth[next]; seen || !o.filter(f, next) {
				continue
			}
			res.Depth[next] = depth + 1
			res.Parent[next] = f
			queue = append(queue, next)
		}
	}

	return res, nil
}
