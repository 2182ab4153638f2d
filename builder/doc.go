// SPDX-License-Identifier: MIT
// Package builder constructs half-edge meshes from deterministic recipes.
//
// A build has two phases:
//
//   - Recording: each Constructor appends vertices and faces, by index, to a
//     Surface. Constructors validate their parameters and fail with sentinel
//     errors; nothing touches a mesh yet.
//   - Realization: BuildGraph opens one mutation session on a fresh
//     graph.Graph, inserts one vertex per recorded index (data from the
//     vertexData callback), inserts every face in recording order, and
//     commits. Vertex indices resolve through a storage.HashMap.
//
// The package offers:
//
//   - Constructors: Polygon, Wheel, Grid, PlatonicSolid, Indices.
//   - Options (BuilderOption): WithMode, WithLogger, WithReversedWinding.
//   - Sentinels: ErrTooFewVertices, ErrBadIndexBuffer, ErrOptionViolation,
//     ErrConstructFailed. Topology problems found while realizing surface as
//     core.ErrTopologyConflict (two faces claiming the same winding) or
//     core.ErrTopologyMalformed (a vertex used by no face).
//
// Guarantees:
//
//   - Determinism: same constructors, order and options ⇒ identical meshes
//     with identical keys.
//   - No partial results: BuildGraph returns a Graph only when the whole
//     recipe committed.
//   - Constructors compose: each allocates its own vertex indices, so
//     BuildGraph(…, Polygon(3), Polygon(4)) yields two disjoint faces.
package builder
