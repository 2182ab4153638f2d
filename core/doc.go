// Package core defines the entities of a half-edge polygon mesh (Vertex, Arc,
// Edge, Face), their keys, and Core: the container that owns one storage per
// entity type.
//
// The mesh M = (V, A, E, F) is stored as four keyed collections:
//
//   - Vertices - slot storage keyed by VertexKey; each vertex names one
//     leading outgoing arc.
//   - Arcs     - hash storage keyed by ArcKey{Source, Destination}; each arc
//     names its next and previous arc in its face, its edge and its face.
//     The opposite arc is ArcKey.Opposite().
//   - Edges    - slot storage keyed by EdgeKey; each edge names one of its two arcs.
//   - Faces    - slot storage keyed by FaceKey; each face names one arc on its ring.
//
// A zero key of any type means "absent": an arc without a face has a zero
// Face, a freshly inserted vertex has a zero Arc.
//
// Fusing:
//
//	A Core starts Empty and receives storages one slot at a time with
//	FuseVertices, FuseArcs, FuseEdges and FuseFaces; fusing a slot twice fails
//	with ErrSlotFused. A Core with all four slots fused is complete.
//	Unfuse moves the four storages out of a complete Core, leaving it empty;
//	that is how a mutation session takes ownership.
//
//	New returns a complete Core over the canonical backends
//	(storage.SlotMap for vertices/edges/faces, storage.HashMap for arcs).
//
// Reading:
//
//	Source is the read-only face of anything holding the four storages
//	(*Core, and a mutation mid-session). FaceRing, FaceVertices, OutgoingArcs
//	and IncidentFaces derive the topology a mutation needs from a Source.
//
// Errors:
//
//	ErrEntityNotFound    - a key does not name a live entity.
//	ErrTopologyMalformed - the mesh violates a structural invariant.
//	ErrTopologyConflict  - an operation's structural precondition does not hold.
//	ErrGeometry          - reserved for geometric collaborators.
//	ErrSlotFused, ErrIncompleteCore, ErrNilStorage, ErrStorageKind - Core assembly.
//
// Concurrency:
//
//	Core is not safe for concurrent use; it is owned by one graph or one
//	mutation at a time.
package core
