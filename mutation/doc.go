// SPDX-License-Identifier: MIT
// Package mutation edits a mesh Core as one all-or-nothing session.
//
// 🚀 What is a Mutation?
//
//	A Mutation takes exclusive ownership of a complete core.Core (New unfuses
//	it), applies topology primitives, and ends in exactly one of:
//	  • Commit - validate the result and fuse the storages into a new Core.
//	  • Abort  - hand back the Core as it was (Transacted mode).
//
// ✨ Modes (chosen once per session with WithMode):
//   - Transacted (default): every storage is wrapped in a storage.Journal.
//     Nothing reaches the backends before Commit; a rejected Commit or an
//     Abort returns the original Core untouched. Entities inserted during the
//     session carry provisional keys; Commit returns a Rekeying that maps them
//     to their final keys.
//   - Immediate: primitives write straight into the backends. Keys are final
//     at once, but a failed session cannot be rolled back: Commit returns a
//     nil Core together with the error.
//
// Primitives:
//
//	InsertVertex, ConnectOutgoingArc, DisconnectOutgoingArc, GetOrInsertEdge,
//	InsertFace, SplitFace, MergeFaces, PokeFace, BridgeFaces, SplitEdge,
//	JoinEdges, Remove.
//
//	Composite operations read the mesh through an immutable cache taken
//	before any write (SnapshotFaceInsert, SnapshotFaceSplit, SnapshotFaceMerge,
//	SnapshotFacePoke, SnapshotFaceBridge, SnapshotEdgeSplit, SnapshotEdgeJoin,
//	SnapshotFaceRemove, SnapshotEdgeRemove, SnapshotVertexRemove) and then replay the cache's plan, so no operation
//	reads a half-edited mesh.
//
// Commit validation (every visible entity):
//   - vertex: leading arc present, live, and leaving the vertex;
//   - arc: live endpoints, live opposite, live edge naming it; a boundary arc
//     carries no links; a faced arc lies on its live face's ring and has a
//     Next arc that starts where it ends and links back;
//   - edge: its arc is live and names the edge;
//   - face: its ring closes and every ring arc names the face.
//
// Violations are joined with errors.Join; errors.Is(err, core.ErrTopologyMalformed)
// holds for the result.
//
// Failure policy:
//
//	The first failing primitive poisons the session: later primitives return
//	the same error and Commit aborts. CommitWith runs a function and commits,
//	aborting when the function fails; a function that ends the session itself
//	gets ErrClosed.
//
// Logging:
//
//	Sessions log through logrus with fields "mutation" (a UUID unless WithID
//	is given) and "mode". Lifecycle events are Debug; rejected commits Warn.
package mutation
