// Package lvmesh is an in-memory half-edge mesh library: a generic,
// transactional store for polygonal surfaces with user data on every
// vertex, arc, edge and face.
//
// 🚀 What is lvmesh?
//
//	A layered library that brings together:
//		• Storage: slot maps with generational keys, hash maps, journals
//		• Core: the four entity stores of a mesh and their read helpers
//		• Mutation: sessions of topology primitives with validate-on-commit
//		• Graph: a thread-safe owner with composite surface operations
//		• Builder: Polygon, Wheel, Grid, Platonic solids and index buffers
//
// ✨ Why choose lvmesh?
//
//   - All-or-nothing edits – a rejected session leaves the mesh untouched
//   - Stable keys – provisional keys are rekeyed once, on commit
//   - Typed payloads – V, A, E and F are independent type parameters
//   - Structured logs – sessions report through logrus with a session id
//
// Under the hood, everything is organized under five subpackages:
//
//	storage/  — Reader/Storage contracts, SlotMap, HashMap, Journal, Rekeying
//	core/     — keys, entities, Core[V,A,E,F], FaceRing & adjacency reads
//	mutation/ — Mutation sessions, snapshot caches, commit validation
//	graph/    — Graph facade: Split/Merge/Poke/Remove/Triangulate, face walks
//	builder/  — deterministic mesh constructors realized in one session
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	a quad A-C-D-B split along A→D: two triangular faces sharing one edge.
//
//	go get github.com/katalvlaran/lvmesh
package lvmesh
