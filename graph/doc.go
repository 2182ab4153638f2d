// SPDX-License-Identifier: MIT
// Package graph is the owning facade over a half-edge mesh: a Graph holds a
// complete, consistent core.Core and runs every topology edit as exactly one
// mutation session.
//
// 🚀 What is a Graph?
//
//	Graph[V, A, E, F] carries user data on vertices (V), arcs (A), edges (E)
//	and faces (F). Reads go straight to the owned Core; edits open a
//	mutation.Mutation, replay one composite operation, and commit.
//
// ✨ Operations (each one session, all-or-nothing):
//
//	SplitFace    - divide a face with a new edge between two of its vertices.
//	MergeFaces   - remove the single edge shared by two faces.
//	PokeFace     - replace a face by a fan of triangles around a new vertex.
//	RemoveFace   - remove a face and the edges only it used.
//	RemoveEdge   - remove an edge and the faces on both sides.
//	RemoveVertex - remove a vertex with every face and edge around it.
//	Triangulate  - fan-split every face with more than three sides.
//	BridgeFaces  - replace two faces of equal arity by a tube of quads.
//	SplitEdge    - insert a vertex in the middle of an edge.
//	JoinEdges    - insert a quad between two boundary edges.
//	Mutate       - run arbitrary mutation primitives in one session.
//
//	Keys returned by an operation are final (already rekeyed).
//
// Failure policy:
//
//	A Transacted session that fails leaves the Graph exactly as it was.
//	Mutate also accepts mutation.WithMode(mutation.Immediate); an Immediate
//	session that fails cannot be rolled back and leaves the Graph empty.
//
// Traversal:
//
//	WalkFaces runs a breadth-first walk across faces that share an edge,
//	with hooks, depth limit and cancellation. Patches splits the faces into
//	edge-connected components.
//
// Concurrency:
//
//	Graph is safe for concurrent use: reads share an RWMutex, and an edit
//	holds it exclusively for the whole session.
package graph
