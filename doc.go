// Package depgraph is an in-memory directed-acyclic-graph engine built to
// serve as the dependency-ordering backbone of a task or build scheduler:
// vertices are jobs or artifacts, predecessor edges are "must happen before"
// relations, and tags carry contextual configuration inherited along
// dependency chains.
//
// 🚀 What does depgraph provide?
//
//	A small, focused library that brings together:
//		• Graph store: vertex payloads, predecessor sets, a lazily-derived
//		  successor index, and a sparse per-vertex tag map
//		• Validity checking: predecessor-reference validation and cycle
//		  detection with a memoized tri-state cache
//		• Topological iteration: strict sequential order, plus a busy/visited
//		  protocol for feeding external parallel executors
//		• Closure & context: transitive ancestor sets and nearest-tagged-
//		  ancestor search (forward or reverse)
//		• Graph algebra: union-merge, full edge reversal, DOT export
//
// ✨ Why choose depgraph?
//
//   - Coordination, not execution – the engine never runs jobs, blocks, or
//     spawns goroutines; it only answers "what is ready now?"
//   - Explicit validation contract – every mutation states whether it is
//     checked or unchecked at the call site
//   - Deterministic enumeration – Vertices(), Predecessors(), Successors()
//     return sorted results you can rely on in tests and tooling
//   - Pure Go – no cgo, no runtime assumptions
//
// Everything is organized under two subpackages:
//
//	dag/  — the Graph type: storage, validation, closure, tag context,
//	        merge/reverse algebra and DOT export
//	topo/ — the topological Iterator with its NOT_VISITED → BUSY → VISITED
//	        protocol for parallel-ready scheduling
//
// Quick ASCII example:
//
//	    build ──▶ test ──▶ package
//	                │
//	                └────▶ lint
//
//	"test" lists "build" as a predecessor; the iterator will never yield
//	"test" before "build" has been visited (or left, in busy mode).
//
// See the dag and topo package docs for full API walkthroughs and examples.
package depgraph
