// Package dag implements the graph store and the algorithms that operate
// directly on it: validity checking (predecessor references + cycle
// detection), transitive closure, nearest-tagged-ancestor context search,
// union-merge, edge reversal, and DOT export.
//
// The Graph owns four pieces of state per vertex id:
//
//   - an opaque payload (any; nil means "no payload")
//   - a predecessor set ("must happen before" relations)
//   - a lazily-derived successor index, cached until the next
//     predecessor-set write
//   - an optional opaque tag, used by Context for contextual inheritance
//     lookups along dependency chains
//
// Mutations come in two flavors, selected by an explicit per-call flag:
//
//	g.UpdateVertex(id, payload, preds, true)  // checked: validates
//	g.UpdateVertex(id, payload, preds, false) // unchecked: fast path
//
// A checked update fails with ErrMissingPredecessor when a predecessor id
// does not exist, and with ErrCycleDetected when extending an existing
// vertex would close a cycle — in which case the predecessor set is rolled
// back and no partial mutation is observable. An unchecked update applies
// the change unconditionally and only resets the validity cache to
// unknown, deferring detection to the next Check-dependent call.
//
// Validity is memoized as a tri-state (unknown / valid / invalid) owned by
// the Graph and reset by every predecessor-set write. Check, Closure,
// Context, Merge, Reverse and DOT all depend on it.
//
// The Graph embeds no locks and no goroutines: structural mutation must be
// externally serialized against reads and against topo iteration (see the
// topo package for the recommended single-coordinator model).
//
// Complexity highlights:
//
//   - UpdateVertex (unchecked): O(|preds|)
//   - Check (uncached):        O(V + E)
//   - Successors (uncached):   O(V + E), then O(d·log d) per query
//   - Closure:                 O(V + E) after a successful Check
//   - Context:                 O(V + E) worst case (level-synchronized BFS)
package dag
