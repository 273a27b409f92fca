// Package topo yields the vertices of a dag.Graph in dependency order and
// provides the coordination primitives a parallel scheduler needs — without
// embedding any concurrency runtime itself.
//
// Each vertex moves through an explicit three-state machine:
//
//	NotVisited → (Busy →)? Visited
//
// Busy is reachable only when the iterator is built with WithBusyState;
// in that mode a vertex reaches Visited only via an explicit Leave call.
//
// Strict mode (the default) is plain sequential topological iteration:
//
//	it, _ := topo.New(g)
//	for {
//		v, err := it.Next()
//		if errors.Is(err, topo.ErrExhausted) {
//			break // every vertex visited
//		}
//		if err != nil {
//			return err // dag.ErrCycleDetected: no progress possible
//		}
//		run(v)
//	}
//
// Busy mode implements the cooperative protocol for external parallel
// consumers. Next marks the returned vertex Busy and defers the unblocking
// of its dependents until Leave reports completion:
//
//	it, _ := topo.New(g, topo.WithBusyState())
//	for {
//		v, err := it.Next()
//		if errors.Is(err, topo.ErrExhausted) {
//			break // nothing left to dispatch; await in-flight work
//		}
//		if v == nil {
//			id := <-completed        // "none ready yet": park until a
//			_ = it.Leave(id)         // completion changes readiness
//			continue
//		}
//		dispatch(v) // worker sends v.ID on completed when done
//	}
//
// Recommended concurrency model: a single coordinator exclusively owns the
// graph and the iterator, calls Next to obtain ready vertices, hands the
// work to external executors, and calls Leave on completion reports. Next
// and Leave are the only mutation paths during iteration and must be
// single-writer; the iterator never blocks, polls, or spawns goroutines on
// its own. There is no cancellation: a caller that abandons a Busy vertex
// must never Leave it, since doing so would mark dependents eligible.
//
// Tie-break among simultaneously ready vertices is deliberately
// unspecified (Go map iteration order); callers must not depend on a
// particular selection.
//
// The iterator holds a transient, non-owning view of the graph (read access
// plus per-id visitation state) and must not outlive it; structural
// mutation of the graph invalidates any live iterator.
//
// Complexity: New is O(V+E); each Next is O(V) worst case (ready scan);
// Leave is O(d·log d) for the left vertex's out-degree d.
package topo
