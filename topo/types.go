// File: types.go
// Role: Iterator states, option plumbing, the yielded Vertex record, and
// sentinel errors.

package topo

import "errors"

// State is the visitation state of a vertex within an Iterator.
type State uint8

const (
	// NotVisited: the vertex has not been returned by Next yet.
	NotVisited State = iota

	// Busy: the vertex was returned by a busy-enabled Next and awaits Leave.
	Busy

	// Visited: the vertex is done; its dependents' pending counts reflect it.
	Visited
)

// String names the state for logs and test failure messages.
func (s State) String() string {
	switch s {
	case NotVisited:
		return "NOT_VISITED"
	case Busy:
		return "BUSY"
	case Visited:
		return "VISITED"
	default:
		return "UNKNOWN"
	}
}

var (
	// ErrGraphNil is returned when a nil *dag.Graph is passed to New.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrExhausted signals end-of-sequence: no unvisited vertices remain.
	// It plays the role io.EOF plays for readers and is not a failure.
	ErrExhausted = errors.New("topo: iteration exhausted")

	// ErrVertexNotFound indicates Leave was called with an id the iterator
	// does not track.
	ErrVertexNotFound = errors.New("topo: vertex not found")

	// ErrNotBusy indicates a protocol fault: Leave was called on a vertex
	// that is not currently in the Busy state.
	ErrNotBusy = errors.New("topo: vertex is not in busy state")
)

// Option configures an Iterator at construction time.
type Option func(*options)

// options holds the iterator mode flags.
type options struct {
	busyState bool
}

// WithBusyState enables the cooperative busy/visited protocol used for
// parallel consumption: Next marks the returned vertex Busy instead of
// Visited, and dependents are unblocked only by an explicit Leave.
func WithBusyState() Option {
	return func(o *options) { o.busyState = true }
}

// Vertex is one element yielded by Next: the vertex id, its opaque payload,
// and a frozen copy of its predecessor set.
type Vertex struct {
	// ID is the vertex identifier.
	ID string

	// Payload is the opaque data stored with the vertex (nil when absent).
	Payload any

	// Predecessors lists the vertex's direct predecessor ids, sorted.
	Predecessors []string
}
