package dag

import "errors"

// Sentinel errors for graph operations. Match with errors.Is; operations
// that can name their origin wrap these in *Error.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("dag: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("dag: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an id already present.
	ErrDuplicateVertex = errors.New("dag: vertex already exists")

	// ErrMissingPredecessor indicates a predecessor set references a
	// non-existent vertex, detected at checked-update time or by Check.
	ErrMissingPredecessor = errors.New("dag: predecessor references missing vertex")

	// ErrCycleDetected indicates the predecessor relation contains a cycle,
	// detected incrementally (checked update) or globally (Check and everything
	// built on it).
	ErrCycleDetected = errors.New("dag: cycle detected")
)

// Error describes a failed graph operation. Op names the operation that
// raised the failure (e.g. "dag.UpdateVertex"), Message is the human-readable
// description, and Err is the sentinel kind, reachable via errors.Is.
type Error struct {
	// Op is the origin label of the failing operation.
	Op string

	// Message describes the failure.
	Message string

	// Err is the underlying sentinel (ErrCycleDetected, ...).
	Err error
}

// Error renders the origin and message.
func (e *Error) Error() string { return e.Op + ": " + e.Message }

// Unwrap exposes the sentinel kind to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// opError builds an *Error with the given origin, message, and kind.
func opError(op, message string, kind error) error {
	return &Error{Op: op, Message: message, Err: kind}
}
