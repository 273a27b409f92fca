package dag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrom/depgraph/dag"
)

// diamond builds A ← {B, C} ← D (D depends on B and C, both depend on A).
func diamond(t *testing.T) *dag.Graph {
	t.Helper()
	g := dag.New()
	require.NoError(t, g.AddVertex("A", nil))
	require.NoError(t, g.AddVertex("B", nil, "A"))
	require.NoError(t, g.AddVertex("C", nil, "A"))
	require.NoError(t, g.AddVertex("D", nil, "B", "C"))

	return g
}

// TestCheck_EmptyGraph accepts the empty graph.
func TestCheck_EmptyGraph(t *testing.T) {
	assert.NoError(t, dag.New().Check())
}

// TestCheck_ValidDAG accepts a diamond and stays valid on repeat calls
// (memoized verdict).
func TestCheck_ValidDAG(t *testing.T) {
	g := diamond(t)
	assert.NoError(t, g.Check())
	assert.NoError(t, g.Check())
}

// TestCheck_Cycle detects a two-vertex cycle built with unchecked writes.
func TestCheck_Cycle(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.UpdateVertex("A", nil, nil, false))
	require.NoError(t, g.UpdateVertex("B", nil, []string{"A"}, false))
	require.NoError(t, g.UpdateVertex("A", nil, []string{"B"}, false))

	assert.ErrorIs(t, g.Check(), dag.ErrCycleDetected)
	// Cached-invalid verdict is served immediately on the second call.
	assert.ErrorIs(t, g.Check(), dag.ErrCycleDetected)
}

// TestCheck_SelfLoop detects a vertex depending on itself.
func TestCheck_SelfLoop(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.UpdateVertex("A", nil, []string{"A"}, false))
	assert.ErrorIs(t, g.Check(), dag.ErrCycleDetected)
}

// TestCheck_MissingPredecessor reports the offending vertex, poisons the
// cache (subsequent calls fail as invalid), and recovers after the missing
// vertex is supplied.
func TestCheck_MissingPredecessor(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.UpdateVertex("A", nil, []string{"ghost"}, false))

	err := g.Check()
	assert.ErrorIs(t, err, dag.ErrMissingPredecessor)
	assert.Contains(t, err.Error(), `"A"`)

	// The cached-invalid verdict short-circuits as a cycle failure.
	assert.ErrorIs(t, g.Check(), dag.ErrCycleDetected)

	// Supplying the missing vertex is a structural write: the cache resets
	// and the graph validates.
	require.NoError(t, g.UpdateVertex("ghost", nil, nil, false))
	assert.NoError(t, g.Check())
}

// TestClosure_Diamond returns all transitive ancestors, excluding the
// queried vertex.
func TestClosure_Diamond(t *testing.T) {
	g := diamond(t)

	closure, err := g.Closure("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, closure)

	closure, err = g.Closure("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, closure)

	closure, err = g.Closure("A")
	require.NoError(t, err)
	assert.Empty(t, closure)
}

// TestClosure_DeepChain follows long predecessor chains to a fixed point.
func TestClosure_DeepChain(t *testing.T) {
	g := dag.New()
	ids := []string{"v0", "v1", "v2", "v3", "v4", "v5"}
	require.NoError(t, g.AddVertex(ids[0], nil))
	for i := 1; i < len(ids); i++ {
		require.NoError(t, g.AddVertex(ids[i], nil, ids[i-1]))
	}

	closure, err := g.Closure("v5")
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2", "v3", "v4"}, closure)
}

// TestClosure_PropagatesCheckFailure refuses to compute on an invalid graph.
func TestClosure_PropagatesCheckFailure(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.UpdateVertex("A", nil, nil, false))
	require.NoError(t, g.UpdateVertex("B", nil, []string{"A"}, false))
	require.NoError(t, g.UpdateVertex("A", nil, []string{"B"}, false))

	closure, err := g.Closure("A")
	assert.Nil(t, closure)
	assert.ErrorIs(t, err, dag.ErrCycleDetected)
}
