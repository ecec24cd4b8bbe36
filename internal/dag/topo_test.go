package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologicalOrderRespectsEdges(t *testing.T) {
	g := New()
	for _, id := range []string{"C", "B", "A"} {
		g.AddCourse(id)
	}
	require.NoError(t, g.AddPrerequisite("B", "A"))
	require.NoError(t, g.AddPrerequisite("C", "B"))

	assert.Equal(t, []string{"A", "B", "C"}, g.TopologicalOrder())
}

func TestTopologicalOrderTieBreaksByInputOrder(t *testing.T) {
	g := New()
	// Insertion order deliberately not alphabetical.
	for _, id := range []string{"ZETA", "ALPHA", "MID"} {
		g.AddCourse(id)
	}

	// No edges at all: the order must be the input order, not sorted.
	assert.Equal(t, []string{"ZETA", "ALPHA", "MID"}, g.TopologicalOrder())
}

func TestTopologicalOrderIncludesCoreqEdges(t *testing.T) {
	g := New()
	for _, id := range []string{"LAB", "LECTURE"} {
		g.AddCourse(id)
	}
	// LAB appears first in input but requires LECTURE as a coreq.
	require.NoError(t, g.AddCorequisite("LAB", "LECTURE", true))

	assert.Equal(t, []string{"LECTURE", "LAB"}, g.TopologicalOrder())
}

func TestTopologicalOrderCoreqCycleFallback(t *testing.T) {
	g := New()
	for _, id := range []string{"A", "B", "C"} {
		g.AddCourse(id)
	}
	require.NoError(t, g.AddCorequisite("A", "B", false))
	require.NoError(t, g.AddCorequisite("B", "A", false))

	// The mutual coreq pair can never reach indegree zero; the order must
	// still cover every vertex, deterministically.
	order := g.TopologicalOrder()
	assert.Equal(t, []string{"C", "A", "B"}, order)
}
