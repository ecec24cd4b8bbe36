package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/curricula/internal/dag"
)

func chainGraph(t *testing.T, edges [][2]string, vertices ...string) *dag.Graph {
	t.Helper()
	g := dag.New()
	for _, v := range vertices {
		g.AddCourse(v)
	}
	for _, e := range edges {
		require.NoError(t, g.AddPrerequisite(e[1], e[0]))
	}
	return g
}

func TestDelaySimpleDAG(t *testing.T) {
	// A -> B -> D, A -> C
	g := chainGraph(t, [][2]string{{"A", "B"}, {"B", "D"}, {"A", "C"}}, "A", "B", "C", "D")
	table := Compute(g, false)

	assert.Equal(t, 3, table["A"].Delay)
	assert.Equal(t, 3, table["B"].Delay)
	assert.Equal(t, 2, table["C"].Delay)
	assert.Equal(t, 3, table["D"].Delay)
}

func TestDelayCountsCorequisiteEdges(t *testing.T) {
	g := dag.New()
	for _, v := range []string{"A", "B", "C"} {
		g.AddCourse(v)
	}
	require.NoError(t, g.AddCorequisite("B", "A", false))
	require.NoError(t, g.AddPrerequisite("C", "B"))

	table := Compute(g, false)
	assert.Equal(t, 3, table["A"].Delay)
	assert.Equal(t, 3, table["B"].Delay)
	assert.Equal(t, 3, table["C"].Delay)
}

func TestStrictCoreqInheritsChain(t *testing.T) {
	// A long lecture chain, with a lab strictly tied to the last lecture.
	// The lab sits on every path through the lecture's strict edge, so it
	// inherits the chain's delay rather than scoring as an isolated course.
	g := dag.New()
	for _, v := range []string{"M1", "M2", "M3", "LEC", "LAB", "NEXT"} {
		g.AddCourse(v)
	}
	require.NoError(t, g.AddPrerequisite("M2", "M1"))
	require.NoError(t, g.AddPrerequisite("M3", "M2"))
	require.NoError(t, g.AddPrerequisite("LEC", "M3"))
	require.NoError(t, g.AddCorequisite("LAB", "LEC", true))
	require.NoError(t, g.AddPrerequisite("NEXT", "LEC"))
	require.NoError(t, g.AddPrerequisite("NEXT", "LAB"))

	table := Compute(g, false)
	assert.Equal(t, 6, table["LAB"].Delay)
	assert.Equal(t, 1, table["LAB"].Blocking)
	assert.Equal(t, 7, table["LAB"].Complexity)
}

func TestBlockingSimpleDAG(t *testing.T) {
	g := chainGraph(t, [][2]string{{"A", "B"}, {"B", "D"}, {"A", "C"}}, "A", "B", "C", "D")
	table := Compute(g, false)

	assert.Equal(t, 3, table["A"].Blocking)
	assert.Equal(t, 1, table["B"].Blocking)
	assert.Equal(t, 0, table["C"].Blocking)
	assert.Equal(t, 0, table["D"].Blocking)
}

func TestBlockingCountsCorequisites(t *testing.T) {
	g := dag.New()
	for _, v := range []string{"A", "B", "C"} {
		g.AddCourse(v)
	}
	require.NoError(t, g.AddCorequisite("B", "A", false))
	require.NoError(t, g.AddPrerequisite("C", "B"))

	table := Compute(g, false)
	assert.Equal(t, 2, table["A"].Blocking)
	assert.Equal(t, 1, table["B"].Blocking)
	assert.Equal(t, 0, table["C"].Blocking)
}

func TestBlockingIsDescendantCountNotOutDegree(t *testing.T) {
	// Diamond: A -> {B, C} -> D. A's out-degree is 2 but it blocks 3.
	g := chainGraph(t, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}}, "A", "B", "C", "D")
	table := Compute(g, false)
	assert.Equal(t, 3, table["A"].Blocking)
}

func TestComplexityCombinesDelayAndBlocking(t *testing.T) {
	g := chainGraph(t, [][2]string{{"A", "B"}, {"B", "C"}}, "A", "B", "C")
	table := Compute(g, false)

	assert.Equal(t, 5, table["A"].Complexity)
	assert.Equal(t, 4, table["B"].Complexity)
	assert.Equal(t, 3, table["C"].Complexity)
}

func TestComplexityQuarterScaling(t *testing.T) {
	cases := []struct {
		name     string
		delay    int
		blocking int
		want     int
	}{
		{"exact third", 2, 1, 2},        // 3 * 2/3 = 2
		{"rounds down", 3, 2, 3},        // 10/3 = 3.33 -> 3
		{"rounds up", 2, 2, 3},          // 8/3 = 2.67 -> 3
		{"floors at one", 1, 0, 1},      // 2/3 -> 1
		{"larger value", 5, 16, 14},     // 42/3 = 14
		{"bigger rounding", 10, 30, 27}, // 80/3 = 26.67 -> 27
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, complexityOf(tc.delay, tc.blocking, true))
		})
	}

	t.Run("semester is unscaled", func(t *testing.T) {
		assert.Equal(t, 8, complexityOf(4, 4, false))
	})
}

func TestCentralitySimpleChain(t *testing.T) {
	g := chainGraph(t, [][2]string{{"A", "B"}, {"B", "C"}}, "A", "B", "C")
	table := Compute(g, false)

	assert.Equal(t, 0, table["A"].Centrality)
	assert.Equal(t, 3, table["B"].Centrality)
	assert.Equal(t, 0, table["C"].Centrality)
}

func TestCentralityWithFork(t *testing.T) {
	g := chainGraph(t, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}}, "A", "B", "C", "D")
	table := Compute(g, false)

	assert.Equal(t, 0, table["A"].Centrality)
	assert.Equal(t, 3, table["B"].Centrality)
	assert.Equal(t, 0, table["C"].Centrality)
	assert.Equal(t, 0, table["D"].Centrality)
}

func TestCentralityMultiplePathsAccumulate(t *testing.T) {
	// Two source-to-sink paths cross B: A->B->D and C->B->D.
	g := chainGraph(t, [][2]string{{"A", "B"}, {"C", "B"}, {"B", "D"}}, "A", "B", "C", "D")
	table := Compute(g, false)
	assert.Equal(t, 6, table["B"].Centrality)
}

func TestIsolatedCourseMinimums(t *testing.T) {
	g := dag.New()
	g.AddCourse("ALONE")
	table := Compute(g, false)

	m := table["ALONE"]
	assert.Equal(t, 1, m.Delay)
	assert.Equal(t, 0, m.Blocking)
	assert.Equal(t, 1, m.Complexity)
	assert.Equal(t, 0, m.Centrality)
}
