package metrics

import (
	"math"

	"github.com/vk/curricula/internal/dag"
)

// CourseMetrics bundles the four per-course metrics.
type CourseMetrics struct {
	// Delay is the length in vertices of the longest requisite path through
	// the course. An isolated course has Delay 1.
	Delay int
	// Blocking counts the courses transitively reachable from this one.
	Blocking int
	// Complexity is Delay + Blocking, scaled by 2/3 for quarter systems.
	Complexity int
	// Centrality sums the lengths of all source-to-sink paths through the
	// course. Sources and sinks score 0.
	Centrality int
}

// Table maps storage keys to their metrics.
type Table map[string]CourseMetrics

// Compute evaluates every metric for every course in the graph. The quarter
// flag applies the quarter-system complexity scaling.
func Compute(g *dag.Graph, quarter bool) Table {
	delay := computeDelay(g)
	blocking := computeBlocking(g)
	centrality := computeCentrality(g)

	table := make(Table, g.Len())
	for _, id := range g.Courses() {
		d := delay[id]
		b := blocking[id]
		table[id] = CourseMetrics{
			Delay:      d,
			Blocking:   b,
			Complexity: complexityOf(d, b, quarter),
			Centrality: centrality[id],
		}
	}
	return table
}

// complexityOf combines delay and blocking. Quarter systems scale by 2/3
// with banker's rounding (ties to even); the result never drops below 1.
func complexityOf(delay, blocking int, quarter bool) int {
	c := delay + blocking
	if quarter {
		c = int(math.RoundToEven(float64(c) * 2.0 / 3.0))
	}
	if c < 1 {
		c = 1
	}
	return c
}

// computeDelay finds, for each course, the longest requisite path that
// passes through it: two dynamic-programming sweeps over the topological
// order, one for the longest incoming path and one for the longest outgoing.
func computeDelay(g *dag.Graph) map[string]int {
	topo := g.TopologicalOrder()

	longestTo := make(map[string]int, len(topo))
	for _, id := range topo {
		best := 0
		for _, parent := range g.RequisiteParents(id) {
			if candidate := longestTo[parent] + 1; candidate > best {
				best = candidate
			}
		}
		longestTo[id] = best
	}

	longestFrom := make(map[string]int, len(topo))
	for i := len(topo) - 1; i >= 0; i-- {
		id := topo[i]
		best := 0
		for _, child := range g.RequisiteChildren(id) {
			if candidate := longestFrom[child] + 1; candidate > best {
				best = candidate
			}
		}
		longestFrom[id] = best
	}

	delay := make(map[string]int, len(topo))
	for _, id := range topo {
		delay[id] = longestTo[id] + longestFrom[id] + 1
	}
	return delay
}

// computeBlocking counts the descendant set of each course by breadth-first
// search over outgoing requisite edges.
func computeBlocking(g *dag.Graph) map[string]int {
	blocking := make(map[string]int, g.Len())
	for _, id := range g.Courses() {
		visited := map[string]bool{id: true}
		queue := []string{id}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, child := range g.RequisiteChildren(current) {
				if !visited[child] {
					visited[child] = true
					queue = append(queue, child)
				}
			}
		}
		blocking[id] = len(visited) - 1
	}
	return blocking
}
