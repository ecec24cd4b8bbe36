package metrics

import (
	"strings"

	"github.com/vk/curricula/internal/curriculum"
	"github.com/vk/curricula/internal/dag"
)

// Summary holds the plan-level aggregates reported above the course table.
type Summary struct {
	TotalComplexity         int
	LongestDelay            int
	LongestDelayCourse      string
	HighestCentrality       int
	HighestCentralityCourse string

	// CriticalPath is one witness of the longest delay: the prerequisite
	// chain from a root course to the max-delay course, with corequisite
	// partners folded into "(A+B)" groups.
	CriticalPath []string
}

// Summarize computes the aggregates over a plan's metrics table. Arg-max
// ties resolve to the course appearing earliest in input order, which is
// why iteration runs over plan.Keys rather than the map.
func Summarize(plan *curriculum.Plan, g *dag.Graph, table Table) Summary {
	var s Summary
	for _, key := range plan.Keys {
		m, ok := table[key]
		if !ok {
			continue
		}
		s.TotalComplexity += m.Complexity
		if m.Delay > s.LongestDelay {
			s.LongestDelay = m.Delay
			s.LongestDelayCourse = key
		}
		if m.Centrality > s.HighestCentrality {
			s.HighestCentrality = m.Centrality
			s.HighestCentralityCourse = key
		}
	}
	s.CriticalPath = criticalPath(plan, g, table)
	return s
}

// criticalPath traces the longest prerequisite chain realizing the maximum
// delay. Every max-delay course is tried as an endpoint; the longest
// traceback wins, earliest input order breaking ties.
func criticalPath(plan *curriculum.Plan, g *dag.Graph, table Table) []string {
	maxDelay := 0
	for _, key := range plan.Keys {
		if m, ok := table[key]; ok && m.Delay > maxDelay {
			maxDelay = m.Delay
		}
	}
	if maxDelay == 0 {
		return nil
	}

	var longest []string
	for _, key := range plan.Keys {
		if m, ok := table[key]; !ok || m.Delay != maxDelay {
			continue
		}
		path := tracePrerequisites(key, g, table)
		if len(path) > len(longest) {
			longest = path
		}
	}

	return expandWithCorequisites(longest, g)
}

// tracePrerequisites follows the prerequisite chain backwards from start,
// greedily stepping to the highest-delay prerequisite each time.
func tracePrerequisites(start string, g *dag.Graph, table Table) []string {
	path := []string{start}
	current := start

	for {
		prereqs := g.Prerequisites(current)
		if len(prereqs) == 0 {
			break
		}
		best := prereqs[0]
		for _, p := range prereqs[1:] {
			if table[p].Delay > table[best].Delay {
				best = p
			}
		}
		path = append(path, best)
		current = best
	}

	// Reverse into root-to-endpoint order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// expandWithCorequisites folds each path step's corequisite partners into a
// "(A+B)" group so the rendered path shows what is actually taken together.
func expandWithCorequisites(path []string, g *dag.Graph) []string {
	var expanded []string
	seen := make(map[string]bool, len(path))

	for _, course := range path {
		if seen[course] {
			continue
		}
		group := []string{course}
		seen[course] = true

		for _, coreq := range g.Corequisites(course) {
			if !seen[coreq] {
				group = append(group, coreq)
				seen[coreq] = true
			}
		}
		for _, parent := range g.CoreqDependents(course) {
			if containsCourse(path, parent) && !seen[parent] {
				group = append(group, parent)
				seen[parent] = true
			}
		}

		if len(group) > 1 {
			expanded = append(expanded, "("+strings.Join(group, "+")+")")
		} else {
			expanded = append(expanded, course)
		}
	}
	return expanded
}

func containsCourse(path []string, course string) bool {
	for _, c := range path {
		if c == course {
			return true
		}
	}
	return false
}
