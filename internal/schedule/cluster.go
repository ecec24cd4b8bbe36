package schedule

import (
	"github.com/vk/curricula/internal/curriculum"
	"github.com/vk/curricula/internal/dag"
	"github.com/vk/curricula/internal/metrics"
)

// cluster is a connected component of the strict-corequisite subgraph. All
// members must share a term; a single course with no strict partners forms
// a cluster of one.
type cluster struct {
	// members in input order; the first member's input index is the
	// cluster's deterministic identity.
	members []string

	credits    float64
	maxDelay   int
	firstIndex int
	earliest   int
}

// buildClusters walks the strict-corequisite subgraph and groups its
// connected components. Iteration runs in input order so cluster identity
// and member order are stable.
func buildClusters(plan *curriculum.Plan, g *dag.Graph, table metrics.Table) []*cluster {
	visited := make(map[string]bool, plan.Len())
	var clusters []*cluster

	for _, key := range plan.Keys {
		if visited[key] {
			continue
		}

		component := []string{key}
		visited[key] = true
		queue := []string{key}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, partner := range g.StrictPartners(current) {
				if !visited[partner] {
					visited[partner] = true
					component = append(component, partner)
					queue = append(queue, partner)
				}
			}
		}

		clusters = append(clusters, newCluster(component, plan, g, table))
	}
	return clusters
}

func newCluster(component []string, plan *curriculum.Plan, g *dag.Graph, table metrics.Table) *cluster {
	// Order members by input position.
	for i := 1; i < len(component); i++ {
		for j := i; j > 0 && plan.InputIndex(component[j]) < plan.InputIndex(component[j-1]); j-- {
			component[j], component[j-1] = component[j-1], component[j]
		}
	}

	cl := &cluster{members: component, firstIndex: plan.InputIndex(component[0])}
	for _, key := range component {
		if course, ok := plan.Course(key); ok {
			cl.credits += course.CreditHours
		}
		if m, ok := table[key]; ok && m.Delay > cl.maxDelay {
			cl.maxDelay = m.Delay
		}
	}
	return cl
}

// contains reports cluster membership.
func (c *cluster) contains(key string) bool {
	for _, m := range c.members {
		if m == key {
			return true
		}
	}
	return false
}
