package metrics

import "github.com/vk/curricula/internal/dag"

// computeCentrality enumerates every simple source-to-sink path in the
// requisite graph and adds each path's length (in vertices) to the score of
// its intermediate courses. Paths of fewer than three vertices have no
// intermediates and contribute nothing; sources and sinks always score 0.
// Explicit enumeration is quadratic-ish but curricula stay under ~100
// vertices, so the workspace is small.
func computeCentrality(g *dag.Graph) map[string]int {
	centrality := make(map[string]int, g.Len())
	var sources, sinks []string
	for _, id := range g.Courses() {
		centrality[id] = 0
		if len(g.RequisiteParents(id)) == 0 {
			sources = append(sources, id)
		}
		if len(g.RequisiteChildren(id)) == 0 {
			sinks = append(sinks, id)
		}
	}

	for _, source := range sources {
		for _, sink := range sinks {
			if source == sink {
				continue
			}
			walkPaths(g, source, sink, []string{source}, map[string]bool{source: true}, centrality)
		}
	}
	return centrality
}

// walkPaths runs a depth-first enumeration of simple paths from the current
// path head to target, crediting intermediates whenever target is reached.
func walkPaths(g *dag.Graph, current, target string, path []string, visited map[string]bool, centrality map[string]int) {
	if current == target {
		if len(path) <= 2 {
			return
		}
		for _, id := range path[1 : len(path)-1] {
			centrality[id] += len(path)
		}
		return
	}

	for _, child := range g.RequisiteChildren(current) {
		if visited[child] {
			continue
		}
		visited[child] = true
		walkPaths(g, child, target, append(path, child), visited, centrality)
		delete(visited, child)
	}
}
