package dag

import "fmt"

// New creates an empty requisite graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// AddCourse adds a vertex for the given storage key. Adding an existing key
// is a no-op, so input order is fixed by the first insertion.
func (g *Graph) AddCourse(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{
		id:     id,
		index:  len(g.order),
		strict: make(map[string]bool),
	}
	g.order = append(g.order, id)
}

// AddPrerequisite records that prereqID must complete before courseID. An
// error is returned for unknown vertices or a self-referential edge.
func (g *Graph) AddPrerequisite(courseID, prereqID string) error {
	course, prereq, err := g.pair(courseID, prereqID)
	if err != nil {
		return err
	}
	if !containsID(course.prereqs, prereqID) {
		course.prereqs = append(course.prereqs, prereqID)
		prereq.dependents = append(prereq.dependents, courseID)
	}
	return nil
}

// AddCorequisite records that coreqID must be taken with (or before)
// courseID. Strict corequisites keep their tag so the scheduler can force
// same-term placement; for metric traversal both kinds are the same edge.
func (g *Graph) AddCorequisite(courseID, coreqID string, strict bool) error {
	course, coreq, err := g.pair(courseID, coreqID)
	if err != nil {
		return err
	}
	if !containsID(course.coreqs, coreqID) {
		course.coreqs = append(course.coreqs, coreqID)
		coreq.coreqDependents = append(coreq.coreqDependents, courseID)
	}
	if strict {
		course.strict[coreqID] = true
		coreq.strict[courseID] = true
	}
	return nil
}

func (g *Graph) pair(fromID, toID string) (*node, *node, error) {
	if fromID == toID {
		return nil, nil, fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}
	from, ok := g.nodes[fromID]
	if !ok {
		return nil, nil, fmt.Errorf("course not found: %s", fromID)
	}
	to, ok := g.nodes[toID]
	if !ok {
		return nil, nil, fmt.Errorf("course not found: %s", toID)
	}
	return from, to, nil
}

// Courses returns all storage keys in input order.
func (g *Graph) Courses() []string {
	return append([]string(nil), g.order...)
}

// Len returns the vertex count.
func (g *Graph) Len() int {
	return len(g.order)
}

// Contains reports whether the storage key is a vertex of the graph.
func (g *Graph) Contains(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// InputIndex returns a vertex's position in input order, or -1.
func (g *Graph) InputIndex(id string) int {
	if n, ok := g.nodes[id]; ok {
		return n.index
	}
	return -1
}

// Prerequisites returns the prereq parents of a course, in edge order.
func (g *Graph) Prerequisites(id string) []string {
	if n, ok := g.nodes[id]; ok {
		return append([]string(nil), n.prereqs...)
	}
	return nil
}

// Dependents returns the courses that list id as a prerequisite.
func (g *Graph) Dependents(id string) []string {
	if n, ok := g.nodes[id]; ok {
		return append([]string(nil), n.dependents...)
	}
	return nil
}

// Corequisites returns the coreq parents of a course (regular and strict).
func (g *Graph) Corequisites(id string) []string {
	if n, ok := g.nodes[id]; ok {
		return append([]string(nil), n.coreqs...)
	}
	return nil
}

// CoreqDependents returns the courses that list id as a corequisite.
func (g *Graph) CoreqDependents(id string) []string {
	if n, ok := g.nodes[id]; ok {
		return append([]string(nil), n.coreqDependents...)
	}
	return nil
}

// IsStrict reports whether the coreq relationship between the two courses
// was tagged strict (in either direction).
func (g *Graph) IsStrict(a, b string) bool {
	if n, ok := g.nodes[a]; ok {
		return n.strict[b]
	}
	return false
}

// StrictPartners returns the strict-coreq neighbors of a course, in edge
// order, regardless of which row declared the relationship.
func (g *Graph) StrictPartners(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	var partners []string
	for _, c := range n.coreqs {
		if n.strict[c] {
			partners = append(partners, c)
		}
	}
	for _, c := range n.coreqDependents {
		if n.strict[c] && !containsID(partners, c) {
			partners = append(partners, c)
		}
	}
	return partners
}

// RequisiteParents returns prereq then coreq parents, deduplicated. This is
// the incoming edge set metric traversals walk.
func (g *Graph) RequisiteParents(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	parents := append([]string(nil), n.prereqs...)
	for _, c := range n.coreqs {
		if !containsID(parents, c) {
			parents = append(parents, c)
		}
	}
	return parents
}

// RequisiteChildren returns prereq then coreq dependents, deduplicated.
func (g *Graph) RequisiteChildren(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	children := append([]string(nil), n.dependents...)
	for _, c := range n.coreqDependents {
		if !containsID(children, c) {
			children = append(children, c)
		}
	}
	return children
}

// Edges returns every edge in the graph, grouped by source vertex in input
// order. Strict corequisites surface once, on the declaring course.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, id := range g.order {
		n := g.nodes[id]
		for _, p := range n.prereqs {
			edges = append(edges, Edge{From: p, To: id, Kind: Prereq})
		}
		for _, c := range n.coreqs {
			kind := Coreq
			if n.strict[c] {
				kind = StrictCoreq
			}
			edges = append(edges, Edge{From: c, To: id, Kind: kind})
		}
	}
	return edges
}

func containsID(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
