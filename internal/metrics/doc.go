// Package metrics computes the four curriculum-analytics metrics (Delay,
// Blocking, Complexity, Centrality) over a plan's requisite graph, plus the
// plan-level summary aggregates and critical path. All traversals follow
// prerequisite and corequisite edges alike; that is what lets a lab course
// inherit the chain of the lecture it is strictly tied to.
package metrics
