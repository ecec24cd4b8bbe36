// Package dag provides the requisite graph over a plan's storage keys:
// prerequisite edges plus (strict-)corequisite edges, with forward and
// reverse adjacency per kind. Cycle detection runs over the prerequisite
// projection only; topological ordering covers the full requisite edge set
// and breaks ties by input order so downstream output is reproducible.
package dag
