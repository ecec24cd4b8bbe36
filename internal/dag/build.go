package dag

import (
	"context"
	"fmt"

	"github.com/vk/curricula/internal/ctxlog"
	"github.com/vk/curricula/internal/curriculum"
)

// Build constructs the validated requisite graph for a plan.
func Build(ctx context.Context, plan *curriculum.Plan) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)

	graph := New()
	for _, key := range plan.Keys {
		graph.AddCourse(key)
	}
	logger.Debug("Build: vertices created.", "count", graph.Len())

	for _, key := range plan.Keys {
		course, _ := plan.Course(key)
		for _, prereq := range course.Prerequisites {
			if err := graph.AddPrerequisite(key, prereq); err != nil {
				return nil, fmt.Errorf("wiring prerequisites of %s: %w", key, err)
			}
		}
		for _, coreq := range course.Corequisites {
			if err := graph.AddCorequisite(key, coreq, false); err != nil {
				return nil, fmt.Errorf("wiring corequisites of %s: %w", key, err)
			}
		}
		for _, coreq := range course.StrictCorequisites {
			if err := graph.AddCorequisite(key, coreq, true); err != nil {
				return nil, fmt.Errorf("wiring strict corequisites of %s: %w", key, err)
			}
		}
	}
	logger.Debug("Build: edges wired.", "edge_count", len(graph.Edges()))

	if err := graph.DetectCycles(); err != nil {
		return nil, fmt.Errorf("validating requisite graph: %w", err)
	}
	logger.Debug("Build: cycle detection passed.")

	return graph, nil
}
