package report

import (
	"github.com/vk/curricula/internal/curriculum"
	"github.com/vk/curricula/internal/dag"
	"github.com/vk/curricula/internal/metrics"
)

// CourseRow is one course of the plan with everything a renderer needs.
// Relationship slices hold the original csv_id tokens, which is what the
// metrics CSV round-trips through.
type CourseRow struct {
	CSVID      string
	StorageKey string
	Name       string
	Prefix     string
	Number     string

	Prerequisites      []string
	Corequisites       []string
	StrictCorequisites []string

	CreditHours   float64
	Institution   string
	CanonicalName string

	Metrics metrics.CourseMetrics
}

// TermCourse pairs a scheduled course with its display name.
type TermCourse struct {
	StorageKey string
	Name       string
	Credits    float64
}

// TermBucket is one term of the schedule, ready for rendering.
type TermBucket struct {
	Index   int
	Credits float64
	Courses []TermCourse
}

// EdgeList partitions the graph's edges by kind.
type EdgeList struct {
	Prereq      []dag.Edge
	Coreq       []dag.Edge
	StrictCoreq []dag.Edge
}

// Model is the immutable bundle handed to renderers: plan metadata, the
// metric rows, the term schedule, the aggregates, and the edge list.
type Model struct {
	PlanName    string
	Institution string
	DegreeType  string
	Year        string
	SystemType  curriculum.SystemType
	CIPCode     string

	// Header is the input header row, which the metrics CSV extends.
	Header []string

	// Rows in input order.
	Rows []CourseRow
	// RowsByComplexity is the same rows sorted by descending complexity,
	// ties broken by input order.
	RowsByComplexity []CourseRow

	Terms       []TermBucket
	Unscheduled []string
	TermLabel   string
	TermsUsed   int
	Years       int

	Summary metrics.Summary
	Edges   EdgeList

	CourseCount  int
	TotalCredits float64
}

// ScheduleOf exposes the term index per storage key for diagram rendering.
func (m *Model) ScheduleOf(key string) int {
	for _, t := range m.Terms {
		for _, c := range t.Courses {
			if c.StorageKey == key {
				return t.Index
			}
		}
	}
	return 0
}
