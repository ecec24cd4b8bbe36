package report

import (
	"sort"

	"github.com/vk/curricula/internal/curriculum"
	"github.com/vk/curricula/internal/dag"
	"github.com/vk/curricula/internal/metrics"
	"github.com/vk/curricula/internal/schedule"
)

// Compose assembles the report model. It is a pure function: nothing here
// touches the file system or mutates its inputs.
func Compose(plan *curriculum.Plan, g *dag.Graph, table metrics.Table, termPlan *schedule.TermPlan, summary metrics.Summary) *Model {
	m := &Model{
		PlanName:    plan.Name,
		Institution: plan.Institution,
		DegreeType:  plan.DegreeType,
		Year:        plan.Year,
		SystemType:  plan.SystemType,
		CIPCode:     plan.CIPCode,
		Header:      append([]string(nil), plan.Header...),

		TermLabel:   termPlan.TermLabel(),
		TermsUsed:   termPlan.TermsUsed(),
		Years:       termPlan.Years(),
		Unscheduled: append([]string(nil), termPlan.Unscheduled...),

		Summary:      summary,
		CourseCount:  plan.Len(),
		TotalCredits: plan.TotalCredits(),
	}

	csvIDOf := make(map[string]string, plan.Len())
	for _, key := range plan.Keys {
		course, _ := plan.Course(key)
		csvIDOf[key] = course.CSVID
	}
	asCSVIDs := func(keys []string) []string {
		var ids []string
		for _, k := range keys {
			if id, ok := csvIDOf[k]; ok && id != "" {
				ids = append(ids, id)
			} else {
				ids = append(ids, k)
			}
		}
		return ids
	}

	for _, key := range plan.Keys {
		course, _ := plan.Course(key)
		m.Rows = append(m.Rows, CourseRow{
			CSVID:              course.CSVID,
			StorageKey:         key,
			Name:               course.Name,
			Prefix:             course.Prefix,
			Number:             course.Number,
			Prerequisites:      asCSVIDs(course.Prerequisites),
			Corequisites:       asCSVIDs(course.Corequisites),
			StrictCorequisites: asCSVIDs(course.StrictCorequisites),
			CreditHours:        course.CreditHours,
			Institution:        plan.Institution,
			CanonicalName:      course.CanonicalName,
			Metrics:            table[key],
		})
	}

	m.RowsByComplexity = append([]CourseRow(nil), m.Rows...)
	sort.SliceStable(m.RowsByComplexity, func(i, j int) bool {
		return m.RowsByComplexity[i].Metrics.Complexity > m.RowsByComplexity[j].Metrics.Complexity
	})

	for _, term := range termPlan.Terms {
		bucket := TermBucket{Index: term.Index, Credits: term.Credits}
		for _, key := range term.Courses {
			tc := TermCourse{StorageKey: key}
			if course, ok := plan.Course(key); ok {
				tc.Name = course.Name
				tc.Credits = course.CreditHours
			}
			bucket.Courses = append(bucket.Courses, tc)
		}
		m.Terms = append(m.Terms, bucket)
	}

	for _, e := range g.Edges() {
		switch e.Kind {
		case dag.Prereq:
			m.Edges.Prereq = append(m.Edges.Prereq, e)
		case dag.Coreq:
			m.Edges.Coreq = append(m.Edges.Coreq, e)
		case dag.StrictCoreq:
			m.Edges.StrictCoreq = append(m.Edges.StrictCoreq, e)
		}
	}

	return m
}
