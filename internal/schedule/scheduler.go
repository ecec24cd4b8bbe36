package schedule

import (
	"context"
	"sort"

	"github.com/vk/curricula/internal/ctxlog"
	"github.com/vk/curricula/internal/curriculum"
	"github.com/vk/curricula/internal/dag"
	"github.com/vk/curricula/internal/metrics"
)

// Assign packs every course of the plan into terms.
//
// Terms fill one at a time. A cluster is a candidate for term t once all of
// its members' prerequisites sit in earlier terms and its earliest feasible
// term is ≤ t. Candidates are taken in order of descending maximum delay
// (longest chains first), then ascending input order. Regular corequisites
// do not reorder candidates: a cluster shares its partner's term only when
// its turn in that order comes while the credits still fit, and a cluster
// passed over for credits is not admitted later in the same term. A
// cluster is admitted while the running
// credit total stays within the target, or unconditionally into an empty
// term; clusters are never split. When a term ends empty with clusters
// still unplaced, those clusters cannot ever place (a data anomaly the
// cycle check does not cover) and are surfaced in the Unscheduled bucket.
func Assign(ctx context.Context, plan *curriculum.Plan, g *dag.Graph, table metrics.Table, targetCredits float64) *TermPlan {
	logger := ctxlog.FromContext(ctx)
	if targetCredits <= 0 {
		targetCredits = DefaultTargetCredits
	}

	result := &TermPlan{
		TargetCredits: targetCredits,
		Quarter:       plan.IsQuarter(),
	}

	clusters := buildClusters(plan, g, table)
	earliest := earliestTerms(plan, g)
	for _, cl := range clusters {
		for _, key := range cl.members {
			if earliest[key] > cl.earliest {
				cl.earliest = earliest[key]
			}
		}
	}

	placedTerm := make(map[string]int, plan.Len())
	remaining := append([]*cluster(nil), clusters...)

	for t := 1; len(remaining) > 0; t++ {
		term := Term{Index: t}

		candidates := candidatesFor(remaining, t, placedTerm, g)
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].maxDelay != candidates[j].maxDelay {
				return candidates[i].maxDelay > candidates[j].maxDelay
			}
			return candidates[i].firstIndex < candidates[j].firstIndex
		})

		admitted := make(map[*cluster]bool)
		admit := func(cl *cluster) {
			for _, key := range cl.members {
				course, _ := plan.Course(key)
				term.Courses = append(term.Courses, key)
				term.Credits += course.CreditHours
				placedTerm[key] = t
			}
			admitted[cl] = true
		}

		for _, cl := range candidates {
			if len(term.Courses) == 0 || term.Credits+cl.credits <= targetCredits {
				admit(cl)
			}
		}

		// Soft corequisite preference: keep sweeping the leftovers for
		// clusters whose regular coreq partner just landed in this term,
		// admitting them while credits allow.
		for {
			progressed := false
			for _, cl := range candidates {
				if admitted[cl] || term.Credits+cl.credits > targetCredits {
					continue
				}
				if coreqPartnerInTerm(cl, g, placedTerm, t) {
					admit(cl)
					progressed = true
				}
			}
			if !progressed {
				break
			}
		}

		if len(term.Courses) == 0 {
			// No candidate could enter an empty term: the rest are
			// unplaceable. Surface them and keep the batch going.
			for _, cl := range remaining {
				result.Unscheduled = append(result.Unscheduled, cl.members...)
			}
			logger.Warn("scheduler: unplaceable courses moved to unscheduled bucket",
				"count", len(result.Unscheduled), "term", t)
			break
		}

		result.Terms = append(result.Terms, term)
		remaining = withoutAdmitted(remaining, admitted)
	}

	return result
}

// candidatesFor filters clusters whose prerequisites are all placed in
// earlier terms and whose earliest feasible term has arrived.
func candidatesFor(remaining []*cluster, t int, placedTerm map[string]int, g *dag.Graph) []*cluster {
	var candidates []*cluster
	for _, cl := range remaining {
		if cl.earliest > t {
			continue
		}
		ready := true
		for _, key := range cl.members {
			for _, prereq := range g.Prerequisites(key) {
				// A prerequisite inside the same cluster can never sit in
				// an earlier term; such clusters stay unready for good.
				pt, placed := placedTerm[prereq]
				if !placed || pt >= t {
					ready = false
					break
				}
			}
			if !ready {
				break
			}
		}
		if ready {
			candidates = append(candidates, cl)
		}
	}
	return candidates
}

// coreqPartnerInTerm reports whether any member's regular corequisite
// partner is already placed in term t.
func coreqPartnerInTerm(cl *cluster, g *dag.Graph, placedTerm map[string]int, t int) bool {
	for _, key := range cl.members {
		for _, partner := range g.Corequisites(key) {
			if placedTerm[partner] == t && !g.IsStrict(key, partner) {
				return true
			}
		}
		for _, partner := range g.CoreqDependents(key) {
			if placedTerm[partner] == t && !g.IsStrict(key, partner) {
				return true
			}
		}
	}
	return false
}

// earliestTerms computes 1 + max over prerequisites, memoized over the
// acyclic prerequisite projection. Roots get term 1.
func earliestTerms(plan *curriculum.Plan, g *dag.Graph) map[string]int {
	memo := make(map[string]int, plan.Len())

	var visit func(key string) int
	visit = func(key string) int {
		if v, ok := memo[key]; ok {
			return v
		}
		term := 1
		for _, prereq := range g.Prerequisites(key) {
			if t := visit(prereq) + 1; t > term {
				term = t
			}
		}
		memo[key] = term
		return term
	}

	for _, key := range plan.Keys {
		visit(key)
	}
	return memo
}

func withoutAdmitted(remaining []*cluster, admitted map[*cluster]bool) []*cluster {
	out := remaining[:0]
	for _, cl := range remaining {
		if !admitted[cl] {
			out = append(out, cl)
		}
	}
	return out
}
