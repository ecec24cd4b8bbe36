// Package schedule assigns each course of a plan to a term. The packer is a
// greedy, prerequisite-respecting credit balancer: strict-corequisite
// clusters always land in one term, longest requisite chains are placed
// first, and every tie-break follows input order so schedules are
// reproducible run to run.
package schedule
