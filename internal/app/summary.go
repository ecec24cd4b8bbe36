package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	okMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).SetString("✓")
	failMark = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).SetString("✗")
	warnText = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	planName = lipgloss.NewStyle().Bold(true)
	dimText  = lipgloss.NewStyle().Faint(true)
)

// printSummary writes the per-file outcome lines and the batch tally once
// every file has been processed.
func (a *App) printSummary(results []fileResult) {
	ok := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(a.outW, "%s %s %s\n", failMark, res.Path, dimText.Render(res.Err.Error()))
			continue
		}
		ok++
		line := fmt.Sprintf("%s %s  %s", okMark, planName.Render(res.PlanName),
			dimText.Render(fmt.Sprintf("%d courses · complexity %d · delay %d (%s) · centrality %d (%s) · %d terms",
				res.Courses,
				res.Summary.TotalComplexity,
				res.Summary.LongestDelay, res.Summary.LongestDelayCourse,
				res.Summary.HighestCentrality, res.Summary.HighestCentralityCourse,
				res.TermsUsed)))
		fmt.Fprintln(a.outW, line)
		if res.Unscheduled > 0 {
			fmt.Fprintln(a.outW, warnText.Render(fmt.Sprintf("  %d courses could not be scheduled", res.Unscheduled)))
		}
	}

	fmt.Fprintln(a.outW, dimText.Render(fmt.Sprintf("%d/%d curricula analyzed", ok, len(results))))
}
