// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
	"github.com/MikeHopcroft/PrixFixe-sub000/scoring"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	stepStyle   = lipgloss.NewStyle().PaddingLeft(2)
	idStyle     = lipgloss.NewStyle().Width(24)
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	opStyles = map[align.Op]lipgloss.Style{
		align.Delete: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		align.Insert: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		align.Repair: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
)

// renderDiff prints the total cost, then each edit's op and its steps.
func renderDiff(w io.Writer, res align.DiffResult) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("cost: %g", res.Cost)))
	renderEdits(w, res.Edits)
}

func renderEdits(w io.Writer, edits []align.Edit) {
	for _, e := range edits {
		fmt.Fprintln(w, opStyles[e.Op].Render(e.Op.String()))
		for _, s := range e.Steps {
			fmt.Fprintln(w, stepStyle.Render(s))
		}
	}
}

// renderReport prints one line per case followed by the aggregate. With
// details, the edits of failing cases are listed under them.
func renderReport(w io.Writer, rep scoring.Report, details bool) {
	for _, r := range rep.Results {
		status := passStyle.Render("PASS")
		if !r.Passed {
			status = failStyle.Render("FAIL")
		}
		fmt.Fprintf(w, "%s %s %g\n", status, idStyle.Render(r.ID), r.Diff.Cost)
		if details && !r.Passed {
			renderEdits(w, r.Diff.Edits)
		}
	}

	agg := rep.Aggregate
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf(
		"cases: %d  passed: %d  failed: %d  repairs: %g  pass rate: %.1f%%",
		agg.Cases, agg.Passed, agg.Failed, agg.TotalRepairs, 100*agg.PassRate)))
}
