package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/gbfwtest/gpiocert/internal/model"
)

var (
	passStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	stepOkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	stepErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func renderResult(w io.Writer, result *model.CaseResult) {
	fmt.Fprintf(w, "\nCase %d: %s\n", result.CaseID, result.Name)

	for _, step := range result.Steps {
		fmt.Fprintf(w, "  %s %s", stepSymbol(step), step.Name)
		if step.Message != "" {
			fmt.Fprintf(w, "  %s", dimStyle.Render(step.Message))
		}
		fmt.Fprintln(w)
	}

	for _, step := range result.Recovery {
		fmt.Fprintf(w, "  %s %s  %s\n", stepSymbol(step), step.Name, dimStyle.Render(step.Message))
	}

	verdict := passStyle.Render("PASS")
	if !result.Passed() {
		verdict = failStyle.Render("FAIL")
		if result.Error != nil {
			fmt.Fprintf(w, "\n%s\n", result.Error)
		}
	}
	fmt.Fprintf(w, "\n%s  (%.2fs)\n", verdict, result.Duration.Seconds())
}

func stepSymbol(step model.StepResult) string {
	if step.Failed() {
		return stepErrStyle.Render("✗")
	}
	return stepOkStyle.Render("✓")
}
