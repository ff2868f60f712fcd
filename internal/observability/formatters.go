// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/egeaydn/Resume-Pointer/internal/scoring"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// barWidth is the width of category score bars
	barWidth = 20
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreResult outputs a human-readable summary of a score result:
// total score, per-category bars, feedback, and recommendations.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:    %d / 100 (%s)\n", result.TotalScore, result.Grade))
	sb.WriteString("\n")

	for _, cs := range result.Breakdown.Categories() {
		sb.WriteString(fmt.Sprintf("%-26s %s %2d/%d\n",
			scoring.CategoryNames[cs.Category], scoreBar(cs.Score, cs.MaxScore), cs.Score, cs.MaxScore))
	}

	p.printBox("Resume Score", sb.String())

	p.printFeedback(result)
	p.printRecommendations(result.Recommendations)
}

// printFeedback lists non-success feedback items grouped by category.
func (p *Printer) printFeedback(result *types.ScoreResult) {
	var sb strings.Builder
	for _, cs := range result.Breakdown.Categories() {
		for _, item := range cs.Feedback {
			if item.Passed() {
				continue
			}
			sb.WriteString(fmt.Sprintf("%s %s\n", item.Icon, item.Message))
		}
	}
	if sb.Len() == 0 {
		return
	}
	p.printBox("Issues", sb.String())
}

// printRecommendations lists recommendations in priority order.
func (p *Printer) printRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for _, rec := range recs {
		sb.WriteString(fmt.Sprintf("%d. %s [%s]\n", rec.Priority, rec.Title, rec.Impact))
		sb.WriteString(fmt.Sprintf("   %s\n", rec.Description))
	}
	p.printBox("Recommendations", sb.String())
}

// scoreBar renders a fixed-width fill bar for a score.
func scoreBar(score, max int) string {
	filled := 0
	if max > 0 {
		filled = score * barWidth / max
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
