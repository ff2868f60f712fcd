package parsing

import (
	"strings"

	"github.com/egeaydn/Resume-Pointer/internal/patterns"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// headerConfidence is the fixed confidence assigned to pattern-matched headers.
const headerConfidence = 0.9

// DetectSections partitions normalized text into named sections. Lines are
// scanned in order and tested against the section header patterns in fixed
// enumeration order; the first matching pattern wins. A matched header closes
// the currently open section and opens a new one. Every line, including the
// header line, is appended to the open section. Preamble text before the
// first header belongs to no section.
func DetectSections(text string) []types.Section {
	if text == "" {
		return nil
	}

	var sections []types.Section
	var current *types.Section
	var content strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		current.Content = content.String()
		sections = append(sections, *current)
		current = nil
		content.Reset()
	}

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		for _, sp := range patterns.SectionPatterns() {
			if sp.Pattern.MatchString(trimmed) {
				flush()
				current = &types.Section{
					Name:       sp.Name,
					StartLine:  i,
					EndLine:    i,
					Confidence: headerConfidence,
				}
				break
			}
		}

		if current != nil {
			content.WriteString(line)
			content.WriteString("\n")
			current.EndLine = i
		}
	}
	flush()

	return sections
}
