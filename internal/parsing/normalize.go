// Package parsing converts raw extracted resume text into a scored-ready
// document: normalization, section detection, and signal extraction.
package parsing

import "strings"

// MinTextLength is the minimum normalized text length the scorer accepts.
// Anything shorter signals an upstream extraction failure.
const MinTextLength = 20

// Normalize converts raw extracted text into canonical form: consistent "\n"
// line endings, no control characters, at most one blank line between
// paragraphs, single spaces within lines, and no leading or trailing
// whitespace. It is total: empty input yields empty output.
func Normalize(raw string) string {
	// Normalize line break variants first so control stripping keeps newlines.
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' {
			b.WriteRune(r)
			continue
		}
		// Strip ASCII control characters (0x00-0x1F, 0x7F), keep tabs as
		// whitespace so intra-line collapsing handles them.
		if r == '\t' {
			b.WriteRune(' ')
			continue
		}
		if r < 0x20 || r == 0x7F {
			continue
		}
		b.WriteRune(r)
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = collapseSpaces(line)
	}

	text = strings.Join(lines, "\n")
	text = collapseBlankLines(text)
	return strings.TrimSpace(text)
}

// collapseSpaces reduces runs of spaces to a single space and trims the line.
func collapseSpaces(line string) string {
	fields := strings.Fields(line)
	return strings.Join(fields, " ")
}

// collapseBlankLines reduces 3+ consecutive newlines to exactly 2.
func collapseBlankLines(text string) string {
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return text
}

// WordCount counts whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
