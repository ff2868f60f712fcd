package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egeaydn/Resume-Pointer/internal/types"
)

const sampleResume = `Jane Doe
jane@example.com | 555-123-4567

Summary
Backend engineer with six years of experience.

Work Experience
• Led migration to Kubernetes
• Reduced deploy time by 40%

Education
B.S. Computer Science, 2018

Skills
Go, Python, PostgreSQL`

func sectionNames(sections []types.Section) []types.SectionName {
	names := make([]types.SectionName, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	return names
}

func TestDetectSections_NamesInDocumentOrder(t *testing.T) {
	sections := DetectSections(sampleResume)
	assert.Equal(t, []types.SectionName{
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	}, sectionNames(sections))
}

func TestDetectSections_PreambleBelongsToNoSection(t *testing.T) {
	sections := DetectSections(sampleResume)
	require.NotEmpty(t, sections)
	assert.NotContains(t, sections[0].Content, "jane@example.com")
}

func TestDetectSections_HeaderLineIncludedInContent(t *testing.T) {
	sections := DetectSections(sampleResume)
	require.NotEmpty(t, sections)
	assert.Contains(t, sections[0].Content, "Summary")
	assert.Contains(t, sections[0].Content, "Backend engineer")
}

func TestDetectSections_LineRanges(t *testing.T) {
	sections := DetectSections(sampleResume)
	require.Len(t, sections, 4)

	summary := sections[0]
	assert.Equal(t, 3, summary.StartLine)
	assert.Equal(t, 5, summary.EndLine)

	skills := sections[3]
	assert.Equal(t, 13, skills.StartLine)
	assert.Equal(t, 14, skills.EndLine)
}

func TestDetectSections_Confidence(t *testing.T) {
	for _, s := range DetectSections(sampleResume) {
		assert.Equal(t, 0.9, s.Confidence)
	}
}

func TestDetectSections_NoHeaders(t *testing.T) {
	assert.Empty(t, DetectSections("just a paragraph of prose\nwith no headings at all"))
}

func TestDetectSections_Empty(t *testing.T) {
	assert.Empty(t, DetectSections(""))
}

func TestDetectSections_ContentLinesAreNotHeaders(t *testing.T) {
	text := "Work Experience\nExperienced in distributed systems\nSkills were applied daily"
	sections := DetectSections(text)
	require.Len(t, sections, 1)
	assert.Equal(t, types.SectionExperience, sections[0].Name)
	assert.Equal(t, 2, sections[0].EndLine)
}
