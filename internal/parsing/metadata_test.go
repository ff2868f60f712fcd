package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egeaydn/Resume-Pointer/internal/types"
)

func TestExtractMetadata_Counts(t *testing.T) {
	meta := ExtractMetadata("one two three\n\nfour five", types.FileTypeText)
	assert.Equal(t, 5, meta.WordCount)
	assert.Equal(t, 2, meta.LineCount)
	assert.Equal(t, 1, meta.EstimatedPages)
	assert.Equal(t, types.FileTypeText, meta.FileType)
}

func TestExtractMetadata_PageEstimateRoundsUp(t *testing.T) {
	text := strings.Repeat("word ", 501)
	meta := ExtractMetadata(text, types.FileTypeText)
	assert.Equal(t, 501, meta.WordCount)
	assert.Equal(t, 2, meta.EstimatedPages)
}

func TestExtractMetadata_Empty(t *testing.T) {
	meta := ExtractMetadata("", types.FileTypeText)
	assert.Equal(t, 0, meta.WordCount)
	assert.Equal(t, 0, meta.EstimatedPages)
	assert.False(t, meta.HasContactInfo)
}

func TestExtractMetadata_ContactInfo(t *testing.T) {
	meta := ExtractMetadata("reach me at jane@example.com", types.FileTypeText)
	assert.True(t, meta.HasContactInfo)
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("Summary\r\nSeasoned engineer.\r\n\r\n\r\nSkills\r\nGo, Python", types.FileTypePDF)
	require.NotNil(t, doc)

	assert.NotContains(t, doc.Text, "\r")
	assert.Equal(t, types.FileTypePDF, doc.Metadata.FileType)
	assert.True(t, doc.HasSection(types.SectionSummary))
	assert.True(t, doc.HasSection(types.SectionSkills))

	content, ok := doc.SectionContent(types.SectionSkills)
	require.True(t, ok)
	assert.Contains(t, content, "Go, Python")
}
