package parsing

import (
	"strings"

	"github.com/egeaydn/Resume-Pointer/internal/patterns"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// wordsPerPage is the rough word density used to estimate page count.
const wordsPerPage = 500

// ExtractMetadata computes basic measurements over normalized text.
func ExtractMetadata(text string, fileType types.FileType) types.Metadata {
	lineCount := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lineCount++
		}
	}

	wordCount := WordCount(text)
	estimatedPages := (wordCount + wordsPerPage - 1) / wordsPerPage
	if estimatedPages == 0 && wordCount > 0 {
		estimatedPages = 1
	}

	return types.Metadata{
		WordCount:      wordCount,
		LineCount:      lineCount,
		HasContactInfo: patterns.Email.MatchString(text) || patterns.Phone.MatchString(text),
		EstimatedPages: estimatedPages,
		FileType:       fileType,
	}
}

// NewDocument builds a scoring-ready document from raw extracted text:
// normalization, metadata extraction, and section detection.
func NewDocument(rawText string, fileType types.FileType) *types.Document {
	normalized := Normalize(rawText)
	return &types.Document{
		RawText:  rawText,
		Text:     normalized,
		Sections: DetectSections(normalized),
		Metadata: ExtractMetadata(normalized, fileType),
	}
}
