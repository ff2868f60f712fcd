package scoring

import (
	"github.com/egeaydn/Resume-Pointer/internal/parsing"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// Calculate scores a parsed resume against the 100-point rubric and returns
// the full result: total score, per-category breakdown, grade, message, and
// prioritized recommendations. Sections are detected internally when the
// document does not already carry them. Returns an InsufficientTextError when
// the text is too short to score meaningfully.
func Calculate(doc *types.Document) (*types.ScoreResult, error) {
	if err := parsing.CheckLength(doc.Text); err != nil {
		return nil, err
	}

	if doc.Sections == nil {
		scored := *doc
		scored.Sections = parsing.DetectSections(doc.Text)
		doc = &scored
	}
	if doc.Metadata.WordCount == 0 {
		scored := *doc
		scored.Metadata = parsing.ExtractMetadata(doc.Text, doc.Metadata.FileType)
		doc = &scored
	}

	breakdown := types.Breakdown{
		Structure:       scoreStructure(doc),
		TechnicalSkills: scoreTechnicalSkills(doc),
		WorkExperience:  scoreWorkExperience(doc),
		Education:       scoreEducation(doc),
		Formatting:      scoreFormatting(doc),
	}

	total := 0
	for _, cs := range breakdown.Categories() {
		total += cs.Score
	}

	result := &types.ScoreResult{
		TotalScore: total,
		Grade:      Grade(total),
		Message:    Message(total),
		Breakdown:  breakdown,
		Metadata: types.ResultMetadata{
			WordCount:      doc.Metadata.WordCount,
			EstimatedPages: doc.Metadata.EstimatedPages,
			FileType:       doc.Metadata.FileType,
		},
	}
	result.Recommendations = Recommendations(result)
	return result, nil
}
