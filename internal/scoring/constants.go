// Package scoring implements the 100-point resume rubric: five independent
// category scorers, the aggregator, and the recommendation engine.
package scoring

import "github.com/egeaydn/Resume-Pointer/internal/types"

// Maximum points per category. The five values sum to 100.
const (
	MaxStructure       = 15
	MaxTechnicalSkills = 20
	MaxWorkExperience  = 30
	MaxEducation       = 15
	MaxFormatting      = 20
)

// TotalMaxScore is the rubric ceiling.
const TotalMaxScore = 100

// requiredSections are the sections whose presence earns structure points,
// 3 points each.
var requiredSections = []types.SectionName{
	types.SectionContact,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
}

// CategoryNames maps categories to their display names.
var CategoryNames = map[types.Category]string{
	types.CategoryStructure:       "CV Structure & Sections",
	types.CategoryTechnicalSkills: "Technical Skills",
	types.CategoryWorkExperience:  "Work Experience Content",
	types.CategoryEducation:       "Education",
	types.CategoryFormatting:      "Formatting & Readability",
}

// icons returns the display icon for a feedback type.
func icon(ft types.FeedbackType) string {
	switch ft {
	case types.FeedbackSuccess:
		return types.IconSuccess
	case types.FeedbackWarning:
		return types.IconWarning
	default:
		return types.IconError
	}
}

// feedback builds a feedback item with its icon derived from the type.
func feedback(ft types.FeedbackType, detail, message string) types.FeedbackItem {
	return types.FeedbackItem{Type: ft, Detail: detail, Message: message, Icon: icon(ft)}
}

// clamp enforces the 0 <= score <= max invariant after additive rule evaluation.
func clamp(score, max int) int {
	if score > max {
		return max
	}
	if score < 0 {
		return 0
	}
	return score
}
