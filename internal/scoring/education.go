package scoring

import (
	"strings"

	"github.com/egeaydn/Resume-Pointer/internal/patterns"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// scoreEducation awards 10 points for an education section, plus 3 for degree
// or certification keywords and 2 for a graduation year within it.
func scoreEducation(doc *types.Document) *types.CategoryScore {
	var fb []types.FeedbackItem
	score := 0

	content, ok := doc.SectionContent(types.SectionEducation)
	if ok {
		score += 10
		fb = append(fb, feedback(types.FeedbackSuccess, "education_section",
			"Education section found"))

		if containsDegreeKeyword(content) {
			score += 3
			fb = append(fb, feedback(types.FeedbackSuccess, "degree",
				"Degree information included"))
		} else {
			fb = append(fb, feedback(types.FeedbackWarning, "degree",
				"Include degree or certification details"))
		}

		if patterns.GraduationYear.MatchString(content) {
			score += 2
			fb = append(fb, feedback(types.FeedbackSuccess, "graduation_year",
				"Graduation dates included"))
		} else {
			fb = append(fb, feedback(types.FeedbackWarning, "graduation_year",
				"Add graduation dates"))
		}
	} else {
		fb = append(fb, feedback(types.FeedbackError, "education_section",
			"Education section missing"))
	}

	return &types.CategoryScore{
		Category: types.CategoryEducation,
		Score:    clamp(score, MaxEducation),
		MaxScore: MaxEducation,
		Feedback: fb,
	}
}

func containsDegreeKeyword(content string) bool {
	lower := strings.ToLower(content)
	for _, keyword := range patterns.DegreeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
