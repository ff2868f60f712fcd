package scoring

import (
	"fmt"
	"strings"

	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// pointsPerRequiredSection is awarded for each of the four required sections.
const pointsPerRequiredSection = 3

// summaryBonus is awarded when a professional summary section exists.
const summaryBonus = 3

// scoreStructure evaluates section presence: 3 points for each of contact,
// experience, education, and skills, plus a 3-point summary bonus.
func scoreStructure(doc *types.Document) *types.CategoryScore {
	var fb []types.FeedbackItem
	score := 0

	for _, name := range requiredSections {
		if doc.HasSection(name) {
			score += pointsPerRequiredSection
			fb = append(fb, feedback(types.FeedbackSuccess, string(name),
				fmt.Sprintf("%s section found", capitalize(string(name)))))
		} else {
			fb = append(fb, feedback(types.FeedbackError, string(name),
				fmt.Sprintf("Missing %s section", name)))
		}
	}

	if doc.HasSection(types.SectionSummary) {
		score += summaryBonus
		fb = append(fb, feedback(types.FeedbackSuccess, "summary",
			"Professional summary included"))
	} else {
		fb = append(fb, feedback(types.FeedbackWarning, "summary",
			"Consider adding a professional summary"))
	}

	return &types.CategoryScore{
		Category: types.CategoryStructure,
		Score:    clamp(score, MaxStructure),
		MaxScore: MaxStructure,
		Feedback: fb,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
