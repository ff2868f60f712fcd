package scoring

import (
	"fmt"

	"github.com/egeaydn/Resume-Pointer/internal/parsing"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// scoreTechnicalSkills grades the number of distinct technical skills found.
// When a dedicated skills section exists only its content is searched,
// otherwise the whole document is.
func scoreTechnicalSkills(doc *types.Document) *types.CategoryScore {
	var fb []types.FeedbackItem

	searchText := doc.Text
	if content, ok := doc.SectionContent(types.SectionSkills); ok {
		searchText = content
	}

	match := parsing.CountTechnicalSkills(searchText)

	var score int
	switch {
	case match.Count >= 15:
		score = 20
		fb = append(fb, feedback(types.FeedbackSuccess, "skills_count",
			fmt.Sprintf("Excellent! %d technical skills identified", match.Count)))
	case match.Count >= 10:
		score = 16
		fb = append(fb, feedback(types.FeedbackSuccess, "skills_count",
			fmt.Sprintf("Good! %d technical skills found", match.Count)))
	case match.Count >= 5:
		score = 12
		fb = append(fb, feedback(types.FeedbackWarning, "skills_count",
			fmt.Sprintf("%d technical skills found - consider adding more", match.Count)))
	case match.Count >= 3:
		score = 8
		fb = append(fb, feedback(types.FeedbackWarning, "skills_count",
			fmt.Sprintf("Only %d technical skills found - add more relevant skills", match.Count)))
	default:
		score = 0
		fb = append(fb, feedback(types.FeedbackError, "skills_count",
			"Very few technical skills identified"))
	}

	if !doc.HasSection(types.SectionSkills) {
		fb = append(fb, feedback(types.FeedbackWarning, "skills_section",
			"No dedicated skills section found"))
	}

	return &types.CategoryScore{
		Category: types.CategoryTechnicalSkills,
		Score:    clamp(score, MaxTechnicalSkills),
		MaxScore: MaxTechnicalSkills,
		Feedback: fb,
	}
}
