package scoring

import (
	"fmt"

	"github.com/egeaydn/Resume-Pointer/internal/parsing"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// scoreWorkExperience grades the experience section on action verbs, bullet
// structure, and quantified achievements (10 points each). A resume without
// an experience section scores 0 with a single error item; no partial credit
// is computed.
func scoreWorkExperience(doc *types.Document) *types.CategoryScore {
	content, ok := doc.SectionContent(types.SectionExperience)
	if !ok {
		return &types.CategoryScore{
			Category: types.CategoryWorkExperience,
			Score:    0,
			MaxScore: MaxWorkExperience,
			Feedback: []types.FeedbackItem{
				feedback(types.FeedbackError, "experience_section",
					"No work experience section found"),
			},
		}
	}

	var fb []types.FeedbackItem
	score := 0

	verbs := parsing.CountActionVerbs(content)
	switch {
	case verbs.Count >= 8:
		score += 10
		fb = append(fb, feedback(types.FeedbackSuccess, "action_verbs",
			fmt.Sprintf("Excellent use of action verbs (%d found)", verbs.Count)))
	case verbs.Count >= 5:
		score += 7
		fb = append(fb, feedback(types.FeedbackSuccess, "action_verbs",
			fmt.Sprintf("Good use of action verbs (%d found)", verbs.Count)))
	case verbs.Count >= 3:
		score += 4
		fb = append(fb, feedback(types.FeedbackWarning, "action_verbs",
			fmt.Sprintf("Use more action verbs in experience descriptions (%d found)", verbs.Count)))
	default:
		fb = append(fb, feedback(types.FeedbackError, "action_verbs",
			"Very few action verbs - start bullets with strong action words"))
	}

	bullets := parsing.CountBullets(content)
	switch {
	case bullets >= 6:
		score += 10
		fb = append(fb, feedback(types.FeedbackSuccess, "bullets",
			fmt.Sprintf("Well-structured with %d bullet points", bullets)))
	case bullets >= 3:
		score += 7
		fb = append(fb, feedback(types.FeedbackSuccess, "bullets",
			fmt.Sprintf("%d bullet points found", bullets)))
	default:
		score += 3
		fb = append(fb, feedback(types.FeedbackWarning, "bullets",
			"Add more bullet points to describe achievements"))
	}

	quant := parsing.CountQuantifications(content)
	switch {
	case quant.Count >= 5:
		score += 10
		fb = append(fb, feedback(types.FeedbackSuccess, "quantification",
			fmt.Sprintf("Excellent! %d quantified achievements (e.g., %s)", quant.Count, quant.Examples[0])))
	case quant.Count >= 3:
		score += 7
		fb = append(fb, feedback(types.FeedbackSuccess, "quantification",
			fmt.Sprintf("Good! %d quantified achievements found", quant.Count)))
	case quant.Count >= 1:
		score += 4
		fb = append(fb, feedback(types.FeedbackWarning, "quantification",
			"Add more metrics and numbers to quantify your impact"))
	default:
		fb = append(fb, feedback(types.FeedbackError, "quantification",
			"No quantified achievements - add numbers, percentages, or metrics"))
	}

	return &types.CategoryScore{
		Category: types.CategoryWorkExperience,
		Score:    clamp(score, MaxWorkExperience),
		MaxScore: MaxWorkExperience,
		Feedback: fb,
	}
}
