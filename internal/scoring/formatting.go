package scoring

import (
	"fmt"

	"github.com/egeaydn/Resume-Pointer/internal/parsing"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// scoreFormatting grades readability: word count band, contact information,
// estimated page count, and section organization. Overlapping word count
// bands are evaluated in priority order, first match wins.
func scoreFormatting(doc *types.Document) *types.CategoryScore {
	var fb []types.FeedbackItem
	score := 0

	wordCount := doc.Metadata.WordCount
	switch {
	case wordCount >= 300 && wordCount <= 800:
		score += 4
		fb = append(fb, feedback(types.FeedbackSuccess, "word_count",
			fmt.Sprintf("Good length: %d words", wordCount)))
	case wordCount >= 200 && wordCount <= 1000:
		score += 2
		fb = append(fb, feedback(types.FeedbackWarning, "word_count",
			fmt.Sprintf("%d words - aim for 300-800 for optimal length", wordCount)))
	case wordCount < 200:
		score++
		fb = append(fb, feedback(types.FeedbackError, "word_count",
			fmt.Sprintf("Too short (%d words) - add more detail", wordCount)))
	default:
		score++
		fb = append(fb, feedback(types.FeedbackWarning, "word_count",
			fmt.Sprintf("Long CV (%d words) - consider condensing", wordCount)))
	}

	contact := parsing.AnalyzeContactInfo(doc.Text)
	if contact.HasEmail {
		score += 2
		fb = append(fb, feedback(types.FeedbackSuccess, "email", "Email address found"))
	} else {
		fb = append(fb, feedback(types.FeedbackError, "email", "Add email address"))
	}
	if contact.HasPhone {
		score++
		fb = append(fb, feedback(types.FeedbackSuccess, "phone", "Phone number included"))
	}
	if contact.HasLinkedIn {
		score += 3
		fb = append(fb, feedback(types.FeedbackSuccess, "linkedin",
			"LinkedIn profile included - excellent for networking!"))
	} else {
		fb = append(fb, feedback(types.FeedbackWarning, "linkedin",
			"Add LinkedIn profile to boost visibility"))
	}
	if contact.HasGitHub {
		score += 2
		fb = append(fb, feedback(types.FeedbackSuccess, "github",
			"GitHub profile included - great for tech roles!"))
	}

	pages := doc.Metadata.EstimatedPages
	switch {
	case pages <= 2:
		score += 4
		fb = append(fb, feedback(types.FeedbackSuccess, "pages",
			fmt.Sprintf("Concise length (~%d page%s)", pages, plural(pages))))
	case pages == 3:
		score += 2
		fb = append(fb, feedback(types.FeedbackWarning, "pages",
			fmt.Sprintf("Consider condensing to 2 pages (currently ~%d pages)", pages)))
	default:
		score++
		fb = append(fb, feedback(types.FeedbackWarning, "pages",
			fmt.Sprintf("Too long (~%d pages) - aim for 1-2 pages", pages)))
	}

	if len(doc.Sections) >= 3 {
		score += 4
		fb = append(fb, feedback(types.FeedbackSuccess, "sections",
			fmt.Sprintf("Well-organized with %d distinct sections", len(doc.Sections))))
	} else {
		score += 2
		fb = append(fb, feedback(types.FeedbackWarning, "sections",
			"Use clear section headings to organize content"))
	}

	return &types.CategoryScore{
		Category: types.CategoryFormatting,
		Score:    clamp(score, MaxFormatting),
		MaxScore: MaxFormatting,
		Feedback: fb,
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
