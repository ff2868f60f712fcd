package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/egeaydn/Resume-Pointer/internal/types"
)

func sampleResult() *types.ScoreResult {
	category := func(cat types.Category, score, max int, fb ...types.FeedbackItem) *types.CategoryScore {
		return &types.CategoryScore{Category: cat, Score: score, MaxScore: max, Feedback: fb}
	}
	return &types.ScoreResult{
		TotalScore: 72,
		Grade:      "Good",
		Breakdown: types.Breakdown{
			Structure: category(types.CategoryStructure, 12, 15, types.FeedbackItem{
				Type: types.FeedbackWarning, Detail: "summary",
				Message: "Consider adding a professional summary", Icon: "⚠️",
			}),
			TechnicalSkills: category(types.CategoryTechnicalSkills, 16, 20),
			WorkExperience:  category(types.CategoryWorkExperience, 21, 30),
			Education:       category(types.CategoryEducation, 15, 15),
			Formatting:      category(types.CategoryFormatting, 8, 20),
		},
		Recommendations: []types.Recommendation{
			{Priority: 1, Title: "Add a Professional Summary", Description: "Include 2-3 sentences.", Category: "structure", Impact: types.ImpactHigh},
		},
	}
}

func TestPrintScoreResult(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintScoreResult(sampleResult())
	out := buf.String()

	assert.Contains(t, out, "Total:    72 / 100 (Good)")
	assert.Contains(t, out, "Resume Score")
	assert.Contains(t, out, "Structure")
	assert.Contains(t, out, "Consider adding a professional summary")
	assert.Contains(t, out, "1. Add a Professional Summary [high]")
}

func TestPrintScoreResult_Nil(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintScoreResult(nil)
	assert.Empty(t, buf.String())
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 20), scoreBar(15, 15))
	assert.Equal(t, strings.Repeat("░", 20), scoreBar(0, 15))
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("░", 10), scoreBar(15, 30))
	assert.Equal(t, strings.Repeat("░", 20), scoreBar(5, 0))
}
