package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egeaydn/Resume-Pointer/internal/parsing"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

const fullResume = `Jane Doe

Contact
jane@example.com | 555-123-4567 | linkedin.com/in/janedoe | github.com/janedoe

Summary
Backend engineer with 6 years of experience building data platforms.

Work Experience
Senior Engineer, Acme Corp
• Led a team of 8 engineers delivering the billing platform
• Improved API latency by 45% through caching and profiling
• Reduced infrastructure costs by $250,000 per year
• Developed streaming ingestion handling 2,000,000 events daily
• Implemented automated rollbacks cutting incidents by 30%
• Designed and launched the customer analytics dashboard
• Managed quarterly planning across 3 product teams

Education
Bachelor of Science in Computer Science, State University, 2017

Skills
Go, Python, JavaScript, TypeScript, React, Node.js, PostgreSQL, MongoDB,
Redis, AWS, Docker, Kubernetes, Terraform, GraphQL, Django`

func scoreText(t *testing.T, text string) *types.ScoreResult {
	t.Helper()
	result, err := Calculate(parsing.NewDocument(text, types.FileTypeText))
	require.NoError(t, err)
	return result
}

func TestCalculate_InsufficientText(t *testing.T) {
	_, err := Calculate(&types.Document{Text: "too short"})
	require.Error(t, err)

	var insufficientErr *parsing.InsufficientTextError
	assert.ErrorAs(t, err, &insufficientErr)
}

func TestCalculate_TotalIsSumOfCategories(t *testing.T) {
	result := scoreText(t, fullResume)

	sum := 0
	for _, cs := range result.Breakdown.Categories() {
		sum += cs.Score
	}
	assert.Equal(t, sum, result.TotalScore)
	assert.LessOrEqual(t, result.TotalScore, TotalMaxScore)
}

func TestCalculate_CategoryCeilings(t *testing.T) {
	result := scoreText(t, fullResume)
	b := result.Breakdown

	assert.Equal(t, MaxStructure, b.Structure.MaxScore)
	assert.Equal(t, MaxTechnicalSkills, b.TechnicalSkills.MaxScore)
	assert.Equal(t, MaxWorkExperience, b.WorkExperience.MaxScore)
	assert.Equal(t, MaxEducation, b.Education.MaxScore)
	assert.Equal(t, MaxFormatting, b.Formatting.MaxScore)

	maxSum := 0
	for _, cs := range b.Categories() {
		maxSum += cs.MaxScore
		assert.LessOrEqual(t, cs.Score, cs.MaxScore)
		assert.GreaterOrEqual(t, cs.Score, 0)
	}
	assert.Equal(t, TotalMaxScore, maxSum)
}

func TestCalculate_StrongResumeScoresHigh(t *testing.T) {
	result := scoreText(t, fullResume)

	assert.Equal(t, MaxStructure, result.Breakdown.Structure.Score)
	assert.Equal(t, MaxTechnicalSkills, result.Breakdown.TechnicalSkills.Score)
	assert.Equal(t, MaxWorkExperience, result.Breakdown.WorkExperience.Score)
	assert.GreaterOrEqual(t, result.TotalScore, 80)
}

func TestCalculate_GradeMatchesTotal(t *testing.T) {
	result := scoreText(t, fullResume)
	assert.Equal(t, Grade(result.TotalScore), result.Grade)
	assert.Equal(t, Message(result.TotalScore), result.Message)
}

func TestCalculate_NoExperienceSectionScoresZero(t *testing.T) {
	result := scoreText(t, "Skills\nGo, Python, Docker and plenty of enthusiasm")

	exp := result.Breakdown.WorkExperience
	assert.Equal(t, 0, exp.Score)
	require.Len(t, exp.Feedback, 1)
	assert.Equal(t, types.FeedbackError, exp.Feedback[0].Type)
}

func TestCalculate_GenericTextScoresZeroStructure(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("this paragraph describes nothing in particular ", 75))
	result := scoreText(t, text)

	assert.Equal(t, 0, result.Breakdown.Structure.Score)
}

func TestCalculate_SummaryImprovesScore(t *testing.T) {
	withSummary := scoreText(t, fullResume)

	stripped := strings.Replace(fullResume, "Summary\n", "", 1)
	withoutSummary := scoreText(t, stripped)

	assert.Greater(t, withSummary.TotalScore, withoutSummary.TotalScore)
	assert.Equal(t, withSummary.Breakdown.Structure.Score-summaryBonus,
		withoutSummary.Breakdown.Structure.Score)
}

func TestCalculate_ExperienceSubtotal(t *testing.T) {
	text := "Work Experience\n" +
		"• Improved performance by 50%\n" +
		"• Led team of 10 developers\n" +
		"• Reduced costs by $100,000"
	result := scoreText(t, text)

	// verbs 3 -> 4, bullets 3 -> 7, quantifications 3 -> 7
	assert.Equal(t, 18, result.Breakdown.WorkExperience.Score)
}

func TestCalculate_DetectsSectionsWhenAbsent(t *testing.T) {
	doc := &types.Document{Text: "Work Experience\n• Led the team through a large migration effort"}
	result, err := Calculate(doc)
	require.NoError(t, err)

	assert.Greater(t, result.Breakdown.WorkExperience.Score, 0)
	assert.Nil(t, doc.Sections)
}

func TestCalculate_MetadataPropagated(t *testing.T) {
	result := scoreText(t, fullResume)
	assert.Greater(t, result.Metadata.WordCount, 0)
	assert.Equal(t, 1, result.Metadata.EstimatedPages)
	assert.Equal(t, types.FileTypeText, result.Metadata.FileType)
}
