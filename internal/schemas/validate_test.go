package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egeaydn/Resume-Pointer/internal/parsing"
	"github.com/egeaydn/Resume-Pointer/internal/scoring"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

const resumeText = `Contact
jane@example.com | 555-123-4567

Work Experience
• Led the platform team
• Improved deploy times by 30%

Education
Bachelor of Engineering, 2019

Skills
Go, Python, Docker, Kubernetes, PostgreSQL`

func TestResolveSchemaPath(t *testing.T) {
	assert.NotEmpty(t, ResolveSchemaPath(ScoreResultSchema))
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.json"))
}

func TestValidateScoreResult_RealResult(t *testing.T) {
	doc := parsing.NewDocument(resumeText, types.FileTypeText)
	result, err := scoring.Calculate(doc)
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateScoreResult(data))
}

func TestValidateScoreResult_RejectsBadGrade(t *testing.T) {
	doc := parsing.NewDocument(resumeText, types.FileTypeText)
	result, err := scoring.Calculate(doc)
	require.NoError(t, err)
	result.Grade = "A+"

	data, err := json.Marshal(result)
	require.NoError(t, err)

	err = ValidateScoreResult(data)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateScoreResult_RejectsMissingFields(t *testing.T) {
	err := ValidateScoreResult([]byte(`{"total_score": 50}`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateAgainst_MissingSchema(t *testing.T) {
	err := ValidateAgainst("schemas/nope.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
