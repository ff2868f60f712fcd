package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnicalSkills_FlattenedAndDeduplicated(t *testing.T) {
	skills := TechnicalSkills()
	require.NotEmpty(t, skills)

	seen := make(map[string]bool)
	for _, kp := range skills {
		assert.False(t, seen[kp.Keyword], "duplicate keyword %q in flattened vocabulary", kp.Keyword)
		seen[kp.Keyword] = true
		require.NotNil(t, kp.Pattern)
	}

	// "react native" appears in both frontend and mobile groups but must be
	// flattened once.
	assert.True(t, seen["react native"])
	assert.True(t, seen["javascript"])
	assert.True(t, seen["kubernetes"])
}

func TestTechnicalSkills_VocabularySize(t *testing.T) {
	// The vocabulary spans several hundred domain keywords.
	assert.Greater(t, len(TechnicalSkills()), 300)
}

func TestTechnicalSkillGroup_KnownAndUnknown(t *testing.T) {
	assert.Contains(t, TechnicalSkillGroup("languages"), "go")
	assert.Nil(t, TechnicalSkillGroup("no-such-group"))
}

func TestCompileKeyword_WordBoundaries(t *testing.T) {
	re := compileKeyword("java")

	assert.True(t, re.MatchString("I know Java well"))
	assert.True(t, re.MatchString("JAVA"))
	assert.False(t, re.MatchString("javascript"), "must not match inside longer words")
}

func TestCompileKeyword_MultiWordKeyword(t *testing.T) {
	re := compileKeyword("spring boot")

	assert.True(t, re.MatchString("built services with Spring Boot and Kafka"))
	assert.False(t, re.MatchString("spring bootstrap"))
}

func TestActionVerbs_Deduplicated(t *testing.T) {
	verbs := ActionVerbs()
	require.NotEmpty(t, verbs)

	seen := make(map[string]bool)
	for _, kp := range verbs {
		assert.False(t, seen[kp.Keyword], "duplicate verb %q", kp.Keyword)
		seen[kp.Keyword] = true
	}

	// "coordinated" sits in both leadership and collaboration groups.
	assert.True(t, seen["coordinated"])
	assert.True(t, seen["developed"])
	assert.Greater(t, len(verbs), 150)
}
