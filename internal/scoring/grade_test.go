package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrade_Bands(t *testing.T) {
	tests := []struct {
		score int
		grade string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89, "Very Good"},
		{80, "Very Good"},
		{79, "Good"},
		{70, "Good"},
		{69, "Satisfactory"},
		{60, "Satisfactory"},
		{59, "Needs Improvement"},
		{50, "Needs Improvement"},
		{49, "Poor"},
		{0, "Poor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.grade, Grade(tt.score), "score %d", tt.score)
	}
}

func TestMessage_TracksGradeBands(t *testing.T) {
	assert.Contains(t, Message(95), "Outstanding")
	assert.Contains(t, Message(85), "Great work")
	assert.Contains(t, Message(75), "Good job")
	assert.Contains(t, Message(65), "covers the basics")
	assert.Contains(t, Message(55), "substantial work")
	assert.Contains(t, Message(30), "major improvements")
}
