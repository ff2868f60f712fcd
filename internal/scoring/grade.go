package scoring

// Grade maps a total score to its grade label. The six bands partition
// [0,100] with boundaries inclusive on the lower end.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Very Good"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Satisfactory"
	case score >= 50:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}

// Message maps a total score to its personalized overall message.
func Message(score int) string {
	switch {
	case score >= 90:
		return "Outstanding! Your CV is extremely well-crafted and should perform excellently with ATS systems and recruiters."
	case score >= 80:
		return "Great work! Your CV is strong with minor areas for refinement."
	case score >= 70:
		return "Good job! Your CV is solid but has room for improvement to stand out more."
	case score >= 60:
		return "Your CV covers the basics but needs significant improvements to be competitive."
	case score >= 50:
		return "Your CV requires substantial work in multiple areas. Focus on the recommendations below."
	default:
		return "Your CV needs major improvements across most categories. Please review all recommendations carefully."
	}
}
