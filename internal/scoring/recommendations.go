package scoring

import "github.com/egeaydn/Resume-Pointer/internal/types"

// maxRecommendations caps the returned recommendation list.
const maxRecommendations = 5

// Recommendations derives a priority-ordered list of actionable suggestions
// from weak feedback items. Categories are traversed in a fixed order
// (structure, skills, experience, formatting) and priorities are assigned
// sequentially; the list is truncated to the top 5. A category at its maximum
// score contributes nothing.
func Recommendations(result *types.ScoreResult) []types.Recommendation {
	var recs []types.Recommendation
	priority := 1

	add := func(title, description, category, impact string) {
		recs = append(recs, types.Recommendation{
			Priority:    priority,
			Title:       title,
			Description: description,
			Category:    category,
			Impact:      impact,
		})
		priority++
	}

	structure := result.Breakdown.Structure
	if structure.Score < structure.MaxScore {
		for _, item := range structure.Feedback {
			if item.Passed() {
				continue
			}
			switch item.Detail {
			case "contact":
				add("Add Complete Contact Information",
					"Include your email, phone number, location, and professional links (LinkedIn, GitHub) at the top of your CV.",
					"structure", types.ImpactHigh)
			case "summary":
				add("Add a Professional Summary",
					"Include 2-3 sentences at the top highlighting your key strengths, experience, and career goals.",
					"structure", types.ImpactHigh)
			case "experience":
				add("Add Work Experience Section",
					"Include your professional experience with job titles, companies, dates, and key achievements.",
					"structure", types.ImpactHigh)
			case "education":
				add("Add Education Section",
					"Include your degrees, institutions, graduation dates, and relevant coursework or honors.",
					"structure", types.ImpactHigh)
			case "skills":
				add("Add Skills Section",
					"Create a dedicated section listing your technical skills, tools, and technologies.",
					"structure", types.ImpactHigh)
			}
		}
	}

	if result.Breakdown.TechnicalSkills.Score < 15 {
		add("Add More Technical Skills",
			"List 10+ relevant technical skills, programming languages, frameworks, and tools you are proficient in.",
			"skills", types.ImpactHigh)
	}

	experience := result.Breakdown.WorkExperience
	if hasFailedDetail(experience.Feedback, "bullets") {
		add("Use Bullet Points in Experience",
			"Format all job descriptions as bullet lists (not paragraphs) for better readability and ATS compatibility.",
			"experience", types.ImpactHigh)
	}
	if hasFailedDetail(experience.Feedback, "action_verbs") {
		add("Start Bullets with Action Verbs",
			`Begin each bullet point with a strong action verb (e.g., "Developed", "Managed", "Implemented") to showcase your contributions.`,
			"experience", types.ImpactHigh)
	}
	if hasFailedDetail(experience.Feedback, "quantification") {
		add("Quantify Your Achievements",
			`Add numbers, percentages, or metrics to show the impact of your work (e.g., "Increased sales by 25%", "Managed team of 5").`,
			"experience", types.ImpactHigh)
	}

	formatting := result.Breakdown.Formatting
	if hasFailedDetail(formatting.Feedback, "word_count") {
		if result.Metadata.WordCount > 800 {
			add("Reduce CV Length",
				"Aim for 1-2 pages (300-800 words). Remove outdated experience or irrelevant details.",
				"formatting", types.ImpactMedium)
		} else {
			add("Expand CV Content",
				"Add more detail to your experience and skills. Aim for at least 300 words.",
				"formatting", types.ImpactMedium)
		}
	}
	if hasFailedDetail(formatting.Feedback, "linkedin") {
		add("Add LinkedIn Profile",
			"Include your LinkedIn URL in the contact section to make it easy for recruiters to find you.",
			"formatting", types.ImpactMedium)
	}
	if hasFailedDetail(formatting.Feedback, "github") {
		add("Add GitHub Profile",
			"For technical roles, include your GitHub URL to showcase your code and projects.",
			"formatting", types.ImpactMedium)
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// hasFailedDetail reports whether any feedback item with the given detail tag
// records an unsatisfied check.
func hasFailedDetail(items []types.FeedbackItem, detail string) bool {
	for _, item := range items {
		if item.Detail == detail && !item.Passed() {
			return true
		}
	}
	return false
}
