package types

import "time"

// Category identifies one of the five fixed scoring dimensions.
type Category string

// The five scoring categories. Their max scores sum to 100.
const (
	CategoryStructure       Category = "structure"
	CategoryTechnicalSkills Category = "technicalSkills"
	CategoryWorkExperience  Category = "workExperience"
	CategoryEducation       Category = "education"
	CategoryFormatting      Category = "formatting"
)

// FeedbackType classifies a feedback item.
type FeedbackType string

// Feedback item types.
const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackWarning FeedbackType = "warning"
	FeedbackError   FeedbackType = "error"
)

// Icons associated with each feedback type.
const (
	IconSuccess = "✅"
	IconWarning = "⚠️"
	IconError   = "❌"
)

// FeedbackItem is one human-readable explanation of a point awarded or
// withheld. Detail is a structured sub-category tag set by the scoring rule
// that produced the item (e.g. "contact", "bullets", "linkedin").
type FeedbackItem struct {
	Type    FeedbackType `json:"type"`
	Detail  string       `json:"detail"`
	Message string       `json:"message"`
	Icon    string       `json:"icon"`
}

// Passed reports whether the item records a satisfied check.
func (f FeedbackItem) Passed() bool {
	return f.Type == FeedbackSuccess
}

// CategoryScore is the graded result for one scoring category.
// Invariant: 0 <= Score <= MaxScore.
type CategoryScore struct {
	Category Category       `json:"category"`
	Score    int            `json:"score"`
	MaxScore int            `json:"max_score"`
	Feedback []FeedbackItem `json:"feedback"`
}

// Breakdown holds the per-category results for the five fixed categories.
type Breakdown struct {
	Structure       *CategoryScore `json:"structure"`
	TechnicalSkills *CategoryScore `json:"technicalSkills"`
	WorkExperience  *CategoryScore `json:"workExperience"`
	Education       *CategoryScore `json:"education"`
	Formatting      *CategoryScore `json:"formatting"`
}

// Categories returns the category scores in fixed traversal order.
func (b *Breakdown) Categories() []*CategoryScore {
	return []*CategoryScore{
		b.Structure, b.TechnicalSkills, b.WorkExperience, b.Education, b.Formatting,
	}
}

// Impact levels for recommendations.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Recommendation is a prioritized, user-facing suggestion derived from weak
// feedback items. Priorities are 1-based and strictly ascending within a result.
type Recommendation struct {
	Priority    int    `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Impact      string `json:"impact"`
}

// ResultMetadata carries request-level information alongside a score result.
type ResultMetadata struct {
	RequestID        string    `json:"request_id,omitempty"`
	FileName         string    `json:"file_name,omitempty"`
	FileType         FileType  `json:"file_type,omitempty"`
	WordCount        int       `json:"word_count"`
	EstimatedPages   int       `json:"estimated_pages,omitempty"`
	ProcessingTimeMS int64     `json:"processing_time_ms,omitempty"`
	ProcessedAt      time.Time `json:"processed_at,omitempty"`
}

// ScoreResult is the complete outcome of scoring one resume.
// Invariants: TotalScore equals the sum of the breakdown scores, and the five
// breakdown max scores always sum to 100.
type ScoreResult struct {
	TotalScore      int              `json:"total_score"`
	Grade           string           `json:"grade"`
	Message         string           `json:"message"`
	Breakdown       Breakdown        `json:"breakdown"`
	Recommendations []Recommendation `json:"recommendations"`
	Metadata        ResultMetadata   `json:"metadata"`
}
