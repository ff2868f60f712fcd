package patterns

import "regexp"

// Content detection patterns. Compiled once at package load.
var (
	// Email matches standard email addresses.
	Email = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Phone matches phone numbers in common formats, with optional country code.
	Phone = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// URL matches http(s) URLs, www-prefixed hosts, and bare common-TLD hosts.
	URL = regexp.MustCompile(`(?i)(https?://\S+)|(www\.\S+)|([a-zA-Z0-9-]+\.(com|org|net|io|dev|co)\S*)`)

	// Bullet matches a recognized bullet glyph followed by whitespace at the
	// start of a trimmed line.
	Bullet = regexp.MustCompile(`^[•▪▸→*-]\s`)

	// YearsOfExperience matches phrases like "5 years", "10+ yrs of experience".
	YearsOfExperience = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)(?:\s+of\s+(?:experience|exp(?:erience)?))?\b`)

	// GraduationYear matches a 4-digit year in the 1900s or 2000s.
	GraduationYear = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// Social profile patterns.
var (
	LinkedIn      = regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9-]+`)
	GitHub        = regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9-]+`)
	GitLab        = regexp.MustCompile(`(?i)gitlab\.com/[a-zA-Z0-9-]+`)
	Portfolio     = regexp.MustCompile(`(?i)(portfolio|website|personal\s+site)`)
	Twitter       = regexp.MustCompile(`(?i)(twitter\.com|x\.com)/[a-zA-Z0-9_]+`)
	Medium        = regexp.MustCompile(`(?i)medium\.com/@?[a-zA-Z0-9-]+`)
	StackOverflow = regexp.MustCompile(`(?i)stackoverflow\.com/users/\d+`)
)

// Date patterns for experience and education entries.
var (
	DateMonthYear = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[\s,.-]*\d{4}\b`)
	DateYearOnly  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	DatePresent   = regexp.MustCompile(`(?i)\b(present|current|now)\b`)
)

// Quantification patterns, evaluated in fixed order: percentages, currency
// amounts, then timeframes.
var (
	QuantPercentage = regexp.MustCompile(`\d+(\.\d+)?%`)
	QuantCurrency   = regexp.MustCompile(`(?i)\$\d{1,3}(,\d{3})*(\.\d+)?[KMB]?`)
	QuantTimeframe  = regexp.MustCompile(`(?i)\d+\s+(year|month|week|day|hour)s?`)
	QuantNumber     = regexp.MustCompile(`\b\d{1,3}(,\d{3})*(\.\d+)?\b`)
)

// DegreeKeywords signal degree or certification details inside an education
// section. Matched as lowercase substrings.
var DegreeKeywords = []string{"bachelor", "master", "phd", "degree", "diploma", "certification"}

// locationKeywords signal the presence of location details in contact information.
var locationKeywords = []string{"location", "address", "city", "state", "country", "remote"}

var locationPatterns []KeywordPattern

func init() {
	for _, keyword := range locationKeywords {
		locationPatterns = append(locationPatterns, KeywordPattern{
			Keyword: keyword,
			Pattern: compileKeyword(keyword),
		})
	}
}

// LocationKeywords returns the precompiled location keyword matchers.
func LocationKeywords() []KeywordPattern {
	return locationPatterns
}
