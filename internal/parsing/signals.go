package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/egeaydn/Resume-Pointer/internal/patterns"
)

// maxQuantificationExamples caps the illustrative examples returned by
// CountQuantifications.
const maxQuantificationExamples = 10

// KeywordMatch is the result of matching a text against a keyword vocabulary:
// the number of distinct keywords present and which ones.
type KeywordMatch struct {
	Count int      `json:"count"`
	Found []string `json:"found"`
}

// QuantificationMatch reports quantified achievements found in a text.
type QuantificationMatch struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

// ContactInfo reports which contact fields are present and a weighted
// completeness percentage (email 25, phone 20, LinkedIn 25, GitHub 15,
// location 15).
type ContactInfo struct {
	HasEmail     bool `json:"has_email"`
	HasPhone     bool `json:"has_phone"`
	HasLinkedIn  bool `json:"has_linkedin"`
	HasGitHub    bool `json:"has_github"`
	HasLocation  bool `json:"has_location"`
	Completeness int  `json:"completeness"`
}

// SocialProfiles reports detected social and portfolio profiles.
type SocialProfiles struct {
	LinkedIn  bool     `json:"linkedin"`
	GitHub    bool     `json:"github"`
	Portfolio bool     `json:"portfolio"`
	Profiles  []string `json:"profiles"`
}

// ExperienceYears reports the years-of-experience claims found in a text.
// TotalYears is the maximum claim, not the sum, so overlapping statements
// are not overcounted.
type ExperienceYears struct {
	TotalYears int      `json:"total_years"`
	Statements []string `json:"statements"`
}

// CountTechnicalSkills counts distinct technical skill keywords present in
// text. Matching is case-insensitive and word-boundary anchored; repeated
// occurrences of the same skill count once.
func CountTechnicalSkills(text string) KeywordMatch {
	return matchVocabulary(text, patterns.TechnicalSkills())
}

// CountActionVerbs counts distinct action verbs present in text, deduplicated
// by verb rather than occurrence.
func CountActionVerbs(text string) KeywordMatch {
	return matchVocabulary(text, patterns.ActionVerbs())
}

func matchVocabulary(text string, vocabulary []patterns.KeywordPattern) KeywordMatch {
	var found []string
	for _, kp := range vocabulary {
		if kp.Pattern.MatchString(text) {
			found = append(found, kp.Keyword)
		}
	}
	return KeywordMatch{Count: len(found), Found: found}
}

// CountBullets counts lines whose trimmed start is a recognized bullet glyph
// followed by whitespace. Occurrences are counted, not distinct glyphs.
func CountBullets(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if patterns.Bullet.MatchString(strings.TrimSpace(line)) {
			count++
		}
	}
	return count
}

// CountQuantifications finds quantified achievements: percentages, currency
// amounts, timeframe phrases, and standalone numbers not already covered by
// one of those, in that order. Returns the total count and up to 10
// illustrative examples.
func CountQuantifications(text string) QuantificationMatch {
	var matches []string
	var spans [][]int

	for _, re := range []*regexp.Regexp{
		patterns.QuantPercentage, patterns.QuantCurrency, patterns.QuantTimeframe,
	} {
		for _, span := range re.FindAllStringIndex(text, -1) {
			matches = append(matches, text[span[0]:span[1]])
			spans = append(spans, span)
		}
	}

	// Standalone numbers count too ("team of 10"), but digits that are part
	// of a percentage, currency amount, or timeframe are already counted.
	for _, span := range patterns.QuantNumber.FindAllStringIndex(text, -1) {
		if !overlapsAny(span, spans) {
			matches = append(matches, text[span[0]:span[1]])
		}
	}

	examples := matches
	if len(examples) > maxQuantificationExamples {
		examples = examples[:maxQuantificationExamples]
	}
	return QuantificationMatch{Count: len(matches), Examples: examples}
}

func overlapsAny(span []int, spans [][]int) bool {
	for _, other := range spans {
		if span[0] < other[1] && other[0] < span[1] {
			return true
		}
	}
	return false
}

// DetectSocialProfiles tests text for LinkedIn, GitHub, and portfolio
// references.
func DetectSocialProfiles(text string) SocialProfiles {
	result := SocialProfiles{
		LinkedIn:  patterns.LinkedIn.MatchString(text),
		GitHub:    patterns.GitHub.MatchString(text),
		Portfolio: patterns.Portfolio.MatchString(text),
	}
	if result.LinkedIn {
		result.Profiles = append(result.Profiles, "LinkedIn")
	}
	if result.GitHub {
		result.Profiles = append(result.Profiles, "GitHub")
	}
	if result.Portfolio {
		result.Profiles = append(result.Profiles, "Portfolio")
	}
	return result
}

// AnalyzeContactInfo independently tests for email, phone, LinkedIn, GitHub,
// and location keywords, and computes the weighted completeness percentage.
func AnalyzeContactInfo(text string) ContactInfo {
	social := DetectSocialProfiles(text)

	info := ContactInfo{
		HasEmail:    patterns.Email.MatchString(text),
		HasPhone:    patterns.Phone.MatchString(text),
		HasLinkedIn: social.LinkedIn,
		HasGitHub:   social.GitHub,
	}
	for _, kp := range patterns.LocationKeywords() {
		if kp.Pattern.MatchString(text) {
			info.HasLocation = true
			break
		}
	}

	if info.HasEmail {
		info.Completeness += 25
	}
	if info.HasPhone {
		info.Completeness += 20
	}
	if info.HasLinkedIn {
		info.Completeness += 25
	}
	if info.HasGitHub {
		info.Completeness += 15
	}
	if info.HasLocation {
		info.Completeness += 15
	}
	return info
}

// ExtractYearsOfExperience finds phrases like "7 years of experience" and
// returns the maximum years claimed across all matches.
func ExtractYearsOfExperience(text string) ExperienceYears {
	var result ExperienceYears
	for _, match := range patterns.YearsOfExperience.FindAllStringSubmatch(text, -1) {
		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if years > result.TotalYears {
			result.TotalYears = years
		}
		result.Statements = append(result.Statements, match[0])
	}
	return result
}
