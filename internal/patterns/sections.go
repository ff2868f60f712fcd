package patterns

import (
	"regexp"

	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// SectionPattern pairs a section name with its compiled header matcher.
// Patterns are evaluated in slice order; the first match wins.
type SectionPattern struct {
	Name    types.SectionName
	Pattern *regexp.Regexp
}

// sectionPatterns recognizes section header lines. Each pattern matches a
// trimmed line that equals one of the synonym phrases for the section,
// case-insensitively, with an optional trailing colon. Projects is a section
// of its own and is never folded into experience.
var sectionPatterns = []SectionPattern{
	{types.SectionContact, headerPattern(
		`contact`, `personal\s+information`, `personal\s+details`, `get\s+in\s+touch`,
		`contact\s+info`, `contact\s+details`)},
	{types.SectionSummary, headerPattern(
		`professional\s+summary`, `summary`, `profile`, `about\s+me`, `objective`,
		`career\s+objective`, `career\s+summary`, `executive\s+summary`,
		`personal\s+statement`, `professional\s+profile`)},
	{types.SectionExperience, headerPattern(
		`work\s+experience`, `professional\s+experience`, `experience`,
		`employment\s+history`, `career\s+history`, `work\s+history`,
		`relevant\s+experience`, `professional\s+background`)},
	{types.SectionEducation, headerPattern(
		`education`, `academic\s+background`, `qualifications`,
		`academic\s+qualifications`, `educational\s+background`)},
	{types.SectionSkills, headerPattern(
		`skills`, `technical\s+skills`, `core\s+competencies`, `expertise`,
		`technologies`, `technical\s+expertise`, `key\s+skills`,
		`professional\s+skills`, `core\s+skills`, `competencies`)},
	{types.SectionProjects, headerPattern(
		`projects`, `personal\s+projects`, `portfolio`, `key\s+projects`,
		`notable\s+projects`, `side\s+projects`, `open\s+source`, `contributions`)},
	{types.SectionCertifications, headerPattern(
		`certifications`, `certificates`, `licenses`, `credentials`,
		`professional\s+certifications`, `professional\s+licenses`)},
	{types.SectionAwards, headerPattern(
		`awards`, `honors`, `achievements`, `recognition`, `accomplishments`,
		`honors\s+and\s+awards`)},
	{types.SectionLanguages, headerPattern(
		`languages`, `language\s+skills`, `language\s+proficiency`, `spoken\s+languages`)},
	{types.SectionVolunteer, headerPattern(
		`volunteer`, `volunteering`, `community\s+service`, `volunteer\s+work`,
		`volunteer\s+experience`)},
	{types.SectionPublications, headerPattern(
		`publications`, `papers`, `articles`, `research`, `research\s+publications`,
		`published\s+work`)},
	{types.SectionInterests, headerPattern(
		`interests`, `hobbies`, `personal\s+interests`, `hobbies\s+and\s+interests`)},
	{types.SectionReferences, headerPattern(
		`references`, `professional\s+references`, `references\s+available`)},
}

// headerPattern compiles an anchored, case-insensitive matcher over the given
// synonym phrases. A trailing colon after the phrase is tolerated.
func headerPattern(phrases ...string) *regexp.Regexp {
	alternation := phrases[0]
	for _, p := range phrases[1:] {
		alternation += "|" + p
	}
	return regexp.MustCompile(`(?i)^(?:` + alternation + `)\s*:?\s*$`)
}

// SectionPatterns returns the ordered section header matchers.
func SectionPatterns() []SectionPattern {
	return sectionPatterns
}
