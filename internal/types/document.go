// Package types provides type definitions for structured data used throughout the resume-pointer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionName identifies a recognized resume section.
type SectionName string

// Recognized section names, in canonical detection order.
const (
	SectionContact        SectionName = "contact"
	SectionSummary        SectionName = "summary"
	SectionExperience     SectionName = "experience"
	SectionEducation      SectionName = "education"
	SectionSkills         SectionName = "skills"
	SectionProjects       SectionName = "projects"
	SectionCertifications SectionName = "certifications"
	SectionAwards         SectionName = "awards"
	SectionLanguages      SectionName = "languages"
	SectionVolunteer      SectionName = "volunteer"
	SectionPublications   SectionName = "publications"
	SectionInterests      SectionName = "interests"
	SectionReferences     SectionName = "references"
)

// Section represents a named, contiguous span of resume text introduced by a
// recognized header phrase. Sections never overlap and are produced in
// document order. Content includes the header line itself.
type Section struct {
	Name       SectionName `json:"name"`
	Content    string      `json:"content"`
	StartLine  int         `json:"start_line"`
	EndLine    int         `json:"end_line"`
	Confidence float64     `json:"confidence"`
}

// FileType identifies the source file format of an uploaded resume.
type FileType string

// Supported source file formats.
const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeText FileType = "txt"
)

// Metadata holds basic measurements of an extracted resume text.
type Metadata struct {
	WordCount      int      `json:"word_count"`
	LineCount      int      `json:"line_count"`
	HasContactInfo bool     `json:"has_contact_info"`
	EstimatedPages int      `json:"estimated_pages"`
	FileType       FileType `json:"file_type,omitempty"`
}

// Document is a fully parsed resume ready for scoring: normalized text plus
// detected sections and measurements. All fields are immutable once built.
type Document struct {
	RawText  string    `json:"-"`
	Text     string    `json:"text"`
	Sections []Section `json:"sections"`
	Metadata Metadata  `json:"metadata"`
}

// HasSection reports whether a section with the given name was detected.
func (d *Document) HasSection(name SectionName) bool {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return true
		}
	}
	return false
}

// SectionContent returns the content of the first section with the given
// name, or empty string and false if the section was not detected.
func (d *Document) SectionContent(name SectionName) (string, bool) {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return d.Sections[i].Content, true
		}
	}
	return "", false
}
