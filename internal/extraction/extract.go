package extraction

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/egeaydn/Resume-Pointer/internal/parsing"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// File processing limits.
const (
	MaxFileSizeMB    = 5
	MaxFileSizeBytes = MaxFileSizeMB * 1024 * 1024

	// minExtractedLength is the minimum usable extracted text length. Shorter
	// output means the file was empty or a scanned image.
	minExtractedLength = 50
)

// MIME types accepted for upload.
const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypeText = "text/plain"
)

// Extract returns the plain text content of a resume file.
func Extract(data []byte, fileType types.FileType) (string, error) {
	switch fileType {
	case types.FileTypePDF:
		return extractPDF(data)
	case types.FileTypeDOCX:
		return extractDOCX(data)
	case types.FileTypeText:
		return string(data), nil
	default:
		return "", &ExtractionError{
			Code:    CodeUnsupportedFileType,
			Message: fmt.Sprintf("unsupported file type: %s", fileType),
		}
	}
}

// ParseDocument extracts, normalizes, and measures a resume file, returning a
// document ready for scoring. Fails with an INSUFFICIENT_TEXT error when the
// normalized text is too short to analyze.
func ParseDocument(data []byte, fileType types.FileType) (*types.Document, error) {
	rawText, err := Extract(data, fileType)
	if err != nil {
		return nil, err
	}

	doc := parsing.NewDocument(rawText, fileType)
	if len(doc.Text) < minExtractedLength {
		return nil, &ExtractionError{
			Code:    CodeInsufficientText,
			Message: "extracted text is too short. The CV may be empty or a scanned image",
		}
	}
	return doc, nil
}

// DetectFileType maps a file name and declared MIME type to a supported file
// type. The extension is authoritative when the MIME type is missing or
// generic.
func DetectFileType(fileName, mimeType string) (types.FileType, error) {
	switch mimeType {
	case MIMETypePDF:
		return types.FileTypePDF, nil
	case MIMETypeDOCX:
		return types.FileTypeDOCX, nil
	case MIMETypeText:
		return types.FileTypeText, nil
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return types.FileTypePDF, nil
	case ".docx":
		return types.FileTypeDOCX, nil
	case ".txt":
		return types.FileTypeText, nil
	}

	return "", &ExtractionError{
		Code:    CodeUnsupportedFileType,
		Message: "only PDF and DOCX files are supported",
	}
}

// ValidateFile checks upload constraints before extraction runs.
func ValidateFile(fileName string, size int64, mimeType string) error {
	if size > MaxFileSizeBytes {
		return &ExtractionError{
			Code:    CodeFileTooLarge,
			Message: fmt.Sprintf("file size exceeds %dMB limit", MaxFileSizeMB),
		}
	}
	if _, err := DetectFileType(fileName, mimeType); err != nil {
		return err
	}
	return nil
}
