// Package extraction turns uploaded resume files (PDF, DOCX, plain text) into
// plain text documents ready for analysis. Binary format decoding is the only
// concern here; all interpretation of the text happens downstream.
package extraction

import "fmt"

// Error codes for extraction failures.
const (
	CodePDFExtractionFailed  = "PDF_EXTRACTION_FAILED"
	CodeDOCXExtractionFailed = "DOCX_EXTRACTION_FAILED"
	CodeInsufficientText     = "INSUFFICIENT_TEXT"
	CodeUnsupportedFileType  = "UNSUPPORTED_FILE_TYPE"
	CodeFileTooLarge         = "FILE_TOO_LARGE"
)

// ExtractionError represents a failure to obtain usable text from an upload.
type ExtractionError struct {
	Code    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
