package extraction

import (
	"bytes"

	"github.com/nguyenthenguyen/docx"
)

// extractDOCX pulls the document text from a DOCX archive.
func extractDOCX(data []byte) (string, error) {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{
			Code:    CodeDOCXExtractionFailed,
			Message: "failed to parse DOCX. The file may be corrupted",
			Cause:   err,
		}
	}
	defer reader.Close()

	return reader.Editable().GetContent(), nil
}
