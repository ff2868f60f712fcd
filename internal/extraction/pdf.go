package extraction

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls plain text from every page of a PDF document.
// Scanned-image PDFs yield little or no text; the length check in
// ParseDocument catches those.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{
			Code:    CodePDFExtractionFailed,
			Message: "failed to read PDF. Ensure it is a text-based PDF, not a scanned image",
			Cause:   err,
		}
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}
