package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egeaydn/Resume-Pointer/internal/types"
)

func TestDetectFileType_ByMIMEType(t *testing.T) {
	tests := []struct {
		mimeType string
		want     types.FileType
	}{
		{MIMETypePDF, types.FileTypePDF},
		{MIMETypeDOCX, types.FileTypeDOCX},
		{MIMETypeText, types.FileTypeText},
	}

	for _, tt := range tests {
		got, err := DetectFileType("resume", tt.mimeType)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestDetectFileType_ByExtension(t *testing.T) {
	got, err := DetectFileType("Resume.PDF", "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, types.FileTypePDF, got)

	got, err = DetectFileType("resume.docx", "")
	require.NoError(t, err)
	assert.Equal(t, types.FileTypeDOCX, got)
}

func TestDetectFileType_Unsupported(t *testing.T) {
	_, err := DetectFileType("resume.png", "image/png")
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, CodeUnsupportedFileType, extractionErr.Code)
}

func TestValidateFile_SizeLimit(t *testing.T) {
	err := ValidateFile("resume.pdf", MaxFileSizeBytes+1, MIMETypePDF)
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, CodeFileTooLarge, extractionErr.Code)
}

func TestValidateFile_Accepts(t *testing.T) {
	assert.NoError(t, ValidateFile("resume.pdf", 1024, MIMETypePDF))
	assert.NoError(t, ValidateFile("resume.txt", MaxFileSizeBytes, ""))
}

func TestExtract_PlainText(t *testing.T) {
	text, err := Extract([]byte("hello resume"), types.FileTypeText)
	require.NoError(t, err)
	assert.Equal(t, "hello resume", text)
}

func TestExtract_UnsupportedType(t *testing.T) {
	_, err := Extract([]byte("data"), types.FileType("rtf"))
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, CodeUnsupportedFileType, extractionErr.Code)
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract([]byte("definitely not a pdf"), types.FileTypePDF)
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, CodePDFExtractionFailed, extractionErr.Code)
}

func TestExtract_CorruptDOCX(t *testing.T) {
	_, err := Extract([]byte("definitely not a docx"), types.FileTypeDOCX)
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, CodeDOCXExtractionFailed, extractionErr.Code)
}

func TestParseDocument_Text(t *testing.T) {
	text := "Work Experience\n• Led the platform team and improved reliability across services"
	doc, err := ParseDocument([]byte(text), types.FileTypeText)
	require.NoError(t, err)

	assert.True(t, doc.HasSection(types.SectionExperience))
	assert.Equal(t, types.FileTypeText, doc.Metadata.FileType)
}

func TestParseDocument_InsufficientText(t *testing.T) {
	_, err := ParseDocument([]byte(strings.Repeat("x", 10)), types.FileTypeText)
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, CodeInsufficientText, extractionErr.Code)
}
