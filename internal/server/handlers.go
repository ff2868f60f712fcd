package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/egeaydn/Resume-Pointer/internal/extraction"
	"github.com/egeaydn/Resume-Pointer/internal/parsing"
	"github.com/egeaydn/Resume-Pointer/internal/scoring"
	"github.com/egeaydn/Resume-Pointer/internal/types"
)

// ScoreTextRequest is the request body for /score/text: pre-extracted resume
// text submitted directly, without a file upload.
type ScoreTextRequest struct {
	Text     string `json:"text" validate:"required,min=20"`
	FileName string `json:"file_name,omitempty"`
}

// handleScore scores an uploaded resume file (multipart field "file").
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, `Missing "file" field`)
		return
	}
	defer file.Close()

	if err := extraction.ValidateFile(header.Filename, header.Size, header.Header.Get("Content-Type")); err != nil {
		s.extractionErrorResponse(w, err)
		return
	}

	fileType, err := extraction.DetectFileType(header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		s.extractionErrorResponse(w, err)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	doc, err := extraction.ParseDocument(data, fileType)
	if err != nil {
		s.extractionErrorResponse(w, err)
		return
	}

	result, err := scoring.Calculate(doc)
	if err != nil {
		s.scoringErrorResponse(w, err)
		return
	}

	s.finishResult(result, header.Filename, fileType, start)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleScoreText scores resume text submitted as JSON.
func (s *Server) handleScoreText(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ScoreTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	doc := parsing.NewDocument(req.Text, types.FileTypeText)
	result, err := scoring.Calculate(doc)
	if err != nil {
		s.scoringErrorResponse(w, err)
		return
	}

	s.finishResult(result, req.FileName, types.FileTypeText, start)
	s.jsonResponse(w, http.StatusOK, result)
}

// finishResult fills in the request-level metadata on a score result.
func (s *Server) finishResult(result *types.ScoreResult, fileName string, fileType types.FileType, start time.Time) {
	result.Metadata.RequestID = uuid.NewString()
	result.Metadata.FileName = fileName
	result.Metadata.FileType = fileType
	result.Metadata.ProcessingTimeMS = time.Since(start).Milliseconds()
	result.Metadata.ProcessedAt = time.Now().UTC()
}

// extractionErrorResponse maps extraction failures to HTTP status codes.
func (s *Server) extractionErrorResponse(w http.ResponseWriter, err error) {
	var extErr *extraction.ExtractionError
	if errors.As(err, &extErr) {
		status := http.StatusUnprocessableEntity
		switch extErr.Code {
		case extraction.CodeFileTooLarge:
			status = http.StatusRequestEntityTooLarge
		case extraction.CodeUnsupportedFileType:
			status = http.StatusUnsupportedMediaType
		}
		s.jsonResponse(w, status, map[string]string{
			"error":   extErr.Code,
			"message": extErr.Message,
		})
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}

// scoringErrorResponse maps scoring refusals to HTTP status codes.
func (s *Server) scoringErrorResponse(w http.ResponseWriter, err error) {
	var insufficientErr *parsing.InsufficientTextError
	if errors.As(err, &insufficientErr) {
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   extraction.CodeInsufficientText,
			"message": insufficientErr.Error(),
		})
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}
