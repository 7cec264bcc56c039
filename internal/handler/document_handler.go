package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"docbrief/internal/service"
)

// DocumentHandler handles document ingestion and Q&A endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// IngestRequest is the body for POST /api/v1/documents/ingest.
type IngestRequest struct {
	FileName   string `json:"fileName"`
	FileBase64 string `json:"fileBase64"`
}

// IngestResponse is the success body for document ingestion.
type IngestResponse struct {
	DocumentID    string `json:"documentId"`
	FileName      string `json:"fileName"`
	S3Key         string `json:"s3Key"`
	ExtractedText string `json:"extractedText"`
	Summary       string `json:"summary"`
	Message       string `json:"message"`
}

// Ingest handles POST /api/v1/documents/ingest
// @Summary Ingest a document
// @Description Validate, persist, extract text from, and summarize a base64-encoded document (pdf, txt, jpg, jpeg, png, tif, tiff)
// @Tags documents
// @Accept json
// @Produce json
// @Param request body IngestRequest true "Document payload"
// @Success 200 {object} IngestResponse "Document processed"
// @Failure 400 {object} ErrorResponse "Invalid, unsupported, too large, or unreadable document"
// @Failure 500 {object} ErrorResponse "Extraction or summarization failure"
// @Router /documents/ingest [post]
func (h *DocumentHandler) Ingest(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FileName == "" || req.FileBase64 == "" {
		RespondError(c, http.StatusBadRequest, "fileName and fileBase64 are required")
		return
	}

	content, err := base64.StdEncoding.DecodeString(req.FileBase64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "fileBase64 is not valid base64")
		return
	}

	out, err := h.documentService.Ingest(c.Request.Context(), service.IngestInput{
		FileName: req.FileName,
		Content:  content,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, IngestResponse{
		DocumentID:    out.DocumentID.String(),
		FileName:      out.FileName,
		S3Key:         out.S3Key,
		ExtractedText: out.ExtractedText,
		Summary:       out.Summary,
		Message:       out.Message,
	})
}

// AskRequest is the body for POST /api/v1/documents/ask.
type AskRequest struct {
	ExtractedText string `json:"extractedText"`
	Question      string `json:"question"`
}

// AskResponse is the success body for document Q&A.
type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Ask handles POST /api/v1/documents/ask
// @Summary Answer a question about extracted text
// @Description Answer a free-form question against previously extracted document text
// @Tags documents
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question payload"
// @Success 200 {object} AskResponse "Answer generated"
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Failure 500 {object} ErrorResponse "Generation failure"
// @Router /documents/ask [post]
func (h *DocumentHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ExtractedText == "" || req.Question == "" {
		RespondError(c, http.StatusBadRequest, "extractedText and question are required")
		return
	}

	answer, err := h.documentService.Answer(c.Request.Context(), req.ExtractedText, req.Question)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		Question: req.Question,
		Answer:   answer,
	})
}
