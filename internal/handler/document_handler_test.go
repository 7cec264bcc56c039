package handler_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docbrief/internal/domain"
	"docbrief/internal/handler"
	"docbrief/internal/service"
	"docbrief/mocks"
)

func postJSON(t *testing.T, h gin.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")

	h(c)
	return w
}

func TestDocumentHandler_Ingest_Success(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockSvc)

	documentID := uuid.New()
	mockSvc.On("Ingest", mock.Anything, service.IngestInput{
		FileName: "notes.txt",
		Content:  []byte("Hello world!"),
	}).Return(&service.IngestOutput{
		DocumentID:    documentID,
		FileName:      "notes.txt",
		S3Key:         "documents/" + documentID.String() + "/notes.txt",
		ExtractedText: "Hello world!",
		Summary:       "A greeting.",
		Message:       "document processed successfully",
	}, nil)

	w := postJSON(t, h.Ingest, "/api/v1/documents/ingest", handler.IngestRequest{
		FileName:   "notes.txt",
		FileBase64: base64.StdEncoding.EncodeToString([]byte("Hello world!")),
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.IngestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, documentID.String(), resp.DocumentID)
	assert.Equal(t, "notes.txt", resp.FileName)
	assert.Equal(t, "Hello world!", resp.ExtractedText)
	assert.Equal(t, "A greeting.", resp.Summary)
	mockSvc.AssertExpectations(t)
}

func TestDocumentHandler_Ingest_MissingFields(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockSvc)

	bodies := []handler.IngestRequest{
		{},
		{FileName: "notes.txt"},
		{FileBase64: "aGVsbG8="},
	}
	for _, body := range bodies {
		w := postJSON(t, h.Ingest, "/api/v1/documents/ingest", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	mockSvc.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
}

func TestDocumentHandler_Ingest_InvalidBase64(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockSvc)

	w := postJSON(t, h.Ingest, "/api/v1/documents/ingest", handler.IngestRequest{
		FileName:   "notes.txt",
		FileBase64: "not base64!!!",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
}

func TestDocumentHandler_Ingest_RejectedDocument(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockSvc)

	mockSvc.On("Ingest", mock.Anything, mock.AnythingOfType("service.IngestInput")).
		Return(nil, domain.NewFailureWithDetail(domain.FailureServiceRejected,
			"the document could not be processed; check that it is not encrypted, password-protected, or corrupted",
			"UnsupportedDocumentException"))

	w := postJSON(t, h.Ingest, "/api/v1/documents/ingest", handler.IngestRequest{
		FileName:   "locked.pdf",
		FileBase64: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "password-protected")
	assert.Equal(t, "UnsupportedDocumentException", resp.Details)
}

func TestDocumentHandler_Ingest_StatusByKind(t *testing.T) {
	tests := []struct {
		kind       domain.FailureKind
		wantStatus int
	}{
		{domain.FailureInvalidFormat, http.StatusBadRequest},
		{domain.FailureUnsupported, http.StatusBadRequest},
		{domain.FailureTooLarge, http.StatusBadRequest},
		{domain.FailureNoExtractableText, http.StatusBadRequest},
		{domain.FailureServiceRejected, http.StatusBadRequest},
		{domain.FailureServiceTransient, http.StatusInternalServerError},
		{domain.FailureUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			mockSvc := new(mocks.MockDocumentService)
			h := handler.NewDocumentHandler(mockSvc)

			mockSvc.On("Ingest", mock.Anything, mock.AnythingOfType("service.IngestInput")).
				Return(nil, domain.NewFailure(tt.kind, "failure message"))

			w := postJSON(t, h.Ingest, "/api/v1/documents/ingest", handler.IngestRequest{
				FileName:   "doc.pdf",
				FileBase64: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
			})

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestDocumentHandler_Ingest_UnclassifiedError(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockSvc)

	mockSvc.On("Ingest", mock.Anything, mock.AnythingOfType("service.IngestInput")).
		Return(nil, errors.New("boom"))

	w := postJSON(t, h.Ingest, "/api/v1/documents/ingest", handler.IngestRequest{
		FileName:   "notes.txt",
		FileBase64: "aGVsbG8=",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Raw error text never leaks into the primary message.
	assert.NotContains(t, resp.Error, "boom")
}

func TestDocumentHandler_Ask_Success(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockSvc)

	mockSvc.On("Answer", mock.Anything, "Invoice Total: 42", "What is the total?").
		Return("The total is 42.", nil)

	w := postJSON(t, h.Ask, "/api/v1/documents/ask", handler.AskRequest{
		ExtractedText: "Invoice Total: 42",
		Question:      "What is the total?",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "What is the total?", resp.Question)
	assert.Equal(t, "The total is 42.", resp.Answer)
}

func TestDocumentHandler_Ask_MissingFields(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockSvc)

	bodies := []handler.AskRequest{
		{},
		{ExtractedText: "text"},
		{Question: "question"},
	}
	for _, body := range bodies {
		w := postJSON(t, h.Ask, "/api/v1/documents/ask", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	mockSvc.AssertNotCalled(t, "Answer", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentHandler_Ask_GeneratorFailure(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockSvc)

	mockSvc.On("Answer", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("generation backend unavailable"))

	w := postJSON(t, h.Ask, "/api/v1/documents/ask", handler.AskRequest{
		ExtractedText: "text",
		Question:      "question",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
