package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"docbrief/internal/config"
	"docbrief/internal/domain"
	"docbrief/internal/extractor"
	"docbrief/internal/format"
	"docbrief/internal/metrics"
	"docbrief/internal/port"
)

// IngestInput is the DTO for document ingestion requests.
type IngestInput struct {
	FileName string
	Content  []byte
}

// IngestOutput is the result of a completed ingestion.
type IngestOutput struct {
	DocumentID    uuid.UUID
	FileName      string
	S3Key         string
	ExtractedText string
	Summary       string
	Message       string
}

// DocumentService defines the document ingestion and Q&A contract.
type DocumentService interface {
	Ingest(ctx context.Context, input IngestInput) (*IngestOutput, error)
	Answer(ctx context.Context, extractedText, question string) (string, error)
}

type documentService struct {
	storage   port.ObjectStorage
	extractor *extractor.Extractor
	generator port.Generator
	s3Cfg     *config.S3Config
	extCfg    *config.ExtractionConfig
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	storage port.ObjectStorage,
	ext *extractor.Extractor,
	generator port.Generator,
	s3Cfg *config.S3Config,
	extCfg *config.ExtractionConfig,
) DocumentService {
	return &documentService{
		storage:   storage,
		extractor: ext,
		generator: generator,
		s3Cfg:     s3Cfg,
		extCfg:    extCfg,
	}
}

// Ingest runs the full pipeline for one document: validate, persist to object
// storage, extract text, summarize. Each stage runs once; a failed stage is
// terminal for the request and surfaces as a *domain.ClassifiedFailure.
func (s *documentService) Ingest(ctx context.Context, input IngestInput) (*IngestOutput, error) {
	doc, err := format.Validate(input.FileName, input.Content)
	if err != nil {
		return nil, s.fail(err)
	}

	documentID := uuid.New()
	s3Key := fmt.Sprintf("documents/%s/%s", documentID, doc.Name)
	contentType := domain.ContentTypes[doc.Extension]

	log.Printf("documentService.Ingest: persisting %q (%s, %d bytes) as %s",
		doc.Name, contentType, doc.ByteLength, s3Key)

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(doc.Bytes),
		ContentType: contentType,
		Size:        doc.ByteLength,
	}); err != nil {
		log.Printf("documentService.Ingest: storage upload failed for %s: %v", documentID, err)
		return nil, s.fail(domain.NewFailureWithDetail(domain.FailureUnknown,
			"failed to persist document to storage", err.Error()))
	}

	storedRef := &domain.StoredReference{Bucket: s.s3Cfg.Bucket, Key: s3Key}
	result, err := s.extractor.Extract(ctx, doc, storedRef)
	if err != nil {
		// The stored copy has no use once extraction fails; clean it up
		// before the request terminates. Best effort only.
		if delErr := s.storage.Delete(ctx, storedRef.Bucket, storedRef.Key); delErr != nil {
			log.Printf("documentService.Ingest: failed to delete %s after extraction failure: %v", s3Key, delErr)
		}
		return nil, s.fail(err)
	}
	metrics.ExtractionTotal.WithLabelValues(string(result.Strategy)).Inc()

	out := &IngestOutput{
		DocumentID:    documentID,
		FileName:      doc.Name,
		S3Key:         s3Key,
		ExtractedText: result.Text,
	}

	if strings.TrimSpace(result.Text) == "" {
		// Only the direct-decode path can reach here with empty text; OCR
		// strategies already fail with NoExtractableText.
		out.Message = "no text content found in document"
		metrics.IngestTotal.WithLabelValues("extracted").Inc()
		return out, nil
	}

	summary, err := s.generator.Summarize(ctx, summaryPrefix(result.Text, s.extCfg.SummaryPrefixChars))
	if err != nil {
		log.Printf("documentService.Ingest: summarization failed for %s: %v", documentID, err)
		return nil, s.fail(domain.NewFailureWithDetail(domain.FailureUnknown,
			"summary generation failed", err.Error()))
	}

	out.Summary = summary
	out.Message = "document processed successfully"
	metrics.IngestTotal.WithLabelValues("extracted").Inc()
	return out, nil
}

func (s *documentService) Answer(ctx context.Context, extractedText, question string) (string, error) {
	answer, err := s.generator.Answer(ctx, extractedText, question)
	if err != nil {
		return "", fmt.Errorf("answering question: %w", err)
	}
	return answer, nil
}

// fail records failure metrics and returns the error unchanged.
func (s *documentService) fail(err error) error {
	if cf, ok := domain.AsClassified(err); ok {
		metrics.FailureTotal.WithLabelValues(string(cf.Kind)).Inc()
	}
	metrics.IngestTotal.WithLabelValues("failed").Inc()
	return err
}

// summaryPrefix bounds the text submitted to the summarizer to limit cost.
// The cut backs off to a rune boundary so a multi-byte character is never
// split at the limit.
func summaryPrefix(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
