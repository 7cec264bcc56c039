package extractor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"docbrief/internal/domain"
	"docbrief/internal/port"
)

// DefaultMaxInlineBytes is the hard ceiling for inline PDF submission to the
// extraction service. Referenced-by-storage submission is exempt.
const DefaultMaxInlineBytes = 10 * 1024 * 1024

// Extractor selects an extraction strategy for a validated document, invokes
// the text-detection collaborator, normalizes its output, and classifies any
// failure into the stable taxonomy. One attempt per request; a failure is
// terminal.
type Extractor struct {
	detector       port.TextDetector
	errorTable     ErrorTable
	maxInlineBytes int64
}

// New creates an Extractor. A nil errorTable falls back to the default
// Textract classification rules; maxInlineBytes <= 0 falls back to the
// 10 MiB inline ceiling.
func New(detector port.TextDetector, errorTable ErrorTable, maxInlineBytes int64) *Extractor {
	if errorTable == nil {
		errorTable = DefaultErrorTable()
	}
	if maxInlineBytes <= 0 {
		maxInlineBytes = DefaultMaxInlineBytes
	}
	return &Extractor{
		detector:       detector,
		errorTable:     errorTable,
		maxInlineBytes: maxInlineBytes,
	}
}

// Extract obtains the text content of doc. storedRef may be nil; when present
// for a PDF, extraction runs against the persisted copy instead of inline
// bytes. On failure the returned error is a *domain.ClassifiedFailure.
func (e *Extractor) Extract(ctx context.Context, doc *domain.Document, storedRef *domain.StoredReference) (*domain.ExtractionResult, error) {
	strategy := SelectStrategy(doc.Extension, storedRef != nil)

	if strategy == domain.StrategyDirectDecode {
		// Plain text never touches the extraction service. The result may be
		// empty; the caller decides how to treat a document with no content.
		return &domain.ExtractionResult{
			Text:     string(doc.Bytes),
			Strategy: strategy,
		}, nil
	}

	if strategy == domain.StrategyInlineOcr && doc.Extension == domain.ExtPDF && doc.ByteLength > e.maxInlineBytes {
		return nil, domain.NewFailure(domain.FailureTooLarge,
			fmt.Sprintf("file is too large for inline extraction: %d bytes (limit %d)", doc.ByteLength, e.maxInlineBytes))
	}

	var (
		blocks []domain.Block
		err    error
	)
	switch strategy {
	case domain.StrategyReferencedOcr:
		blocks, err = e.detector.DetectStored(ctx, storedRef.Bucket, storedRef.Key)
	default:
		blocks, err = e.detector.DetectInline(ctx, doc.Bytes)
	}
	if err != nil {
		cf := e.classify(err)
		log.Printf("extractor.Extract: %s extraction of %q failed: kind=%s detail=%q", strategy, doc.Name, cf.Kind, cf.Detail)
		return nil, cf
	}

	text := joinLineBlocks(blocks)
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewFailure(domain.FailureNoExtractableText,
			"no extractable text found in the document; it may be empty, image-only, or protected")
	}

	return &domain.ExtractionResult{
		Text:     text,
		Strategy: strategy,
	}, nil
}

// joinLineBlocks concatenates non-empty line-level blocks with single spaces,
// preserving the service's original block order. Other block types are
// discarded; lines carry cleaner reading order for downstream summarization.
func joinLineBlocks(blocks []domain.Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		if blk.Type != domain.BlockTypeLine || blk.Text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(blk.Text)
	}
	return b.String()
}
