package extractor

import (
	"errors"
	"fmt"

	"docbrief/internal/domain"
	"docbrief/internal/port"
)

// ClassifyRule maps a collaborator-reported error code to an internal failure
// kind with an actionable user-facing message.
type ClassifyRule struct {
	Kind    domain.FailureKind
	Message string
}

// ErrorTable maps text-detection service error codes to classification rules.
// Injected through the Extractor constructor so that new collaborator error
// types are additive configuration, not code changes.
type ErrorTable map[string]ClassifyRule

// DefaultErrorTable returns the classification rules for the Amazon Textract
// error codes the pipeline distinguishes. Codes absent from the table are
// treated as transient service failures.
func DefaultErrorTable() ErrorTable {
	return ErrorTable{
		"UnsupportedDocumentException": {
			Kind:    domain.FailureServiceRejected,
			Message: "the document could not be processed; check that it is not encrypted, password-protected, or corrupted",
		},
		"InvalidParameterException": {
			Kind:    domain.FailureServiceRejected,
			Message: "the document was rejected by the extraction service; it may be corrupted or in an unexpected format",
		},
		"BadDocumentException": {
			Kind:    domain.FailureServiceRejected,
			Message: "the document could not be read by the extraction service; it may be corrupted",
		},
		"DocumentTooLargeException": {
			Kind:    domain.FailureTooLarge,
			Message: "the document is too large for the extraction service",
		},
	}
}

// classify turns an error from the detection call into a ClassifiedFailure.
// Failures already classified by an earlier stage pass through unchanged.
func (e *Extractor) classify(err error) *domain.ClassifiedFailure {
	if cf, ok := domain.AsClassified(err); ok {
		return cf
	}

	var derr *port.DetectError
	if errors.As(err, &derr) {
		if rule, ok := e.errorTable[derr.Code]; ok {
			return domain.NewFailureWithDetail(rule.Kind, rule.Message, derr.Message)
		}
		return domain.NewFailureWithDetail(domain.FailureServiceTransient,
			fmt.Sprintf("extraction service error: %s", derr.Code), derr.Message)
	}

	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	return domain.NewFailureWithDetail(domain.FailureUnknown, "text extraction failed unexpectedly", msg)
}
