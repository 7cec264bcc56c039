package port

import (
	"context"
	"fmt"

	"docbrief/internal/domain"
)

// DetectError is a failure reported by the text-detection collaborator with a
// stable service error code. The extraction pipeline classifies these codes
// into the internal failure taxonomy; anything without a code is treated as
// unanticipated.
type DetectError struct {
	Code    string
	Message string
	Err     error
}

func (e *DetectError) Error() string {
	return fmt.Sprintf("text detection failed (%s): %s", e.Code, e.Message)
}

func (e *DetectError) Unwrap() error {
	return e.Err
}

// TextDetector abstracts the external OCR service. Both submission modes
// return the service's typed blocks in their original order.
type TextDetector interface {
	// DetectInline submits the raw byte buffer directly.
	DetectInline(ctx context.Context, data []byte) ([]domain.Block, error)
	// DetectStored points the service at a persisted object.
	DetectStored(ctx context.Context, bucket, key string) ([]domain.Block, error)
}
