package format

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"docbrief/internal/domain"
)

var (
	pdfSignature = []byte("%PDF-")
	pdfTrailer   = []byte("%%EOF")
)

// trailerWindow is how far from the end of a PDF payload we look for the
// %%EOF marker. A missing trailer is a soft warning only; some producers
// omit it while the file remains fully readable.
const trailerWindow = 1024

// Validate inspects the declared file name and raw bytes and returns a
// Document, or a *domain.ClassifiedFailure describing why the payload was
// rejected. It runs before any external call and has no side effects beyond
// a non-fatal trailer warning.
func Validate(name string, raw []byte) (*domain.Document, error) {
	if len(raw) == 0 {
		return nil, domain.NewFailure(domain.FailureInvalidFormat, "file is empty")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	extension, ok := domain.SupportedExtensions[ext]
	if !ok {
		return nil, domain.NewFailure(domain.FailureUnsupported,
			fmt.Sprintf("unsupported file type %q; allowed: pdf, txt, jpg, jpeg, png, tif, tiff", ext))
	}

	if extension == domain.ExtPDF {
		if len(raw) < len(pdfSignature) || !bytes.HasPrefix(raw, pdfSignature) {
			return nil, domain.NewFailure(domain.FailureInvalidFormat,
				"file does not appear to be a valid PDF (missing %PDF- signature)")
		}
		tail := raw
		if len(tail) > trailerWindow {
			tail = tail[len(tail)-trailerWindow:]
		}
		if !bytes.Contains(tail, pdfTrailer) {
			log.Printf("format.Validate: PDF %q has no %%%%EOF trailer in last %d bytes; continuing", name, trailerWindow)
		}
	}

	return &domain.Document{
		Name:       name,
		Extension:  extension,
		Bytes:      raw,
		ByteLength: int64(len(raw)),
	}, nil
}
