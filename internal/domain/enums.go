package domain

// Extension represents the allowed file extensions for ingestion.
type Extension string

const (
	ExtPDF  Extension = "pdf"
	ExtTXT  Extension = "txt"
	ExtJPG  Extension = "jpg"
	ExtJPEG Extension = "jpeg"
	ExtPNG  Extension = "png"
	ExtTIF  Extension = "tif"
	ExtTIFF Extension = "tiff"
)

// SupportedExtensions maps file extensions (without dot) to their Extension value.
var SupportedExtensions = map[string]Extension{
	"pdf":  ExtPDF,
	"txt":  ExtTXT,
	"jpg":  ExtJPG,
	"jpeg": ExtJPEG,
	"png":  ExtPNG,
	"tif":  ExtTIF,
	"tiff": ExtTIFF,
}

// ContentTypes maps Extension to its MIME content type, used when persisting
// the raw document to object storage.
var ContentTypes = map[Extension]string{
	ExtPDF:  "application/pdf",
	ExtTXT:  "text/plain",
	ExtJPG:  "image/jpeg",
	ExtJPEG: "image/jpeg",
	ExtPNG:  "image/png",
	ExtTIF:  "image/tiff",
	ExtTIFF: "image/tiff",
}

// IsImage reports whether the extension denotes a raster image format.
func (e Extension) IsImage() bool {
	switch e {
	case ExtJPG, ExtJPEG, ExtPNG, ExtTIF, ExtTIFF:
		return true
	}
	return false
}

// ExtractionStrategy is the chosen method for obtaining text from a Document.
type ExtractionStrategy string

const (
	// StrategyDirectDecode decodes the document bytes as UTF-8 text locally.
	StrategyDirectDecode ExtractionStrategy = "direct_decode"
	// StrategyInlineOcr submits the raw byte buffer to the OCR service.
	StrategyInlineOcr ExtractionStrategy = "inline_ocr"
	// StrategyReferencedOcr points the OCR service at a persisted copy in
	// object storage, avoiding inline payload-size ceilings.
	StrategyReferencedOcr ExtractionStrategy = "referenced_ocr"
)

// FailureKind enumerates the stable failure outcomes of the ingestion pipeline.
type FailureKind string

const (
	FailureInvalidFormat     FailureKind = "invalid_format"
	FailureTooLarge          FailureKind = "too_large"
	FailureUnsupported       FailureKind = "unsupported"
	FailureNoExtractableText FailureKind = "no_extractable_text"
	FailureServiceRejected   FailureKind = "extraction_service_rejected"
	FailureServiceTransient  FailureKind = "extraction_service_transient"
	FailureUnknown           FailureKind = "unknown"
)
