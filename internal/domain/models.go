package domain

// Document is the validated in-memory representation of an uploaded file.
// Immutable once constructed; request-scoped.
type Document struct {
	Name       string
	Extension  Extension
	Bytes      []byte
	ByteLength int64
}

// StoredReference points at a persisted copy of a Document in object storage.
// It is produced by the storage collaborator before extraction begins and is
// read-only to the extraction pipeline.
type StoredReference struct {
	Bucket string
	Key    string
}

// ExtractionResult holds the text obtained from a Document and the strategy
// that produced it. Produced exactly once per request, never mutated.
type ExtractionResult struct {
	Text     string
	Strategy ExtractionStrategy
}

// BlockType identifies the granularity of a text block returned by the
// OCR collaborator.
type BlockType string

const (
	BlockTypePage BlockType = "PAGE"
	BlockTypeLine BlockType = "LINE"
	BlockTypeWord BlockType = "WORD"
)

// Block is a single typed text unit from the OCR collaborator. Only
// line-level blocks contribute to extracted text; lines carry cleaner
// reading order than word or table units.
type Block struct {
	Type BlockType
	Text string
}
