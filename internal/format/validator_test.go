package format_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docbrief/internal/domain"
	"docbrief/internal/format"
)

func pdfContent() []byte {
	body := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	return append(body, []byte("trailer\n%%EOF\n")...)
}

func TestValidate_TXT_Success(t *testing.T) {
	doc, err := format.Validate("notes.txt", []byte("Hello world!"))

	require.NoError(t, err)
	assert.Equal(t, "notes.txt", doc.Name)
	assert.Equal(t, domain.ExtTXT, doc.Extension)
	assert.Equal(t, []byte("Hello world!"), doc.Bytes)
	assert.Equal(t, int64(12), doc.ByteLength)
}

func TestValidate_PDF_Success(t *testing.T) {
	doc, err := format.Validate("report.pdf", pdfContent())

	require.NoError(t, err)
	assert.Equal(t, domain.ExtPDF, doc.Extension)
}

func TestValidate_UppercaseExtension(t *testing.T) {
	doc, err := format.Validate("REPORT.PDF", pdfContent())

	require.NoError(t, err)
	assert.Equal(t, domain.ExtPDF, doc.Extension)
}

func TestValidate_EmptyPayload_InvalidFormat(t *testing.T) {
	// An empty payload is never a valid document, regardless of extension.
	for _, name := range []string{"doc.pdf", "notes.txt", "scan.png", "whatever.xyz"} {
		_, err := format.Validate(name, nil)

		cf, ok := domain.AsClassified(err)
		require.True(t, ok, "expected classified failure for %s", name)
		assert.Equal(t, domain.FailureInvalidFormat, cf.Kind)
	}
}

func TestValidate_UnsupportedExtension(t *testing.T) {
	_, err := format.Validate("malware.exe", []byte("MZ fake exe content"))

	cf, ok := domain.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, domain.FailureUnsupported, cf.Kind)
}

func TestValidate_NoExtension(t *testing.T) {
	_, err := format.Validate("README", []byte("plain content"))

	cf, ok := domain.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, domain.FailureUnsupported, cf.Kind)
}

func TestValidate_PDF_MissingSignature(t *testing.T) {
	// A .pdf name with no %PDF- signature always fails, regardless of size.
	payloads := [][]byte{
		[]byte("not a pdf"),
		[]byte("%PD"),
		bytes.Repeat([]byte("x"), 1<<20),
	}
	for _, raw := range payloads {
		_, err := format.Validate("doc.pdf", raw)

		cf, ok := domain.AsClassified(err)
		require.True(t, ok)
		assert.Equal(t, domain.FailureInvalidFormat, cf.Kind)
	}
}

func TestValidate_PDF_MissingTrailer_StillValid(t *testing.T) {
	// Missing %%EOF only warns; some producers omit the trailer.
	raw := []byte("%PDF-1.7\ncontent without a trailer marker")

	doc, err := format.Validate("doc.pdf", raw)

	require.NoError(t, err)
	assert.Equal(t, domain.ExtPDF, doc.Extension)
}

func TestValidate_PDF_SignatureNotValidForImages(t *testing.T) {
	// The signature check applies to the declared extension, not content.
	doc, err := format.Validate("scan.png", []byte("arbitrary image bytes"))

	require.NoError(t, err)
	assert.Equal(t, domain.ExtPNG, doc.Extension)
}

func TestValidate_Idempotent(t *testing.T) {
	doc1, err1 := format.Validate("report.pdf", pdfContent())
	doc2, err2 := format.Validate("report.pdf", pdfContent())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, doc1, doc2)

	_, failErr1 := format.Validate("doc.pdf", []byte("junk"))
	_, failErr2 := format.Validate("doc.pdf", []byte("junk"))
	assert.Equal(t, failErr1, failErr2)
}
