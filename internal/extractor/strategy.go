package extractor

import "docbrief/internal/domain"

// SelectStrategy picks the extraction strategy for a document. Pure function:
// txt decodes directly; pdf prefers the persisted copy when one exists, since
// OCR-by-reference has no inline payload ceiling; images always go inline.
func SelectStrategy(ext domain.Extension, hasStoredRef bool) domain.ExtractionStrategy {
	switch {
	case ext == domain.ExtTXT:
		return domain.StrategyDirectDecode
	case ext.IsImage():
		return domain.StrategyInlineOcr
	case hasStoredRef:
		return domain.StrategyReferencedOcr
	default:
		// PDF with no persisted copy falls back to inline submission.
		return domain.StrategyInlineOcr
	}
}
