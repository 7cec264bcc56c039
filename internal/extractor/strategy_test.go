package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docbrief/internal/domain"
	"docbrief/internal/extractor"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name   string
		ext    domain.Extension
		hasRef bool
		want   domain.ExtractionStrategy
	}{
		{"txt decodes directly", domain.ExtTXT, false, domain.StrategyDirectDecode},
		{"txt ignores stored reference", domain.ExtTXT, true, domain.StrategyDirectDecode},
		{"pdf with reference goes referenced", domain.ExtPDF, true, domain.StrategyReferencedOcr},
		{"pdf without reference goes inline", domain.ExtPDF, false, domain.StrategyInlineOcr},
		{"jpg goes inline", domain.ExtJPG, false, domain.StrategyInlineOcr},
		{"jpeg goes inline", domain.ExtJPEG, false, domain.StrategyInlineOcr},
		{"png goes inline even with reference", domain.ExtPNG, true, domain.StrategyInlineOcr},
		{"tif goes inline", domain.ExtTIF, false, domain.StrategyInlineOcr},
		{"tiff goes inline even with reference", domain.ExtTIFF, true, domain.StrategyInlineOcr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.SelectStrategy(tt.ext, tt.hasRef))
		})
	}
}
