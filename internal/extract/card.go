package extract

import (
	"regexp"

	"github.com/platinummonkey/docuscan/internal/candidates"
	"github.com/platinummonkey/docuscan/internal/ocr"
	"github.com/platinummonkey/docuscan/internal/validate"
)

var holderStrategies = []strategy{
	{regexp.MustCompile(`(?i)card\s?holder\s*[:.]?\s*([A-Za-z]+(?: [A-Za-z]+){1,3})\b`), AnchoredConfidence},
}

// extractCard returns a typed payment-card record, or nil when no
// Luhn-valid card number is present. The brand is derived from the
// number's prefix cascade.
func extractCard(fragments []ocr.Fragment) Document {
	number, ok := validatedNumber(fragments, candidates.KindCard, validate.IsCardNumber)
	if !ok {
		return nil
	}

	doc := &Card{
		Number: number,
		Brand:  validate.CardBrand(number.Value),
		Holder: notDetected,
		Expiry: notDetected,
	}

	if f := runStrategies(fragments, holderStrategies); f.Detected {
		doc.Holder = f
	} else if names := candidates.Names(fragments); len(names) > 0 {
		doc.Holder = Field{Value: names[0].Value, Confidence: FallbackConfidence, Detected: true}
	}

	for _, exp := range candidates.ExpiryDates(fragments) {
		if validate.IsExpiryDate(exp.Value) {
			doc.Expiry = Field{Value: exp.Value, Confidence: AnchoredConfidence, Detected: true}
			break
		}
		if !doc.Expiry.Detected {
			// An expired or questionable date is still worth reporting,
			// at reduced confidence.
			doc.Expiry = Field{Value: exp.Value, Confidence: FallbackConfidence, Detected: true}
		}
	}
	return doc
}
