package extract

import (
	"regexp"

	"github.com/platinummonkey/docuscan/internal/doctype"
	"github.com/platinummonkey/docuscan/internal/ocr"
)

// strategy is one (pattern, confidence) entry of an ordered extraction
// cascade. The first submatch group is the extracted value; a pattern
// without groups extracts the whole match.
type strategy struct {
	re         *regexp.Regexp
	confidence float64
}

// runStrategies evaluates the cascade in order against every fragment
// and returns the first match. Ordering is significant: the anchored,
// most specific pattern comes first and weaker heuristics follow.
func runStrategies(fragments []ocr.Fragment, strategies []strategy) Field {
	for _, s := range strategies {
		for _, f := range fragments {
			m := s.re.FindStringSubmatch(f.NormalizedText())
			if m == nil {
				continue
			}
			value := m[0]
			if len(m) > 1 && m[1] != "" {
				value = m[1]
			}
			return Field{Value: value, Confidence: s.confidence, Detected: true}
		}
	}
	return notDetected
}

// Extract runs the field extractor for the document type. A nil return
// means the mandatory anchor field was not found and the caller should
// fall back to an unclear result.
func Extract(dt doctype.Type, fragments []ocr.Fragment) Document {
	switch dt {
	case doctype.Aadhaar:
		return extractAadhaar(fragments)
	case doctype.PAN:
		return extractPAN(fragments)
	case doctype.CreditCard:
		return extractCard(fragments)
	case doctype.DrivingLicense:
		return extractDrivingLicense(fragments)
	case doctype.VoterID:
		return extractVoterID(fragments)
	case doctype.Passport:
		return extractPassport(fragments)
	case doctype.Invoice:
		return extractInvoice(fragments)
	case doctype.Receipt:
		return extractReceipt(fragments)
	case doctype.Insurance:
		return extractInsurance(fragments)
	case doctype.LabReport:
		return extractLabReport(fragments)
	default:
		return extractGeneric(fragments)
	}
}
