package extract

import (
	"regexp"
	"strings"

	"github.com/platinummonkey/docuscan/internal/candidates"
	"github.com/platinummonkey/docuscan/internal/doctype"
	"github.com/platinummonkey/docuscan/internal/ocr"
)

var (
	emailRe      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe      = regexp.MustCompile(`(?:\+\d{1,3}[-\s]?)?\b\d{10}\b`)
	urlRe        = regexp.MustCompile(`\b(?:https?://|www\.)\S+`)
	amountRe     = regexp.MustCompile(`(?i)(?:₹|rs\.?|inr|\$|usd|eur)\s?\d+(?:,\d{3})*(?:\.\d{1,2})?`)
	percentageRe = regexp.MustCompile(`\b\d+(?:\.\d+)?\s?%`)
)

// kindDetectors are the pattern detectors shared by the generic
// extractor and the loosely structured ones.
var kindDetectors = []struct {
	name string
	kind FieldKind
	re   *regexp.Regexp
}{
	{"email", KindEmail, emailRe},
	{"phone", KindPhone, phoneRe},
	{"url", KindURL, urlRe},
	{"amount", KindAmount, amountRe},
	{"percentage", KindPercentage, percentageRe},
}

// extractGeneric detects fields of every kind across all fragments.
// Always returns a document; used both for the Generic type and as the
// best-effort fallback for unclassified input.
func extractGeneric(fragments []ocr.Fragment) Document {
	fields := make(DetectedFields)
	addCommonFields(fields, fragments)

	if names := candidates.Names(fragments); len(names) > 0 {
		fields["name"] = DetectedField{
			Value:      names[0].Value,
			Confidence: FallbackConfidence,
			Kind:       KindName,
			RawText:    names[0].RawText,
		}
	}
	addDateField(fields, "date", fragments)

	if addrs := candidates.Addresses(fragments); len(addrs) > 0 {
		box := addrs[0].Box
		fields["address"] = DetectedField{
			Value:      strings.Join(addrs[0].Lines, ", "),
			Confidence: addrs[0].Confidence,
			Kind:       KindAddress,
			Box:        &box,
			RawText:    addrs[0].RawText,
		}
	}

	for _, n := range candidates.Numbers(fragments) {
		if _, ok := fields["number"]; ok {
			break
		}
		fields["number"] = DetectedField{
			Value:      n.Value,
			Confidence: n.Confidence,
			Kind:       KindNumber,
			RawText:    n.RawText,
		}
	}

	return looseDocument(doctype.Generic, fragments, fields)
}

// addCommonFields runs the shared kind detectors, keeping the
// highest-confidence match per field name.
func addCommonFields(fields DetectedFields, fragments []ocr.Fragment) {
	for _, det := range kindDetectors {
		for _, f := range fragments {
			m := det.re.FindString(f.NormalizedText())
			if m == "" {
				continue
			}
			if existing, ok := fields[det.name]; ok && existing.Confidence >= f.Confidence {
				continue
			}
			box := f.Box
			fields[det.name] = DetectedField{
				Value:      m,
				Confidence: f.Confidence,
				Kind:       det.kind,
				Box:        &box,
				RawText:    f.Text,
			}
		}
	}
}
