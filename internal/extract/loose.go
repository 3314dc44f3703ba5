package extract

import (
	"regexp"
	"strings"

	"github.com/platinummonkey/docuscan/internal/candidates"
	"github.com/platinummonkey/docuscan/internal/doctype"
	"github.com/platinummonkey/docuscan/internal/ocr"
)

// Loose extraction confidence: base when nothing is found, a boost per
// extracted field plus one for on-type keyword evidence, capped well
// below the anchored-strategy ceiling. These documents have no single
// mandatory field, so they never fail outright.
const (
	looseBaseConfidence = 0.5
	looseFieldBoost     = 0.05
	looseKeywordBoost   = 0.1
	looseMaxConfidence  = 0.8
)

var (
	passportNumberStrategies = []strategy{
		{regexp.MustCompile(`(?i)passport\s?(?:no|number)?\s*[:.]?\s*([A-Z]\d{7})\b`), AnchoredConfidence},
		{regexp.MustCompile(`\b([A-Z]\d{7})\b`), FallbackConfidence},
	}
	nationalityStrategies = []strategy{
		{regexp.MustCompile(`(?i)nationality\s*[:.]?\s*([A-Za-z]+)`), AnchoredConfidence},
	}
	expiryDateStrategies = []strategy{
		{regexp.MustCompile(`(?i)date of expiry\s*[:.]?\s*(\d{2}[/.-]\d{2}[/.-]\d{4})`), AnchoredConfidence},
	}
	invoiceNumberStrategies = []strategy{
		{regexp.MustCompile(`(?i)invoice\s?(?:no|number|#)?\s*[:.]?\s*([A-Z0-9][A-Z0-9/-]{2,})\b`), AnchoredConfidence},
	}
	totalStrategies = []strategy{
		{regexp.MustCompile(`(?i)(?:grand\s)?total\s*[:.]?\s*((?:₹|rs\.?|inr|\$|usd)?\s?\d+(?:,\d{3})*(?:\.\d{1,2})?)`), AnchoredConfidence},
	}
	policyNumberStrategies = []strategy{
		{regexp.MustCompile(`(?i)policy\s?(?:no|number)?\s*[:.]?\s*([A-Z0-9][A-Z0-9/-]{3,})\b`), AnchoredConfidence},
	}
	patientStrategies = []strategy{
		{regexp.MustCompile(`(?i)patient\s?(?:name)?\s*[:.]?\s*([A-Za-z]+(?: [A-Za-z]+){1,3})\b`), AnchoredConfidence},
	}
	gstinRe = regexp.MustCompile(`\b\d{2}[A-Z]{5}\d{4}[A-Z][A-Z\d]Z[A-Z\d]\b`)
	mrzRe   = regexp.MustCompile(`^[A-Z0-9<]{30,}$`)
)

// extractPassport populates an open field map from MRZ lines when
// present, falling back to anchored visual-zone patterns. Always
// returns a document.
func extractPassport(fragments []ocr.Fragment) Document {
	fields := make(DetectedFields)

	if surname, given, ok := parseMRZNameLine(fragments); ok {
		fields["surname"] = surname
		if given.Value != "" {
			fields["given_names"] = given
		}
	}
	addStrategyField(fields, "passport_number", fragments, passportNumberStrategies, KindNumber)
	addStrategyField(fields, "nationality", fragments, nationalityStrategies, KindName)
	addStrategyField(fields, "date_of_expiry", fragments, expiryDateStrategies, KindDate)
	addDateField(fields, "date_of_birth", fragments)

	return looseDocument(doctype.Passport, fragments, fields)
}

func extractInvoice(fragments []ocr.Fragment) Document {
	fields := make(DetectedFields)
	addStrategyField(fields, "invoice_number", fragments, invoiceNumberStrategies, KindNumber)
	addStrategyField(fields, "total", fragments, totalStrategies, KindAmount)
	addPatternField(fields, "gstin", fragments, gstinRe, KindNumber)
	addDateField(fields, "date", fragments)
	addCommonFields(fields, fragments)

	return looseDocument(doctype.Invoice, fragments, fields)
}

func extractReceipt(fragments []ocr.Fragment) Document {
	fields := make(DetectedFields)
	addStrategyField(fields, "total", fragments, totalStrategies, KindAmount)
	addDateField(fields, "date", fragments)
	addCommonFields(fields, fragments)

	// The merchant line is usually the first prominent non-numeric
	// fragment; names extracted from it come denylist-filtered.
	if names := candidates.Names(fragments); len(names) > 0 {
		fields["merchant"] = DetectedField{
			Value:      names[0].Value,
			Confidence: FallbackConfidence,
			Kind:       KindName,
			RawText:    names[0].RawText,
		}
	}

	return looseDocument(doctype.Receipt, fragments, fields)
}

func extractInsurance(fragments []ocr.Fragment) Document {
	fields := make(DetectedFields)
	addStrategyField(fields, "policy_number", fragments, policyNumberStrategies, KindNumber)
	addStrategyField(fields, "premium", fragments, totalStrategies, KindAmount)
	addDateField(fields, "date", fragments)
	addCommonFields(fields, fragments)

	return looseDocument(doctype.Insurance, fragments, fields)
}

func extractLabReport(fragments []ocr.Fragment) Document {
	fields := make(DetectedFields)
	addStrategyField(fields, "patient_name", fragments, patientStrategies, KindName)
	addDateField(fields, "date", fragments)
	addCommonFields(fields, fragments)

	return looseDocument(doctype.LabReport, fragments, fields)
}

// looseDocument computes the graded extraction confidence for a
// loosely structured document.
func looseDocument(dt doctype.Type, fragments []ocr.Fragment, fields DetectedFields) Document {
	conf := looseBaseConfidence + looseFieldBoost*float64(len(fields))
	if hasKeyword(fragments, dt) {
		conf += looseKeywordBoost
	}
	if conf > looseMaxConfidence {
		conf = looseMaxConfidence
	}
	return &FieldMap{Type: dt, Fields: fields, Confidence: conf}
}

func hasKeyword(fragments []ocr.Fragment, dt doctype.Type) bool {
	for _, f := range fragments {
		lower := strings.ToLower(f.NormalizedText())
		for _, kw := range dt.Get().Keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

func addStrategyField(fields DetectedFields, name string, fragments []ocr.Fragment, strategies []strategy, kind FieldKind) {
	if f := runStrategies(fragments, strategies); f.Detected {
		fields[name] = DetectedField{Value: f.Value, Confidence: f.Confidence, Kind: kind}
	}
}

func addPatternField(fields DetectedFields, name string, fragments []ocr.Fragment, re *regexp.Regexp, kind FieldKind) {
	for _, f := range fragments {
		if m := re.FindString(strings.ToUpper(f.NormalizedText())); m != "" {
			fields[name] = DetectedField{
				Value:      m,
				Confidence: f.Confidence,
				Kind:       kind,
				RawText:    f.Text,
			}
			return
		}
	}
}

func addDateField(fields DetectedFields, name string, fragments []ocr.Fragment) {
	dates := candidates.Dates(fragments)
	if len(dates) == 0 {
		return
	}
	fields[name] = DetectedField{
		Value:      dates[0].Value,
		Confidence: FallbackConfidence,
		Kind:       KindDate,
		RawText:    dates[0].RawText,
	}
}

// parseMRZNameLine extracts the surname and given names from a passport
// TD3 name line (P<CCCSURNAME<<GIVEN<NAMES<<<...).
func parseMRZNameLine(fragments []ocr.Fragment) (DetectedField, DetectedField, bool) {
	for _, f := range fragments {
		line := strings.ReplaceAll(f.NormalizedText(), " ", "")
		if !mrzRe.MatchString(line) || !strings.HasPrefix(line, "P<") {
			continue
		}
		// Skip "P<" and the 3-letter issuing country.
		rest := line[2:]
		if len(rest) > 3 {
			rest = rest[3:]
		}
		parts := strings.SplitN(rest, "<<", 2)
		surname := strings.Trim(strings.ReplaceAll(parts[0], "<", " "), " ")
		if surname == "" {
			continue
		}
		sf := DetectedField{Value: surname, Confidence: AnchoredConfidence, Kind: KindName, RawText: f.Text}
		gf := DetectedField{Kind: KindName, RawText: f.Text}
		if len(parts) == 2 {
			given := strings.Trim(strings.ReplaceAll(parts[1], "<", " "), " ")
			given = strings.Join(strings.Fields(given), " ")
			if given != "" {
				gf.Value = given
				gf.Confidence = AnchoredConfidence
				return sf, gf, true
			}
		}
		return sf, gf, true
	}
	return DetectedField{}, DetectedField{}, false
}
