package extract

import (
	"regexp"

	"github.com/platinummonkey/docuscan/internal/candidates"
	"github.com/platinummonkey/docuscan/internal/ocr"
	"github.com/platinummonkey/docuscan/internal/validate"
)

var (
	nameStrategies = []strategy{
		{regexp.MustCompile(`(?i)\bname\s*[:.]?\s+([A-Za-z]+(?: [A-Za-z]+){1,3})\b`), AnchoredConfidence},
	}
	dobStrategies = []strategy{
		{regexp.MustCompile(`(?i)(?:dob|date of birth)\s*[:.]?\s*(\d{2}[/.-]\d{2}[/.-]\d{4})`), AnchoredConfidence},
		{regexp.MustCompile(`(?i)(?:year of birth)\s*[:.]?\s*(\d{4})`), AnchoredConfidence},
	}
	genderStrategies = []strategy{
		{regexp.MustCompile(`(?i)\b(male|female|transgender)\b`), AnchoredConfidence},
	}
	fatherStrategies = []strategy{
		{regexp.MustCompile(`(?i)father'?s? name\s*[:.]?\s*([A-Za-z]+(?: [A-Za-z]+){1,3})\b`), AnchoredConfidence},
	}
	dlNumberRe           = regexp.MustCompile(`\b[A-Z]{2}[-\s]?\d{2}[-\s]?\d{4}[-\s]?\d{7}\b`)
	epicNumberRe         = regexp.MustCompile(`\b[A-Z]{3}\d{7}\b`)
	validUntilStrategies = []strategy{
		{regexp.MustCompile(`(?i)(?:valid till|valid until|validity)\s*[:.]?\s*(\d{2}[/.-]\d{2}[/.-]\d{4})`), AnchoredConfidence},
	}
)

// extractAadhaar returns a fully-typed Aadhaar record, or nil when no
// checksum-valid Aadhaar number is present.
func extractAadhaar(fragments []ocr.Fragment) Document {
	number, ok := validatedNumber(fragments, candidates.KindAadhaar, validate.IsAadhaar)
	if !ok {
		return nil
	}

	doc := &Aadhaar{
		Number:      number,
		Name:        nameField(fragments),
		DateOfBirth: dateField(fragments, dobStrategies),
		Gender:      runStrategies(fragments, genderStrategies),
		Address:     notDetected,
	}

	if addrs := candidates.Addresses(fragments); len(addrs) > 0 {
		doc.Address = Field{
			Value:      addrs[0].RawText,
			Confidence: addrs[0].Confidence,
			Detected:   true,
		}
	}
	return doc
}

// extractPAN returns a fully-typed PAN record, or nil when no
// format-valid PAN is present.
func extractPAN(fragments []ocr.Fragment) Document {
	number, ok := validatedNumber(fragments, candidates.KindPAN, validate.IsPAN)
	if !ok {
		return nil
	}

	return &PAN{
		Number:      number,
		Name:        nameField(fragments),
		FatherName:  runStrategies(fragments, fatherStrategies),
		DateOfBirth: dateField(fragments, dobStrategies),
	}
}

// extractDrivingLicense returns a typed licence record, or nil when no
// licence-shaped number is present.
func extractDrivingLicense(fragments []ocr.Fragment) Document {
	number := matchNumber(fragments, dlNumberRe)
	if !number.Detected {
		return nil
	}

	return &DrivingLicense{
		Number:      number,
		Name:        nameField(fragments),
		DateOfBirth: dateField(fragments, dobStrategies),
		ValidUntil:  runStrategies(fragments, validUntilStrategies),
	}
}

// extractVoterID returns a typed voter-ID record, or nil when no EPIC
// number is present.
func extractVoterID(fragments []ocr.Fragment) Document {
	number := matchNumber(fragments, epicNumberRe)
	if !number.Detected {
		return nil
	}

	return &VoterID{
		Number:     number,
		Name:       nameField(fragments),
		FatherName: runStrategies(fragments, fatherStrategies),
	}
}

// validatedNumber finds the first candidate of the kind that passes the
// validator. The field inherits the source fragment's confidence.
func validatedNumber(fragments []ocr.Fragment, kind candidates.NumberKind, valid func(string) bool) (Field, bool) {
	for _, n := range candidates.NumbersOfKind(candidates.Numbers(fragments), kind) {
		if valid(n.Value) {
			return Field{Value: n.Value, Confidence: n.Confidence, Detected: true}, true
		}
	}
	return notDetected, false
}

// matchNumber finds the first fragment matching the identifier pattern.
func matchNumber(fragments []ocr.Fragment, re *regexp.Regexp) Field {
	for _, f := range fragments {
		if m := re.FindString(f.NormalizedText()); m != "" {
			return Field{Value: m, Confidence: f.Confidence, Detected: true}
		}
	}
	return notDetected
}

// nameField tries the anchored name pattern first, then falls back to
// the strongest unanchored name candidate.
func nameField(fragments []ocr.Fragment) Field {
	if f := runStrategies(fragments, nameStrategies); f.Detected {
		return f
	}
	names := candidates.Names(fragments)
	if len(names) == 0 {
		return notDetected
	}
	best := names[0]
	for _, n := range names[1:] {
		if n.Confidence > best.Confidence {
			best = n
		}
	}
	return Field{Value: best.Value, Confidence: FallbackConfidence, Detected: true}
}

// dateField tries anchored date strategies first, then any date
// candidate as a weak fallback.
func dateField(fragments []ocr.Fragment, anchored []strategy) Field {
	if f := runStrategies(fragments, anchored); f.Detected {
		return f
	}
	dates := candidates.Dates(fragments)
	if len(dates) == 0 {
		return notDetected
	}
	return Field{Value: dates[0].Value, Confidence: FallbackConfidence, Detected: true}
}
