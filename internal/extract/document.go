// Package extract turns recognized fragments into fully-populated,
// per-type document records with per-field confidence. Identity
// documents are anchored on a mandatory identifier number and return no
// document when it is missing; loosely structured documents always
// return an open field map with a graded extraction confidence.
package extract

import (
	"sort"

	"github.com/platinummonkey/docuscan/internal/doctype"
	"github.com/platinummonkey/docuscan/internal/ocr"
	"github.com/platinummonkey/docuscan/internal/validate"
)

// NotDetected is the sentinel value of an optional field no strategy
// matched. Sentinel fields carry confidence 0 and are excluded from the
// overall-confidence mean.
const NotDetected = "not detected"

// Strategy confidence constants: anchored keyword matches are trusted,
// weak fallback heuristics less so. These values encode the reliability
// ranking of the extraction strategies and are fixed by design.
const (
	AnchoredConfidence = 0.9
	FallbackConfidence = 0.7
)

// Field is one extracted value of a typed document variant.
type Field struct {
	Value      string
	Confidence float64
	Detected   bool
}

// notDetected is the zero field every optional slot starts from.
var notDetected = Field{Value: NotDetected, Confidence: 0, Detected: false}

// FieldKind labels a detected field in loosely structured documents.
type FieldKind string

// Detected field kinds.
const (
	KindName       FieldKind = "name"
	KindNumber     FieldKind = "number"
	KindDate       FieldKind = "date"
	KindAddress    FieldKind = "address"
	KindPhone      FieldKind = "phone"
	KindEmail      FieldKind = "email"
	KindAmount     FieldKind = "amount"
	KindPercentage FieldKind = "percentage"
	KindURL        FieldKind = "url"
	KindOther      FieldKind = "other"
)

// DetectedField is one entry of an open field map.
type DetectedField struct {
	Value      string
	Confidence float64
	Kind       FieldKind
	Box        *ocr.Box
	RawText    string
}

// DetectedFields is an open field map keyed by field name.
type DetectedFields map[string]DetectedField

// NamedField pairs a field with its map key for ordered summaries.
type NamedField struct {
	Name string
	DetectedField
}

// Summary returns the fields sorted by descending confidence, name
// ascending as the secondary key for determinism.
func (d DetectedFields) Summary() []NamedField {
	out := make([]NamedField, 0, len(d))
	for name, f := range d {
		out = append(out, NamedField{Name: name, DetectedField: f})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Document is the closed union of extracted document records.
type Document interface {
	// DocType identifies the variant.
	DocType() doctype.Type

	// OverallConfidence is the arithmetic mean of all present field
	// confidences for the variant.
	OverallConfidence() float64

	// Identifier returns the variant's primary identifier number, or ""
	// for variants without one. Custom validators run against this.
	Identifier() string

	isDocument()
}

// Aadhaar is a national-ID document record. Number is mandatory.
type Aadhaar struct {
	Number      Field
	Name        Field
	DateOfBirth Field
	Gender      Field
	Address     Field
}

func (d *Aadhaar) DocType() doctype.Type { return doctype.Aadhaar }
func (d *Aadhaar) Identifier() string    { return d.Number.Value }
func (d *Aadhaar) OverallConfidence() float64 {
	return meanConfidence(d.Number, d.Name, d.DateOfBirth, d.Gender, d.Address)
}
func (d *Aadhaar) isDocument() {}

// MaskedNumber returns the display-safe form of the Aadhaar number.
func (d *Aadhaar) MaskedNumber() string { return validate.MaskAadhaar(d.Number.Value) }

// PAN is a tax-ID document record. Number is mandatory.
type PAN struct {
	Number      Field
	Name        Field
	FatherName  Field
	DateOfBirth Field
}

func (d *PAN) DocType() doctype.Type { return doctype.PAN }
func (d *PAN) Identifier() string    { return d.Number.Value }
func (d *PAN) OverallConfidence() float64 {
	return meanConfidence(d.Number, d.Name, d.FatherName, d.DateOfBirth)
}
func (d *PAN) isDocument() {}

// MaskedNumber returns the display-safe form of the PAN.
func (d *PAN) MaskedNumber() string { return validate.MaskPAN(d.Number.Value) }

// Card is a payment-card record. Number is mandatory; Brand is derived
// from it.
type Card struct {
	Number Field
	Brand  validate.Brand
	Holder Field
	Expiry Field
}

func (d *Card) DocType() doctype.Type { return doctype.CreditCard }
func (d *Card) Identifier() string    { return d.Number.Value }
func (d *Card) OverallConfidence() float64 {
	return meanConfidence(d.Number, d.Holder, d.Expiry)
}
func (d *Card) isDocument() {}

// MaskedNumber returns the display-safe form of the card number.
func (d *Card) MaskedNumber() string { return validate.MaskCard(d.Number.Value) }

// DrivingLicense is a driving-licence record. Number is mandatory.
type DrivingLicense struct {
	Number      Field
	Name        Field
	DateOfBirth Field
	ValidUntil  Field
}

func (d *DrivingLicense) DocType() doctype.Type { return doctype.DrivingLicense }
func (d *DrivingLicense) Identifier() string    { return d.Number.Value }
func (d *DrivingLicense) OverallConfidence() float64 {
	return meanConfidence(d.Number, d.Name, d.DateOfBirth, d.ValidUntil)
}
func (d *DrivingLicense) isDocument() {}

// VoterID is an electoral-photo-ID record. Number is mandatory.
type VoterID struct {
	Number     Field
	Name       Field
	FatherName Field
}

func (d *VoterID) DocType() doctype.Type { return doctype.VoterID }
func (d *VoterID) Identifier() string    { return d.Number.Value }
func (d *VoterID) OverallConfidence() float64 {
	return meanConfidence(d.Number, d.Name, d.FatherName)
}
func (d *VoterID) isDocument() {}

// FieldMap is the record shape shared by the loosely structured
// variants: an open field map plus a graded extraction confidence.
type FieldMap struct {
	Type       doctype.Type
	Fields     DetectedFields
	Confidence float64
}

func (d *FieldMap) DocType() doctype.Type      { return d.Type }
func (d *FieldMap) Identifier() string         { return "" }
func (d *FieldMap) OverallConfidence() float64 { return d.Confidence }
func (d *FieldMap) isDocument()                {}

// meanConfidence averages the confidences of detected fields only.
// Variants guarantee the mandatory field is always detected, so the
// denominator is never zero for a returned document.
func meanConfidence(fields ...Field) float64 {
	var sum float64
	n := 0
	for _, f := range fields {
		if f.Detected {
			sum += f.Confidence
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
