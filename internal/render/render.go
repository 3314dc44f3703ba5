// Package render converts pipeline results into serializable reports
// for the CLI and HTTP surfaces. Sensitive identifiers appear only in
// their masked form.
package render

import (
	"github.com/platinummonkey/docuscan/internal/extract"
	"github.com/platinummonkey/docuscan/internal/pipeline"
)

// Report statuses.
const (
	StatusSuccess = "success"
	StatusUnclear = "unclear"
	StatusError   = "error"
)

// Field is one extracted field of a report.
type Field struct {
	Value      string  `json:"value" yaml:"value"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Detected   bool    `json:"detected" yaml:"detected"`
}

// Report is the externally visible shape of one scan outcome.
type Report struct {
	Status       string           `json:"status" yaml:"status"`
	DocumentType string           `json:"document_type,omitempty" yaml:"document_type,omitempty"`
	Confidence   float64          `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Fields       map[string]Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	RawText      string           `json:"raw_text,omitempty" yaml:"raw_text,omitempty"`
	ErrorKind    string           `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	ErrorDetail  string           `json:"error_detail,omitempty" yaml:"error_detail,omitempty"`
}

// FromResult builds the report for a pipeline result.
func FromResult(result pipeline.Result) Report {
	switch r := result.(type) {
	case pipeline.Success:
		return Report{
			Status:       StatusSuccess,
			DocumentType: r.Document.DocType().ID(),
			Confidence:   r.Document.OverallConfidence(),
			Fields:       documentFields(r.Document),
		}
	case pipeline.Unclear:
		return Report{
			Status:     StatusUnclear,
			Confidence: r.Confidence,
			RawText:    r.RawText,
		}
	case pipeline.Error:
		return Report{
			Status:      StatusError,
			ErrorKind:   string(r.Kind),
			ErrorDetail: r.Detail,
		}
	default:
		return Report{Status: StatusError, ErrorKind: string(pipeline.GenericError)}
	}
}

// documentFields flattens a document record into named report fields.
// Aadhaar, PAN and card numbers are replaced with their masked forms.
func documentFields(doc extract.Document) map[string]Field {
	out := make(map[string]Field)
	switch d := doc.(type) {
	case *extract.Aadhaar:
		put(out, "number", maskedField(d.Number, d.MaskedNumber()))
		put(out, "name", d.Name)
		put(out, "date_of_birth", d.DateOfBirth)
		put(out, "gender", d.Gender)
		put(out, "address", d.Address)
	case *extract.PAN:
		put(out, "number", maskedField(d.Number, d.MaskedNumber()))
		put(out, "name", d.Name)
		put(out, "father_name", d.FatherName)
		put(out, "date_of_birth", d.DateOfBirth)
	case *extract.Card:
		put(out, "number", maskedField(d.Number, d.MaskedNumber()))
		out["brand"] = Field{Value: string(d.Brand), Confidence: d.Number.Confidence, Detected: true}
		put(out, "holder", d.Holder)
		put(out, "expiry", d.Expiry)
	case *extract.DrivingLicense:
		put(out, "number", d.Number)
		put(out, "name", d.Name)
		put(out, "date_of_birth", d.DateOfBirth)
		put(out, "valid_until", d.ValidUntil)
	case *extract.VoterID:
		put(out, "number", d.Number)
		put(out, "name", d.Name)
		put(out, "father_name", d.FatherName)
	case *extract.FieldMap:
		for name, f := range d.Fields {
			out[name] = Field{Value: f.Value, Confidence: f.Confidence, Detected: true}
		}
	}
	return out
}

// put records a typed field, preserving undetected slots so callers
// see which fields the extractor looked for.
func put(out map[string]Field, name string, f extract.Field) {
	out[name] = Field{Value: f.Value, Confidence: f.Confidence, Detected: f.Detected}
}

// maskedField is put with the value swapped for its masked form.
func maskedField(f extract.Field, masked string) extract.Field {
	f.Value = masked
	return f
}
