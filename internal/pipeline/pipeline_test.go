package pipeline

import (
	"reflect"
	"testing"

	"github.com/platinummonkey/docuscan/internal/doctype"
	"github.com/platinummonkey/docuscan/internal/extract"
	"github.com/platinummonkey/docuscan/internal/ocr"
	"github.com/platinummonkey/docuscan/internal/validate"
)

func newScanner() *Scanner {
	return New(Config{}, nil)
}

func fragsWithConf(texts []string, confs []float64) []ocr.Fragment {
	out := make([]ocr.Fragment, len(texts))
	for i, text := range texts {
		out[i] = ocr.Fragment{Text: text, Confidence: confs[i]}
	}
	return out
}

func TestScan_AadhaarSuccess(t *testing.T) {
	fragments := fragsWithConf(
		[]string{"Government of India", "2341 2341 2346", "John Doe"},
		[]float64{0.9, 0.95, 0.9},
	)

	result := newScanner().Scan(fragments, nil)

	success, ok := result.(Success)
	if !ok {
		t.Fatalf("Scan() = %#v, want Success", result)
	}

	aadhaar, ok := success.Document.(*extract.Aadhaar)
	if !ok {
		t.Fatalf("document = %T, want *extract.Aadhaar", success.Document)
	}
	if aadhaar.Number.Value != "234123412346" {
		t.Errorf("aadhaar number = %q, want 234123412346", aadhaar.Number.Value)
	}
}

func TestScan_PANSuccess(t *testing.T) {
	fragments := fragsWithConf([]string{"ABCDE1234F"}, []float64{0.95})

	result := newScanner().Scan(fragments, nil)

	success, ok := result.(Success)
	if !ok {
		t.Fatalf("Scan() = %#v, want Success", result)
	}

	pan, ok := success.Document.(*extract.PAN)
	if !ok {
		t.Fatalf("document = %T, want *extract.PAN", success.Document)
	}
	if pan.Number.Value != "ABCDE1234F" {
		t.Errorf("pan number = %q, want ABCDE1234F", pan.Number.Value)
	}
	if pan.MaskedNumber() != "XXXXX1234X" {
		t.Errorf("masked = %q, want XXXXX1234X", pan.MaskedNumber())
	}
}

func TestScan_CardSuccess(t *testing.T) {
	fragments := fragsWithConf([]string{"4111111111111111"}, []float64{0.95})

	result := newScanner().Scan(fragments, nil)

	success, ok := result.(Success)
	if !ok {
		t.Fatalf("Scan() = %#v, want Success", result)
	}

	card, ok := success.Document.(*extract.Card)
	if !ok {
		t.Fatalf("document = %T, want *extract.Card", success.Document)
	}
	if card.Brand != validate.BrandVisa {
		t.Errorf("brand = %v, want Visa", card.Brand)
	}
	if card.MaskedNumber() != "4111 ******** 1111" {
		t.Errorf("masked = %q, want 4111 ******** 1111", card.MaskedNumber())
	}
}

func TestScan_EmptyFragments(t *testing.T) {
	result := newScanner().Scan(nil, nil)

	e, ok := result.(Error)
	if !ok {
		t.Fatalf("Scan() = %#v, want Error", result)
	}
	if e.Kind != OcrProcessingFailed {
		t.Errorf("error kind = %v, want OcrProcessingFailed", e.Kind)
	}
}

func TestScan_LowConfidenceUnclear(t *testing.T) {
	fragments := fragsWithConf(
		[]string{"some text", "more text"},
		[]float64{0.5, 0.5},
	)

	result := newScanner().Scan(fragments, nil)

	unclear, ok := result.(Unclear)
	if !ok {
		t.Fatalf("Scan() = %#v, want Unclear", result)
	}
	if unclear.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", unclear.Confidence)
	}
	if unclear.RawText != "some text\nmore text" {
		t.Errorf("raw text = %q", unclear.RawText)
	}
}

// An unclassified input with high fragment confidence falls through to
// a best-effort generic extraction instead of short-circuiting, and
// the generic document then faces the confidence gate.
func TestScan_UnclassifiedHighConfidence(t *testing.T) {
	fragments := fragsWithConf(
		[]string{"Contact: john@example.com", "Phone: 9876543210", "Visit www.example.com today", "Discount 15%", "Total $99.99", "Date: 15/03/2024"},
		[]float64{0.95, 0.95, 0.95, 0.95, 0.95, 0.95},
	)

	result := newScanner().Scan(fragments, nil)

	success, ok := result.(Success)
	if !ok {
		t.Fatalf("Scan() = %#v, want Success with generic document", result)
	}
	if success.Document.DocType() != doctype.Generic {
		t.Errorf("doc type = %v, want Generic", success.Document.DocType())
	}
}

func TestScan_ExtractionFailureUnclear(t *testing.T) {
	// Classifies as Aadhaar via keywords but carries no valid number,
	// so extraction yields no document.
	fragments := fragsWithConf(
		[]string{"Aadhaar", "Unique Identification Authority", "Government of India"},
		[]float64{0.9, 0.9, 0.9},
	)

	result := newScanner().Scan(fragments, nil)

	if _, ok := result.(Unclear); !ok {
		t.Fatalf("Scan() = %#v, want Unclear", result)
	}
}

func TestScan_ConfidenceGate(t *testing.T) {
	// Valid Aadhaar from a low-confidence fragment: classification
	// succeeds but the extraction confidence sits below the 0.8 gate.
	fragments := fragsWithConf(
		[]string{"Government of India", "2341 2341 2346"},
		[]float64{0.9, 0.6},
	)

	result := newScanner().Scan(fragments, nil)

	unclear, ok := result.(Unclear)
	if !ok {
		t.Fatalf("Scan() = %#v, want Unclear", result)
	}
	if unclear.Confidence >= DefaultConfidenceThreshold {
		t.Errorf("gated confidence = %v, want below %v", unclear.Confidence, DefaultConfidenceThreshold)
	}
}

func TestScan_CustomValidatorDemotes(t *testing.T) {
	scanner := New(Config{
		CustomValidators: map[string]func(string) bool{
			"aadhaar": func(string) bool { return false },
		},
	}, nil)

	fragments := fragsWithConf(
		[]string{"Government of India", "2341 2341 2346"},
		[]float64{0.9, 0.95},
	)

	if _, ok := scanner.Scan(fragments, nil).(Unclear); !ok {
		t.Error("failing custom validator should demote the result to Unclear")
	}
}

func TestScan_AllowedTypesRestriction(t *testing.T) {
	fragments := fragsWithConf(
		[]string{"Government of India", "2341 2341 2346"},
		[]float64{0.9, 0.95},
	)

	// Aadhaar excluded: classification fails, mean confidence is high,
	// generic extraction runs and gets gated.
	result := newScanner().Scan(fragments, []doctype.Type{doctype.Invoice})

	if _, ok := result.(Success); ok {
		if result.(Success).Document.DocType() == doctype.Aadhaar {
			t.Error("excluded type must not be detected")
		}
	}
}

func TestScan_Idempotent(t *testing.T) {
	fragments := fragsWithConf(
		[]string{"Government of India", "2341 2341 2346", "John Doe"},
		[]float64{0.9, 0.95, 0.9},
	)

	scanner := newScanner()
	first := scanner.Scan(fragments, nil)
	second := scanner.Scan(fragments, nil)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scans differ:\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestClassifyAndExtract_LowerLevelEntryPoints(t *testing.T) {
	scanner := newScanner()
	fragments := fragsWithConf([]string{"ABCDE1234F"}, []float64{0.95})

	dt, ok := scanner.Classify(fragments, nil)
	if !ok || dt != doctype.PAN {
		t.Fatalf("Classify() = %v, %v; want PAN, true", dt, ok)
	}

	doc := scanner.Extract(dt, fragments)
	if doc == nil {
		t.Fatal("Extract() returned nil for a valid PAN")
	}
	if doc.Identifier() != "ABCDE1234F" {
		t.Errorf("identifier = %q, want ABCDE1234F", doc.Identifier())
	}
}
