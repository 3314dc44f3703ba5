// Package candidates extracts typed, unvalidated values (identifier
// numbers, dates, names, address groups) from recognized text
// fragments. Candidates carry provenance — source box, raw text and the
// source fragment's confidence — and live only for one pipeline run;
// checksum and format validation happens downstream.
package candidates

import "github.com/platinummonkey/docuscan/internal/ocr"

// NumberKind distinguishes the identifier-number shapes the extractors
// look for.
type NumberKind int

// Identifier-number kinds.
const (
	KindAadhaar NumberKind = iota
	KindPAN
	KindCard
)

// Number is a candidate identifier number with separators stripped.
type Number struct {
	Kind       NumberKind
	Value      string
	Confidence float64
	Box        ocr.Box
	RawText    string
}

// ExpiryDate is a candidate card expiry (MM + separator + YY or YYYY).
type ExpiryDate struct {
	Value      string
	Confidence float64
	Box        ocr.Box
	RawText    string
}

// Name is a candidate person name.
type Name struct {
	Value      string
	Confidence float64
	Box        ocr.Box
	RawText    string
}

// Date is a candidate date in one of the three recognized layouts. The
// same source text may produce one candidate per layout it parses
// under; disambiguation is left to the caller.
type Date struct {
	Value      string // matched text
	Layout     string // Go reference layout it parsed under
	Confidence float64
	Box        ocr.Box
	RawText    string
}

// Address is a group of spatially adjacent address-like fragments.
type Address struct {
	Lines      []string
	Confidence float64 // mean of member confidences
	Box        ocr.Box // union of member boxes
	RawText    string
}
