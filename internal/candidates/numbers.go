package candidates

import (
	"regexp"
	"strings"

	"github.com/platinummonkey/docuscan/internal/ocr"
)

var (
	// Permissive digit-group patterns; length filtering happens after
	// separators are stripped.
	aadhaarNumRe = regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)
	cardNumRe    = regexp.MustCompile(`\b\d(?:[ -]?\d){12,18}\b`)
	panNumRe     = regexp.MustCompile(`\b[A-Z]{5}[0-9]{4}[A-Z]\b`)
	expiryRe     = regexp.MustCompile(`\b(0[1-9]|1[0-2])\s?[/-]\s?(\d{4}|\d{2})\b`)
)

// Numbers scans every fragment for identifier-number shapes and returns
// all candidates. Confidence is inherited from the source fragment
// unmodified; no checksum validation happens here.
func Numbers(fragments []ocr.Fragment) []Number {
	var out []Number
	for _, f := range fragments {
		text := f.NormalizedText()

		for _, m := range aadhaarNumRe.FindAllString(text, -1) {
			cleaned := stripSeparators(m)
			if len(cleaned) != 12 {
				continue
			}
			out = append(out, Number{
				Kind:       KindAadhaar,
				Value:      cleaned,
				Confidence: f.Confidence,
				Box:        f.Box,
				RawText:    f.Text,
			})
		}

		for _, m := range cardNumRe.FindAllString(text, -1) {
			cleaned := stripSeparators(m)
			if len(cleaned) < 13 || len(cleaned) > 19 {
				continue
			}
			out = append(out, Number{
				Kind:       KindCard,
				Value:      cleaned,
				Confidence: f.Confidence,
				Box:        f.Box,
				RawText:    f.Text,
			})
		}

		for _, m := range panNumRe.FindAllString(strings.ToUpper(text), -1) {
			out = append(out, Number{
				Kind:       KindPAN,
				Value:      m,
				Confidence: f.Confidence,
				Box:        f.Box,
				RawText:    f.Text,
			})
		}
	}
	return out
}

// NumbersOfKind filters candidates down to one kind.
func NumbersOfKind(nums []Number, kind NumberKind) []Number {
	var out []Number
	for _, n := range nums {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// ExpiryDates scans fragments for MM/YY or MM/YYYY expiry shapes.
func ExpiryDates(fragments []ocr.Fragment) []ExpiryDate {
	var out []ExpiryDate
	for _, f := range fragments {
		for _, m := range expiryRe.FindAllString(f.NormalizedText(), -1) {
			out = append(out, ExpiryDate{
				Value:      strings.ReplaceAll(m, " ", ""),
				Confidence: f.Confidence,
				Box:        f.Box,
				RawText:    f.Text,
			})
		}
	}
	return out
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-':
			return -1
		}
		return r
	}, s)
}
