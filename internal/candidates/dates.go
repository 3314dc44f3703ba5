package candidates

import (
	"regexp"
	"strings"
	"time"

	"github.com/platinummonkey/docuscan/internal/ocr"
)

var (
	dmyRe = regexp.MustCompile(`\b\d{2}([/.-])\d{2}([/.-])\d{4}\b`)
	ymdRe = regexp.MustCompile(`\b\d{4}([/.-])\d{2}([/.-])\d{2}\b`)
)

// dateLayouts are tried in fixed order; the same matched text can
// produce one candidate per layout it parses under, and duplicates
// across layouts are expected (e.g. 01/02/2024 is both DD/MM and
// MM/DD). Disambiguation is the caller's problem.
var dateLayouts = []string{
	"02/01/2006", // DD/MM/YYYY
	"2006/01/02", // YYYY/MM/DD
	"01/02/2006", // MM/DD/YYYY
}

// Dates scans fragments for dates in the three recognized layouts with
// "/", "-" or "." separators.
func Dates(fragments []ocr.Fragment) []Date {
	var out []Date
	for _, f := range fragments {
		text := f.NormalizedText()
		matches := dmyRe.FindAllString(text, -1)
		matches = append(matches, ymdRe.FindAllString(text, -1)...)

		for _, m := range matches {
			canonical := canonicalSeparators(m)
			for _, layout := range dateLayouts {
				if _, err := time.Parse(layout, canonical); err != nil {
					continue
				}
				out = append(out, Date{
					Value:      m,
					Layout:     layout,
					Confidence: f.Confidence,
					Box:        f.Box,
					RawText:    f.Text,
				})
			}
		}
	}
	return out
}

func canonicalSeparators(s string) string {
	s = strings.ReplaceAll(s, "-", "/")
	return strings.ReplaceAll(s, ".", "/")
}
