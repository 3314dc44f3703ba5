package candidates

import (
	"regexp"
	"strings"

	"github.com/platinummonkey/docuscan/internal/ocr"
)

var nameRunRe = regexp.MustCompile(`\b[A-Za-z]+(?: [A-Za-z]+){1,3}\b`)

// nameDenylist rejects document boilerplate that matches the shape of a
// person name. This list is the primary defense against extracting
// headers as names; comparisons are uppercase substring checks.
var nameDenylist = []string{
	"GOVERNMENT OF",
	"GOVT OF",
	"UNIQUE IDENTIFICATION",
	"INCOME TAX",
	"PERMANENT ACCOUNT",
	"ELECTION COMMISSION",
	"ELECTORAL REGISTRATION",
	"REPUBLIC OF",
	"TRANSPORT DEPARTMENT",
	"DRIVING LICENCE",
	"DRIVING LICENSE",
	"DATE OF BIRTH",
	"DATE OF ISSUE",
	"DATE OF EXPIRY",
	"PLACE OF BIRTH",
	"VALID THRU",
	"VALID FROM",
	"SIGNATURE",
	"ENROLMENT",
	"FATHER NAME",
	"MOTHER NAME",
	"HUSBAND NAME",
	"ISSUING AUTHORITY",
	"YEAR OF BIRTH",
	"TAX INVOICE",
	"CASH MEMO",
	"THANK YOU",
}

// Names scans fragments for runs of 2-4 alphabetic words that could be
// person names. Purely numeric fragments and fragments shorter than two
// characters never produce candidates, and any run containing a
// denylisted phrase is rejected.
func Names(fragments []ocr.Fragment) []Name {
	var out []Name
	for _, f := range fragments {
		text := f.NormalizedText()
		if len(text) < 2 || isNumeric(text) {
			continue
		}

		for _, m := range nameRunRe.FindAllString(text, -1) {
			if denied(m) {
				continue
			}
			out = append(out, Name{
				Value:      m,
				Confidence: f.Confidence,
				Box:        f.Box,
				RawText:    f.Text,
			})
		}
	}
	return out
}

func denied(candidate string) bool {
	upper := strings.ToUpper(candidate)
	for _, phrase := range nameDenylist {
		if strings.Contains(upper, phrase) {
			return true
		}
	}
	return false
}

// isNumeric reports whether the text contains no letters, only digits
// and separators.
func isNumeric(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == ' ', r == '-', r == '/', r == '.', r == ',':
		default:
			return false
		}
	}
	return hasDigit
}
