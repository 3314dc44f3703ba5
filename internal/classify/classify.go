// Package classify scores enabled document types against recognized
// text and picks a winner. Scoring combines keyword hits with bonuses
// for checksum-validated identifier candidates and format-specific
// patterns, so a lookalike number with a bad checksum cannot win
// classification on its own.
package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/platinummonkey/docuscan/internal/candidates"
	"github.com/platinummonkey/docuscan/internal/doctype"
	"github.com/platinummonkey/docuscan/internal/ocr"
	"github.com/platinummonkey/docuscan/internal/validate"
)

// MinScore is the minimum classification score. A best score below this
// leaves the document unclassified; the pipeline then decides between
// an unclear result and a best-effort generic extraction. Empirical
// constant, kept as-is rather than re-derived.
const MinScore = 2.0

// checksumBonus scales the confidence of every validated identifier
// candidate added to its type's score.
const checksumBonus = 5.0

// formatBonus is the fixed score added for a matching format-specific
// pattern (voter id, driving licence, passport MRZ).
const formatBonus = 3.0

// passportNumberBonus is the weaker bonus for a passport-shaped number
// without MRZ evidence.
const passportNumberBonus = 2.0

var (
	voterIDRe        = regexp.MustCompile(`\b[A-Z]{3}\d{7}\b`)
	drivingLicenseRe = regexp.MustCompile(`\b[A-Z]{2}[-\s]?\d{2}[-\s]?\d{4}[-\s]?\d{7}\b`)
	passportNumRe    = regexp.MustCompile(`\b[A-Z]\d{7}\b`)
	mrzCharsRe       = regexp.MustCompile(`^[A-Z0-9<]+$`)
)

// Scores holds the per-type classification scores of one run.
type Scores map[doctype.Type]float64

// Classify scores every allowed type against the fragments and returns
// the winner, or ok=false when no type reaches MinScore. Ties resolve
// to the earliest type in declaration order (first maximum).
func Classify(fragments []ocr.Fragment, allowed []doctype.Type) (doctype.Type, bool) {
	scores := Score(fragments, allowed)

	types := make([]doctype.Type, 0, len(scores))
	for dt := range scores {
		types = append(types, dt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	best := doctype.Generic
	bestScore := 0.0
	for _, dt := range types {
		if scores[dt] > bestScore {
			best = dt
			bestScore = scores[dt]
		}
	}

	if bestScore < MinScore {
		return doctype.Generic, false
	}
	return best, true
}

// Score computes the classification score for every allowed type.
func Score(fragments []ocr.Fragment, allowed []doctype.Type) Scores {
	if len(allowed) == 0 {
		allowed = doctype.Classifiable()
	}

	nums := candidates.Numbers(fragments)
	scores := make(Scores, len(allowed))

	for _, dt := range allowed {
		if dt == doctype.Generic {
			continue
		}
		scores[dt] = keywordScore(fragments, dt) + bonusScore(fragments, nums, dt)
	}
	return scores
}

// keywordScore counts keyword hits, 1.0 each, per fragment containing
// the keyword.
func keywordScore(fragments []ocr.Fragment, dt doctype.Type) float64 {
	score := 0.0
	for _, f := range fragments {
		lower := strings.ToLower(f.NormalizedText())
		for _, kw := range dt.Get().Keywords {
			if strings.Contains(lower, kw) {
				score += 1.0
			}
		}
	}
	return score
}

// bonusScore adds type-specific pattern evidence. Checksum-bearing
// types score only *validated* candidates; an invalid checksum
// contributes nothing.
func bonusScore(fragments []ocr.Fragment, nums []candidates.Number, dt doctype.Type) float64 {
	score := 0.0

	switch dt {
	case doctype.Aadhaar:
		for _, n := range candidates.NumbersOfKind(nums, candidates.KindAadhaar) {
			if validate.IsAadhaar(n.Value) {
				score += checksumBonus * n.Confidence
			}
		}
	case doctype.PAN:
		for _, n := range candidates.NumbersOfKind(nums, candidates.KindPAN) {
			if validate.IsPAN(n.Value) {
				score += checksumBonus * n.Confidence
			}
		}
	case doctype.CreditCard:
		for _, n := range candidates.NumbersOfKind(nums, candidates.KindCard) {
			if validate.IsCardNumber(n.Value) {
				score += checksumBonus * n.Confidence
			}
		}
	case doctype.VoterID:
		if matchesAny(fragments, voterIDRe) {
			score += formatBonus
		}
	case doctype.DrivingLicense:
		if matchesAny(fragments, drivingLicenseRe) {
			score += formatBonus
		}
	case doctype.Passport:
		if hasMRZLine(fragments) {
			score += formatBonus
		} else if matchesAny(fragments, passportNumRe) {
			score += passportNumberBonus
		}
	}
	return score
}

func matchesAny(fragments []ocr.Fragment, re *regexp.Regexp) bool {
	for _, f := range fragments {
		if re.MatchString(strings.ToUpper(f.NormalizedText())) {
			return true
		}
	}
	return false
}

// hasMRZLine reports whether any fragment looks like a passport
// machine-readable-zone line: after removing spaces, at least 30
// characters drawn from [A-Z0-9<] including at least one filler '<'.
func hasMRZLine(fragments []ocr.Fragment) bool {
	for _, f := range fragments {
		line := strings.ReplaceAll(f.NormalizedText(), " ", "")
		if len(line) < 30 {
			continue
		}
		if mrzCharsRe.MatchString(line) && strings.Contains(line, "<") {
			return true
		}
	}
	return false
}
