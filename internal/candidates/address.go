package candidates

import (
	"regexp"
	"strings"

	"github.com/platinummonkey/docuscan/internal/ocr"
)

// groupDistance is the maximum center-to-center distance, in image
// units, for a fragment to join the current address group. The boundary
// is inclusive.
const groupDistance = 50.0

var pincodeRe = regexp.MustCompile(`\b\d{6}\b`)

// addressKeywords mark a fragment as address-like regardless of word
// count.
var addressKeywords = []string{
	"street", "road", "colony", "sector", "nagar", "lane", "block",
	"house", "flat", "apartment", "floor", "village", "district",
	"state", "city", "post", "pincode", "pin code",
}

// Addresses qualifies address-like fragments and greedily groups them
// by spatial proximity: a qualifying fragment joins the most recently
// started group when its box center is within groupDistance of the
// group's last member, otherwise it starts a new group. Only groups of
// two or more fragments become candidates; the candidate box is the
// union of member boxes and its confidence the mean of member
// confidences.
func Addresses(fragments []ocr.Fragment) []Address {
	var groups [][]ocr.Fragment

	for _, f := range fragments {
		if !addressLike(f.NormalizedText()) {
			continue
		}

		if len(groups) > 0 {
			current := groups[len(groups)-1]
			last := current[len(current)-1]
			if f.Box.Distance(last.Box) <= groupDistance {
				groups[len(groups)-1] = append(current, f)
				continue
			}
		}
		groups = append(groups, []ocr.Fragment{f})
	}

	var out []Address
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}

		lines := make([]string, 0, len(group))
		box := group[0].Box
		var confSum float64
		for _, f := range group {
			lines = append(lines, f.NormalizedText())
			box = box.Union(f.Box)
			confSum += f.Confidence
		}

		out = append(out, Address{
			Lines:      lines,
			Confidence: confSum / float64(len(group)),
			Box:        box,
			RawText:    strings.Join(lines, "\n"),
		})
	}
	return out
}

func addressLike(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range addressKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	if pincodeRe.MatchString(text) {
		return true
	}
	return len(strings.Fields(text)) >= 3
}
