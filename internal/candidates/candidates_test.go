package candidates

import (
	"testing"

	"github.com/platinummonkey/docuscan/internal/ocr"
)

func frag(text string, conf float64) ocr.Fragment {
	return ocr.Fragment{Text: text, Confidence: conf}
}

func fragAt(text string, conf, x, y float64) ocr.Fragment {
	return ocr.Fragment{
		Text:       text,
		Confidence: conf,
		Box:        ocr.Box{X: x, Y: y, Width: 10, Height: 10},
	}
}

func TestNumbers_Aadhaar(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"spaced groups", "2341 2341 2346", []string{"234123412346"}},
		{"hyphenated", "2341-2341-2346", []string{"234123412346"}},
		{"compact", "234123412346", []string{"234123412346"}},
		{"embedded in label", "Aadhaar No: 2341 2341 2346", []string{"234123412346"}},
		{"too few digits", "2341 2341", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nums := NumbersOfKind(Numbers([]ocr.Fragment{frag(tt.text, 0.95)}), KindAadhaar)
			if len(nums) != len(tt.want) {
				t.Fatalf("got %d aadhaar candidates, want %d", len(nums), len(tt.want))
			}
			for i, n := range nums {
				if n.Value != tt.want[i] {
					t.Errorf("candidate %d = %q, want %q", i, n.Value, tt.want[i])
				}
				if n.Confidence != 0.95 {
					t.Errorf("candidate confidence = %v, want source fragment's 0.95", n.Confidence)
				}
			}
		})
	}
}

func TestNumbers_Card(t *testing.T) {
	nums := NumbersOfKind(Numbers([]ocr.Fragment{
		frag("4111 1111 1111 1111", 0.9),
	}), KindCard)

	if len(nums) == 0 {
		t.Fatal("expected a card candidate")
	}
	if nums[0].Value != "4111111111111111" {
		t.Errorf("card value = %q, want separators stripped", nums[0].Value)
	}
}

func TestNumbers_PAN(t *testing.T) {
	nums := NumbersOfKind(Numbers([]ocr.Fragment{
		frag("Permanent Account Number ABCDE1234F", 0.92),
	}), KindPAN)

	if len(nums) != 1 {
		t.Fatalf("got %d pan candidates, want 1", len(nums))
	}
	if nums[0].Value != "ABCDE1234F" {
		t.Errorf("pan value = %q, want ABCDE1234F", nums[0].Value)
	}
	if nums[0].RawText != "Permanent Account Number ABCDE1234F" {
		t.Errorf("raw text provenance = %q", nums[0].RawText)
	}
}

func TestExpiryDates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"mm/yy", "VALID THRU 12/27", 1},
		{"mm-yyyy", "12-2027", 1},
		{"month 13 rejected", "13/27", 0},
		{"month 00 rejected", "00/27", 0},
		{"no match", "hello world", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpiryDates([]ocr.Fragment{frag(tt.text, 0.9)})
			if len(got) != tt.want {
				t.Errorf("got %d expiry candidates, want %d", len(got), tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"two word name", "John Doe", 1},
		{"four word name", "Anita Kumari Devi Sharma", 1},
		{"single word rejected", "John", 0},
		{"purely numeric rejected", "2341 2341 2346", 0},
		{"too short rejected", "J", 0},
		{"government boilerplate rejected", "Government of India", 0},
		{"dob label rejected", "Date of Birth", 0},
		{"signature rejected", "Signature of Holder", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Names([]ocr.Fragment{frag(tt.text, 0.9)})
			if len(got) != tt.want {
				t.Errorf("Names(%q) produced %d candidates, want %d", tt.text, len(got), tt.want)
			}
		})
	}
}

func TestDates(t *testing.T) {
	// 15/06/1990 only parses as DD/MM/YYYY; 01/02/2024 parses as both
	// DD/MM and MM/DD.
	unambiguous := Dates([]ocr.Fragment{frag("DOB: 15/06/1990", 0.9)})
	if len(unambiguous) != 1 {
		t.Fatalf("got %d candidates for 15/06/1990, want 1", len(unambiguous))
	}
	if unambiguous[0].Layout != "02/01/2006" {
		t.Errorf("layout = %q, want DD/MM/YYYY", unambiguous[0].Layout)
	}

	ambiguous := Dates([]ocr.Fragment{frag("01/02/2024", 0.9)})
	if len(ambiguous) != 2 {
		t.Errorf("got %d candidates for 01/02/2024, want 2 (both layouts)", len(ambiguous))
	}

	iso := Dates([]ocr.Fragment{frag("1990-06-15", 0.9)})
	if len(iso) != 1 {
		t.Fatalf("got %d candidates for 1990-06-15, want 1", len(iso))
	}
	if iso[0].Layout != "2006/01/02" {
		t.Errorf("layout = %q, want YYYY/MM/DD", iso[0].Layout)
	}

	dotted := Dates([]ocr.Fragment{frag("15.06.1990", 0.9)})
	if len(dotted) != 1 {
		t.Errorf("got %d candidates for 15.06.1990, want 1", len(dotted))
	}
}

func TestAddresses_Grouping(t *testing.T) {
	// Three address-like fragments: first two within 50 units of each
	// other, third far away and alone (group of one, dropped).
	fragments := []ocr.Fragment{
		fragAt("12 MG Road Sector 5", 0.9, 0, 0),
		fragAt("Bangalore 560001", 0.8, 0, 40),
		fragAt("Some Street Far Away", 0.7, 500, 500),
	}

	got := Addresses(fragments)
	if len(got) != 1 {
		t.Fatalf("got %d address candidates, want 1", len(got))
	}

	addr := got[0]
	if len(addr.Lines) != 2 {
		t.Errorf("group size = %d, want 2", len(addr.Lines))
	}
	if diff := addr.Confidence - 0.85; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("confidence = %v, want mean 0.85", addr.Confidence)
	}
}

func TestAddresses_BoundaryDistance(t *testing.T) {
	// Boxes are 10x10, so centers are 50 apart when origins are 50
	// apart vertically: exactly at the boundary, still one group.
	atBoundary := Addresses([]ocr.Fragment{
		fragAt("12 MG Road Sector 5", 0.9, 0, 0),
		fragAt("Bangalore 560001", 0.9, 0, 50),
	})
	if len(atBoundary) != 1 {
		t.Errorf("distance exactly 50 should group: got %d candidates, want 1", len(atBoundary))
	}

	// Slightly over 50: two separate single-member groups, neither
	// survives the size filter.
	over := Addresses([]ocr.Fragment{
		fragAt("12 MG Road Sector 5", 0.9, 0, 0),
		fragAt("Bangalore 560001", 0.9, 0, 50.1),
	})
	if len(over) != 0 {
		t.Errorf("distance over 50 should split groups: got %d candidates, want 0", len(over))
	}
}

func TestAddresses_Qualification(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"keyword", "Krishna Colony", true},
		{"pincode", "560001", true},
		{"three words", "near the temple", true},
		{"two plain words", "hello world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addressLike(tt.text); got != tt.want {
				t.Errorf("addressLike(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
