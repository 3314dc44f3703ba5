package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	panRe      = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	passportRe = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)
	digitsRe   = regexp.MustCompile(`^[0-9]+$`)
)

// now is swapped out in tests that pin the current date.
var now = time.Now

// IsAadhaar reports whether s is a valid Aadhaar number: 12 digits after
// stripping spaces and hyphens, first digit not 0 or 1, passing the
// Verhoeff checksum.
func IsAadhaar(s string) bool {
	cleaned := stripSeparators(s)
	if len(cleaned) != 12 || !digitsRe.MatchString(cleaned) {
		return false
	}
	if cleaned[0] == '0' || cleaned[0] == '1' {
		return false
	}
	return Verhoeff(cleaned)
}

// IsPAN reports whether s is a valid PAN: exactly 10 characters in the
// shape AAAAA9999A after stripping spaces and uppercasing.
func IsPAN(s string) bool {
	cleaned := strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	return panRe.MatchString(cleaned)
}

// IsCardNumber reports whether s is a valid payment card number: 13-19
// digits after stripping separators, passing Luhn.
func IsCardNumber(s string) bool {
	cleaned := stripSeparators(s)
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}
	return Luhn(cleaned)
}

// IsPassportNumber reports whether s looks like a passport number: 6-9
// alphanumeric characters after stripping spaces and uppercasing. The
// number must contain letters or digits only.
func IsPassportNumber(s string) bool {
	cleaned := strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	return passportRe.MatchString(cleaned)
}

// IsExpiryDate reports whether s is a card expiry date that has not yet
// passed. Accepts compact MMYY or MMYYYY after stripping separators;
// two-digit years are taken as 2000+YY. A card expiring this month is
// valid through the last day of the month.
func IsExpiryDate(s string) bool {
	cleaned := stripSeparators(s)
	if !digitsRe.MatchString(cleaned) {
		return false
	}

	var month, year int
	switch len(cleaned) {
	case 4:
		month, _ = strconv.Atoi(cleaned[:2])
		yy, _ := strconv.Atoi(cleaned[2:])
		year = 2000 + yy
	case 6:
		month, _ = strconv.Atoi(cleaned[:2])
		year, _ = strconv.Atoi(cleaned[2:])
	default:
		return false
	}

	if month < 1 || month > 12 {
		return false
	}

	// First day of the month after expiry; the card is valid strictly
	// before that instant.
	endOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return now().Before(endOfMonth)
}

// stripSeparators removes spaces, hyphens, dots and slashes.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '/':
			return -1
		}
		return r
	}, s)
}
