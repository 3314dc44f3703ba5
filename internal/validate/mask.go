package validate

import "strings"

// MaskCard redacts a card number for display: first four digits, one
// asterisk per hidden digit, last four digits, space separated
// ("4111 ******** 1111"). A number outside the valid 13-19 digit range
// becomes an all-asterisk string of matching length.
func MaskCard(number string) string {
	digits := stripSeparators(number)
	if len(digits) < 13 || len(digits) > 19 || !digitsRe.MatchString(digits) {
		return strings.Repeat("*", len(digits))
	}
	return digits[:4] + " " + strings.Repeat("*", len(digits)-8) + " " + digits[len(digits)-4:]
}

// MaskAadhaar redacts an Aadhaar number as "XXXX-XXXX-<last4>". Input
// that is not 12 digits becomes the all-placeholder "XXXX-XXXX-XXXX".
func MaskAadhaar(number string) string {
	digits := stripSeparators(number)
	if len(digits) != 12 || !digitsRe.MatchString(digits) {
		return "XXXX-XXXX-XXXX"
	}
	return "XXXX-XXXX-" + digits[8:]
}

// MaskPAN redacts a PAN as "XXXXX<digits>X", keeping only the four
// numeric characters. Input that is not 10 characters becomes
// "XXXXXXXXXX".
func MaskPAN(pan string) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(pan, " ", ""))
	if len(cleaned) != 10 {
		return "XXXXXXXXXX"
	}
	return "XXXXX" + cleaned[5:9] + "X"
}
