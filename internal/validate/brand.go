package validate

import "strconv"

// Brand identifies a payment card network.
type Brand string

// Known card brands.
const (
	BrandVisa       Brand = "Visa"
	BrandMastercard Brand = "Mastercard"
	BrandAmex       Brand = "American Express"
	BrandRuPay      Brand = "RuPay"
	BrandDiscover   Brand = "Discover"
	BrandJCB        Brand = "JCB"
	BrandDiners     Brand = "Diners Club"
	BrandUnknown    Brand = "Unknown"
)

// CardBrand determines the card network from the number's prefix.
// Separators are stripped first. The rules form an ordered cascade:
// prefix ranges overlap across networks, so earlier rules win.
func CardBrand(number string) Brand {
	digits := stripSeparators(number)
	if digits == "" || !digitsRe.MatchString(digits) {
		return BrandUnknown
	}

	switch {
	case digits[0] == '4':
		return BrandVisa
	case inPrefixRange(digits, 2, 51, 55), inPrefixRange(digits, 4, 2221, 2720):
		return BrandMastercard
	case hasPrefix(digits, "34"), hasPrefix(digits, "37"):
		return BrandAmex
	case hasPrefix(digits, "60"), hasPrefix(digits, "6521"), hasPrefix(digits, "6522"):
		return BrandRuPay
	case hasPrefix(digits, "6011"), hasPrefix(digits, "65"),
		inPrefixRange(digits, 4, 6221, 6229), inPrefixRange(digits, 3, 644, 649):
		return BrandDiscover
	case hasPrefix(digits, "35"):
		return BrandJCB
	case hasPrefix(digits, "30"), hasPrefix(digits, "36"), hasPrefix(digits, "38"):
		return BrandDiners
	default:
		return BrandUnknown
	}
}

func hasPrefix(digits, prefix string) bool {
	return len(digits) >= len(prefix) && digits[:len(prefix)] == prefix
}

// inPrefixRange reports whether the first n digits, read as a number,
// fall within [lo, hi].
func inPrefixRange(digits string, n, lo, hi int) bool {
	if len(digits) < n {
		return false
	}
	v, err := strconv.Atoi(digits[:n])
	if err != nil {
		return false
	}
	return v >= lo && v <= hi
}
