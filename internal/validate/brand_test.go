package validate

import "testing"

func TestCardBrand(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   Brand
	}{
		{"visa", "4111111111111111", BrandVisa},
		{"visa with separators", "4111 1111 1111 1111", BrandVisa},
		{"mastercard 51", "5111111111111118", BrandMastercard},
		{"mastercard 55", "5500005555555559", BrandMastercard},
		{"mastercard 2-series low", "2221000000000009", BrandMastercard},
		{"mastercard 2-series high", "2720111111111111", BrandMastercard},
		{"amex 34", "341111111111111", BrandAmex},
		{"amex 37", "378282246310005", BrandAmex},
		{"rupay 60", "6021111111111111", BrandRuPay},
		{"rupay 6521", "65210000000007", BrandRuPay},
		{"rupay 6522", "6522111111111111", BrandRuPay},
		{"discover 65", "6511111111111111", BrandDiscover},
		{"discover 644", "6441111111111111", BrandDiscover},
		{"discover 649", "6491111111111111", BrandDiscover},
		{"discover 6221", "6221261111111111", BrandDiscover},
		{"jcb", "3530111333300000", BrandJCB},
		{"diners 30", "30569300090204", BrandDiners},
		{"diners 36", "36111111111111", BrandDiners},
		{"diners 38", "38111111111111", BrandDiners},
		{"unknown prefix", "9911111111111111", BrandUnknown},
		{"2-series below range", "2220991111111111", BrandUnknown},
		{"2-series above range", "2721001111111111", BrandUnknown},
		{"empty", "", BrandUnknown},
		{"non numeric", "41x1111111111111", BrandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardBrand(tt.number); got != tt.want {
				t.Errorf("CardBrand(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

// The cascade order resolves overlapping prefixes: RuPay's bare 60 rule
// runs before Discover, so 6011 is claimed by RuPay, while 65-prefixed
// numbers fall through to Discover unless they hit RuPay's narrower
// 6521/6522 rules first.
func TestCardBrand_OverlapPrecedence(t *testing.T) {
	if got := CardBrand("6011000990139424"); got != BrandRuPay {
		t.Errorf("CardBrand(6011...) = %v, want %v", got, BrandRuPay)
	}
	if got := CardBrand("6521000000000000"); got != BrandRuPay {
		t.Errorf("CardBrand(6521...) = %v, want %v", got, BrandRuPay)
	}
	if got := CardBrand("6523000000000000"); got != BrandDiscover {
		t.Errorf("CardBrand(6523...) = %v, want %v", got, BrandDiscover)
	}
}
