package validate

import (
	"math/rand"
	"testing"
)

func TestLuhn(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   bool
	}{
		{"visa test number", "4111111111111111", true},
		{"classic example", "79927398713", true},
		{"mastercard test number", "5500005555555559", true},
		{"amex test number", "378282246310005", true},
		{"altered digit", "4111111111111112", false},
		{"empty", "", false},
		{"non-digit", "4111a11111111111", false},
		{"single zero", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luhn(tt.digits); got != tt.want {
				t.Errorf("Luhn(%q) = %v, want %v", tt.digits, got, tt.want)
			}
		})
	}
}

// Luhn catches nearly all single-digit alterations; verify over random
// positions that changing one digit flips the result.
func TestLuhn_SingleDigitAlteration(t *testing.T) {
	const number = "4111111111111111"
	rng := rand.New(rand.NewSource(1))

	detected := 0
	const trials = 100
	for i := 0; i < trials; i++ {
		pos := rng.Intn(len(number))
		delta := byte(1 + rng.Intn(9))
		altered := []byte(number)
		altered[pos] = '0' + (altered[pos]-'0'+delta)%10
		if !Luhn(string(altered)) {
			detected++
		}
	}

	if detected < trials*9/10 {
		t.Errorf("detected %d/%d alterations, want > 90%%", detected, trials)
	}
}

func TestVerhoeff(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   bool
	}{
		{"aadhaar-shaped valid", "234123412346", true},
		{"another valid", "987654321012", true},
		{"twelve digit valid", "999971658847", true},
		{"altered last digit", "234123412345", false},
		{"sequential digits", "123456789012", false},
		{"empty", "", false},
		{"non-digit", "23412341234x", false},
		{"single zero", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verhoeff(tt.digits); got != tt.want {
				t.Errorf("Verhoeff(%q) = %v, want %v", tt.digits, got, tt.want)
			}
		})
	}
}

// Verhoeff is designed to catch all adjacent transpositions.
func TestVerhoeff_AdjacentTransposition(t *testing.T) {
	const number = "234123412346"

	for i := 0; i < len(number)-1; i++ {
		if number[i] == number[i+1] {
			continue
		}
		swapped := []byte(number)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		if Verhoeff(string(swapped)) {
			t.Errorf("transposition at %d (%s) not detected", i, swapped)
		}
	}
}
