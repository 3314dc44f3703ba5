package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platinummonkey/docuscan/internal/validate"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <kind> <value>",
	Short: "Validate a single identifier",
	Long: `Check one identifier against its format and checksum rules
without running the full scan pipeline.

Supported kinds:
  aadhaar   - 12 digits, Verhoeff checksum
  pan       - 5 letters, 4 digits, 1 letter
  card      - 13-19 digits, Luhn checksum (also reports the brand)
  passport  - 6-9 alphanumeric characters

Examples:
  docuscan validate aadhaar "2341 2341 2346"
  docuscan validate card 4111111111111111`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	kind, value := strings.ToLower(args[0]), args[1]

	switch kind {
	case "aadhaar":
		if !validate.IsAadhaar(value) {
			return fmt.Errorf("invalid aadhaar number")
		}
		fmt.Printf("valid: %s\n", validate.MaskAadhaar(value))
	case "pan":
		if !validate.IsPAN(value) {
			return fmt.Errorf("invalid PAN")
		}
		fmt.Printf("valid: %s\n", validate.MaskPAN(value))
	case "card":
		if !validate.IsCardNumber(value) {
			return fmt.Errorf("invalid card number")
		}
		fmt.Printf("valid: %s (%s)\n", validate.MaskCard(value), validate.CardBrand(value))
	case "passport":
		if !validate.IsPassportNumber(value) {
			return fmt.Errorf("invalid passport number")
		}
		fmt.Println("valid")
	default:
		return fmt.Errorf("unknown kind %q, must be one of: aadhaar, pan, card, passport", kind)
	}

	return nil
}
