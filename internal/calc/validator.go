// ABOUTME: Raw input validation producing decimal operands
// ABOUTME: Trims whitespace, rejects non-numeric input, enforces the magnitude cap

package calc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateNumber converts raw input into a decimal operand. It trims
// surrounding whitespace, rejects anything that does not parse as a finite
// decimal, and enforces |value| <= maxInput.
func ValidateNumber(raw string, maxInput decimal.Decimal) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, validationErrorf("Invalid number format: %s", raw)
	}

	// decimal.NewFromString cannot represent infinities or NaN, so parsing
	// success implies a finite value.
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, validationErrorf("Invalid number format: %s", raw)
	}

	if value.Abs().GreaterThan(maxInput) {
		return decimal.Decimal{}, validationErrorf("Value exceeds maximum allowed: %s", maxInput)
	}
	return value, nil
}
