package invoicing

import (
	"github.com/mhassanrahi/invoice-asaan/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// hundred is the factor between major and minor currency units.
var hundred = decimal.NewFromInt(100)

// ParseAmount converts a decimal currency string (e.g. "12.345") into an
// integer count of minor units, flooring rather than rounding, so
// "12.345" yields 1234. Negative and malformed inputs are rejected.
func ParseAmount(value string) (int64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, shared.NewDomainError("INVALID_INPUT", "Invoice value must be a decimal number")
	}
	if d.IsNegative() {
		return 0, shared.NewDomainError("INVALID_INPUT", "Invoice value cannot be negative")
	}
	return d.Mul(hundred).Floor().IntPart(), nil
}

// FormatAmount renders minor units back into a major-unit decimal string,
// e.g. 1000 -> "10.00".
func FormatAmount(minor int64) string {
	return decimal.NewFromInt(minor).Div(hundred).StringFixed(2)
}
