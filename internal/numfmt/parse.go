// Package numfmt converts user-typed pt-BR numeric tokens to decimals and
// renders values back for replies. Two conventions coexist: currency/volume
// tokens use "," or "." as the fractional separator ("50,00", "50.00"), while
// odometer-style tokens may carry "." as a thousands separator ("55.000",
// "55.000,5"). The caller knows which rule applies, the text alone does not.
package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/driverscash/driverscash-backend/internal/errs"
)

// ParseCurrency parses a currency or fuel-volume token. A single "," is
// treated as the decimal point; thousands grouping is not supported here.
func ParseCurrency(token string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(token), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, errs.NewInvalidNumberError(token)
	}
	return d, nil
}

// ParseOdometer parses a large integer-like token (odometer reading, target
// km) where "." is thousands grouping and "," the decimal point:
// "55.000" -> 55000, "55.000,5" -> 55000.5.
func ParseOdometer(token string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(token)
	normalized = strings.ReplaceAll(normalized, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, errs.NewInvalidNumberError(token)
	}
	return d, nil
}

// ParsePositiveCurrency is ParseCurrency with a > 0 constraint.
func ParsePositiveCurrency(token string) (decimal.Decimal, error) {
	d, err := ParseCurrency(token)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, errs.NewInvalidNumberError(token)
	}
	return d, nil
}

// ParsePositiveOdometer is ParseOdometer with a > 0 constraint.
func ParsePositiveOdometer(token string) (decimal.Decimal, error) {
	d, err := ParseOdometer(token)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, errs.NewInvalidNumberError(token)
	}
	return d, nil
}
