package numfmt

import "github.com/shopspring/decimal"

// Currency renders a monetary value with the literal "R$" prefix and exactly
// two decimal digits. This is part of the externally observable contract.
func Currency(d decimal.Decimal) string {
	return "R$" + d.StringFixed(2)
}

// KM renders an odometer/distance value with zero decimal digits.
func KM(d decimal.Decimal) string {
	return d.StringFixed(0)
}

// Fixed2 renders a plain value (consumption, price per km) with two decimal
// digits and no prefix.
func Fixed2(d decimal.Decimal) string {
	return d.StringFixed(2)
}
