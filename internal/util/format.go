package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	minDecimalPlaces = 2
	thousandDigits   = 3
)

// FormatMoney renders value with the given separators. It keeps at least two
// decimals and never rounds away precision the amount carries.
func FormatMoney(value decimal.Decimal, thousand, decimalSep string) string {
	places := int32(minDecimalPlaces)
	if exp := -value.Exponent(); exp > places {
		places = exp
	}

	fixed := value.Abs().StringFixed(places)
	integer, fraction, _ := strings.Cut(fixed, ".")

	// for each 3 digits put the thousand separator
	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%thousandDigits == 0 {
			grouped.WriteString(thousand)
		}
		grouped.WriteRune(digit)
	}

	result := grouped.String() + decimalSep + fraction

	if value.IsNegative() {
		return "-" + result
	}

	return result
}
