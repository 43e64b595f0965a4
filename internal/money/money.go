// Package money handles the display-currency strings used across the
// storefront ("₹2,499", "₹5,197.00"). Prices are stored and exchanged
// as strings to avoid float rounding; arithmetic goes through
// shopspring/decimal.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const Symbol = "₹"

var ErrBadAmount = errors.New("malformed amount")

// Parse strips the currency symbol and thousand separators and returns
// the numeric value. Accepts plain numbers too ("118", "118.00").
func Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, s)
	if cleaned == "" {
		return decimal.Zero, ErrBadAmount
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrBadAmount
	}
	return d, nil
}

// Format renders d as "₹1,299.00": rupee symbol, comma-grouped integer
// part, two decimal places.
func Format(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(Symbol)
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// Sum parses each amount and returns the formatted total.
func Sum(amounts ...string) (string, error) {
	total := decimal.Zero
	for _, a := range amounts {
		d, err := Parse(a)
		if err != nil {
			return "", err
		}
		total = total.Add(d)
	}
	return Format(total), nil
}
