package currencyinput

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Present decorates core with the currency symbol when showSymbol is set.
// Text already carrying the symbol is returned as is.
func Present(core string, showSymbol bool, attrs Attributes) string {
	symbol := attrs.CurrencySymbol
	if !showSymbol || symbol == "" || strings.Contains(core, symbol) {
		return core
	}
	return symbol + " " + core
}

// SeedDisplay renders a default amount as undecorated display text.
// The value is formatted with two fixed decimals, then the integer part is
// regrouped and the fraction appended unless it is all zeros.
func SeedDisplay(v float64, attrs Attributes) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidDefault, v)
	}

	fixed := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac, _ := strings.Cut(fixed, ".")

	// fixed is always "." separated, so the whole part parses with any locale.
	n, err := NewParser(attrs).ParseInteger(whole)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDefault, err)
	}

	amount, err := NewParser(attrs).ParseDecimal(whole + attrs.DecimalSeparator + frac)
	if err != nil || amount.Cmp(maxAmount) > 0 {
		return "", fmt.Errorf("%w: %v exceeds %s", ErrInvalidDefault, v, maxAmount)
	}

	display := NewGrouper(attrs).Format(n, "")
	if strings.Trim(frac, "0") != "" {
		display += attrs.DecimalSeparator + frac
	}
	return display, nil
}
