package currencyinput

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// maxAmount is the ceiling every accepted edit respects.
var maxAmount = decimal.MustNew(10_000_000_00, 2)

// MaxAmount returns the largest amount a field will hold, 10,000,000.00.
func MaxAmount() decimal.Decimal {
	return maxAmount
}

// Parser converts cleaned field text into numbers. Input must not carry
// grouping separators or the currency symbol; strip them first.
type Parser struct {
	attrs Attributes
}

func NewParser(attrs Attributes) Parser {
	return Parser{attrs: attrs}
}

// ParseInteger returns the integer part of s, truncating any fraction.
func (p Parser) ParseInteger(s string) (int64, error) {
	whole, _, err := p.split(s)
	if err != nil {
		return 0, err
	}
	if whole == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return n, nil
}

// ParseDecimal returns the exact value of s.
func (p Parser) ParseDecimal(s string) (decimal.Decimal, error) {
	whole, frac, err := p.split(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if whole == "" {
		whole = "0"
	}
	text := whole
	if frac != "" {
		text += "." + frac
	}
	d, err := decimal.Parse(text)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return d, nil
}

// split validates s and returns its integer digits, without leading zeros,
// and its fraction digits.
func (p Parser) split(s string) (string, string, error) {
	if s == "" {
		return "", "", fmt.Errorf("%w: empty input", ErrParse)
	}
	sep := p.attrs.DecimalSeparator
	if strings.Count(s, sep) > 1 {
		return "", "", fmt.Errorf("%w: %w: %q", ErrParse, ErrMalformedSeparators, s)
	}

	whole, frac, _ := strings.Cut(s, sep)
	if !allDigits(whole) || !allDigits(frac) {
		return "", "", fmt.Errorf("%w: %q", ErrParse, s)
	}
	if whole == "" && frac == "" {
		return "", "", fmt.Errorf("%w: no digits in %q", ErrParse, s)
	}

	trimmed := strings.TrimLeft(whole, "0")
	if trimmed == "" && whole != "" {
		trimmed = "0"
	}
	return trimmed, frac, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
