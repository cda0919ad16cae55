package currencyinput

import (
	"fmt"
	"strings"
)

// SymbolPosition places the currency symbol relative to the amount.
type SymbolPosition string

const (
	SymbolLeading SymbolPosition = "before"
	// SymbolTrailing is accepted in rules data but not rendered yet; Validate rejects it.
	SymbolTrailing SymbolPosition = "after"
)

// Attributes holds the locale formatting attributes a field is built with.
// Values are immutable once a field is constructed.
type Attributes struct {
	GroupingSeparator string
	GroupingSize      int
	DecimalSeparator  string
	CurrencySymbol    string
	SymbolPosition    SymbolPosition
}

// DefaultAttributes returns en/USD attributes.
func DefaultAttributes() Attributes {
	return Attributes{
		GroupingSeparator: ",",
		GroupingSize:      3,
		DecimalSeparator:  ".",
		CurrencySymbol:    "$",
		SymbolPosition:    SymbolLeading,
	}
}

// Validate reports whether the attributes can drive the parser and grouper.
func (a Attributes) Validate() error {
	if a.DecimalSeparator == "" {
		return fmt.Errorf("%w: empty decimal separator", ErrInvalidAttributes)
	}
	if a.GroupingSeparator == a.DecimalSeparator {
		return fmt.Errorf("%w: grouping and decimal separators are both %q", ErrInvalidAttributes, a.DecimalSeparator)
	}
	if a.GroupingSize < 1 {
		return fmt.Errorf("%w: grouping size %d", ErrInvalidAttributes, a.GroupingSize)
	}
	if containsDigit(a.GroupingSeparator) || containsDigit(a.DecimalSeparator) || containsDigit(a.CurrencySymbol) {
		return fmt.Errorf("%w: separators and symbol must not contain digits", ErrInvalidAttributes)
	}
	if a.CurrencySymbol != "" && (a.CurrencySymbol == a.DecimalSeparator || a.CurrencySymbol == a.GroupingSeparator) {
		return fmt.Errorf("%w: currency symbol %q matches a separator", ErrInvalidAttributes, a.CurrencySymbol)
	}
	switch a.SymbolPosition {
	case SymbolLeading:
	case SymbolTrailing:
		return fmt.Errorf("%w: %q", ErrUnsupportedPosition, a.SymbolPosition)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAttributes, a.SymbolPosition)
	}
	return nil
}

// stripSymbol removes the currency symbol and the whitespace around what is left.
func (a Attributes) stripSymbol(text string) string {
	if a.CurrencySymbol != "" {
		text = strings.ReplaceAll(text, a.CurrencySymbol, "")
	}
	return strings.TrimSpace(text)
}

// clean removes the symbol and every grouping separator.
func (a Attributes) clean(text string) string {
	text = a.stripSymbol(text)
	if a.GroupingSeparator != "" {
		text = strings.ReplaceAll(text, a.GroupingSeparator, "")
	}
	return text
}

func containsDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			return true
		}
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
