package currencyinput

import (
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// probeAmount has three groups and one fraction digit so the printed form
// exposes the grouping separator, the group size and the decimal separator.
const probeAmount = 1234567.5

// deriveAttributes reads the number formatting of tag from CLDR data bundled
// with golang.org/x/text. ok is false when the locale prints digits or
// separators the parser cannot handle.
func deriveAttributes(tag language.Tag) (Attributes, bool) {
	printer := message.NewPrinter(tag)
	probe := printer.Sprintf("%v", number.Decimal(probeAmount, number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	digits, seps := splitProbe(probe)
	if strings.Join(digits, "") != "12345675" || len(seps) < 2 || len(seps) != len(digits)-1 {
		return Attributes{}, false
	}

	decimalSep := seps[len(seps)-1]
	groupSep := seps[0]
	for _, sep := range seps[:len(seps)-1] {
		if sep != groupSep {
			return Attributes{}, false
		}
	}

	attrs := Attributes{
		GroupingSeparator: groupSep,
		GroupingSize:      len(digits[len(digits)-2]),
		DecimalSeparator:  decimalSep,
		CurrencySymbol:    deriveSymbol(tag, printer),
		SymbolPosition:    SymbolLeading,
	}
	if attrs.Validate() != nil {
		return Attributes{}, false
	}
	return attrs, true
}

// splitProbe splits s into runs of ASCII digits and the text between them.
func splitProbe(s string) (digits []string, seps []string) {
	var run, sep strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			if sep.Len() > 0 {
				seps = append(seps, sep.String())
				sep.Reset()
			}
			run.WriteRune(r)
			continue
		}
		if run.Len() > 0 {
			digits = append(digits, run.String())
			run.Reset()
		}
		if len(digits) > 0 {
			sep.WriteRune(r)
		}
	}
	if run.Len() > 0 {
		digits = append(digits, run.String())
	}
	return digits, seps
}

// deriveSymbol formats one unit of the locale's currency and keeps what is
// left once the amount is removed, falling back to the ISO code.
func deriveSymbol(tag language.Tag, printer *message.Printer) string {
	unit, confidence := currency.FromTag(tag)
	if confidence == language.No {
		return ""
	}

	formatted := printer.Sprintf("%v", currency.Symbol(unit.Amount(1)))
	symbol := strings.TrimFunc(formatted, func(r rune) bool {
		return unicode.IsDigit(r) || unicode.IsSpace(r) || r == '.' || r == ','
	})
	if symbol == "" || containsDigit(symbol) {
		return unit.String()
	}
	return symbol
}
