package currencyinput

import (
	"errors"
	"fmt"
	"strings"
)

// State is the shape of a display string, inferred from its text.
type State int

const (
	StateEmpty State = iota
	StateIntegerOnly
	// StateIntegerDot ends in the decimal separator with no fraction digits yet.
	StateIntegerDot
	StateIntegerDotOneDigit
	StateIntegerDotTwoDigits
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateIntegerOnly:
		return "integer"
	case StateIntegerDot:
		return "integer-dot"
	case StateIntegerDotOneDigit:
		return "integer-dot-one"
	case StateIntegerDotTwoDigits:
		return "integer-dot-two"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// maxFractionDigits caps the digits after the decimal separator.
const maxFractionDigits = 2

// Proposal is a single edit: the runes in [Start, End) of the displayed text
// are replaced by Replacement.
type Proposal struct {
	Start       int
	End         int
	Replacement string
}

// Insert builds a proposal that inserts text at pos.
func Insert(pos int, text string) Proposal {
	return Proposal{Start: pos, End: pos, Replacement: text}
}

// Decision is the outcome of evaluating a proposal.
//
// Accept reports that the edit leaves an intermediate typing state, an
// integer followed by the decimal separator. Display then holds that state
// regrouped, which may differ from the raw edit. When Accept is false the
// edit was reformatted or refused. Display is always the undecorated text the
// field holds after the edit, to be passed through Present. Err is set when
// the edit was refused and Display is the previous text.
type Decision struct {
	Accept  bool
	Display string
	Err     error
}

// Evaluate decides how the edit p applies to currentText, the text the host
// is displaying (currency symbol included or not).
func Evaluate(attrs Attributes, currentText string, p Proposal) Decision {
	current := attrs.stripSymbol(currentText)
	refuse := func(err error) Decision {
		return Decision{Display: current, Err: err}
	}

	runes := []rune(currentText)
	if p.Start < 0 || p.End < p.Start || p.End > len(runes) {
		return refuse(fmt.Errorf("%w: [%d,%d) over %d characters", ErrInvalidRange, p.Start, p.End, len(runes)))
	}
	rawUpdated := string(runes[:p.Start]) + p.Replacement + string(runes[p.End:])

	sep := attrs.DecimalSeparator
	cleaned := attrs.clean(rawUpdated)
	if cleaned == "" {
		return Decision{Display: ""}
	}

	if !amountText(cleaned, sep) {
		return refuse(fmt.Errorf("%w: %q", ErrParse, cleaned))
	}

	parser := NewParser(attrs)
	if cleaned != sep {
		value, err := parser.ParseDecimal(cleaned)
		switch {
		case errors.Is(err, ErrOutOfRange):
			return refuse(ErrOverMaxAmount)
		case err == nil && value.Cmp(maxAmount) > 0:
			return refuse(ErrOverMaxAmount)
		}
	}

	if strings.Contains(current, sep) && p.Replacement == sep {
		return refuse(fmt.Errorf("%w: separator already present", ErrMalformedSeparators))
	}

	if current == "" && p.Replacement == sep {
		return Decision{Display: "0" + sep}
	}

	if strings.Count(cleaned, sep) > 1 {
		return refuse(fmt.Errorf("%w: %q", ErrMalformedSeparators, cleaned))
	}

	grouper := NewGrouper(attrs)
	whole, frac, hasFrac := strings.Cut(cleaned, sep)

	if strings.HasSuffix(cleaned, sep) {
		var n int64
		if whole != "" {
			var err error
			if n, err = parser.ParseInteger(whole); err != nil {
				return refuse(err)
			}
		}
		return Decision{Accept: true, Display: grouper.Format(n, "") + sep}
	}

	if hasFrac {
		if len(frac) > maxFractionDigits {
			return refuse(fmt.Errorf("%w: fraction %q longer than %d digits", ErrMalformedSeparators, frac, maxFractionDigits))
		}
		value, err := parser.ParseDecimal(cleaned)
		if err != nil {
			return refuse(err)
		}
		// The integer part comes from the edited text, not the previous
		// display, so integer edits made while a fraction exists survive.
		n, err := parser.ParseInteger(cleaned)
		if err != nil {
			return refuse(err)
		}
		return Decision{Display: grouper.Format(n, "") + sep + fractionDigits(value.String())}
	}

	n, err := parser.ParseInteger(whole)
	if err != nil {
		return refuse(err)
	}
	return Decision{Display: grouper.Format(n, "")}
}

// amountText reports whether s holds only digits and decimal separators.
func amountText(s, sep string) bool {
	return allDigits(strings.ReplaceAll(s, sep, ""))
}

// fractionDigits returns the fraction of a decimal string with trailing
// zeros dropped, keeping at least one digit.
func fractionDigits(s string) string {
	_, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return "0"
	}
	return frac
}

// EndEditing finalizes text when the edit session ends: a trailing decimal
// separator is dropped. The result is undecorated.
func EndEditing(attrs Attributes, text string) string {
	core := attrs.stripSymbol(text)
	sep := attrs.DecimalSeparator
	if strings.HasSuffix(core, sep) {
		whole, _, _ := strings.Cut(core, sep)
		return whole
	}
	return core
}

// Classify infers the state of a display string.
func Classify(attrs Attributes, text string) State {
	cleaned := attrs.clean(text)
	if cleaned == "" {
		return StateEmpty
	}
	_, frac, ok := strings.Cut(cleaned, attrs.DecimalSeparator)
	if !ok {
		return StateIntegerOnly
	}
	switch len(frac) {
	case 0:
		return StateIntegerDot
	case 1:
		return StateIntegerDotOneDigit
	default:
		return StateIntegerDotTwoDigits
	}
}
