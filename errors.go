package currencyinput

import "errors"

// ErrParse indicates that text does not represent a valid, possibly partial, amount.
var ErrParse = errors.New("currencyinput: invalid amount")

// ErrOutOfRange marks digit strings too long to be represented exactly.
var ErrOutOfRange = errors.New("currencyinput: amount out of range")

// ErrOverMaxAmount indicates an edit would push the amount past MaxAmount.
var ErrOverMaxAmount = errors.New("currencyinput: amount exceeds maximum")

// ErrMalformedSeparators reports a second decimal separator or a fraction longer than two digits.
var ErrMalformedSeparators = errors.New("currencyinput: malformed decimal separators")

// ErrInvalidRange indicates an edit range outside the current text.
var ErrInvalidRange = errors.New("currencyinput: invalid edit range")

var ErrInvalidAttributes = errors.New("currencyinput: invalid formatting attributes")

var ErrUnsupportedPosition = errors.New("currencyinput: unsupported currency symbol position")

// ErrInvalidDefault indicates a default value that is negative, not finite, or above MaxAmount.
var ErrInvalidDefault = errors.New("currencyinput: invalid default value")
