package currencyinput

import (
	"strconv"
	"strings"
)

// Grouper renders non-negative integers with locale digit grouping.
type Grouper struct {
	attrs Attributes
}

func NewGrouper(attrs Attributes) Grouper {
	return Grouper{attrs: attrs}
}

// Format groups the digits of n from the right and, when symbol is not empty,
// places it in front of the digits separated by a space.
func (g Grouper) Format(n int64, symbol string) string {
	size := g.attrs.GroupingSize
	if n < 0 || size < 1 {
		return strings.TrimSpace(symbol + " 0")
	}

	digits := strconv.FormatInt(n, 10)
	var builder strings.Builder
	if symbol != "" {
		builder.WriteString(symbol)
		builder.WriteString(" ")
	}

	head := len(digits) % size
	if head == 0 {
		head = size
	}
	builder.WriteString(digits[:head])
	for pos := head; pos < len(digits); pos += size {
		builder.WriteString(g.attrs.GroupingSeparator)
		builder.WriteString(digits[pos : pos+size])
	}
	return builder.String()
}
