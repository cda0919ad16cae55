package currencyinput

import (
	"errors"
	"math"
	"testing"
)

func TestPresent(t *testing.T) {
	attrs := DefaultAttributes()

	tests := []struct {
		name string
		core string
		show bool
		want string
	}{
		{"hidden", "1,234", false, "1,234"},
		{"shown", "1,234", true, "$ 1,234"},
		{"empty shown", "", true, "$ "},
		{"already decorated", "$ 1,234", true, "$ 1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Present(tt.core, tt.show, attrs)
			if got != tt.want {
				t.Fatalf("Present(%q, %v) = %q; want %q", tt.core, tt.show, got, tt.want)
			}
			if again := Present(got, tt.show, attrs); again != got {
				t.Fatalf("Present is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestPresentWithoutSymbol(t *testing.T) {
	attrs := DefaultAttributes()
	attrs.CurrencySymbol = ""

	if got := Present("12", true, attrs); got != "12" {
		t.Fatalf("Present without symbol = %q", got)
	}
}

func TestSeedDisplay(t *testing.T) {
	euro := Attributes{GroupingSeparator: ".", GroupingSize: 3, DecimalSeparator: ",", CurrencySymbol: "€", SymbolPosition: SymbolLeading}

	tests := []struct {
		name  string
		attrs Attributes
		value float64
		want  string
	}{
		{"zero", DefaultAttributes(), 0, "0"},
		{"whole amount", DefaultAttributes(), 1234, "1,234"},
		{"fraction", DefaultAttributes(), 1234.5, "1,234.50"},
		{"cents", DefaultAttributes(), 0.07, "0.07"},
		{"rounded to cents", DefaultAttributes(), 2.999, "3"},
		{"maximum", DefaultAttributes(), 10_000_000, "10,000,000"},
		{"comma locale", euro, 1234567.25, "1.234.567,25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SeedDisplay(tt.value, tt.attrs)
			if err != nil {
				t.Fatalf("SeedDisplay(%v): %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("SeedDisplay(%v) = %q; want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSeedDisplayRejectsInvalidDefaults(t *testing.T) {
	for _, v := range []float64{-1, 10_000_000.01, math.NaN(), math.Inf(1)} {
		if _, err := SeedDisplay(v, DefaultAttributes()); !errors.Is(err, ErrInvalidDefault) {
			t.Fatalf("SeedDisplay(%v) error = %v; want ErrInvalidDefault", v, err)
		}
	}
}
