package currencyinput

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Attributes != DefaultAttributes() {
		t.Fatalf("Attributes = %+v", cfg.Attributes)
	}
	if !cfg.ShowSymbol {
		t.Fatal("expected symbol shown by default")
	}
	if cfg.DefaultValue != 0 {
		t.Fatalf("DefaultValue = %v", cfg.DefaultValue)
	}
	if len(cfg.Hooks) != 0 {
		t.Fatalf("Hooks = %d", len(cfg.Hooks))
	}
}

func TestNewConfigLocale(t *testing.T) {
	f, err := NewField(WithLocale("de-DE"), WithDefaultValue(1234.5))
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	if got := f.Text(); got != "€ 1.234,50" {
		t.Fatalf("Text() = %q", got)
	}
}

func TestNewConfigErrors(t *testing.T) {
	bad := DefaultAttributes()
	bad.DecimalSeparator = ","

	tests := []struct {
		name string
		opts []Option
		err  error
	}{
		{"invalid attributes", []Option{WithAttributes(bad)}, ErrInvalidAttributes},
		{"empty rules locale", []Option{WithRules(map[string]Rules{" ": {}})}, ErrInvalidAttributes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewConfig(tt.opts...); !errors.Is(err, tt.err) {
				t.Fatalf("NewConfig error = %v; want %v", err, tt.err)
			}
		})
	}

	if _, err := NewConfig(WithRulesFiles(filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Fatal("expected error for missing rules file")
	}
}

func TestBuildFieldRejectsInvalidDefault(t *testing.T) {
	euro := Attributes{GroupingSeparator: ".", GroupingSize: 3, DecimalSeparator: ",", CurrencySymbol: "€", SymbolPosition: SymbolLeading}

	tests := []struct {
		name string
		opts []Option
	}{
		{"negative default", []Option{WithDefaultValue(-1)}},
		{"default over max", []Option{WithDefaultValue(20_000_000)}},
		{"over max with comma locale", []Option{WithAttributes(euro), WithDefaultValue(10_000_000.01)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewField(tt.opts...); !errors.Is(err, ErrInvalidDefault) {
				t.Fatalf("NewField error = %v; want %v", err, ErrInvalidDefault)
			}
		})
	}

	f, err := NewField(WithAttributes(euro), WithDefaultValue(10_000_000))
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	if got := f.Text(); got != "€ 10.000.000" {
		t.Fatalf("Text() = %q", got)
	}
}

func TestNewConfigRulesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rules.yml", "en:\n  currency_symbol: US$\n")

	cfg, err := NewConfig(
		WithLocale("en-US"),
		WithRulesFiles(path),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Attributes.CurrencySymbol != "US$" || cfg.Attributes.GroupingSeparator != "," {
		t.Fatalf("Attributes = %+v", cfg.Attributes)
	}

	cfg, err = NewConfig(
		WithLocale("en-US"),
		WithRulesFiles(path),
		WithRules(map[string]Rules{"en_US": {CurrencySymbol: "USD"}}),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Attributes.CurrencySymbol != "USD" {
		t.Fatalf("CurrencySymbol = %q", cfg.Attributes.CurrencySymbol)
	}
}

func TestNewConfigWithAttributesSkipsResolution(t *testing.T) {
	attrs := Attributes{GroupingSeparator: " ", GroupingSize: 3, DecimalSeparator: ",", CurrencySymbol: "kr", SymbolPosition: SymbolLeading}

	f, err := NewField(WithLocale("en"), WithAttributes(attrs), WithDefaultValue(1500))
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	if f.Attributes() != attrs {
		t.Fatalf("Attributes() = %+v", f.Attributes())
	}
	if got := f.Text(); got != "kr 1 500" {
		t.Fatalf("Text() = %q", got)
	}
}

func TestNewConfigWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f, err := NewField(WithLogger(logger), WithHooks(nil))
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	f.Apply(Insert(3, "5"))
	f.Apply(Insert(3, "x"))

	out := buf.String()
	if !strings.Contains(out, "msg=\"currency edit\"") || !strings.Contains(out, "after=\"$ 5\"") {
		t.Fatalf("missing debug record:\n%s", out)
	}
	if !strings.Contains(out, "level=INFO msg=\"currency edit refused\"") {
		t.Fatalf("missing refusal record:\n%s", out)
	}
}

func TestNewConfigWithFallback(t *testing.T) {
	cfg, err := NewConfig(
		WithLocale("es-AR"),
		WithFallback("es-AR", "es-MX"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Attributes.DecimalSeparator != "." || cfg.Attributes.CurrencySymbol != "$" {
		t.Fatalf("Attributes = %+v", cfg.Attributes)
	}

	cfg, err = NewConfig(WithLocale("es-AR"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Attributes.DecimalSeparator != "," || cfg.Attributes.CurrencySymbol != "€" {
		t.Fatalf("Attributes without fallback = %+v", cfg.Attributes)
	}
}
