package currencyinput

// HelperConfig configures template helper exports
type HelperConfig struct {
	// Prefix is prepended to every helper name, "currency_" when empty.
	Prefix string
}

// TemplateHelpers exposes the formatting functions to text/template and
// html/template, bound to attrs:
//
//	{{ currency_seed 1234.5 true }}    -> "$ 1,234.50"
//	{{ currency_group 1234567 }}       -> "1,234,567"
//	{{ currency_present "12" true }}   -> "$ 12"
//	{{ currency_finish "42." }}        -> "42"
func TemplateHelpers(attrs Attributes, cfg HelperConfig) map[string]any {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "currency_"
	}

	grouper := NewGrouper(attrs)
	return map[string]any{
		prefix + "seed": func(v float64, showSymbol bool) (string, error) {
			core, err := SeedDisplay(v, attrs)
			if err != nil {
				return "", err
			}
			return Present(core, showSymbol, attrs), nil
		},
		prefix + "group": func(n int64) string {
			return grouper.Format(n, "")
		},
		prefix + "present": func(core string, showSymbol bool) string {
			return Present(core, showSymbol, attrs)
		},
		prefix + "finish": func(text string) string {
			return EndEditing(attrs, text)
		},
	}
}
