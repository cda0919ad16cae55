package currencyinput

import (
	"strings"

	"golang.org/x/text/language"
)

// Rules describes currency input formatting for a locale. Empty fields are
// filled from the attributes derived for the locale.
type Rules struct {
	Locale            string `json:"locale" yaml:"locale"`
	GroupingSeparator string `json:"grouping_separator" yaml:"grouping_separator"`
	GroupingSize      int    `json:"grouping_size" yaml:"grouping_size"`
	DecimalSeparator  string `json:"decimal_separator" yaml:"decimal_separator"`
	CurrencySymbol    string `json:"currency_symbol" yaml:"currency_symbol"`
	SymbolPosition    string `json:"symbol_position" yaml:"symbol_position"` // "before", "after"
}

// apply overlays the non-empty rule fields on base.
func (r Rules) apply(base Attributes) Attributes {
	if r.GroupingSeparator != "" {
		base.GroupingSeparator = r.GroupingSeparator
	}
	if r.GroupingSize > 0 {
		base.GroupingSize = r.GroupingSize
	}
	if r.DecimalSeparator != "" {
		base.DecimalSeparator = r.DecimalSeparator
	}
	if r.CurrencySymbol != "" {
		base.CurrencySymbol = r.CurrencySymbol
	}
	if r.SymbolPosition != "" {
		base.SymbolPosition = SymbolPosition(strings.ToLower(strings.TrimSpace(r.SymbolPosition)))
	}
	return base
}

// currencyRulesData holds the rules shipped by default. The field only
// renders leading symbols, so every entry places the symbol before the amount.
var currencyRulesData = map[string]Rules{
	"en": {
		Locale:            "en",
		GroupingSeparator: ",",
		GroupingSize:      3,
		DecimalSeparator:  ".",
		CurrencySymbol:    "$",
		SymbolPosition:    "before",
	},
	"en-GB": {
		Locale:         "en-GB",
		CurrencySymbol: "£",
	},
	"en-IN": {
		Locale:         "en-IN",
		CurrencySymbol: "₹",
	},
	"es": {
		Locale:            "es",
		GroupingSeparator: ".",
		GroupingSize:      3,
		DecimalSeparator:  ",",
		CurrencySymbol:    "€",
		SymbolPosition:    "before",
	},
	"es-MX": {
		Locale:            "es-MX",
		GroupingSeparator: ",",
		DecimalSeparator:  ".",
		CurrencySymbol:    "$",
	},
	"de": {
		Locale:            "de",
		GroupingSeparator: ".",
		GroupingSize:      3,
		DecimalSeparator:  ",",
		CurrencySymbol:    "€",
		SymbolPosition:    "before",
	},
	"fr": {
		Locale:            "fr",
		GroupingSeparator: " ",
		GroupingSize:      3,
		DecimalSeparator:  ",",
		CurrencySymbol:    "€",
		SymbolPosition:    "before",
	},
	"ja": {
		Locale:            "ja",
		GroupingSeparator: ",",
		GroupingSize:      3,
		DecimalSeparator:  ".",
		CurrencySymbol:    "¥",
		SymbolPosition:    "before",
	},
}

// RulesProvider looks up locale rules, merging a locale with its parents so
// "es-MX" inherits what it does not override from "es".
type RulesProvider struct {
	rules    map[string]Rules
	resolver FallbackResolver
}

// NewRulesProvider starts from the shipped rules; overrides replace entries
// with the same locale.
func NewRulesProvider(overrides map[string]Rules) *RulesProvider {
	rules := make(map[string]Rules, len(currencyRulesData)+len(overrides))
	for k, v := range currencyRulesData {
		rules[k] = v
	}
	for k, v := range overrides {
		rules[k] = v
	}
	return &RulesProvider{rules: rules}
}

// SetFallbackResolver consults resolver for explicit fallbacks. They rank
// below the locale itself and above its parents.
func (p *RulesProvider) SetFallbackResolver(resolver FallbackResolver) {
	if p == nil {
		return
	}
	p.resolver = resolver
}

// Lookup returns the rule chain for locale, most general first, so applying
// it in order lets the specific locale win. ok is false when nothing matched.
func (p *RulesProvider) Lookup(locale string) ([]Rules, bool) {
	if p == nil || len(p.rules) == 0 {
		return nil, false
	}

	candidates := []string{locale}
	if p.resolver != nil {
		candidates = append(candidates, p.resolver.Resolve(locale)...)
	}
	candidates = append(candidates, localeParentChain(locale)...)
	if base := baseLanguage(locale); base != "" {
		candidates = append(candidates, base)
	}

	var chain []Rules
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		if rules, ok := p.rules[candidate]; ok {
			chain = append([]Rules{rules}, chain...)
		}
	}
	return chain, len(chain) > 0
}

func baseLanguage(locale string) string {
	tag := language.Make(locale)
	base, _ := tag.Base()
	value := base.String()
	if value == "und" {
		return ""
	}
	return value
}
