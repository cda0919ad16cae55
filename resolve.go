package currencyinput

import (
	"golang.org/x/text/language"
)

type resolveConfig struct {
	provider *RulesProvider
}

type ResolveOption func(*resolveConfig)

// WithResolveRules resolves against provider instead of the shipped rules.
func WithResolveRules(provider *RulesProvider) ResolveOption {
	return func(rc *resolveConfig) {
		rc.provider = provider
	}
}

// ResolveAttributes returns the formatting attributes for a locale such as
// "en-US" or "de_CH". Attributes are derived from CLDR data, then overlaid
// with matching rules from the most general locale to the most specific.
// Locales that resolve to unusable attributes get DefaultAttributes.
func ResolveAttributes(locale string, opts ...ResolveOption) Attributes {
	cfg := resolveConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.provider == nil {
		cfg.provider = NewRulesProvider(nil)
	}

	locale = normalizeLocale(locale)
	if locale == "" {
		locale = "en"
	}

	attrs, ok := deriveAttributes(language.Make(locale))
	if !ok {
		attrs = DefaultAttributes()
	}

	if chain, found := cfg.provider.Lookup(locale); found {
		for _, rules := range chain {
			attrs = rules.apply(attrs)
		}
	}

	if attrs.Validate() != nil {
		return DefaultAttributes()
	}
	return attrs
}
