package currencyinput

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver maps a locale to an explicit list of fallbacks,
// e.g. "es-AR" borrowing the rules of "es-MX" before those of "es".
type StaticFallbackResolver struct {
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the fallbacks for locale. Locales are normalized, so
// "es_AR" and "es-AR" share an entry.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	key := normalizeLocale(locale)
	if key == "" {
		return
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		if normalized := normalizeLocale(fallback); normalized != "" && normalized != key {
			chain = append(chain, normalized)
		}
	}
	s.chains[key] = chain
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil {
		return nil
	}
	chain := s.chains[normalizeLocale(locale)]
	if len(chain) == 0 {
		return nil
	}
	return append([]string(nil), chain...)
}
