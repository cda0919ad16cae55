package currencyinput

import (
	"strings"

	"golang.org/x/text/language"
)

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ""
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if tag, err := language.Parse(locale); err == nil {
		return tag.String()
	}
	return locale
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)
	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			break
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}
	return chain
}
