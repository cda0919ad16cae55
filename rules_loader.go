package currencyinput

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RulesFileLoader reads locale rules overrides from JSON or YAML files keyed
// by locale. Later files win over earlier ones.
type RulesFileLoader struct {
	paths []string
}

func NewRulesFileLoader(paths ...string) *RulesFileLoader {
	return &RulesFileLoader{paths: append([]string(nil), paths...)}
}

func (l *RulesFileLoader) Load() (map[string]Rules, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("currencyinput: no rules paths configured")
	}

	merged := make(map[string]Rules)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("currencyinput: read %s: %w", path, err)
		}

		rules, err := decodeRulesFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("currencyinput: decode %s: %w", path, err)
		}
		for locale, r := range rules {
			merged[locale] = r
		}
	}
	return merged, nil
}

func decodeRulesFile(path string, data []byte) (map[string]Rules, error) {
	var raw map[string]Rules

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw) == 0 {
		return nil, errors.New("empty rules file")
	}

	result := make(map[string]Rules, len(raw))
	for key, rules := range raw {
		locale := normalizeLocale(key)
		if locale == "" {
			return nil, fmt.Errorf("empty locale in %s", path)
		}
		rules.Locale = locale
		result[locale] = rules
	}
	return result, nil
}
