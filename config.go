package currencyinput

import (
	"fmt"
	"log/slog"
)

// Config captures how a Field is built.
type Config struct {
	Locale       string
	Attributes   Attributes
	DefaultValue float64
	ShowSymbol   bool
	Hooks        []EditHook
	Logger       *slog.Logger
	Resolver     FallbackResolver

	attributesSet bool
	rules         map[string]Rules
	rulesPaths    []string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. Without WithAttributes the
// attributes are resolved for Locale (default "en"), honoring rules files
// and WithRules overrides. The currency symbol is shown unless disabled.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{ShowSymbol: true}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if !cfg.attributesSet {
		provider, err := cfg.rulesProvider()
		if err != nil {
			return nil, err
		}
		cfg.Attributes = ResolveAttributes(cfg.Locale, WithResolveRules(provider))
	}

	if err := cfg.Attributes.Validate(); err != nil {
		return nil, err
	}

	if cfg.Logger != nil {
		cfg.Hooks = append(cfg.Hooks, LoggingHook(cfg.Logger))
	}
	cfg.Hooks = filterHooks(cfg.Hooks)

	return cfg, nil
}

func (c *Config) rulesProvider() (*RulesProvider, error) {
	overrides := make(map[string]Rules)
	if len(c.rulesPaths) > 0 {
		loaded, err := NewRulesFileLoader(c.rulesPaths...).Load()
		if err != nil {
			return nil, err
		}
		for locale, rules := range loaded {
			overrides[locale] = rules
		}
	}
	for locale, rules := range c.rules {
		overrides[locale] = rules
	}
	provider := NewRulesProvider(overrides)
	provider.SetFallbackResolver(c.Resolver)
	return provider, nil
}

// BuildField seeds a Field with the configured default value.
func (c *Config) BuildField() (*Field, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidAttributes)
	}

	core, err := SeedDisplay(c.DefaultValue, c.Attributes)
	if err != nil {
		return nil, err
	}

	return &Field{
		attrs:      c.Attributes,
		showSymbol: c.ShowSymbol,
		core:       core,
		hooks:      append([]EditHook(nil), c.Hooks...),
	}, nil
}

// WithLocale resolves attributes for locale, e.g. "en-US" or "es_MX".
func WithLocale(locale string) Option {
	return func(c *Config) error {
		c.Locale = locale
		return nil
	}
}

// WithAttributes uses attrs as is, skipping locale resolution.
func WithAttributes(attrs Attributes) Option {
	return func(c *Config) error {
		if err := attrs.Validate(); err != nil {
			return err
		}
		c.Attributes = attrs
		c.attributesSet = true
		return nil
	}
}

// WithDefaultValue seeds the field; v must be within [0, MaxAmount].
// BuildField reports ErrInvalidDefault otherwise.
func WithDefaultValue(v float64) Option {
	return func(c *Config) error {
		c.DefaultValue = v
		return nil
	}
}

func WithShowSymbol(show bool) Option {
	return func(c *Config) error {
		c.ShowSymbol = show
		return nil
	}
}

// WithRules overrides the shipped rules for the given locales.
func WithRules(rules map[string]Rules) Option {
	return func(c *Config) error {
		if c.rules == nil {
			c.rules = make(map[string]Rules, len(rules))
		}
		for locale, r := range rules {
			normalized := normalizeLocale(locale)
			if normalized == "" {
				return fmt.Errorf("%w: empty rules locale", ErrInvalidAttributes)
			}
			r.Locale = normalized
			c.rules[normalized] = r
		}
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback lets locale borrow rules from fallbacks, in order, before its
// parent locales. It is ignored when a custom resolver is set.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithRulesFiles loads rules overrides from JSON or YAML files.
func WithRulesFiles(paths ...string) Option {
	return func(c *Config) error {
		c.rulesPaths = append(c.rulesPaths, paths...)
		return nil
	}
}

func WithHooks(hooks ...EditHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithLogger adds a LoggingHook writing to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}
