package currencyinput

import (
	"github.com/govalues/decimal"
)

// Field owns the display text of one currency input. Edits go through Apply
// and EndEditing; the host renders Text.
//
// A Field is not safe for concurrent use, and hooks must not call back into
// the Field that invoked them.
type Field struct {
	attrs      Attributes
	showSymbol bool
	core       string
	hooks      []EditHook
}

// NewField builds a Field from options. See NewConfig.
func NewField(opts ...Option) (*Field, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildField()
}

func (f *Field) Attributes() Attributes {
	return f.attrs
}

// Text returns the presented text, symbol included when enabled.
func (f *Field) Text() string {
	return Present(f.core, f.showSymbol, f.attrs)
}

// Core returns the undecorated display text.
func (f *Field) Core() string {
	return f.core
}

func (f *Field) State() State {
	return Classify(f.attrs, f.core)
}

func (f *Field) ShowSymbol() bool {
	return f.showSymbol
}

// SetShowSymbol toggles the currency symbol; the current text is re-presented.
func (f *Field) SetShowSymbol(show bool) {
	f.showSymbol = show
}

// Value returns the amount currently displayed. An empty field is zero.
func (f *Field) Value() decimal.Decimal {
	cleaned := f.attrs.clean(f.core)
	if cleaned == "" {
		return decimal.Decimal{}
	}
	d, err := NewParser(f.attrs).ParseDecimal(cleaned)
	if err != nil {
		return decimal.Decimal{}
	}
	return d
}

// Apply evaluates p against the presented text and updates the field.
func (f *Field) Apply(p Proposal) Decision {
	ctx := &EditHookContext{
		Before:   f.Text(),
		Proposal: p,
	}
	for _, hook := range f.hooks {
		hook.BeforeEdit(ctx)
	}

	decision := Evaluate(f.attrs, ctx.Before, ctx.Proposal)
	f.core = decision.Display

	ctx.Decision = decision
	ctx.After = f.Text()
	for _, hook := range f.hooks {
		hook.AfterEdit(ctx)
	}
	return decision
}

// EndEditing closes the edit session, dropping a dangling decimal separator.
func (f *Field) EndEditing() string {
	f.core = EndEditing(f.attrs, f.core)
	return f.Text()
}
