package currencyinput

import (
	"errors"
	"testing"
)

type recordingHook struct {
	beforeCalls int
	afterCalls  int
	lastBefore  string
	lastAfter   string
	lastErr     error
}

func (h *recordingHook) BeforeEdit(ctx *EditHookContext) {
	h.beforeCalls++
	h.lastBefore = ctx.Before
}

func (h *recordingHook) AfterEdit(ctx *EditHookContext) {
	h.afterCalls++
	h.lastAfter = ctx.After
	h.lastErr = ctx.Decision.Err
}

func TestFieldHooks(t *testing.T) {
	recorder := &recordingHook{}
	f, err := NewField(WithHooks(recorder))
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	f.Apply(Insert(3, "7"))
	if recorder.beforeCalls != 1 || recorder.afterCalls != 1 {
		t.Fatalf("unexpected hook counts before=%d after=%d", recorder.beforeCalls, recorder.afterCalls)
	}
	if recorder.lastBefore != "$ 0" || recorder.lastAfter != "$ 7" {
		t.Fatalf("hook saw %q -> %q", recorder.lastBefore, recorder.lastAfter)
	}
	if recorder.lastErr != nil {
		t.Fatalf("expected nil error in hook, got %v", recorder.lastErr)
	}

	f.Apply(Insert(0, "abc"))
	if !errors.Is(recorder.lastErr, ErrParse) {
		t.Fatalf("hook error = %v; want ErrParse", recorder.lastErr)
	}
}

func TestEditHookFuncsRewriteProposal(t *testing.T) {
	f, err := NewField(
		WithShowSymbol(false),
		WithHooks(EditHookFuncs{
			Before: func(ctx *EditHookContext) {
				// map a numpad comma to the locale separator
				if ctx.Proposal.Replacement == "," {
					ctx.Proposal.Replacement = "."
					ctx.SetMetadata("mapped", true)
				}
			},
			After: func(ctx *EditHookContext) {
				if mapped, ok := ctx.MetadataValue("mapped"); ok && mapped.(bool) && !ctx.Decision.Accept {
					t.Errorf("mapped separator should be accepted: %+v", ctx.Decision)
				}
			},
		}),
	)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	f.Apply(Insert(1, ","))
	if got := f.Text(); got != "0." {
		t.Fatalf("Text() = %q", got)
	}
}

func TestEditHookContextMetadataNil(t *testing.T) {
	var ctx *EditHookContext
	ctx.SetMetadata("key", 1)
	if _, ok := ctx.MetadataValue("key"); ok {
		t.Fatal("nil context should not store metadata")
	}
}
