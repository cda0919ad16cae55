package currencyinput

import (
	"context"
	"log/slog"
)

// EditHook observes edits applied to a Field.
type EditHook interface {
	BeforeEdit(ctx *EditHookContext)
	AfterEdit(ctx *EditHookContext)
}

// EditHookContext carries one edit through the hooks. Decision and After are
// filled in before AfterEdit runs.
type EditHookContext struct {
	Before   string
	Proposal Proposal
	Decision Decision
	After    string
	Metadata map[string]any
}

func (ctx *EditHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *EditHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type EditHookFuncs struct {
	Before func(ctx *EditHookContext)
	After  func(ctx *EditHookContext)
}

func (h EditHookFuncs) BeforeEdit(ctx *EditHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h EditHookFuncs) AfterEdit(ctx *EditHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

// LoggingHook logs every decision at debug level and refused edits at info.
// A nil logger uses slog.Default().
func LoggingHook(logger *slog.Logger) EditHook {
	if logger == nil {
		logger = slog.Default()
	}
	return EditHookFuncs{
		After: func(ctx *EditHookContext) {
			attrs := []slog.Attr{
				slog.Int("start", ctx.Proposal.Start),
				slog.Int("end", ctx.Proposal.End),
				slog.String("replacement", ctx.Proposal.Replacement),
				slog.String("before", ctx.Before),
				slog.String("after", ctx.After),
				slog.Bool("accept", ctx.Decision.Accept),
			}
			if err := ctx.Decision.Err; err != nil {
				attrs = append(attrs, slog.Any("error", err))
				logger.LogAttrs(context.Background(), slog.LevelInfo, "currency edit refused", attrs...)
				return
			}
			logger.LogAttrs(context.Background(), slog.LevelDebug, "currency edit", attrs...)
		},
	}
}

func filterHooks(hooks []EditHook) []EditHook {
	var filtered []EditHook
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	return filtered
}
