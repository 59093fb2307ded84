package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor returns an attribute derived from ctx, or false when ctx
// carries nothing for it.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler adds extracted attributes to every record logged through
// the *Context methods. Records logged without a context pass unchanged.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func withContextAttrs(next slog.Handler, extractors []ContextExtractor) slog.Handler {
	var ex []ContextExtractor
	for _, e := range extractors {
		if e != nil {
			ex = append(ex, e)
		}
	}
	if len(ex) == 0 {
		return next
	}
	return contextHandler{Handler: next, extractors: ex}
}

func (h contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx != nil {
		for _, extract := range h.extractors {
			if attr, ok := extract(ctx); ok {
				rec.AddAttrs(attr)
			}
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
