package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/intake/pkg/logger"
)

// LogExtractor returns a logger.ContextExtractor that adds the request id
// to every record logged with a request context.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
