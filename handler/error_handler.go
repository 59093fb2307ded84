package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/intake/pkg/binder"
	"github.com/dmitrymomot/intake/pkg/logger"
)

const internalErrorMessage = "An unexpected error occurred. Please try again later."

// errorInfo is the client-facing classification of an error.
type errorInfo struct {
	status  int
	message string
	level   slog.Level
}

func classifyError(err error) errorInfo {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return errorInfo{status: httpErr.Code, message: httpErr.Error(), level: levelFor(httpErr.Code)}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return errorInfo{status: http.StatusRequestEntityTooLarge, message: "Request body is too large.", level: slog.LevelWarn}
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return errorInfo{status: http.StatusUnsupportedMediaType, message: "Request body must be JSON.", level: slog.LevelWarn}
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return errorInfo{status: http.StatusBadRequest, message: "Request body must be a valid JSON object.", level: slog.LevelDebug}
	default:
		return errorInfo{status: http.StatusInternalServerError, message: internalErrorMessage, level: slog.LevelError}
	}
}

func levelFor(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	return slog.LevelDebug
}

// NewErrorHandler returns an ErrorHandler that logs err and answers with a
// StatusBody. Only the messages chosen by classifyError reach the client.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx *Context, err error) {
		info := classifyError(err)
		r := ctx.Request()

		log.LogAttrs(r.Context(), info.level, "request error",
			logger.Error(err),
			slog.Int("status_code", info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if werr := JSONStatus(info.status, info.message).Render(ctx.ResponseWriter(), r); werr != nil {
			log.ErrorContext(r.Context(), "failed to write error response",
				logger.Error(werr),
				logger.Component("error_handler"),
			)
		}
	}
}
