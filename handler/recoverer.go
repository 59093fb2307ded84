package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/intake/pkg/logger"
)

// Recoverer turns a panic in next into a logged 500 JSON StatusBody.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log.ErrorContext(r.Context(), "panic recovered",
					logger.Error(fmt.Errorf("panic: %v", rec)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
					logger.Component("recoverer"),
				)

				_ = WriteJSON(w, r, http.StatusInternalServerError, StatusBody{Message: internalErrorMessage})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
