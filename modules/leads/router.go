package leads

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/intake/handler"
	"github.com/dmitrymomot/intake/pkg/binder"
	"github.com/dmitrymomot/intake/pkg/logger"
	"github.com/dmitrymomot/intake/svc/submission"
)

// Processor runs one submission. *submission.Pipeline implements it.
type Processor interface {
	Process(ctx context.Context, kind submission.Kind, raw submission.Raw, meta submission.Metadata) submission.Result
}

// RouterOptions configures the lead capture endpoints.
type RouterOptions struct {
	Pipeline       Processor
	Logger         *slog.Logger
	AllowedOrigins []string // CORS origins; empty allows any origin
	MaxBodyBytes   int64    // request body limit, binder.DefaultMaxJSONSize when zero
}

// Paths maps each endpoint to the kind it accepts.
var Paths = map[string]submission.Kind{
	"/contact":         submission.KindContact,
	"/project-request": submission.KindProjectRequest,
	"/job-application": submission.KindJobApplication,
}

// Router mounts one POST endpoint per submission kind.
//
//	r := chi.NewRouter()
//	r.Mount("/api", leads.Router(leads.RouterOptions{
//	    Pipeline: pipeline,
//	    Logger:   log,
//	}))
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("leads"))

	r := chi.NewRouter()
	r.Use(corsHandler(opts.AllowedOrigins))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.WriteJSON(w, r, http.StatusNotFound, handler.StatusBody{Message: handler.ErrNotFound.Message})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "POST, OPTIONS")
		_ = handler.WriteJSON(w, r, http.StatusMethodNotAllowed, handler.StatusBody{Message: handler.ErrMethodNotAllowed.Message})
	})

	errHandler := handler.NewErrorHandler(log)
	bind := binder.Binder(opts.MaxBodyBytes)
	for path, kind := range Paths {
		r.Post(path, handler.Wrap(
			submitHandler(opts.Pipeline, kind),
			handler.WithBinders(bind),
			handler.WithErrorHandler(errHandler),
		))
		r.Options(path, preflight)
	}

	return r
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:     origins,
		AllowedMethods:     []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:     []string{"X-Request-ID"},
		MaxAge:             300,
		OptionsPassthrough: true,
	})
}

// preflight answers OPTIONS after the CORS middleware has set its headers.
func preflight(w http.ResponseWriter, r *http.Request) {
	_ = handler.Empty().Render(w, r)
}
