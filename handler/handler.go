package handler

import "net/http"

// HandlerFunc handles a request already bound into R.
type HandlerFunc[R any] func(ctx *Context, req R) Response

// Response writes status, headers and body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes r into v, which is always a pointer to the request value.
type Bind func(r *http.Request, v any) error

// ErrorHandler answers a request whose binding or rendering failed.
type ErrorHandler func(ctx *Context, err error)

// Option configures Wrap.
type Option func(*wrapOptions)

type wrapOptions struct {
	binders []Bind
	onError ErrorHandler
}

// WithBinders appends binders; they run in order and the first error stops
// the request. Nil binders are skipped.
func WithBinders(binders ...Bind) Option {
	return func(o *wrapOptions) {
		for _, b := range binders {
			if b != nil {
				o.binders = append(o.binders, b)
			}
		}
	}
}

// WithErrorHandler replaces the default NewErrorHandler(nil).
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *wrapOptions) {
		if h != nil {
			o.onError = h
		}
	}
}

// Wrap adapts h to http.HandlerFunc. A zero R is bound by each binder,
// then h runs and its Response is rendered. A nil Response is reported
// as ErrNilResponse.
func Wrap[R any](h HandlerFunc[R], opts ...Option) http.HandlerFunc {
	o := wrapOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.onError == nil {
		o.onError = NewErrorHandler(nil)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range o.binders {
			if err := bind(r, &req); err != nil {
				o.onError(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			o.onError(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			o.onError(ctx, err)
		}
	}
}
