package handler

import (
	"context"
	"net/http"
)

// Context is the request context handed to a HandlerFunc. It is a
// context.Context itself, so it can be passed to services directly.
type Context struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

// NewContext returns a Context over r's context.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{Context: r.Context(), w: w, r: r}
}

func (c *Context) Request() *http.Request { return c.r }

func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }
