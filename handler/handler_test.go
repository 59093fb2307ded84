package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intake/handler"
	"github.com/dmitrymomot/intake/pkg/binder"
)

type greetRequest struct {
	Name string `json:"name"`
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) handler.StatusBody {
	t.Helper()
	var body handler.StatusBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrap(t *testing.T) {
	t.Parallel()

	greet := handler.HandlerFunc[greetRequest](func(ctx *handler.Context, req greetRequest) handler.Response {
		return handler.JSONStatus(http.StatusOK, "hello "+req.Name)
	})

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinders(binder.Binder(0)))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jo"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		body := decodeStatus(t, rec)
		assert.True(t, body.Success)
		assert.Equal(t, "hello Jo", body.Message)
	})

	t.Run("bind error becomes 400 json", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinders(binder.Binder(0)))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeStatus(t, rec)
		assert.False(t, body.Success)
		assert.NotContains(t, body.Message, "unexpected EOF")
	})

	t.Run("oversized body becomes 413", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinders(binder.Binder(8)))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a long name"}`)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("nil response is internal error", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(handler.HandlerFunc[greetRequest](func(*handler.Context, greetRequest) handler.Response { return nil }))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, decodeStatus(t, rec).Success)
	})

	t.Run("render error hides details", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(handler.HandlerFunc[greetRequest](func(*handler.Context, greetRequest) handler.Response {
			return handler.JSON(http.StatusOK, map[string]float64{"bad": math.Inf(1)})
		}))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Inf")
	})

	t.Run("http error keeps its status", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet,
			handler.WithBinders(func(*http.Request, any) error {
				return handler.ErrMethodNotAllowed
			}),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPut, "/", nil))

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "Method not allowed", decodeStatus(t, rec).Message)
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		boom := errors.New("boom")
		h := handler.Wrap(greet,
			handler.WithBinders(func(*http.Request, any) error { return boom }),
			handler.WithErrorHandler(func(ctx *handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.ErrorIs(t, got, boom)
	})

	t.Run("binders run in order and stop at the first error", func(t *testing.T) {
		t.Parallel()
		var calls []string
		step := func(name string, err error) handler.Bind {
			return func(*http.Request, any) error {
				calls = append(calls, name)
				return err
			}
		}
		h := handler.Wrap(greet, handler.WithBinders(
			step("json", nil),
			nil,
			step("headers", handler.NewHTTPError(http.StatusBadRequest, "bad header")),
			step("never", nil),
		))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, []string{"json", "headers"}, calls)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad header", decodeStatus(t, rec).Message)
	})

	t.Run("context carries request values", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		var got any
		h := handler.Wrap(handler.HandlerFunc[greetRequest](func(ctx *handler.Context, _ greetRequest) handler.Response {
			got = ctx.Value(key{})
			assert.Equal(t, "/api/contact", ctx.Request().URL.Path)
			return handler.Empty()
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req = req.WithContext(context.WithValue(req.Context(), key{}, "lead"))
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, "lead", got)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Empty().Render(rec, httptest.NewRequest(http.MethodOptions, "/", nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestJSONStatus(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSONStatus(http.StatusBadRequest, "nope").Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"nope"}`, rec.Body.String())
}

func TestHTTPError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Not Found", handler.NewHTTPError(http.StatusNotFound, "").Error())
	assert.Equal(t, "Method not allowed", handler.ErrMethodNotAllowed.Error())
}
