package leads_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intake/modules/leads"
	"github.com/dmitrymomot/intake/pkg/email"
	"github.com/dmitrymomot/intake/pkg/requestid"
	"github.com/dmitrymomot/intake/svc/submission"
	"github.com/dmitrymomot/intake/svc/submission/mailtpl"
)

type call struct {
	kind submission.Kind
	raw  submission.Raw
	meta submission.Metadata
}

type fakeProcessor struct {
	mu     sync.Mutex
	calls  []call
	result submission.Result
}

func (f *fakeProcessor) Process(_ context.Context, kind submission.Kind, raw submission.Raw, meta submission.Metadata) submission.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{kind: kind, raw: raw, meta: meta})
	return f.result
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestRouter(t *testing.T) {
	t.Parallel()

	t.Run("routes each path to its kind", func(t *testing.T) {
		t.Parallel()

		for path, kind := range leads.Paths {
			p := &fakeProcessor{result: submission.Result{Status: http.StatusOK, Success: true, Message: "ok"}}
			srv := leads.Router(leads.RouterOptions{Pipeline: p})

			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"name":"Jane"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("User-Agent", "test-agent")
			req.RemoteAddr = "198.51.100.4:5555"
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, path)
			require.Len(t, p.calls, 1, path)
			assert.Equal(t, kind, p.calls[0].kind)
			assert.Equal(t, "Jane", p.calls[0].raw["name"])
			assert.Equal(t, "198.51.100.4", p.calls[0].meta.ClientIP)
			assert.Equal(t, "test-agent", p.calls[0].meta.UserAgent)
		}
	})

	t.Run("passes request id from context", func(t *testing.T) {
		t.Parallel()

		p := &fakeProcessor{result: submission.Result{Status: http.StatusOK, Success: true}}
		srv := requestid.Middleware(leads.Router(leads.RouterOptions{Pipeline: p}))

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{}`))
		req.Header.Set(requestid.Header, "abc-123")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Len(t, p.calls, 1)
		assert.Equal(t, "abc-123", p.calls[0].meta.RequestID)
	})

	t.Run("renders the result", func(t *testing.T) {
		t.Parallel()

		cost := 18000
		p := &fakeProcessor{result: submission.Result{
			Status:  http.StatusOK,
			Success: true,
			Message: "thanks",
			Data:    &submission.ResultData{SubmissionSaved: true, AdminNotified: true, EstimatedCost: &cost},
		}}
		srv := leads.Router(leads.RouterOptions{Pipeline: p})

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/project-request", strings.NewReader(`{}`)))

		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{
			"success": true,
			"message": "thanks",
			"data": {"submissionSaved": true, "adminNotified": true, "userConfirmed": false, "estimatedCost": 18000}
		}`, rec.Body.String())
	})

	t.Run("validation errors", func(t *testing.T) {
		t.Parallel()

		p := &fakeProcessor{result: submission.Result{
			Status:  http.StatusBadRequest,
			Message: "fix it",
			Errors:  []string{"name is required"},
		}}
		srv := leads.Router(leads.RouterOptions{Pipeline: p})

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success": false, "message": "fix it", "errors": ["name is required"]}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name        string
			body        string
			contentType string
			status      int
		}{
			{"invalid json", `{"name":`, "application/json", http.StatusBadRequest},
			{"array", `[1,2]`, "application/json", http.StatusBadRequest},
			{"empty", ``, "application/json", http.StatusBadRequest},
			{"trailing data", `{} {}`, "application/json", http.StatusBadRequest},
			{"form", `name=x`, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				p := &fakeProcessor{}
				srv := leads.Router(leads.RouterOptions{Pipeline: p})

				req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tt.body))
				req.Header.Set("Content-Type", tt.contentType)
				rec := httptest.NewRecorder()
				srv.ServeHTTP(rec, req)

				assert.Equal(t, tt.status, rec.Code)
				body := decode(t, rec)
				assert.Equal(t, false, body["success"])
				assert.NotEmpty(t, body["message"])
				assert.Empty(t, p.calls)
			})
		}
	})

	t.Run("body limit", func(t *testing.T) {
		t.Parallel()

		p := &fakeProcessor{}
		srv := leads.Router(leads.RouterOptions{Pipeline: p, MaxBodyBytes: 16})

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"message":"`+strings.Repeat("x", 64)+`"}`)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Empty(t, p.calls)
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()

		srv := leads.Router(leads.RouterOptions{Pipeline: &fakeProcessor{}})
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(method, "/contact", nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
			assert.JSONEq(t, `{"success": false, "message": "Method not allowed"}`, rec.Body.String())
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		t.Parallel()

		srv := leads.Router(leads.RouterOptions{Pipeline: &fakeProcessor{}})
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/newsletter", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, decode(t, rec)["success"])
	})

	t.Run("preflight", func(t *testing.T) {
		t.Parallel()

		srv := leads.Router(leads.RouterOptions{
			Pipeline:       &fakeProcessor{},
			AllowedOrigins: []string{"https://example.com"},
		})

		req := httptest.NewRequest(http.MethodOptions, "/job-application", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("plain options", func(t *testing.T) {
		t.Parallel()

		srv := leads.Router(leads.RouterOptions{Pipeline: &fakeProcessor{}})
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/contact", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRouter_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pipeline, err := submission.New(submission.Options{
		Sender:        email.NewDevSender(dir),
		Templates:     mailtpl.New("Acme"),
		OperatorEmail: "team@example.com",
	})
	require.NoError(t, err)
	srv := leads.Router(leads.RouterOptions{Pipeline: pipeline})

	t.Run("short message is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact",
			strings.NewReader(`{"name":"Jo","email":"jo@x.com","message":"short"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["errors"], "message must be at least 10 characters long")
	})

	t.Run("project request is accepted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/project-request", strings.NewReader(`{
			"contactName": "Sam",
			"contactEmail": "sam@example.com",
			"projectType": "chatbot",
			"industry": "Retail",
			"budget": "$10k-$25k",
			"timeline": "3 months",
			"features": ["faq", "handoff"]
		}`)))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, false, data["submissionSaved"])
		assert.Equal(t, true, data["adminNotified"])
		assert.Equal(t, true, data["userConfirmed"])
		assert.Equal(t, 18000.0, data["estimatedCost"])

		messages, err := filepath.Glob(filepath.Join(dir, "*.json"))
		require.NoError(t, err)
		assert.Len(t, messages, 2)
	})

	t.Run("script is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact",
			strings.NewReader(`{"name":"Eve","email":"eve@example.com","message":"<script>alert(1)</script> hello"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid characters detected in submission.", decode(t, rec)["message"])
	})

	t.Run("unwritable mail directory is a transport failure", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(file, nil, 0o600))

		broken, err := submission.New(submission.Options{
			Sender:        email.NewDevSender(file),
			Templates:     mailtpl.New("Acme"),
			OperatorEmail: "team@example.com",
		})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		leads.Router(leads.RouterOptions{Pipeline: broken}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact",
			strings.NewReader(`{"name":"Jane","email":"jane@example.com","message":"Hello, I have a question."}`)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["message"], "team@example.com")
	})
}
