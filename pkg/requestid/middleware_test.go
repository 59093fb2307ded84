package requestid_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intake/pkg/logger"
	"github.com/dmitrymomot/intake/pkg/requestid"
)

// serve runs the middleware once and returns the id seen by the handler
// and the id echoed in the response header.
func serve(t *testing.T, inbound string) (seen, echoed string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	if inbound != "" {
		req.Header.Set(requestid.Header, inbound)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	return seen, rec.Header().Get(requestid.Header)
}

func TestMiddleware_KeepsWellFormedIDs(t *testing.T) {
	t.Parallel()

	for _, id := range []string{
		"lead-42",
		"edge_proxy_7f3a",
		"ABC-123_xyz",
		"0192a1f4-6c1e-7b3d-9a55-3f1c2d4e5f60",
		strings.Repeat("a", 128),
	} {
		t.Run(id[:min(len(id), 16)], func(t *testing.T) {
			t.Parallel()
			seen, echoed := serve(t, id)
			assert.Equal(t, id, seen)
			assert.Equal(t, id, echoed)
		})
	}
}

func TestMiddleware_ReplacesMissingOrMalformedIDs(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing":    "",
		"spaces":     "lead 42",
		"slash":      "lead/42",
		"markup":     "<script>alert(1)</script>",
		"at sign":    "lead@42",
		"too long":   strings.Repeat("a", 129),
		"crlf":       "lead\r\nX-Injected: 1",
		"non-ascii":  "lead-ü",
		"semicolons": "lead;drop",
	}

	for name, inbound := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			seen, echoed := serve(t, inbound)
			assert.NotEqual(t, inbound, seen)
			assert.Equal(t, seen, echoed)

			id, err := uuid.Parse(seen)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), id.Version())
		})
	}
}

func TestNew_IsUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := requestid.New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "req-9", requestid.FromContext(requestid.WithContext(context.Background(), "req-9")))
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LogExtractor()

	attr, ok := extract(context.Background())
	assert.False(t, ok)
	assert.True(t, attr.Equal(slog.Attr{}))

	attr, ok = extract(requestid.WithContext(context.Background(), "req-1"))
	require.True(t, ok)
	assert.True(t, attr.Equal(logger.RequestID("req-1")))
}
