package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON decodes the request body into v.
//
// The body is limited to maxBytes (DefaultMaxJSONSize when <= 0), must hold
// exactly one JSON value, and the Content-Type, when present, must be
// application/json or a +json type.
func JSON(r *http.Request, v any, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxJSONSize
	}

	if err := checkContentType(r.Header.Get("Content-Type")); err != nil {
		return err
	}
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
	if err != nil {
		return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > maxBytes {
		return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxBytes)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}

	return nil
}

// Binder returns JSON as a bind function with a fixed size limit.
func Binder(maxBytes int64) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return JSON(r, v, maxBytes)
	}
}

func checkContentType(contentType string) error {
	if contentType == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	if mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") {
		return nil
	}
	return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
}
