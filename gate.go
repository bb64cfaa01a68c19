package microcompress

import (
	"fmt"
	"net/http"
	"strings"
)

// eligible runs the cheap pre-checks that decide whether compression is
// worth attempting for a buffered response. All must pass:
//
//   - successful status (only 2xx bodies are transformed)
//   - no Content-Encoding already applied (never double-compress)
//   - media type present in the configured allow-list
//   - body at least MinSize bytes
//   - no per-response opt-out header
//
// The request method check (OPTIONS) happens in Middleware before the
// backend handler even runs.
func (m *microcompress) eligible(r *http.Request, res *Response) bool {
	if res.status < 200 || res.status >= 300 {
		return false
	}
	if res.header.Get("Content-Encoding") != "" {
		return false
	}
	if !m.mimes[mediaType(res.header.Get("Content-Type"))] {
		return false
	}
	if len(res.body) < m.MinSize {
		return false
	}
	// w.Header().Set("microcompress-nocompress", "1")
	if res.header.Get("microcompress-nocompress") != "" {
		return false
	}
	return true
}

// mediaType strips parameters and whitespace from a Content-Type value.
// "Text/HTML; charset=utf-8" matches a "text/html" allow-list entry.
func mediaType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// normalizeMediaType validates a configured allow-list entry.
func normalizeMediaType(contentType string) (string, error) {
	normalized := mediaType(contentType)
	if normalized == "" || !strings.Contains(normalized, "/") {
		return "", fmt.Errorf("microcompress: invalid media type %q", contentType)
	}
	return normalized, nil
}
