// Package htmx renders templ components for full page loads and for HTMX
// partial swaps from the same handler.
package htmx

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage renders full for normal requests. HTMX requests receive fragment,
// or the <main> content of full when fragment is nil, with titleTag prepended
// unless the body already carries a title.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, titleTag string) {
	if !IsHTMXRequest(r) {
		if full == nil {
			full = fragment
		}
		if full == nil {
			return
		}
		templ.Handler(full).ServeHTTP(w, r)
		return
	}

	target := fragment
	fromFull := false
	if target == nil {
		target, fromFull = full, true
	}
	if target == nil {
		return
	}

	capture := &captureWriter{header: make(http.Header), statusCode: http.StatusOK}
	templ.Handler(target).ServeHTTP(capture, r)

	body := capture.body.Bytes()
	if fromFull {
		if main, ok := extractMainContent(body); ok {
			body = main
		}
	}
	body = prependTitle(body, titleTag)

	copyHeaders(w.Header(), capture.header)
	if capture.statusCode != http.StatusOK {
		w.WriteHeader(capture.statusCode)
	}
	_, _ = w.Write(body)
}

// captureWriter buffers a component render so the body can be trimmed before
// it reaches the client.
type captureWriter struct {
	header      http.Header
	statusCode  int
	body        bytes.Buffer
	wroteHeader bool
}

func (c *captureWriter) Header() http.Header {
	return c.header
}

func (c *captureWriter) WriteHeader(status int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true
	c.statusCode = status
}

func (c *captureWriter) Write(p []byte) (int, error) {
	return c.body.Write(p)
}

func prependTitle(body []byte, titleTag string) []byte {
	if strings.TrimSpace(titleTag) == "" {
		return body
	}
	if bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		return body
	}
	return append([]byte(titleTag), body...)
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if strings.EqualFold(key, "Set-Cookie") {
			for _, value := range values {
				dst.Add(key, value)
			}
			continue
		}
		for _, value := range values {
			dst.Set(key, value)
		}
	}
}

func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openClose := bytes.IndexByte(body[start:], '>')
	if openClose < 0 {
		return nil, false
	}
	contentStart := start + openClose + 1
	end := bytes.Index(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
