package microcompress

import (
	"net/http"
	"strings"
)

// Response buffers a backend response so the compression decision can be
// made after the body length and headers are known. It is used to wrap
// http.ResponseWriter for downstream handlers.
type Response struct {
	status int
	header http.Header
	body   []byte
}

func newResponse() *Response {
	return &Response{
		status: http.StatusOK,
		header: http.Header{},
	}
}

func (res *Response) Write(b []byte) (int, error) {
	res.body = append(res.body, b...)
	return len(b), nil
}

func (res *Response) Header() http.Header {
	return res.header
}

func (res *Response) WriteHeader(code int) {
	res.status = code
}

func (res *Response) sendResponse(w http.ResponseWriter) {
	for header, values := range res.header {
		// Do not forward microcompress control headers to client
		if strings.HasPrefix(header, "Microcompress-") {
			continue
		}
		for _, val := range values {
			w.Header().Add(header, val)
		}
	}
	w.WriteHeader(res.status)
	w.Write(res.body)
}
