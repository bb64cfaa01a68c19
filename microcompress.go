// microcompress is HTTP response compression implemented as Go middleware.
// It negotiates a content encoding from the client's Accept-Encoding header
// and the server's configured algorithm list, compresses eligible response
// bodies and rewrites the affected headers (Content-Encoding, Content-Length,
// Vary). Especially useful for APIs which serve large compressible payloads
// to clients of mixed decoding capability.
package microcompress

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type microcompress struct {
	Algorithms []string
	MimeTypes  []string
	Level      int
	MinSize    int
	Driver     Driver
	CacheKey   func(r *http.Request, encoding string) string
	Monitor    Monitor
	Exposed    bool

	catalog  catalog
	mimes    map[string]bool
	encoders map[string]Encoder
	stop     chan struct{}
}

type Config struct {
	// Algorithms lists the content encodings the server is willing to apply,
	// in priority order. Entries may themselves be comma-separated, so a
	// single configuration string, a comma-separated string and an explicit
	// list all normalize to the same catalog. The position in this list is
	// the tie-break during negotiation: when the client rates several
	// encodings equally, the first configured one wins.
	// Default: ["gzip"]
	Algorithms []string

	// MimeTypes lists the response media types eligible for compression.
	// Media type parameters (charset, etc) are ignored during matching.
	// Default: text/html, text/css, text/xml, application/json,
	// application/javascript
	MimeTypes []string

	// Level is the compression level handed to the encoder.
	// Each encoder validates it against its own range at startup.
	// Default: 6
	Level int

	// MinSize is the minimum body length in bytes that enables compression.
	// Shorter bodies are served uncompressed since the encoding overhead
	// would dominate any savings.
	// Default: 500
	MinSize int

	// Encoders optionally replaces or extends the built-in encoder set
	// (gzip, deflate, br, zstd, snappy). An encoder is only reachable when
	// its token also appears in Algorithms.
	Encoders []Encoder

	// Driver specifies an optional cache for compressed response bodies.
	// On a cache hit the encoder is skipped entirely.
	// Default: nil (no caching)
	Driver Driver

	// CacheKey derives the cache key for a request and a negotiated encoding.
	// The encoding must remain part of the key so one URL can cache one body
	// per content coding.
	// Default: path + query + encoding
	CacheKey func(r *http.Request, encoding string) string

	// Monitor is an optional parameter which will periodically report
	// statistics about the middleware to enable monitoring of compression
	// rate, cache efficiency and encoder error rate
	// Default: nil
	Monitor Monitor

	// Exposed determines whether to add a header to the response indicating
	// how the body was produced
	// Microcompress: ( COMPRESSED | CACHED | PASSTHROUGH )
	// Default: false
	Exposed bool
}

// DefaultMimeTypes are the media types compressed when Config.MimeTypes is
// empty.
var DefaultMimeTypes = []string{
	"text/html",
	"text/css",
	"text/xml",
	"application/json",
	"application/javascript",
}

// DefaultLevel is the compression level used when Config.Level is zero.
const DefaultLevel = 6

// DefaultMinSize is the minimum body size used when Config.MinSize is zero.
const DefaultMinSize = 500

// New creates and returns a configured microcompress instance.
// Configuration shape errors (invalid media types, negative minimum size,
// a level outside the range of a configured encoder) are reported here,
// never per-request.
func New(o Config) (*microcompress, error) {
	// Defaults
	m := &microcompress{
		Algorithms: o.Algorithms,
		MimeTypes:  o.MimeTypes,
		Level:      o.Level,
		MinSize:    o.MinSize,
		Driver:     o.Driver,
		CacheKey:   o.CacheKey,
		Monitor:    o.Monitor,
		Exposed:    o.Exposed,
	}
	if len(m.Algorithms) == 0 {
		m.Algorithms = []string{"gzip"}
	}
	if len(m.MimeTypes) == 0 {
		m.MimeTypes = DefaultMimeTypes
	}
	if m.Level == 0 {
		m.Level = DefaultLevel
	}
	if m.MinSize == 0 {
		m.MinSize = DefaultMinSize
	}
	if m.MinSize < 0 {
		return nil, fmt.Errorf("microcompress: negative MinSize %d", m.MinSize)
	}
	if m.CacheKey == nil {
		m.CacheKey = defaultCacheKey
	}

	m.catalog = newCatalog(m.Algorithms...)
	m.Algorithms = m.catalog

	m.mimes = make(map[string]bool, len(m.MimeTypes))
	for _, mt := range m.MimeTypes {
		normalized, err := normalizeMediaType(mt)
		if err != nil {
			return nil, err
		}
		m.mimes[normalized] = true
	}

	m.encoders = make(map[string]Encoder)
	for _, enc := range defaultEncoders() {
		m.encoders[enc.Token()] = enc
	}
	for _, enc := range o.Encoders {
		m.encoders[enc.Token()] = enc
	}
	for _, algo := range m.catalog {
		enc, ok := m.encoders[algo]
		if !ok {
			// Tokens without a linked encoder are allowed in the catalog.
			// They fall back to the uncompressed body if ever negotiated.
			continue
		}
		if err := enc.CheckLevel(m.Level); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Middleware can be used to wrap an HTTP handler with microcompress
// functionality. It can also be passed to http middleware providers
// like alice as a constructor.
//
//	mc, _ := microcompress.New(microcompress.Config{Algorithms: []string{"zstd", "gzip"}})
//	newHandler := mc.Middleware(yourHandler)
//
// Or with alice
//
//	chain.Append(mc.Middleware)
func (m *microcompress) Middleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Metadata request passthrough. An OPTIONS response is answered
		// without buffering or touching the body at all.
		if r.Method == http.MethodOptions {
			h.ServeHTTP(w, r)
			return
		}

		// Buffer the backend response. Holding the whole body means its
		// length is known before committing to either path, so the minimum
		// size decision never has to be reversed mid-stream.
		beres := newResponse()
		h.ServeHTTP(beres, r)

		m.finalize(w, r, beres)
	})
}

func (m *microcompress) finalize(w http.ResponseWriter, r *http.Request, beres *Response) {
	if !m.eligible(r, beres) {
		m.passthrough(w, beres)
		return
	}

	prefs := parseAcceptEncoding(r.Header.Get("Accept-Encoding"))
	encoding, ok := m.catalog.negotiate(prefs)

	// The response now depends on Accept-Encoding whether or not an
	// encoding was chosen. Caches must not serve a compressed body to a
	// client that cannot decode it.
	addVary(beres.header, "Accept-Encoding")

	if !ok {
		m.passthrough(w, beres)
		return
	}

	// Compressed body cache
	var body []byte
	var cached bool
	var key string
	if m.Driver != nil && r.Method == http.MethodGet {
		key = m.CacheKey(r, encoding)
		body, cached = m.Driver.Get(key)
	}

	if !cached {
		var err error
		body, err = m.encode(beres.body, encoding)
		if err != nil {
			// A failed encode is fatal for this response's compression
			// attempt only. Serve the original body rather than a corrupt
			// or partial payload.
			if m.Monitor != nil {
				m.Monitor.Error()
			}
			m.passthrough(w, beres)
			return
		}
		if key != "" {
			m.Driver.Set(key, body)
		}
	}

	if m.Monitor != nil {
		if cached {
			m.Monitor.CacheHit()
		} else {
			m.Monitor.Compressed()
		}
	}
	if m.Exposed {
		if cached {
			w.Header().Set("microcompress", "CACHED")
		} else {
			w.Header().Set("microcompress", "COMPRESSED")
		}
	}

	beres.body = body
	beres.header.Set("Content-Encoding", encoding)
	// Never leave a stale pre-compression length.
	beres.header.Set("Content-Length", strconv.Itoa(len(body)))
	beres.sendResponse(w)
}

func (m *microcompress) passthrough(w http.ResponseWriter, beres *Response) {
	if m.Monitor != nil {
		m.Monitor.Passthrough()
	}
	if m.Exposed {
		w.Header().Set("microcompress", "PASSTHROUGH")
	}
	beres.sendResponse(w)
}

func (m *microcompress) encode(body []byte, encoding string) ([]byte, error) {
	enc, ok := m.encoders[encoding]
	if !ok {
		return nil, EncodingError{Encoding: encoding, Err: errNoEncoder}
	}
	return enc.Encode(body, m.Level)
}

// Start begins the monitor reporting loop, if a monitor was configured.
func (m *microcompress) Start() {
	if m.Monitor == nil {
		return
	}
	m.stop = make(chan struct{})
	go func() {
		t := time.NewTicker(m.Monitor.GetInterval())
		defer t.Stop()
		for {
			select {
			case <-t.C:
				var size int
				if m.Driver != nil {
					size = m.Driver.GetSize()
				}
				m.Monitor.Log(Stats{Size: size})
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop halts the monitor reporting loop.
func (m *microcompress) Stop() {
	if m.stop != nil {
		close(m.stop)
		m.stop = nil
	}
}

func defaultCacheKey(r *http.Request, encoding string) string {
	return r.URL.Path + "?" + r.URL.RawQuery + "|" + encoding
}

// addVary appends a header name to Vary unless it is already listed or the
// response varies on everything.
func addVary(h http.Header, name string) {
	for _, v := range h.Values("Vary") {
		for _, field := range strings.Split(v, ",") {
			field = strings.TrimSpace(field)
			if field == "*" || strings.EqualFold(field, name) {
				return
			}
		}
	}
	h.Add("Vary", name)
}
