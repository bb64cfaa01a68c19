package microcompress

import (
	"testing"
)

// Equal qualities are broken by catalog order, not client order
func TestNegotiateTieBreak(t *testing.T) {
	c := newCatalog("gzip", "br", "zstd")
	prefs := parseAcceptEncoding("zstd;q=0.5, br;q=0.5, gzip;q=0.5")
	encoding, ok := c.negotiate(prefs)
	if !ok || encoding != "gzip" {
		t.Fatalf("tie should go to first catalog entry, got %q", encoding)
	}
}

// The highest client quality wins when qualities differ
func TestNegotiateQualityOrdering(t *testing.T) {
	c := newCatalog("zstd", "br", "gzip")
	prefs := parseAcceptEncoding("zstd;q=0.8, br;q=0.9, gzip;q=0.5")
	encoding, ok := c.negotiate(prefs)
	if !ok || encoding != "br" {
		t.Fatalf("highest quality should win, got %q", encoding)
	}
}

// A token without q defaults to 1.0 and beats an explicit 0.999
func TestNegotiateDefaultQualityIsOne(t *testing.T) {
	c := newCatalog("gzip", "br", "deflate")
	prefs := parseAcceptEncoding("deflate, br;q=0.999, gzip;q=0.5")
	encoding, ok := c.negotiate(prefs)
	if !ok || encoding != "deflate" {
		t.Fatalf("default quality 1.0 should beat 0.999, got %q", encoding)
	}
}

// An explicit q=0 is a rejection a wildcard cannot undo
func TestNegotiateExplicitRejection(t *testing.T) {
	c := newCatalog("gzip", "br")
	prefs := parseAcceptEncoding("gzip;q=0, *;q=1.0")
	encoding, ok := c.negotiate(prefs)
	if !ok || encoding != "br" {
		t.Fatalf("rejected gzip must not be selected, got %q ok=%v", encoding, ok)
	}
}

// A bare wildcard defaults to quality 0 and never displaces an
// explicit nonzero entry
func TestNegotiateBareWildcard(t *testing.T) {
	c := newCatalog("gzip", "br", "deflate")
	prefs := parseAcceptEncoding("br;q=0.001, *")
	encoding, ok := c.negotiate(prefs)
	if !ok || encoding != "br" {
		t.Fatalf("bare wildcard should not displace br, got %q ok=%v", encoding, ok)
	}
}

// A wildcard with nonzero quality admits catalog entries the client
// did not name, at the wildcard's quality
func TestNegotiateWildcardFallback(t *testing.T) {
	c := newCatalog("zstd", "br", "gzip")
	prefs := parseAcceptEncoding("alien-algo;q=0.9, *;q=0.1")
	encoding, ok := c.negotiate(prefs)
	if !ok || encoding != "zstd" {
		t.Fatalf("wildcard should admit first catalog entry, got %q", encoding)
	}
}

// A missing Accept-Encoding header never compresses
func TestNegotiateMissingHeader(t *testing.T) {
	c := newCatalog("gzip", "br", "zstd")
	if encoding, ok := c.negotiate(nil); ok {
		t.Fatalf("empty preferences should negotiate to none, got %q", encoding)
	}
}

// Tokens unknown to the catalog are never selected and never an error
func TestNegotiateUnsupportedTokens(t *testing.T) {
	c := newCatalog("gzip", "br")
	prefs := parseAcceptEncoding("alien-algo")
	if encoding, ok := c.negotiate(prefs); ok {
		t.Fatalf("unknown token should negotiate to none, got %q", encoding)
	}
	prefs = parseAcceptEncoding("future-algo, alien-algo, forbidden-algo")
	if encoding, ok := c.negotiate(prefs); ok {
		t.Fatalf("unknown tokens should negotiate to none, got %q", encoding)
	}
}

// The first occurrence of a repeated client token is authoritative
func TestNegotiateDuplicateToken(t *testing.T) {
	c := newCatalog("gzip", "br")
	prefs := parseAcceptEncoding("gzip;q=0, br;q=0.5, gzip;q=1")
	encoding, ok := c.negotiate(prefs)
	if !ok || encoding != "br" {
		t.Fatalf("first gzip entry rejects it, got %q ok=%v", encoding, ok)
	}
}

// The result is always a member of the catalog or none
func TestNegotiateResultMembership(t *testing.T) {
	catalogs := []catalog{
		newCatalog("gzip"),
		newCatalog("zstd", "br", "gzip"),
		newCatalog("deflate", "snappy"),
		newCatalog(),
	}
	headers := []string{
		"",
		"gzip",
		"br;q=0.9, gzip;q=0.1",
		"*;q=0.5",
		"alien-algo, zstd;q=0",
		"identity",
	}
	for _, c := range catalogs {
		members := make(map[string]bool)
		for _, algo := range c {
			members[algo] = true
		}
		for _, header := range headers {
			encoding, ok := c.negotiate(parseAcceptEncoding(header))
			if ok && !members[encoding] {
				t.Fatalf("negotiated %q not in catalog %v for header %q", encoding, c, header)
			}
			if !ok && encoding != "" {
				t.Fatalf("none result should carry no token, got %q", encoding)
			}
		}
	}
}
