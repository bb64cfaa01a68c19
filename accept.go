package microcompress

import (
	"strconv"
	"strings"
)

// preference is one comma-separated item of an Accept-Encoding header:
// a content coding token and the quality the client assigned to it.
type preference struct {
	token   string
	quality float64
}

// parseAcceptEncoding parses an Accept-Encoding header value into an ordered
// preference list. Tokens are lowercased. A missing q parameter defaults to
// 1.0, except for the wildcard "*" which defaults to 0.0: a bare wildcard at
// the end of a header signals "anything else is minimally acceptable", not
// "anything is fully acceptable". A malformed q value demotes that item to
// quality 0 rather than failing the whole header. An empty header yields nil,
// which negotiate treats as "no compression requested".
func parseAcceptEncoding(header string) []preference {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}
	items := strings.Split(header, ",")
	prefs := make([]preference, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		token := item
		params := ""
		if i := strings.Index(item, ";"); i >= 0 {
			token = strings.TrimSpace(item[:i])
			params = item[i+1:]
		}
		if token == "" {
			continue
		}
		quality, explicit := parseQuality(params)
		if !explicit && token == "*" {
			quality = 0
		}
		prefs = append(prefs, preference{token: token, quality: quality})
	}
	return prefs
}

// parseQuality extracts the q parameter from a parameter list such as
// "q=0.8" or "q=1;ext=foo". Parameters other than q are ignored. Returns
// the quality clamped to [0, 1] and whether a q parameter was present.
// A q parameter that fails to parse counts as present with quality 0.
func parseQuality(params string) (quality float64, explicit bool) {
	quality = 1.0
	for _, param := range strings.Split(params, ";") {
		param = strings.TrimSpace(param)
		val, ok := strings.CutPrefix(param, "q=")
		if !ok {
			continue
		}
		explicit = true
		q, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, true
		}
		if q < 0 {
			q = 0
		}
		if q > 1 {
			q = 1
		}
		return q, true
	}
	return quality, explicit
}
