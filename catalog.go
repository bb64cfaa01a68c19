package microcompress

import "strings"

// catalog is the server's ordered list of enabled content codings.
// Insertion order encodes server priority and is the sole tie-break
// authority during negotiation. Built once in New, never mutated, so it is
// safe to read from concurrent requests without locking.
type catalog []string

// newCatalog normalizes the configured algorithm list. Entries may
// themselves be comma-separated, so a single token, a comma-separated string
// and an explicit list all produce the same catalog. Entries are trimmed,
// lowercased and de-duplicated preserving first occurrence.
func newCatalog(algorithms ...string) catalog {
	var c catalog
	seen := make(map[string]bool)
	for _, entry := range algorithms {
		for _, algo := range strings.Split(entry, ",") {
			algo = strings.ToLower(strings.TrimSpace(algo))
			if algo == "" || seen[algo] {
				continue
			}
			seen[algo] = true
			c = append(c, algo)
		}
	}
	return c
}

// negotiate selects at most one catalog entry given the client's parsed
// preferences. The effective quality of a catalog entry is its explicit
// client quality if present, otherwise the wildcard quality if the client
// sent one, otherwise 0. Entries with effective quality 0 are unacceptable;
// an explicit q=0 is a rejection a wildcard cannot undo. Among the
// acceptable entries the highest effective quality wins, and exact ties go
// to the entry appearing earliest in the catalog (server priority, not
// client order).
//
// An empty preference list means the client sent no Accept-Encoding at all
// and never compresses, which is distinct from an explicit low-quality
// wildcard.
func (c catalog) negotiate(prefs []preference) (string, bool) {
	if len(prefs) == 0 {
		return "", false
	}

	explicit := make(map[string]float64, len(prefs))
	wildcard := -1.0
	for _, p := range prefs {
		if p.token == "*" {
			if wildcard < 0 {
				wildcard = p.quality
			}
			continue
		}
		// First occurrence of a repeated token is authoritative.
		if _, dup := explicit[p.token]; !dup {
			explicit[p.token] = p.quality
		}
	}

	var chosen string
	var best float64
	for _, algo := range c {
		quality, ok := explicit[algo]
		if !ok {
			if wildcard < 0 {
				continue
			}
			quality = wildcard
		}
		if quality <= 0 {
			continue
		}
		// Strict comparison in catalog order keeps the earliest entry on ties.
		if quality > best {
			best = quality
			chosen = algo
		}
	}
	return chosen, chosen != ""
}
