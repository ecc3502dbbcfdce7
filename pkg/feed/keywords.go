package feed

import "strings"

// KeywordTable maps an upper-case ticker symbol to the search aliases the
// backend indexes mentions under.
type KeywordTable map[string][]string

// DefaultKeywordTable is the alias table used when configuration supplies none.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		"NVDA": {"nvidia", "nvda"},
		"TSLA": {"tesla", "tsla"},
		"AAPL": {"apple", "aapl"},
	}
}

// Keywords returns the lower-case keyword set for subjects. Mapped tickers
// expand to their aliases; unknown subjects stand for themselves. Order
// follows first occurrence and duplicates are dropped.
func (t KeywordTable) Keywords(subjects ...string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(k string) {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}

	for _, subject := range subjects {
		subject = strings.TrimSpace(subject)
		if subject == "" {
			continue
		}
		aliases, ok := t[strings.ToUpper(subject)]
		if !ok || len(aliases) == 0 {
			add(subject)
			continue
		}
		for _, alias := range aliases {
			add(alias)
		}
	}
	return out
}

// Query joins the keyword set for subjects with commas, the form the
// backend expects in its keywords parameter.
func (t KeywordTable) Query(subjects ...string) string {
	return strings.Join(t.Keywords(subjects...), ",")
}

// Normalize returns a copy of t with upper-case keys, suitable for tables
// read from configuration where key case is not preserved.
func (t KeywordTable) Normalize() KeywordTable {
	out := make(KeywordTable, len(t))
	for ticker, aliases := range t {
		out[strings.ToUpper(ticker)] = append([]string(nil), aliases...)
	}
	return out
}
