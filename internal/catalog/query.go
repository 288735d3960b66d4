// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// baseStopWords are filler tokens dropped from every query regardless of
// adapter. Adapters extend this list with dataset-specific noise words
// ("mobile", "fashion", ...) via stopWordSet.
var baseStopWords = []string{
	"under", "below", "less", "than", "upto", "up", "to",
	"find", "show", "get", "want", "need", "looking", "for",
}

// stopWordSet builds a lookup set from the base stop words plus extras.
func stopWordSet(extra ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(baseStopWords)+len(extra))
	for _, w := range baseStopWords {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		set[w] = struct{}{}
	}
	return set
}

// compilePriceClause builds the pattern that recognizes an embedded price
// ceiling ("under ₹20,000", "less than 500", "<= $1,000"). The currency
// symbol is optional in the query text.
func compilePriceClause(currency string) *regexp.Regexp {
	return regexp.MustCompile(`(under|below|less than|upto|up to|≤|<=|<)\s*` +
		regexp.QuoteMeta(currency) + `?([\d,]+)`)
}

// Precompiled clauses for the two currencies the datasets use.
var (
	priceClauseINR = compilePriceClause("₹")
	priceClauseUSD = compilePriceClause("$")
)

// queryConfig parameterizes parseQuery per adapter: which currency symbol
// may prefix the ceiling amount and which tokens are noise.
type queryConfig struct {
	priceClause *regexp.Regexp
	stopWords   map[string]struct{}
}

// parsedQuery is the result of free-text query parsing: an optional price
// ceiling and an ordered, lowercased keyword sequence.
type parsedQuery struct {
	priceLimit int
	hasLimit   bool
	keywords   []string
}

// parseQuery extracts the price ceiling and keyword set from a free-text
// query. The first price clause wins; keywords come from the text before
// it. Tokens in the stop-word set or shorter than three characters are
// dropped. Purely functional: a degenerate query yields an empty keyword
// set, never an error.
func parseQuery(text string, cfg queryConfig) parsedQuery {
	lower := strings.ToLower(text)

	var q parsedQuery
	main := lower
	if m := cfg.priceClause.FindStringSubmatchIndex(lower); m != nil {
		digits := strings.ReplaceAll(lower[m[4]:m[5]], ",", "")
		if limit, err := strconv.Atoi(digits); err == nil {
			q.priceLimit = limit
			q.hasLimit = true
		}
		main = strings.TrimSpace(lower[:m[0]])
	}

	for _, tok := range strings.Fields(main) {
		if _, stop := cfg.stopWords[tok]; stop {
			continue
		}
		if utf8.RuneCountInString(tok) < 3 {
			continue
		}
		q.keywords = append(q.keywords, tok)
	}
	return q
}

// matchCount reports how many distinct keywords occur as substrings of the
// searchable text. Duplicate keywords count once.
func matchCount(keywords []string, text string) int {
	seen := make(map[string]struct{}, len(keywords))
	count := 0
	for _, kw := range keywords {
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
