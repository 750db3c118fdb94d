// Package usecase implements the business logic for symbol resolution:
// turning a free-text name or ticker into a list of candidate securities.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"watchlist_backend/internal/feature/resolve/domain/entity"
)

// MinQueryLen is the minimum query length (in runes) before any source is consulted.
const MinQueryLen = 2

// ErrQueryTooShort is returned when the query is shorter than MinQueryLen.
// It is distinct from an empty candidate list, which is a valid outcome.
var ErrQueryTooShort = errors.New("query too short")

// SymbolSearcher is the common capability of every lookup source.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform clients).
//
// Implementations report their own upstream failures as an error; the
// resolver collapses any error to "no results from this source" so that
// callers never see a source failure.
type SymbolSearcher interface {
	Search(ctx context.Context, query string) ([]entity.Candidate, error)
}

// NameLookup converts a ticker into a display name. An empty name with a
// nil error means the ticker could not be named by any source.
type NameLookup interface {
	QuoteName(ctx context.Context, ticker string) (string, error)
}

// Resolver runs the ordered set of lookup sources for a query and merges
// their candidates. Source priority is implicit in the ordering: for a
// Hangul query it is local exchange listing, autocomplete, alias, web-search
// scrape, then global search; for anything else only global search runs.
type Resolver struct {
	local        SymbolSearcher
	autocomplete SymbolSearcher
	alias        SymbolSearcher
	webSearch    SymbolSearcher
	global       SymbolSearcher
}

// NewResolver creates a Resolver with the given sources. A nil source is
// skipped, so partial wiring (e.g. in tests) is fine.
func NewResolver(local, autocomplete, alias, webSearch, global SymbolSearcher) *Resolver {
	return &Resolver{
		local:        local,
		autocomplete: autocomplete,
		alias:        alias,
		webSearch:    webSearch,
		global:       global,
	}
}

// ResolveCandidates returns the deduplicated candidate list for a free-text
// query. An empty list is a valid outcome, not an error; ErrQueryTooShort is
// returned without consulting any source when the query is under MinQueryLen.
func (r *Resolver) ResolveCandidates(ctx context.Context, query string) ([]entity.Candidate, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLen {
		return nil, ErrQueryTooShort
	}

	var order []SymbolSearcher
	if ContainsHangul(query) {
		order = []SymbolSearcher{r.local, r.autocomplete, r.alias, r.webSearch, r.global}
	} else {
		order = []SymbolSearcher{r.global}
	}

	var all []entity.Candidate
	for _, s := range order {
		if s == nil {
			continue
		}
		cands, err := s.Search(ctx, query)
		if err != nil {
			// A failed source contributes nothing for this call only.
			slog.Warn("symbol source failed", "query", query, "error", err)
			continue
		}
		all = append(all, cands...)
	}

	return Dedup(all), nil
}

// Dedup removes candidates sharing a canonical ticker, keeping the first
// occurrence, i.e. the metadata of the earliest-ordered source wins.
// Candidates with an empty ticker are dropped.
func Dedup(cands []entity.Candidate) []entity.Candidate {
	out := make([]entity.Candidate, 0, len(cands))
	seen := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		t := strings.ToUpper(strings.TrimSpace(c.Ticker))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		c.Ticker = t
		out = append(out, c)
	}
	return out
}

// ContainsHangul reports whether the text contains at least one character in
// the Hangul syllables block. It is the single branch point deciding which
// lookup sources run for a query.
func ContainsHangul(s string) bool {
	for _, r := range s {
		if r >= '가' && r <= '힣' {
			return true
		}
	}
	return false
}
