package usecase

import (
	"context"
	"strings"

	"watchlist_backend/internal/feature/resolve/domain/entity"
)

const (
	// SuffixKospi is appended to codes listed on the primary board.
	SuffixKospi = ".KS"
	// SuffixKosdaq is appended to codes on any other board.
	SuffixKosdaq = ".KQ"
	// codeWidth is the fixed width raw listing codes are zero-padded to.
	codeWidth = 6
)

// ListingRepository abstracts the bulk local-exchange listing snapshot.
// There is no incremental query: one call returns the full table.
type ListingRepository interface {
	Listing(ctx context.Context) ([]entity.ListedSecurity, error)
}

// ListingSearcher matches a query against the local exchange listing by
// case- and whitespace-insensitive substring match on the name column.
type ListingSearcher struct {
	listings ListingRepository
}

var _ SymbolSearcher = (*ListingSearcher)(nil)

// NewListingSearcher creates a ListingSearcher over the given snapshot source.
func NewListingSearcher(listings ListingRepository) *ListingSearcher {
	return &ListingSearcher{listings: listings}
}

// Search returns a candidate for every listed name containing the query.
func (s *ListingSearcher) Search(ctx context.Context, query string) ([]entity.Candidate, error) {
	rows, err := s.listings.Listing(ctx)
	if err != nil {
		return nil, err
	}

	key := normalizeListingKey(query)
	if key == "" {
		return nil, nil
	}

	var out []entity.Candidate
	for _, row := range rows {
		if row.Code == "" {
			continue
		}
		if !strings.Contains(normalizeListingKey(row.Name), key) {
			continue
		}
		name := row.Name
		if name == "" {
			name = query
		}
		out = append(out, entity.Candidate{
			Ticker:   MarketTicker(row.Code, row.Market),
			LongName: name,
			Exchange: row.Market,
			Source:   entity.SourceLocalExchange,
		})
	}
	return out, nil
}

// MarketTicker builds a canonical ticker from a raw listing code and market
// label: the code is left-zero-padded to six digits and suffixed .KS when the
// market label contains the KOSPI keyword, .KQ otherwise.
func MarketTicker(code, market string) string {
	code = strings.TrimSpace(code)
	for len(code) < codeWidth {
		code = "0" + code
	}
	suffix := SuffixKosdaq
	if strings.Contains(strings.ToUpper(market), "KOSPI") {
		suffix = SuffixKospi
	}
	return strings.ToUpper(code + suffix)
}

// normalizeListingKey lowercases and strips all spaces for matching.
func normalizeListingKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}
