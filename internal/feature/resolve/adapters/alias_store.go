// Package adapters provides the lookup-source implementations owned by the
// resolve feature itself (as opposed to the external API clients under
// internal/platform/externalapi).
package adapters

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"watchlist_backend/internal/feature/resolve/domain/entity"
	"watchlist_backend/internal/feature/resolve/usecase"
)

// AliasStore maps a local-language security name to a canonical ticker.
// The override document is re-read on every call so edits take effect
// without a restart; any read or parse failure falls back to the built-in
// default table and is never propagated.
type AliasStore struct {
	path  string
	names usecase.NameLookup
}

var _ usecase.SymbolSearcher = (*AliasStore)(nil)

// NewAliasStore creates an AliasStore backed by the JSON document at path.
// names is used to attach a display name before an alias hit is surfaced
// as a candidate.
func NewAliasStore(path string, names usecase.NameLookup) *AliasStore {
	return &AliasStore{path: path, names: names}
}

// Resolve looks up the trimmed name, then the name with internal whitespace
// stripped, and returns the mapped ticker if either key exists.
func (s *AliasStore) Resolve(localName string) (string, bool) {
	aliases := s.load()
	key := strings.TrimSpace(localName)
	if t, ok := aliases[key]; ok && t != "" {
		return strings.ToUpper(t), true
	}
	if t, ok := aliases[strings.ReplaceAll(key, " ", "")]; ok && t != "" {
		return strings.ToUpper(t), true
	}
	return "", false
}

// Search returns at most one candidate: the aliased ticker with its looked-up
// display name. If no name can be found the candidate is dropped entirely
// rather than surfaced with an empty name.
func (s *AliasStore) Search(ctx context.Context, query string) ([]entity.Candidate, error) {
	ticker, ok := s.Resolve(query)
	if !ok {
		return nil, nil
	}
	name, err := s.names.QuoteName(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, nil
	}
	return []entity.Candidate{{
		Ticker:   ticker,
		LongName: name,
		Source:   entity.SourceAlias,
	}}, nil
}

// load reads the override document, falling back to the defaults on any error.
func (s *AliasStore) load() map[string]string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return defaultAliases()
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return defaultAliases()
	}
	return m
}

// defaultAliases is the built-in Korean-name table used when the override
// document is absent or unreadable.
func defaultAliases() map[string]string {
	return map[string]string{
		"엔비디아":    "NVDA",
		"구글":      "GOOGL",
		"알파벳":     "GOOGL",
		"테슬라":     "TSLA",
		"마이크로소프트": "MSFT",
		"마소":      "MSFT",
		"애플":      "AAPL",
		"아마존":     "AMZN",
		"메타":      "META",
		"넷플릭스":    "NFLX",
		"일라이 릴리":  "LLY",
		"엘리 릴리":   "LLY",
		"엘라이 릴리":  "LLY",
		"애스멜":     "ASML",
		"브로드컴":    "AVGO",
		"노보 노디스크": "NVO",
	}
}
