// Package entity defines the domain models for the resolve feature.
package entity

// Source identifies which lookup source produced a candidate.
type Source string

const (
	SourceAlias         Source = "ALIAS"
	SourceLocalExchange Source = "LOCAL_EXCHANGE"
	SourceAutocomplete  Source = "AUTOCOMPLETE"
	SourceWebSearch     Source = "WEB_SEARCH"
	SourceGlobalSearch  Source = "GLOBAL_SEARCH"
)

// Candidate is one proposed identification of a security returned by a
// lookup source. Ticker is always uppercase. Candidates are built per
// resolution call and never persisted.
type Candidate struct {
	Ticker   string
	LongName string
	Exchange string
	Source   Source
}

// ListedSecurity is one row of the local exchange listing snapshot:
// raw symbol code, display name and market segment label.
type ListedSecurity struct {
	Code   string
	Name   string
	Market string
}
