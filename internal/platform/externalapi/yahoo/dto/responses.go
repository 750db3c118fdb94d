// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// SearchResponse represents the JSON response from the quote-search endpoint.
type SearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		LongName  string `json:"longname"`
		ShortName string `json:"shortname"`
		ExchDisp  string `json:"exchDisp"`
		Exchange  string `json:"exchange"`
	} `json:"quotes"`
}

// QuoteResponse represents the JSON response from the batch quote-snapshot
// endpoint (v7/finance/quote).
type QuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			LongName  string `json:"longName"`
			ShortName string `json:"shortName"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// QuoteSummaryResponse represents the JSON response from the per-ticker
// summary endpoint (v10/finance/quoteSummary) with the price module.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
				MarketCap struct {
					Raw *float64 `json:"raw"`
				} `json:"marketCap"`
			} `json:"price"`
		} `json:"result"`
	} `json:"quoteSummary"`
}

// ChartResponse represents the JSON response from the daily-bar history
// endpoint (v8/finance/chart). Close and volume series carry nulls for days
// the upstream has no figure.
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}
