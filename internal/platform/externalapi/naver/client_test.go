package naver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"watchlist_backend/internal/feature/resolve/domain/entity"
)

func testClient(server *httptest.Server) *Client {
	cfg := Config{BaseURL: server.URL, UserAgent: "test-agent"}
	return NewClient(cfg, server.Client())
}

func TestClient_Search_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Path != "/ac" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("q") != "삼성" {
			t.Errorf("expected q 삼성, got %s", r.URL.Query().Get("q"))
		}
		if r.URL.Query().Get("st") != "111" {
			t.Errorf("expected st 111, got %s", r.URL.Query().Get("st"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [[
				["삼성전자", "005930", "KOSPI", "KOSPI"],
				["삼성에스디에스", "018260", "KOSPI", "KOSPI"],
				["셀트리온헬스케어", "091990", "KOSDAQ", "KOSDAQ"],
				["코드없음", "", "", ""]
			]]
		}`))
	}))
	defer server.Close()

	cands, err := testClient(server).Search(context.Background(), "삼성")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cands) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(cands))
	}
	want := entity.Candidate{Ticker: "005930.KS", LongName: "삼성전자", Exchange: "KOSPI", Source: entity.SourceAutocomplete}
	if cands[0] != want {
		t.Errorf("expected %+v, got %+v", want, cands[0])
	}
	if cands[2].Ticker != "091990.KQ" {
		t.Errorf("expected KOSDAQ suffix .KQ, got %q", cands[2].Ticker)
	}
}

func TestClient_Search_EmptyItems(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	cands, err := testClient(server).Search(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cands) != 0 {
		t.Errorf("expected no candidates, got %+v", cands)
	}
}

func TestClient_Search_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := testClient(server).Search(context.Background(), "삼성"); err == nil {
		t.Fatal("expected error for HTTP 503")
	}
}

func TestClient_Search_ShortEntryFallsBack(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Entry with only name and code: no market tag present.
		_, _ = w.Write([]byte(`{"items": [[["", "035420"]]]}`))
	}))
	defer server.Close()

	cands, err := testClient(server).Search(context.Background(), "네이버")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	// Missing name falls back to the query, missing market to .KQ and KRX.
	if cands[0].LongName != "네이버" {
		t.Errorf("expected name fallback to the query, got %q", cands[0].LongName)
	}
	if cands[0].Ticker != "035420.KQ" {
		t.Errorf("expected default suffix .KQ, got %q", cands[0].Ticker)
	}
	if cands[0].Exchange != "KRX" {
		t.Errorf("expected exchange fallback KRX, got %q", cands[0].Exchange)
	}
}
