package collector

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const stooqSample = `Date,Open,High,Low,Close,Volume
2024-01-02,100,105,99,102,1000
2024-01-03,102,108,101,107,2000
2024-01-04,107,107,103,104,1500
`

func TestStooqFetcher_FetchDailyBars(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		fmt.Fprint(w, stooqSample)
	}))
	defer srv.Close()

	f := NewStooqFetcher("")
	f.BaseURL = srv.URL

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	bars, err := f.FetchDailyBars("GC=F", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("got %d bars, want 3", len(bars))
	}
	if !strings.Contains(gotURL, "s=xauusd") {
		t.Errorf("request %q should use the stooq alias xauusd", gotURL)
	}
	if !strings.Contains(gotURL, "d1=20240101") || !strings.Contains(gotURL, "d2=20240105") {
		t.Errorf("request %q missing inclusive date bounds", gotURL)
	}
	if bars[2].Close != 104 {
		t.Errorf("bars[2].Close = %v, want 104", bars[2].Close)
	}
}

func TestStooqFetcher_EmptyBodyIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "Date,Open,High,Low,Close,Volume\n")
	}))
	defer srv.Close()

	f := NewStooqFetcher("")
	f.BaseURL = srv.URL

	_, err := f.FetchDailyBars("NOPE",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))

	var noData *NoDataError
	if !errors.As(err, &noData) {
		t.Fatalf("got %T (%v), want *NoDataError", err, err)
	}
}

func TestStooqFetcher_ServerErrorIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewStooqFetcher("")
	f.BaseURL = srv.URL

	_, err := f.FetchDailyBars("GC=F",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))

	var provider *ProviderError
	if !errors.As(err, &provider) {
		t.Fatalf("got %T (%v), want *ProviderError", err, err)
	}
}

func TestParseStooqCSV_MissingColumn(t *testing.T) {
	_, err := parseStooqCSV(strings.NewReader("Date,Open,High,Low\n2024-01-02,1,2,3\n"))
	if err == nil {
		t.Fatal("expected error for missing close column")
	}
}

func TestParseStooqCSV_SkipsPlaceholderRows(t *testing.T) {
	bars, err := parseStooqCSV(strings.NewReader(
		"Date,Open,High,Low,Close,Volume\nNo data,-,-,-,-,-\n2024-01-02,100,105,99,102,1000\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("got %d bars, want 1", len(bars))
	}
}
