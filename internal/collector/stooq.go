package collector

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"GoldTrack/internal/model"
)

const stooqBaseURL = "https://stooq.com"

// StooqFetcher implements Fetcher using the Stooq daily CSV endpoint.
// It serves as the alternate data source when Yahoo is not wanted.
type StooqFetcher struct {
	BaseURL   string
	Client    *http.Client
	SymbolMap map[string]string
}

// NewStooqFetcher creates a new Stooq fetcher with optional proxy support.
func NewStooqFetcher(proxyURL string) *StooqFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &StooqFetcher{
		BaseURL: stooqBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		SymbolMap: map[string]string{
			"GC=F":   "xauusd",
			"GOLD":   "xauusd",
			"XAUUSD": "xauusd",
		},
	}
}

func (f *StooqFetcher) Name() string { return "stooq" }

func (f *StooqFetcher) stooqSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return strings.ToLower(symbol)
}

// FetchDailyBars requests daily bars for [start, end]. Stooq's d1/d2 bounds
// are both inclusive.
func (f *StooqFetcher) FetchDailyBars(symbol string, start, end time.Time) ([]model.Bar, error) {
	u := fmt.Sprintf("%s/q/d/l/?s=%s&d1=%s&d2=%s&i=d",
		f.BaseURL, url.QueryEscape(f.stooqSymbol(symbol)),
		start.Format("20060102"), end.Format("20060102"))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, &ProviderError{Source: f.Name(), Err: err}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &ProviderError{Source: f.Name(), Err: fmt.Errorf("fetch: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{Source: f.Name(), Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	bars, err := parseStooqCSV(resp.Body)
	if err != nil {
		return nil, &ProviderError{Source: f.Name(), Err: err}
	}
	if len(bars) == 0 {
		return nil, &NoDataError{Symbol: symbol, Start: start, End: end}
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return dedupeDates(bars), nil
}

// parseStooqCSV reads the "Date,Open,High,Low,Close,Volume" payload.
// Columns are located by header name, not position.
func parseStooqCSV(r io.Reader) ([]model.Bar, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := make(map[string]int)
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range []string{"date", "open", "high", "low", "close"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var bars []model.Bar
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		date, err := time.ParseInLocation("2006-01-02", record[idx["date"]], time.UTC)
		if err != nil {
			continue // e.g. "No data" placeholder rows
		}
		o, err1 := strconv.ParseFloat(record[idx["open"]], 64)
		h, err2 := strconv.ParseFloat(record[idx["high"]], 64)
		l, err3 := strconv.ParseFloat(record[idx["low"]], 64)
		c, err4 := strconv.ParseFloat(record[idx["close"]], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}

		var vol float64
		if vi, ok := idx["volume"]; ok && vi < len(record) {
			vol, _ = strconv.ParseFloat(record[vi], 64)
		}

		bars = append(bars, model.Bar{
			Date: date, Open: o, High: h, Low: l, Close: c, Volume: vol,
		})
	}
	return bars, nil
}
