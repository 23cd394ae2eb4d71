package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// OddsAPIFetcher implements Fetcher against The Odds API v4.
type OddsAPIFetcher struct {
	BaseURL string
	APIKey  string
	Region  string
	Client  *http.Client
}

// NewOddsAPIFetcher creates a fetcher with a bounded request timeout.
func NewOddsAPIFetcher(baseURL, apiKey, region string, timeout time.Duration) *OddsAPIFetcher {
	if region == "" {
		region = "eu"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &OddsAPIFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Region:  region,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (f *OddsAPIFetcher) Name() string { return "the-odds-api" }

// FetchOdds issues one GET for the sport key requesting h2h and totals
// markets in decimal format.
func (f *OddsAPIFetcher) FetchOdds(ctx context.Context, sportKey string) ([]RawEvent, error) {
	q := url.Values{}
	q.Set("apiKey", f.APIKey)
	q.Set("regions", f.Region)
	q.Set("markets", "h2h,totals")
	q.Set("oddsFormat", "decimal")
	endpoint := fmt.Sprintf("%s/v4/sports/%s/odds?%s", f.BaseURL, sportKey, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch odds: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch odds: status %d, body: %s", resp.StatusCode, string(body))
	}
	var events []RawEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode odds: %w", err)
	}
	return events, nil
}
