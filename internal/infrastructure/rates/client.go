package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/you/currencysvc/domain"
)

// ClientImpl implements domain.RateClient against an HTTPS rate-table API
// keyed by an API key header. The response body is a JSON object with a
// "rates" mapping from currency symbol to numeric rate.
type ClientImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	symbol     string
}

type rateTable struct {
	Rates map[string]float64 `json:"rates"`
}

// NewClient creates a new exchange rate client. symbol defaults to "SLE"
// when empty.
func NewClient(baseURL, apiKey, symbol string) domain.RateClient {
	if symbol == "" {
		symbol = "SLE"
	}
	return &ClientImpl{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		symbol:     symbol,
	}
}

// Convert implements domain.RateClient. amountUsd must be strictly positive;
// the caller enforces this before invocation. The converted amount is rounded
// to 2 decimal places, half away from zero. No retry, no caching: upstream
// failures surface synchronously to the caller.
func (c *ClientImpl) Convert(ctx context.Context, amountUsd float64) (*domain.Conversion, error) {
	url := fmt.Sprintf("%s/latest?base=USD&symbols=%s", c.baseURL, c.symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRateUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrRateUpstream, resp.StatusCode)
	}

	var table rateTable
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rate table: %v", domain.ErrRateUpstream, err)
	}

	rate, ok := table.Rates[c.symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRateUnavailable, c.symbol)
	}

	return &domain.Conversion{
		AmountUsd:    amountUsd,
		AmountSll:    math.Round(amountUsd*rate*100) / 100,
		ExchangeRate: rate,
		Timestamp:    time.Now().UTC(),
	}, nil
}
