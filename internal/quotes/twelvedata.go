package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxResponseBytes bounds how much of an upstream response body is read.
const maxResponseBytes = 1 << 20

// TwelveDataClient fetches current prices from the Twelve Data /price
// endpoint. One call issues exactly one batched GET for all requested
// symbols; there is no retry and no way to abort an issued request beyond
// the context and client timeout.
type TwelveDataClient struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	apiKey     string
}

// NewTwelveDataClient creates a quote client for the given base URL and API key.
func NewTwelveDataClient(httpClient *http.Client, baseURL, apiKey string) *TwelveDataClient {
	return &TwelveDataClient{httpClient: httpClient, baseURL: baseURL, apiKey: apiKey}
}

// apiError is the explicit error body the upstream returns instead of quotes,
// e.g. when the request quota is exhausted.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// singlePrice is the response shape when exactly one symbol was requested.
type singlePrice struct {
	Price *float64 `json:"price"`
}

// FetchPrices fetches current prices for the given symbols in one request.
// The upstream responds with a bare price object for a single symbol and a
// per-symbol nested object for several; both shapes are decoded into one
// canonical symbol-to-price map before anything else touches the data. The
// returned map may cover only a subset of the requested symbols. A transport
// failure, a non-200 status, an upstream error body, or an undecodable body
// fails the whole call.
func (c *TwelveDataClient) FetchPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	prices := make(map[string]float64, len(symbols))
	if len(symbols) == 0 {
		return prices, nil
	}

	endpoint := fmt.Sprintf("%s/price?symbol=%s&apikey=%s",
		c.baseURL,
		url.QueryEscape(strings.Join(symbols, ",")),
		url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	// The error body shape is the same regardless of how many symbols were
	// requested, so check it before branching on cardinality.
	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Code != 0 && apiErr.Code != http.StatusOK {
		return nil, fmt.Errorf("upstream error %d: %s", apiErr.Code, apiErr.Message)
	}

	if len(symbols) == 1 {
		var single singlePrice
		if err := json.Unmarshal(body, &single); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
		if single.Price != nil {
			prices[symbols[0]] = *single.Price
		}
		return prices, nil
	}

	var multi map[string]json.RawMessage
	if err := json.Unmarshal(body, &multi); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	for _, symbol := range symbols {
		raw, ok := multi[symbol]
		if !ok {
			continue
		}
		var entry singlePrice
		// A malformed per-symbol entry drops that symbol, not the batch.
		if err := json.Unmarshal(raw, &entry); err != nil || entry.Price == nil {
			continue
		}
		prices[symbol] = *entry.Price
	}
	return prices, nil
}
