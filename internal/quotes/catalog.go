package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// StockListing is one instrument in the upstream reference catalog.
type StockListing struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// stockListResponse wraps the upstream catalog payload.
type stockListResponse struct {
	Data []StockListing `json:"data"`
}

// FetchStockList downloads the reference list of NASDAQ common stocks from
// the upstream /stocks endpoint. The catalog is large and carries no prices;
// it only maps symbols to display names.
func (c *TwelveDataClient) FetchStockList(ctx context.Context) ([]StockListing, error) {
	endpoint := c.baseURL + "/stocks?country=United%20States&exchange=NASDAQ&type=Common%20Stock"

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

	var payload stockListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("empty catalog response")
	}
	return payload.Data, nil
}
