package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 120 * time.Second

// Client fetches hadith editions from the upstream CDN.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a CDN client. baseURL is the versioned root of the
// hadith-api repository, e.g.
// https://cdn.jsdelivr.net/gh/fawazahmed0/hadith-api@1
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// FetchEdition downloads and decodes one edition, e.g. "ara-bukhari".
func (c *Client) FetchEdition(ctx context.Context, edition string) (*Edition, error) {
	url := fmt.Sprintf("%s/editions/%s.json", c.baseURL, edition)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", edition, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", edition, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", edition, err)
	}

	var ed Edition
	if err := json.Unmarshal(body, &ed); err != nil {
		return nil, fmt.Errorf("decode %s: %w", edition, err)
	}
	return &ed, nil
}
