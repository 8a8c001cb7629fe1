package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultCSEBaseURL = "https://www.googleapis.com/customsearch/v1"

// cseClient is a thin Google Custom Search wrapper shared by the
// domain-restricted adapters. All failures map to an empty item list.
type cseClient struct {
	client   *http.Client
	apiKey   string
	engineID string
	baseURL  string
}

type cseItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

func newCSEClient(apiKey, engineID string) *cseClient {
	return &cseClient{
		client:   newHTTPClient(15 * time.Second),
		apiKey:   apiKey,
		engineID: engineID,
		baseURL:  defaultCSEBaseURL,
	}
}

func (c *cseClient) configured() bool {
	return c.apiKey != "" && c.engineID != ""
}

func (c *cseClient) search(ctx context.Context, query string, num int) []cseItem {
	api := fmt.Sprintf("%s?key=%s&cx=%s&q=%s&num=%d",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(c.engineID),
		url.QueryEscape(query), num)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("Custom search request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Custom search returned status %d", resp.StatusCode)
		return nil
	}

	var payload struct {
		Items []cseItem `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Custom search returned malformed payload: %v", err)
		return nil
	}

	return payload.Items
}
