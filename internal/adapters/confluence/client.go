package confluence

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"confex/internal/domain"
	"confex/internal/ports"
)

// Client fetches pages from the Confluence REST content API using Basic
// authentication (username + API token).
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// Ensure Client implements ContentFetcher
var _ ports.ContentFetcher = (*Client)(nil)

// NewClient creates a client for the given Confluence instance. baseURL must
// already be validated and have no trailing slash.
func NewClient(baseURL, username, apiToken string) *Client {
	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + apiToken))
	return &Client{
		baseURL:    baseURL,
		authHeader: "Basic " + credentials,
		httpClient: http.DefaultClient,
	}
}

// GetPage returns the page record for the given ID, including the rendered
// HTML body.
func (c *Client) GetPage(ctx context.Context, pageID string) (*domain.Page, error) {
	url := fmt.Sprintf("%s/rest/api/content/%s?expand=body.view,space", c.baseURL, pageID)

	var resp pageResponse
	if err := c.getJSON(ctx, url, pageID, &resp); err != nil {
		return nil, err
	}

	return &domain.Page{
		ID:       resp.ID,
		Title:    resp.Title,
		HTMLBody: resp.Body.View.Value,
	}, nil
}

// GetChildPages returns the immediate children of the given page in server
// order.
func (c *Client) GetChildPages(ctx context.Context, pageID string) ([]domain.ChildRef, error) {
	url := fmt.Sprintf("%s/rest/api/content/%s/child/page", c.baseURL, pageID)

	var resp childListResponse
	if err := c.getJSON(ctx, url, pageID, &resp); err != nil {
		return nil, err
	}

	children := make([]domain.ChildRef, 0, len(resp.Results))
	for _, r := range resp.Results {
		children = append(children, domain.ChildRef{ID: r.ID, Title: r.Title})
	}
	return children, nil
}

func (c *Client) getJSON(ctx context.Context, url, pageID string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			PageID:     pageID,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type pageResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  struct {
		View struct {
			Value string `json:"value"`
		} `json:"view"`
	} `json:"body"`
}

type childListResponse struct {
	Results []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"results"`
}
