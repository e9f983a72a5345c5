package voyage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	// Model is the embedding model used for transcript search.
	Model = "voyage-3"

	// Endpoint is the Voyage AI embeddings API endpoint.
	Endpoint = "https://api.voyageai.com/v1/embeddings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// New creates a new Voyage client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("voyage: API key is required")
	}
	return &Client{
		apiKey:     apiKey,
		endpoint:   Endpoint,
		httpClient: &http.Client{},
	}, nil
}

// SetEndpoint overrides the API endpoint. Used in tests.
func (c *Client) SetEndpoint(url string) {
	c.endpoint = url
}

// Embed generates embeddings for the given texts.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("voyage: at least one text is required")
	}

	reqBody := Request{
		Input: texts,
		Model: Model,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call Voyage API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Voyage API returned status: %d, body: %s", resp.StatusCode, string(raw))
	}

	var parsedResp Response
	if err := json.NewDecoder(resp.Body).Decode(&parsedResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Voyage response: %w", err)
	}

	embeddings := make([][]float32, len(parsedResp.Data))
	for i, item := range parsedResp.Data {
		embeddings[i] = item.Embedding
	}

	return embeddings, nil
}

// EmbedOne generates an embedding for a single text.
func (c *Client) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := c.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("voyage: empty embedding response")
	}
	return embeddings[0], nil
}
