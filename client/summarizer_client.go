// api/client/summarizer_client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/adaptivsec/vigil/api/model"
)

// SummarizerClient calls the AI incident-response summarizer with a finished
// conversation transcript and returns its structured analysis.
type SummarizerClient struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

func NewSummarizerClient(url, apiKey string, timeout time.Duration) *SummarizerClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SummarizerClient{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		apiKey:     apiKey,
	}
}

type summarizeRequest struct {
	Messages []model.ConversationMessage `json:"messages"`
}

// Summarize posts the transcript and decodes the summarizer's verdict.
func (c *SummarizerClient) Summarize(ctx context.Context, messages []model.ConversationMessage) (*model.ConversationSummary, error) {
	body, err := json.Marshal(summarizeRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summarize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build summarize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("summarizer returned status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var summary model.ConversationSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode summarizer response: %w", err)
	}
	return &summary, nil
}
