// api/client/voice_client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// signedURLPayload is the untyped provisioning response. The provider has
// shipped both field spellings; the adapter below keeps that ambiguity from
// leaking past this file.
type signedURLPayload struct {
	SignedURLCamel string `json:"signedUrl"`
	SignedURLSnake string `json:"signed_url"`
}

// signedURLFrom picks the first non-empty variant.
func signedURLFrom(p signedURLPayload) string {
	if p.SignedURLCamel != "" {
		return p.SignedURLCamel
	}
	return p.SignedURLSnake
}

// VoiceClient mints ephemeral signed session URLs from the voice provider.
// With no API key configured the client is disabled and must never be
// called; callers check Enabled first.
type VoiceClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewVoiceClient(baseURL, apiKey string) *VoiceClient {
	return &VoiceClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *VoiceClient) Enabled() bool {
	return c.apiKey != ""
}

// GetSignedURL requests a signed conversation URL for the agent.
func (c *VoiceClient) GetSignedURL(ctx context.Context, agentID string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/convai/conversation/get_signed_url?agent_id=%s",
		strings.TrimRight(c.baseURL, "/"), url.QueryEscape(agentID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build signed URL request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("signed URL request returned status %d", resp.StatusCode)
	}

	var payload signedURLPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode signed URL response: %w", err)
	}

	signedURL := signedURLFrom(payload)
	if signedURL == "" {
		return "", fmt.Errorf("signed URL response contained no URL")
	}
	return signedURL, nil
}
