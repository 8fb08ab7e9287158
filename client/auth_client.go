// api/client/auth_client.go
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// AuthClient calls the upstream token-validation service. The response body
// is not load-bearing; the status code alone decides validity.
type AuthClient struct {
	httpClient     *http.Client
	defaultBaseURL string
}

func NewAuthClient(defaultBaseURL string) *AuthClient {
	return &AuthClient{
		httpClient:     &http.Client{},
		defaultBaseURL: defaultBaseURL,
	}
}

// Validate performs GET {base}/auth/validate with the bearer token. baseURL
// overrides the configured default when non-empty. A non-2xx status is a
// definitive invalid verdict, not an error; only transport failures return
// a non-nil error.
func (c *AuthClient) Validate(ctx context.Context, baseURL, token string) (bool, error) {
	base := c.defaultBaseURL
	if baseURL != "" {
		base = baseURL
	}
	url := fmt.Sprintf("%s/auth/validate", strings.TrimRight(base, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build validation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}
