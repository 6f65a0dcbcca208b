package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// TokenSource yields an OAuth access token for the Sheets API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token forever. Used in local setups
// where an access token is provided directly.
type StaticTokenSource struct {
	AccessToken string
}

func (s *StaticTokenSource) Token(_ context.Context) (string, error) {
	if s.AccessToken == "" {
		return "", fmt.Errorf("sheets: no access token configured")
	}
	return s.AccessToken, nil
}

// ConnectorTokenSource fetches short-lived access tokens from the hosting
// platform's connector endpoint and caches them until shortly before expiry.
type ConnectorTokenSource struct {
	connectorURL   string
	connectorToken string
	httpClient     *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewConnectorTokenSource(connectorURL, connectorToken string) *ConnectorTokenSource {
	return &ConnectorTokenSource{
		connectorURL:   connectorURL,
		connectorToken: connectorToken,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
	}
}

type connectorResponse struct {
	Items []struct {
		Settings struct {
			AccessToken string `json:"access_token"`
			ExpiresAt   string `json:"expires_at"`
			OAuth       struct {
				Credentials struct {
					AccessToken string `json:"access_token"`
				} `json:"credentials"`
			} `json:"oauth"`
		} `json:"settings"`
	} `json:"items"`
}

func (s *ConnectorTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 30s of slack so a token about to expire is never handed out.
	if s.token != "" && time.Now().Add(30*time.Second).Before(s.expiresAt) {
		return s.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.connectorURL+"/api/v2/connection?include_secrets=true&connector_names=google-sheet", nil)
	if err != nil {
		return "", fmt.Errorf("sheets: build connector request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X_REPLIT_TOKEN", s.connectorToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sheets: connector request: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("sheets: read connector response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sheets: connector HTTP %d", resp.StatusCode)
	}

	var parsed connectorResponse
	if err := json.Unmarshal(rawBody, &parsed); err != nil {
		return "", fmt.Errorf("sheets: parse connector response: %w", err)
	}
	if len(parsed.Items) == 0 {
		return "", fmt.Errorf("sheets: spreadsheet not connected")
	}

	settings := parsed.Items[0].Settings
	token := settings.AccessToken
	if token == "" {
		token = settings.OAuth.Credentials.AccessToken
	}
	if token == "" {
		return "", fmt.Errorf("sheets: connector returned no access token")
	}

	s.token = token
	s.expiresAt = time.Now().Add(50 * time.Minute)
	if settings.ExpiresAt != "" {
		if exp, err := time.Parse(time.RFC3339, settings.ExpiresAt); err == nil {
			s.expiresAt = exp
		}
	}
	return s.token, nil
}
