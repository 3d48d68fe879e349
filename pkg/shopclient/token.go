package shopclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// expirySkew is subtracted from the reported token lifetime so we refresh
// before the upstream actually cuts us off.
const expirySkew = 30 * time.Second

// TokenSource caches an OAuth2 client-credentials token for the shopping
// API. It is an owned, injected object rather than package state so each
// wired client is independently testable. Safe for concurrent use.
type TokenSource struct {
	httpClient   *http.Client
	tokenURL     string
	clientID     string
	clientSecret string

	mu          sync.Mutex
	accessToken string
	expiry      time.Time

	now func() time.Time
}

func NewTokenSource(httpClient *http.Client, baseURL, clientID, clientSecret string) *TokenSource {
	return &TokenSource{
		httpClient:   httpClient,
		tokenURL:     baseURL + "/v1/security/oauth2/token",
		clientID:     clientID,
		clientSecret: clientSecret,
		now:          time.Now,
	}
}

// Token returns the cached access token, refreshing it when missing or
// within the expiry skew.
func (t *TokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.accessToken != "" && t.now().Before(t.expiry) {
		return t.accessToken, nil
	}

	if err := t.refreshLocked(ctx); err != nil {
		return "", err
	}
	return t.accessToken, nil
}

// Invalidate drops the cached token, forcing a refresh on the next Token
// call. Used after an upstream 401 on a token we believed valid.
func (t *TokenSource) Invalidate() {
	t.mu.Lock()
	t.accessToken = ""
	t.expiry = time.Time{}
	t.mu.Unlock()
}

func (t *TokenSource) refreshLocked(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", t.clientID)
	form.Set("client_secret", t.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request rejected (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	t.accessToken = result.AccessToken
	t.expiry = t.now().Add(time.Duration(result.ExpiresIn)*time.Second - expirySkew)
	return nil
}
