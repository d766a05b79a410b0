// Package auth exchanges client credentials for scoped access tokens.
package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	internalhttp "github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// Static errors for err113 compliance.
var (
	ErrNoAccessToken = errors.New("token response has no access_token")
)

// TokenResponse is the body returned by the token endpoint.
type TokenResponse struct {
	AccessToken *string `json:"access_token"`
	TokenType   string  `json:"token_type,omitempty"`
	ExpiresIn   int     `json:"expires_in,omitempty"`
	Scope       string  `json:"scope,omitempty"`
}

// Provider fetches client-credentials tokens. Every call is a full round
// trip to the token endpoint; nothing is cached.
type Provider struct {
	httpClient   *internalhttp.Client
	clientID     string
	clientSecret string
}

// NewProvider creates a provider that requests tokens from host.
func NewProvider(host, clientID, clientSecret string, opts ...internalhttp.Option) *Provider {
	return &Provider{
		httpClient:   internalhttp.NewClient(host, nil, opts...),
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Token returns a fresh access token for scope.
func (p *Provider) Token(ctx context.Context, scope domo.Scope) (string, error) {
	query := url.Values{}
	query.Set("grant_type", "client_credentials")
	query.Set("scope", string(scope))

	credentials := base64.StdEncoding.EncodeToString([]byte(p.clientID + ":" + p.clientSecret))

	resp, err := p.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodGet,
		Path:    constants.TokenPath,
		Query:   query,
		Headers: map[string]string{"Authorization": "Basic " + credentials},
	})
	if err != nil {
		return "", fmt.Errorf("requesting %s token: %w", scope, err)
	}

	var tokenResp TokenResponse

	err = json.Unmarshal(resp.Body, &tokenResp)
	if err != nil {
		return "", fmt.Errorf("parsing token response: %w", err)
	}

	if tokenResp.AccessToken == nil || *tokenResp.AccessToken == "" {
		return "", ErrNoAccessToken
	}

	return *tokenResp.AccessToken, nil
}

// ForScope returns a token source bound to scope.
func (p *Provider) ForScope(scope domo.Scope) *ScopedTokenSource {
	return &ScopedTokenSource{provider: p, scope: scope}
}

// ScopedTokenSource requests a new token for one scope on every call.
type ScopedTokenSource struct {
	provider *Provider
	scope    domo.Scope
}

// GetToken implements http.TokenSource.
func (s *ScopedTokenSource) GetToken(ctx context.Context) (string, error) {
	return s.provider.Token(ctx, s.scope)
}

// Scope returns the scope the source is bound to.
func (s *ScopedTokenSource) Scope() domo.Scope {
	return s.scope
}
