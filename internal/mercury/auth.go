package mercury

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-http-utils/headers"
	"golang.org/x/oauth2"

	"github.com/grantsy/mercuryhook/internal/infra/config"
)

const (
	AuthMethodAPIToken = "api_token"
	AuthMethodOAuth2   = "oauth2"
)

// Auth decorates outgoing requests with Mercury credentials.
type Auth interface {
	Transport(ctx context.Context, base http.RoundTripper) http.RoundTripper
}

// NewAuth selects the credential strategy named by cfg.Method.
func NewAuth(cfg config.MercuryAuthConfig) (Auth, error) {
	switch cfg.Method {
	case AuthMethodAPIToken, "":
		if cfg.APIToken == "" {
			return nil, fmt.Errorf("mercury: api token is empty")
		}
		return APIToken(cfg.APIToken), nil
	case AuthMethodOAuth2:
		return &OAuth2{
			Config: &oauth2.Config{
				ClientID:     cfg.OAuth2.ClientID,
				ClientSecret: cfg.OAuth2.ClientSecret,
				Endpoint: oauth2.Endpoint{
					AuthURL:   cfg.OAuth2.AuthURL,
					TokenURL:  cfg.OAuth2.TokenURL,
					AuthStyle: oauth2.AuthStyleInHeader,
				},
				Scopes: cfg.OAuth2.Scopes,
			},
			Token: &oauth2.Token{
				AccessToken:  cfg.OAuth2.AccessToken,
				RefreshToken: cfg.OAuth2.RefreshToken,
				TokenType:    "Bearer",
			},
		}, nil
	default:
		return nil, fmt.Errorf("mercury: unsupported auth method: %s", cfg.Method)
	}
}

// APIToken authenticates with a static bearer token.
type APIToken string

func (t APIToken) Transport(_ context.Context, base http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		r = r.Clone(r.Context())
		r.Header.Set(headers.Authorization, "Bearer "+string(t))
		return base.RoundTrip(r)
	})
}

// OAuth2 authenticates with an access token, refreshing it through the token
// endpoint when it expires.
type OAuth2 struct {
	Config *oauth2.Config
	Token  *oauth2.Token
}

func (o *OAuth2) Transport(ctx context.Context, base http.RoundTripper) http.RoundTripper {
	// token refreshes use the same base transport
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: base})
	return &oauth2.Transport{
		Source: oauth2.ReuseTokenSource(o.Token, o.Config.TokenSource(ctx, o.Token)),
		Base:   base,
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
