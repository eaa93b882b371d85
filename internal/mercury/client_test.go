package mercury_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantsy/mercuryhook/internal/infra/config"
	"github.com/grantsy/mercuryhook/internal/mercury"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *mercury.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return mercury.NewClient(context.Background(), mercury.Options{
		BaseURL: srv.URL + "/api/v1",
		Auth:    mercury.APIToken("tok_123"),
		Timeout: 5 * time.Second,
	})
}

func TestCreateWebhook(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/webhooks", r.URL.Path)
		assert.Equal(t, "Bearer tok_123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://hooks.example/v1/webhook/mercury/node-1", body["url"])
		assert.Equal(t, []any{"transaction.updated"}, body["eventTypes"])
		assert.Equal(t, []any{"transaction.status"}, body["filterPaths"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"wh_1","secret":"sec_1","url":"https://hooks.example","status":"active"}`))
	})

	wh, err := client.CreateWebhook(context.Background(), mercury.CreateWebhookRequest{
		URL:         "https://hooks.example/v1/webhook/mercury/node-1",
		EventTypes:  []string{"transaction.updated"},
		FilterPaths: []string{"transaction.status"},
	})
	require.NoError(t, err)
	assert.Equal(t, "wh_1", wh.ID)
	assert.Equal(t, "sec_1", wh.Secret)
}

func TestCreateWebhook_OmitsEmptyFilterPaths(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		_, has := body["filterPaths"]
		assert.False(t, has)
		w.Write([]byte(`{"id":"wh_1","secret":"sec_1"}`))
	})

	_, err := client.CreateWebhook(context.Background(), mercury.CreateWebhookRequest{
		URL:        "https://hooks.example",
		EventTypes: []string{"transaction.created"},
	})
	require.NoError(t, err)
}

func TestCreateWebhook_MissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"secret":"sec_1"}`))
	})

	_, err := client.CreateWebhook(context.Background(), mercury.CreateWebhookRequest{URL: "https://x", EventTypes: []string{"a"}})
	assert.Error(t, err)
}

func TestCreateWebhook_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid url","description":"url must be https"}`))
	})

	_, err := client.CreateWebhook(context.Background(), mercury.CreateWebhookRequest{URL: "http://x", EventTypes: []string{"a"}})
	require.Error(t, err)

	apiErr, ok := mercury.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid url", apiErr.Message)
	assert.Equal(t, "url must be https", apiErr.Description)
}

func TestAPIError_NonJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.GetResource(context.Background(), "/transaction/tx_1")
	apiErr, ok := mercury.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
	assert.Equal(t, "upstream exploded", apiErr.Description)
	assert.Contains(t, apiErr.Error(), "502")
}

func TestAPIError_NestedErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":{"message":"token revoked"}}`))
	})

	err := client.TestCredentials(context.Background())
	apiErr, ok := mercury.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "token revoked", apiErr.Message)
}

func TestDeleteWebhook(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/webhooks/wh_1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteWebhook(context.Background(), "wh_1"))
	assert.True(t, called)
}

func TestGetResource_ReturnsRawJSON(t *testing.T) {
	payload := `{"id":"tx_1","amount":-12.5,"status":"settled"}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/transaction/tx_1", r.URL.Path)
		w.Write([]byte(payload))
	})

	raw, err := client.GetResource(context.Background(), "/transaction/tx_1")
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(raw))
}

func TestGetResource_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := mercury.NewClient(context.Background(), mercury.Options{BaseURL: srv.URL})
	_, err := client.GetResource(context.Background(), "/transaction/tx_1")
	require.Error(t, err)
	_, ok := mercury.AsAPIError(err)
	assert.False(t, ok)
}

func TestTestCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts", r.URL.Path)
		w.Write([]byte(`{"accounts":[]}`))
	})

	assert.NoError(t, client.TestCredentials(context.Background()))
}

func TestNewAuth(t *testing.T) {
	auth, err := mercury.NewAuth(config.MercuryAuthConfig{Method: "api_token", APIToken: "tok"})
	require.NoError(t, err)
	assert.Equal(t, mercury.APIToken("tok"), auth)

	_, err = mercury.NewAuth(config.MercuryAuthConfig{Method: "api_token"})
	assert.Error(t, err)

	auth, err = mercury.NewAuth(config.MercuryAuthConfig{
		Method: "oauth2",
		OAuth2: config.MercuryOAuth2Config{AccessToken: "at", TokenURL: "https://oauth2.example/token"},
	})
	require.NoError(t, err)
	assert.IsType(t, &mercury.OAuth2{}, auth)

	_, err = mercury.NewAuth(config.MercuryAuthConfig{Method: "basic"})
	assert.Error(t, err)
}

func TestOAuth2_SendsAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at_live", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	auth, err := mercury.NewAuth(config.MercuryAuthConfig{
		Method: "oauth2",
		OAuth2: config.MercuryOAuth2Config{AccessToken: "at_live", TokenURL: srv.URL + "/token"},
	})
	require.NoError(t, err)

	client := mercury.NewClient(context.Background(), mercury.Options{BaseURL: srv.URL, Auth: auth})
	require.NoError(t, client.TestCredentials(context.Background()))
}

func TestOAuth2_RefreshesExpiredToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt_1", r.PostForm.Get("refresh_token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at_fresh","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("GET /accounts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at_fresh", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	auth, err := mercury.NewAuth(config.MercuryAuthConfig{
		Method: "oauth2",
		OAuth2: config.MercuryOAuth2Config{
			ClientID:     "cid",
			ClientSecret: "csecret",
			TokenURL:     srv.URL + "/token",
			RefreshToken: "rt_1",
		},
	})
	require.NoError(t, err)

	client := mercury.NewClient(context.Background(), mercury.Options{BaseURL: srv.URL, Auth: auth})
	require.NoError(t, client.TestCredentials(context.Background()))
}

func TestRateLimit_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client := mercury.NewClient(context.Background(), mercury.Options{BaseURL: srv.URL, RateLimit: 0.001})
	require.NoError(t, client.TestCredentials(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, client.TestCredentials(ctx))
}
