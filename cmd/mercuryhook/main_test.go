package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantsy/mercuryhook/internal/dispatch"
	"github.com/grantsy/mercuryhook/internal/httptools"
	"github.com/grantsy/mercuryhook/internal/workflows"
)

type recordingDispatcher struct {
	nodeID string
}

func (d *recordingDispatcher) Dispatch(_ context.Context, nodeID, _ string, _ []byte) (dispatch.Result, error) {
	d.nodeID = nodeID
	return dispatch.Result{Outcome: dispatch.Suppressed}, nil
}

func newAuthedMux(d dispatch.DeliveryHandler) http.Handler {
	mux := http.NewServeMux()
	dispatch.NewRouteWebhook(d).Register(mux, nil)
	mux.HandleFunc("POST /v1/triggers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	return httptools.Wrap(mux, apiKeyMiddleware("secret-key", "/metrics"))
}

func TestAPIKeyMiddleware_WebhookDeliveriesBypassAuth(t *testing.T) {
	for _, nodeID := range []string{"node-1", "a/b", "with space"} {
		t.Run(nodeID, func(t *testing.T) {
			d := &recordingDispatcher{}
			h := newAuthedMux(d)

			req := httptest.NewRequest(
				http.MethodPost,
				workflows.CallbackURL("https://hooks.example.com", nodeID),
				strings.NewReader(`{}`),
			)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, "OK", w.Body.String())
			assert.Equal(t, nodeID, d.nodeID)
		})
	}
}

func TestAPIKeyMiddleware_ProtectsActivationAPI(t *testing.T) {
	h := newAuthedMux(&recordingDispatcher{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/triggers", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/triggers", nil)
	req.Header.Set("X-Api-Key", "secret-key")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}
