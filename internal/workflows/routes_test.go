package workflows_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/grantsy/mercuryhook/internal/httptools"
	"github.com/grantsy/mercuryhook/internal/mercury"
	"github.com/grantsy/mercuryhook/internal/subscriptions"
	"github.com/grantsy/mercuryhook/internal/triggers"
	"github.com/grantsy/mercuryhook/internal/workflows"
	"github.com/grantsy/mercuryhook/internal/workflows/mocks"

	_ "github.com/grantsy/mercuryhook/internal/infra/validation"
)

const publicURL = "https://hooks.example.com"

func newMux(t *testing.T) (*http.ServeMux, *mocks.MockLifecycle) {
	t.Helper()
	lc := mocks.NewMockLifecycle(t)
	mux := http.NewServeMux()
	reflector := openapi3.NewReflector()
	for _, route := range []httptools.Route{
		workflows.NewRouteActivate(lc, publicURL),
		workflows.NewRouteDeactivate(lc),
		workflows.NewRouteStatus(lc),
		workflows.NewRouteTriggerTypes(),
	} {
		route.Register(mux, reflector)
	}
	return mux, lc
}

func do(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp httptools.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "unexpected body %s", w.Body.String())
	return data
}

func settledSub(nodeID string) *subscriptions.Subscription {
	return &subscriptions.Subscription{
		NodeID:      nodeID,
		TriggerType: triggers.TransactionSettled,
		WebhookID:   "wh_1",
		Secret:      "sec_1",
		CreatedAt:   1700000000,
	}
}

func TestCallbackURL(t *testing.T) {
	assert.Equal(t,
		"https://hooks.example.com/v1/webhook/mercury/node-1",
		workflows.CallbackURL("https://hooks.example.com/", "node-1"),
	)
	assert.Equal(t,
		"https://hooks.example.com/v1/webhook/mercury/a%2Fb",
		workflows.CallbackURL("https://hooks.example.com", "a/b"),
	)
}

func TestRouteActivate_Creates(t *testing.T) {
	mux, lc := newMux(t)
	lc.EXPECT().Exists(mock.Anything, "node-1").Return(false, nil)
	lc.EXPECT().Create(mock.Anything, "node-1",
		"https://hooks.example.com/v1/webhook/mercury/node-1",
		triggers.TransactionSettled,
	).Return(settledSub("node-1"), nil)

	w := do(mux, http.MethodPost, "/v1/triggers", `{"node_id":"node-1","trigger_type":"transactionSettled"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["created"])

	trigger := data["trigger"].(map[string]any)
	assert.Equal(t, "wh_1", trigger["webhook_id"])
	assert.Equal(t, "transactionSettled", trigger["trigger_type"])
	assert.Equal(t, []any{"transaction.updated"}, trigger["event_types"])
	assert.Equal(t, []any{"transaction.status"}, trigger["filter_paths"])
	assert.NotContains(t, w.Body.String(), "sec_1")
}

func TestRouteActivate_AlreadyActive(t *testing.T) {
	mux, lc := newMux(t)
	lc.EXPECT().Exists(mock.Anything, "node-1").Return(true, nil)
	lc.EXPECT().Get(mock.Anything, "node-1").Return(settledSub("node-1"), nil)

	w := do(mux, http.MethodPost, "/v1/triggers", `{"node_id":"node-1","trigger_type":"transactionSettled"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeData(t, w)["created"])
	lc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRouteActivate_UpstreamFailure(t *testing.T) {
	mux, lc := newMux(t)
	lc.EXPECT().Exists(mock.Anything, "node-1").Return(false, nil)
	lc.EXPECT().Create(mock.Anything, "node-1", mock.Anything, triggers.AccountBalanceUpdated).
		Return(nil, &mercury.APIError{
			StatusCode:  400,
			Message:     "Invalid webhook URL",
			Description: "URL must be https",
		})

	w := do(mux, http.MethodPost, "/v1/triggers", `{"node_id":"node-1","trigger_type":"accountBalanceUpdated"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp httptools.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error.Detail, "Invalid webhook URL")
	assert.Contains(t, resp.Error.Detail, "URL must be https")
}

func TestRouteActivate_StoreFailure(t *testing.T) {
	mux, lc := newMux(t)
	lc.EXPECT().Exists(mock.Anything, "node-1").Return(false, errors.New("db down"))

	w := do(mux, http.MethodPost, "/v1/triggers", `{"node_id":"node-1","trigger_type":"transactionCreated"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouteActivate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown_trigger_type", `{"node_id":"node-1","trigger_type":"transactionRefunded"}`},
		{"missing_node_id", `{"trigger_type":"transactionCreated"}`},
		{"missing_trigger_type", `{"node_id":"node-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := newMux(t)
			w := do(mux, http.MethodPost, "/v1/triggers", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func TestRouteActivate_AcceptsEveryTriggerType(t *testing.T) {
	for _, name := range triggers.Types() {
		t.Run(name, func(t *testing.T) {
			mux, lc := newMux(t)
			lc.EXPECT().Exists(mock.Anything, "node-1").Return(true, nil)
			lc.EXPECT().Get(mock.Anything, "node-1").Return(settledSub("node-1"), nil)

			w := do(mux, http.MethodPost, "/v1/triggers",
				`{"node_id":"node-1","trigger_type":"`+name+`"}`)
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		})
	}
}

func TestRouteActivate_UnknownTriggerTypeMessage(t *testing.T) {
	mux, _ := newMux(t)
	w := do(mux, http.MethodPost, "/v1/triggers", `{"node_id":"node-1","trigger_type":"transactionRefunded"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	for _, name := range triggers.Types() {
		assert.Contains(t, w.Body.String(), name)
	}
}

func TestRouteDeactivate(t *testing.T) {
	for _, ok := range []bool{true, false} {
		mux, lc := newMux(t)
		lc.EXPECT().Delete(mock.Anything, "node-1").Return(ok)

		w := do(mux, http.MethodDelete, "/v1/triggers/node-1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, ok, decodeData(t, w)["deregistered"])
	}
}

func TestRouteStatus_Active(t *testing.T) {
	mux, lc := newMux(t)
	lc.EXPECT().Get(mock.Anything, "node-1").Return(settledSub("node-1"), nil)

	w := do(mux, http.MethodGet, "/v1/triggers/node-1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["active"])
	assert.Equal(t, "wh_1", data["trigger"].(map[string]any)["webhook_id"])
}

func TestRouteStatus_Inactive(t *testing.T) {
	mux, lc := newMux(t)
	lc.EXPECT().Get(mock.Anything, "node-2").Return(nil, nil)

	w := do(mux, http.MethodGet, "/v1/triggers/node-2", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, false, data["active"])
	assert.Contains(t, data, "trigger")
	assert.Nil(t, data["trigger"])
}

func TestRouteTriggerTypes(t *testing.T) {
	mux, _ := newMux(t)

	w := do(mux, http.MethodGet, "/v1/trigger-types", "")

	assert.Equal(t, http.StatusOK, w.Code)
	list := decodeData(t, w)["trigger_types"].([]any)
	require.Len(t, list, 6)

	first := list[0].(map[string]any)
	assert.Equal(t, "accountBalanceUpdated", first["type"])
	assert.Equal(t, "/account/{resourceId}", first["resource_endpoint"])
	assert.Equal(t,
		[]any{"checkingAccount.balance.updated", "savingsAccount.balance.updated"},
		first["event_types"],
	)
}
