package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grantsy/mercuryhook/internal/infra/logger"
	"github.com/grantsy/mercuryhook/internal/infra/metrics"
	"github.com/grantsy/mercuryhook/internal/mercury"
	"github.com/grantsy/mercuryhook/internal/triggers"
)

// Store persists subscription state per workflow node.
type Store interface {
	// Get returns nil, nil when nothing is stored for nodeID.
	Get(ctx context.Context, nodeID string) (*Subscription, error)
	Set(ctx context.Context, sub *Subscription) error
	Clear(ctx context.Context, nodeID string) error
}

// Registrar registers webhooks with Mercury.
type Registrar interface {
	CreateWebhook(ctx context.Context, req mercury.CreateWebhookRequest) (*mercury.Webhook, error)
	DeleteWebhook(ctx context.Context, id string) error
}

var ErrInvalidTriggerType = errors.New("subscriptions: invalid trigger type")

// Manager creates and tears down the Mercury webhook backing a trigger node.
type Manager struct {
	store     Store
	registrar Registrar
	now       func() time.Time
}

func NewManager(store Store, registrar Registrar) *Manager {
	return &Manager{store: store, registrar: registrar, now: time.Now}
}

// Exists reports whether a webhook id is stored for nodeID.
func (m *Manager) Exists(ctx context.Context, nodeID string) (bool, error) {
	sub, err := m.store.Get(ctx, nodeID)
	if err != nil {
		return false, fmt.Errorf("subscriptions: failed to load state: %w", err)
	}
	return sub != nil && sub.WebhookID != "", nil
}

// Get returns the stored subscription or nil.
func (m *Manager) Get(ctx context.Context, nodeID string) (*Subscription, error) {
	sub, err := m.store.Get(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("subscriptions: failed to load state: %w", err)
	}
	return sub, nil
}

// Create registers a webhook for triggerType pointing at callbackURL and
// stores the returned id and secret. Callers check Exists first; Create itself
// always registers a new webhook.
func (m *Manager) Create(
	ctx context.Context,
	nodeID, callbackURL string,
	triggerType triggers.Type,
) (*Subscription, error) {
	log := logger.FromContext(ctx)

	rule, ok := triggers.Lookup(triggerType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTriggerType, triggerType)
	}

	req := mercury.CreateWebhookRequest{
		URL:        callbackURL,
		EventTypes: rule.EventTypes,
	}
	if len(rule.FilterPaths) > 0 {
		req.FilterPaths = rule.FilterPaths
	}

	wh, err := m.registrar.CreateWebhook(ctx, req)
	if err != nil {
		metrics.RecordSubscriptionOp("create", false)
		return nil, fmt.Errorf("subscriptions: failed to register webhook: %w", err)
	}

	sub := &Subscription{
		NodeID:      nodeID,
		TriggerType: triggerType,
		WebhookID:   wh.ID,
		Secret:      wh.Secret,
		CreatedAt:   m.now().Unix(),
	}
	if err := m.store.Set(ctx, sub); err != nil {
		metrics.RecordSubscriptionOp("create", false)
		// the secret is gone with this process, so the webhook is useless
		if delErr := m.registrar.DeleteWebhook(ctx, wh.ID); delErr != nil {
			log.Warn("failed to roll back webhook registration",
				"node_id", nodeID,
				"webhook_id", wh.ID,
				"error", delErr,
			)
		}
		return nil, fmt.Errorf("subscriptions: failed to store subscription: %w", err)
	}

	metrics.RecordSubscriptionOp("create", true)
	log.Info("webhook registered",
		"node_id", nodeID,
		"webhook_id", wh.ID,
		"trigger_type", triggerType,
	)
	return sub, nil
}

// Delete deregisters the node's webhook and clears local state. It never
// returns an error so deactivation cannot be blocked; the result is false when
// the remote call (or reading state) failed. Local state is cleared either way.
func (m *Manager) Delete(ctx context.Context, nodeID string) bool {
	log := logger.FromContext(ctx)
	ok := true

	sub, err := m.store.Get(ctx, nodeID)
	if err != nil {
		log.Warn("failed to load subscription state", "node_id", nodeID, "error", err)
		ok = false
	}

	if sub != nil && sub.WebhookID != "" {
		if err := m.registrar.DeleteWebhook(ctx, sub.WebhookID); err != nil {
			log.Warn("failed to deregister webhook",
				"node_id", nodeID,
				"webhook_id", sub.WebhookID,
				"error", err,
			)
			ok = false
		}
		metrics.RecordSubscriptionOp("delete", ok)
	}

	if err := m.store.Clear(ctx, nodeID); err != nil {
		log.Error("failed to clear subscription state", "node_id", nodeID, "error", err)
		ok = false
	}

	return ok
}
