// Package workflows exposes the activation API the host platform calls when a
// Mercury trigger node is switched on or off.
package workflows

import (
	"context"
	"net/url"
	"strings"

	"github.com/grantsy/mercuryhook/internal/dispatch"
	"github.com/grantsy/mercuryhook/internal/subscriptions"
	"github.com/grantsy/mercuryhook/internal/triggers"
)

// Lifecycle is satisfied by *subscriptions.Manager.
type Lifecycle interface {
	Exists(ctx context.Context, nodeID string) (bool, error)
	Get(ctx context.Context, nodeID string) (*subscriptions.Subscription, error)
	Create(ctx context.Context, nodeID, callbackURL string, triggerType triggers.Type) (*subscriptions.Subscription, error)
	Delete(ctx context.Context, nodeID string) bool
}

// TriggerView is a subscription as shown to API callers. The secret is never
// exposed.
type TriggerView struct {
	NodeID      string        `json:"node_id"                description:"Workflow node instance ID"`
	TriggerType triggers.Type `json:"trigger_type"           description:"Trigger type the node listens for"`
	WebhookID   string        `json:"webhook_id"             description:"Mercury webhook ID"`
	EventTypes  []string      `json:"event_types"            description:"Mercury event types subscribed to"`
	FilterPaths []string      `json:"filter_paths,omitempty" description:"Mercury filter paths sent with the subscription"`
	CreatedAt   int64         `json:"created_at"             description:"Unix time the webhook was registered"`
}

func ToTriggerView(sub *subscriptions.Subscription) TriggerView {
	v := TriggerView{
		NodeID:      sub.NodeID,
		TriggerType: sub.TriggerType,
		WebhookID:   sub.WebhookID,
		CreatedAt:   sub.CreatedAt,
	}
	if rule, ok := triggers.Lookup(sub.TriggerType); ok {
		v.EventTypes = rule.EventTypes
		v.FilterPaths = rule.FilterPaths
	}
	return v
}

// CallbackURL is where Mercury should deliver events for nodeID.
func CallbackURL(publicURL, nodeID string) string {
	path := strings.Replace(dispatch.Path, "{node_id}", url.PathEscape(nodeID), 1)
	return strings.TrimSuffix(publicURL, "/") + path
}
