package webhooks

import "encoding/json"

// Payload is what the workflow engine receives for one forwarded delivery.
type Payload struct {
	NodeID      string          `json:"node_id"`
	TriggerType string          `json:"trigger_type"`
	Resource    json.RawMessage `json:"resource"`
	DeliveredAt int64           `json:"delivered_at"`
}
