// Package dispatch turns a verified Mercury delivery into at most one resource
// handed to the workflow engine.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/grantsy/mercuryhook/internal/infra/logger"
	"github.com/grantsy/mercuryhook/internal/infra/metrics"
	"github.com/grantsy/mercuryhook/internal/subscriptions"
	"github.com/grantsy/mercuryhook/internal/triggers"
)

type Outcome string

const (
	Forwarded  Outcome = "forwarded"
	Suppressed Outcome = "suppressed"
	Rejected   Outcome = "rejected"
)

var (
	ErrMalformedEvent = errors.New("dispatch: malformed event body")
	ErrFetchFailed    = errors.New("dispatch: failed to fetch resource")
)

type Subscriptions interface {
	Get(ctx context.Context, nodeID string) (*subscriptions.Subscription, error)
}

type Verifier interface {
	Verify(ctx context.Context, header string, body []byte, secret string) bool
}

type Fetcher interface {
	GetResource(ctx context.Context, path string) (json.RawMessage, error)
}

type Emitter interface {
	Emit(ctx context.Context, nodeID string, triggerType triggers.Type, resource json.RawMessage) error
}

// Result describes what happened to one delivery.
type Result struct {
	Outcome     Outcome
	TriggerType triggers.Type
	ResourceID  string
	Resource    json.RawMessage
}

// Event is the part of a Mercury webhook body dispatch looks at.
type Event struct {
	ResourceID string      `json:"resourceId"`
	MergePatch *MergePatch `json:"mergePatch,omitempty"`
}

type MergePatch struct {
	Status *string `json:"status,omitempty"`
}

func (e Event) status() (string, bool) {
	if e.MergePatch == nil || e.MergePatch.Status == nil {
		return "", false
	}
	return *e.MergePatch.Status, true
}

type Dispatcher struct {
	subs     Subscriptions
	verifier Verifier
	fetcher  Fetcher
	emitter  Emitter
}

func NewDispatcher(subs Subscriptions, verifier Verifier, fetcher Fetcher, emitter Emitter) *Dispatcher {
	return &Dispatcher{subs: subs, verifier: verifier, fetcher: fetcher, emitter: emitter}
}

// Dispatch verifies a raw delivery for nodeID and, if it passes the trigger's
// status filter, fetches the referenced resource and emits it.
//
// Rejected and Suppressed are normal outcomes and come back with a nil error.
// An error means the delivery failed and the provider should retry it.
func (d *Dispatcher) Dispatch(ctx context.Context, nodeID, header string, body []byte) (Result, error) {
	ctx = logger.With(ctx, "node_id", nodeID)
	log := logger.FromContext(ctx)

	sub, err := d.subs.Get(ctx, nodeID)
	if err != nil {
		return Result{}, fmt.Errorf("dispatch: failed to load subscription: %w", err)
	}

	// an unknown node is verified against an empty secret and always rejected
	var secret string
	var triggerType triggers.Type
	if sub != nil {
		secret = sub.Secret
		triggerType = sub.TriggerType
	}

	if !d.verifier.Verify(ctx, header, body, secret) {
		metrics.RecordDelivery(string(triggerType), string(Rejected))
		return Result{Outcome: Rejected, TriggerType: triggerType}, nil
	}

	rule, ok := triggers.Lookup(triggerType)
	if !ok {
		// acknowledged so Mercury stops retrying a delivery that can never succeed
		log.Error("subscription has unknown trigger type, delivery dropped",
			"trigger_type", triggerType,
		)
		metrics.RecordDelivery(string(triggerType), string(Suppressed))
		return Result{Outcome: Suppressed, TriggerType: triggerType}, nil
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		metrics.RecordDelivery(string(triggerType), "failed")
		return Result{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	if event.ResourceID == "" {
		metrics.RecordDelivery(string(triggerType), "failed")
		return Result{}, fmt.Errorf("%w: missing resourceId", ErrMalformedEvent)
	}

	res := Result{TriggerType: triggerType, ResourceID: event.ResourceID}

	if rule.StatusFilter != "" {
		status, present := event.status()
		if !present || status != rule.StatusFilter {
			log.Debug("delivery suppressed by status filter",
				"resource_id", event.ResourceID,
				"status", status,
				"want", rule.StatusFilter,
			)
			metrics.RecordDelivery(string(triggerType), string(Suppressed))
			res.Outcome = Suppressed
			return res, nil
		}
	}

	resource, err := d.fetcher.GetResource(ctx, rule.Endpoint(event.ResourceID))
	if err != nil {
		metrics.RecordDelivery(string(triggerType), "failed")
		return Result{}, fmt.Errorf("%w %s: %w", ErrFetchFailed, event.ResourceID, err)
	}

	if err := d.emitter.Emit(ctx, nodeID, triggerType, resource); err != nil {
		metrics.RecordDelivery(string(triggerType), "failed")
		return Result{}, fmt.Errorf("dispatch: failed to emit resource %s: %w", event.ResourceID, err)
	}

	metrics.RecordDelivery(string(triggerType), string(Forwarded))
	log.Info("delivery forwarded",
		"trigger_type", triggerType,
		"resource_id", event.ResourceID,
	)

	res.Outcome = Forwarded
	res.Resource = resource
	return res, nil
}
