package webhooks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iamolegga/goqite"
	"github.com/iamolegga/goqite/jobs"

	"github.com/grantsy/mercuryhook/internal/infra/metrics"
	"github.com/grantsy/mercuryhook/internal/triggers"
)

// JobName is the jobs runner name engine deliveries are registered under.
const JobName = "engine"

// Service queues forwarded resources for delivery to the workflow engine
type Service struct {
	queue *goqite.Queue
	now   func() time.Time
}

// NewService creates a new emitter service
func NewService(queue *goqite.Queue) *Service {
	return &Service{queue: queue, now: time.Now}
}

// Emit queues exactly one message carrying resource for nodeID.
func (s *Service) Emit(
	ctx context.Context,
	nodeID string,
	triggerType triggers.Type,
	resource json.RawMessage,
) error {
	payload := Payload{
		NodeID:      nodeID,
		TriggerType: string(triggerType),
		Resource:    resource,
		DeliveredAt: s.now().Unix(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhooks: failed to encode payload: %w", err)
	}

	if _, err := jobs.Create(ctx, s.queue, JobName, goqite.Message{Body: body}); err != nil {
		return fmt.Errorf("webhooks: failed to queue payload: %w", err)
	}

	metrics.RecordEngineQueued(string(triggerType))
	return nil
}
