package webhooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/google/uuid"
	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"

	"github.com/grantsy/mercuryhook/internal/infra/metrics"
)

// Worker sends queued payloads to the workflow engine intake
type Worker struct {
	url    string
	signer *standardwebhooks.Webhook
	client *http.Client
	now    func() time.Time
}

// NewWorker creates a worker posting to url, signing with secret
// (a Standard Webhooks "whsec_..." key).
func NewWorker(url, secret string) (*Worker, error) {
	signer, err := standardwebhooks.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("webhooks: invalid engine secret: %w", err)
	}
	return &Worker{
		url:    url,
		signer: signer,
		client: &http.Client{Timeout: 15 * time.Second},
		now:    time.Now,
	}, nil
}

// Handle processes an engine delivery job from the queue
func (w *Worker) Handle(ctx context.Context, body []byte) error {
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		// retrying cannot fix a corrupt message
		slog.Error("dropping undecodable engine payload", "error", err)
		return nil
	}

	return w.send(ctx, payload, body)
}

func (w *Worker) send(ctx context.Context, payload Payload, body []byte) error {
	msgID := uuid.New().String()
	ts := w.now()
	signature, err := w.signer.Sign(msgID, ts, body)
	if err != nil {
		return fmt.Errorf("webhooks: failed to sign payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		w.url,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("webhooks: failed to create request: %w", err)
	}

	req.Header.Set(headers.ContentType, "application/json")
	req.Header.Set("webhook-id", msgID)
	req.Header.Set("webhook-timestamp", fmt.Sprint(ts.Unix()))
	req.Header.Set("webhook-signature", signature)

	start := time.Now()
	resp, err := w.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordEngineDelivery(false, duration)
		return fmt.Errorf("webhooks: engine request failed: %w", err)
	}
	defer resp.Body.Close()

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	metrics.RecordEngineDelivery(success, duration)

	if success {
		slog.Debug(
			"resource delivered to engine",
			"node_id", payload.NodeID,
			"trigger_type", payload.TriggerType,
			"status", resp.StatusCode,
		)
		return nil
	}

	return fmt.Errorf("webhooks: engine responded with status %d", resp.StatusCode)
}
