package dispatch

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/swaggest/openapi-go/openapi3"

	"github.com/grantsy/mercuryhook/internal/httptools"
	"github.com/grantsy/mercuryhook/internal/infra/logger"
	"github.com/grantsy/mercuryhook/internal/mercury"
	"github.com/grantsy/mercuryhook/internal/signature"
)

const (
	// Path is where Mercury delivers events for one trigger node.
	Path = "/v1/webhook/mercury/{node_id}"

	maxBodyBytes = 1 << 20

	bodyAccepted = "OK"
	bodyRejected = "Invalid signature"
)

// DeliveryHandler is satisfied by *Dispatcher.
type DeliveryHandler interface {
	Dispatch(ctx context.Context, nodeID, header string, body []byte) (Result, error)
}

type RouteWebhook struct {
	dispatcher DeliveryHandler
}

func NewRouteWebhook(dispatcher DeliveryHandler) *RouteWebhook {
	return &RouteWebhook{dispatcher: dispatcher}
}

func (route *RouteWebhook) Register(mux *http.ServeMux, _ *openapi3.Reflector) {
	mux.Handle("POST "+Path, route.Handler())
	// Webhook intentionally excluded from OpenAPI documentation
}

func (route *RouteWebhook) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		nodeID := r.PathValue("node_id")

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			log.Info("failed to read webhook payload", "node_id", nodeID, "error", err)
			httptools.BadRequest(w, r, "Unable to read request body")
			return
		}

		res, err := route.dispatcher.Dispatch(r.Context(), nodeID, r.Header.Get(signature.Header), body)
		if err != nil {
			route.writeError(w, r, err)
			return
		}

		switch res.Outcome {
		case Rejected:
			log.Info("webhook rejected", "node_id", nodeID)
			httptools.Text(w, http.StatusOK, bodyRejected)
		default:
			httptools.Text(w, http.StatusOK, bodyAccepted)
		}
	})
}

func (route *RouteWebhook) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	if errors.Is(err, ErrMalformedEvent) {
		log.Info("malformed webhook payload", "error", err)
		httptools.BadRequest(w, r, "Malformed event body")
		return
	}

	if errors.Is(err, ErrFetchFailed) {
		log.Warn("failed to fetch resource from mercury", "error", err)
		detail := "Mercury API request failed"
		if apiErr, ok := mercury.AsAPIError(err); ok {
			detail = apiErr.Error()
		}
		httptools.BadGateway(w, r, detail)
		return
	}

	log.Error("failed to dispatch webhook", "error", err)
	httptools.InternalError(w, r)
}
