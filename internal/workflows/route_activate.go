package workflows

import (
	"net/http"

	"github.com/iamolegga/valmid"
	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/grantsy/mercuryhook/internal/httptools"
	"github.com/grantsy/mercuryhook/internal/infra/logger"
	"github.com/grantsy/mercuryhook/internal/mercury"
	oa "github.com/grantsy/mercuryhook/internal/openapi"
	"github.com/grantsy/mercuryhook/internal/triggers"
)

type ActivateBody struct {
	NodeID      string        `json:"node_id"      validate:"required,max=255"       description:"Workflow node instance ID"`
	TriggerType triggers.Type `json:"trigger_type" validate:"required,trigger_type" description:"Trigger type to subscribe to"`
}

type ActivateRequest struct {
	Payload *ActivateBody `in:"body=json" validate:"required"`
}

type ActivateResponse struct {
	Created bool        `json:"created" description:"False when the node already had a webhook"`
	Trigger TriggerView `json:"trigger" description:"The active subscription"`
}

type RouteActivate struct {
	lifecycle Lifecycle
	publicURL string
}

func NewRouteActivate(lifecycle Lifecycle, publicURL string) *RouteActivate {
	return &RouteActivate{lifecycle: lifecycle, publicURL: publicURL}
}

func (route *RouteActivate) Register(mux *http.ServeMux, r *openapi3.Reflector) {
	mux.Handle("POST /v1/triggers",
		valmid.Middleware[ActivateRequest]()(route.Handler()),
	)
	RegisterActivateSchema(r)
}

func RegisterActivateSchema(r *openapi3.Reflector) {
	op, _ := r.NewOperationContext(http.MethodPost, "/v1/triggers")
	op.AddReqStructure(new(ActivateBody))
	op.AddRespStructure(struct {
		Data ActivateResponse `json:"data"`
		Meta httptools.Meta   `json:"meta"`
		_    struct{}         `title:"ActivateResponse"`
	}{}, func(cu *openapi.ContentUnit) {
		cu.HTTPStatus = http.StatusCreated
		cu.Description = "Webhook registered"
	})
	op.AddRespStructure(struct {
		Data ActivateResponse `json:"data"`
		Meta httptools.Meta   `json:"meta"`
		_    struct{}         `title:"ActivateResponse"`
	}{}, func(cu *openapi.ContentUnit) {
		cu.HTTPStatus = http.StatusOK
		cu.Description = "Node already active"
	})
	oa.AddErrorResponses(op)
	op.SetSummary("Activate trigger")
	op.SetDescription(
		"Register a Mercury webhook for a workflow node. Does nothing if the node already has one.",
	)
	op.SetTags("Triggers")
	op.AddSecurity("ApiKeyAuth")
	r.AddOperation(op)
}

func (route *RouteActivate) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		input := valmid.Get[ActivateRequest](r).Payload

		exists, err := route.lifecycle.Exists(r.Context(), input.NodeID)
		if err != nil {
			log.Error("failed to check trigger state", "node_id", input.NodeID, "error", err)
			httptools.InternalError(w, r)
			return
		}

		if exists {
			sub, err := route.lifecycle.Get(r.Context(), input.NodeID)
			if err != nil || sub == nil {
				log.Error("failed to load trigger state", "node_id", input.NodeID, "error", err)
				httptools.InternalError(w, r)
				return
			}
			httptools.JSON(w, r, http.StatusOK, ActivateResponse{
				Created: false,
				Trigger: ToTriggerView(sub),
			})
			return
		}

		callback := CallbackURL(route.publicURL, input.NodeID)
		sub, err := route.lifecycle.Create(r.Context(), input.NodeID, callback, input.TriggerType)
		if err != nil {
			if apiErr, ok := mercury.AsAPIError(err); ok {
				log.Warn("mercury rejected webhook registration",
					"node_id", input.NodeID,
					"status", apiErr.StatusCode,
					"error", err,
				)
				httptools.BadGateway(w, r, apiErr.Error())
				return
			}
			log.Error("failed to activate trigger", "node_id", input.NodeID, "error", err)
			httptools.InternalError(w, r)
			return
		}

		httptools.JSON(w, r, http.StatusCreated, ActivateResponse{
			Created: true,
			Trigger: ToTriggerView(sub),
		})
	})
}
