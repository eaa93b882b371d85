package workflows

import (
	"net/http"

	"github.com/iamolegga/valmid"
	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/grantsy/mercuryhook/internal/httptools"
	"github.com/grantsy/mercuryhook/internal/infra/logger"
	oa "github.com/grantsy/mercuryhook/internal/openapi"
)

type StatusResponse struct {
	NodeID  string                            `json:"node_id"           description:"Workflow node instance ID"`
	Active  bool                              `json:"active"            description:"Whether a webhook is registered for the node"`
	Trigger httptools.Expandable[TriggerView] `json:"trigger,omitzero"  description:"The subscription, null when inactive"`
}

type RouteStatus struct {
	lifecycle Lifecycle
}

func NewRouteStatus(lifecycle Lifecycle) *RouteStatus {
	return &RouteStatus{lifecycle: lifecycle}
}

func (route *RouteStatus) Register(mux *http.ServeMux, r *openapi3.Reflector) {
	mux.Handle("GET /v1/triggers/{node_id}",
		valmid.Middleware[NodeRequest]()(route.Handler()),
	)
	RegisterStatusSchema(r)
}

func RegisterStatusSchema(r *openapi3.Reflector) {
	op, _ := r.NewOperationContext(http.MethodGet, "/v1/triggers/{node_id}")
	op.AddReqStructure(new(NodeRequest))
	op.AddRespStructure(struct {
		Data StatusResponse `json:"data"`
		Meta httptools.Meta `json:"meta"`
		_    struct{}       `title:"StatusResponse"`
	}{}, func(cu *openapi.ContentUnit) {
		cu.HTTPStatus = http.StatusOK
		cu.Description = "Trigger status"
	})
	oa.AddErrorResponses(op)
	op.SetSummary("Get trigger status")
	op.SetTags("Triggers")
	op.AddSecurity("ApiKeyAuth")
	r.AddOperation(op)
}

func (route *RouteStatus) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input := valmid.Get[NodeRequest](r)

		sub, err := route.lifecycle.Get(r.Context(), input.NodeID)
		if err != nil {
			logger.FromContext(r.Context()).Error("failed to load trigger state",
				"node_id", input.NodeID,
				"error", err,
			)
			httptools.InternalError(w, r)
			return
		}

		resp := StatusResponse{NodeID: input.NodeID}
		if sub != nil && sub.WebhookID != "" {
			resp.Active = true
			resp.Trigger = httptools.Set(ToTriggerView(sub))
		} else {
			resp.Trigger = httptools.Null[TriggerView]()
		}

		httptools.JSON(w, r, http.StatusOK, resp)
	})
}
