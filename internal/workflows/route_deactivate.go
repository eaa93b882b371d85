package workflows

import (
	"net/http"

	"github.com/iamolegga/valmid"
	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/grantsy/mercuryhook/internal/httptools"
	oa "github.com/grantsy/mercuryhook/internal/openapi"
)

type NodeRequest struct {
	NodeID string `in:"path=node_id" path:"node_id" validate:"required" description:"Workflow node instance ID"`
}

type DeactivateResponse struct {
	Deregistered bool `json:"deregistered" description:"False when Mercury could not confirm webhook removal; local state is cleared regardless"`
}

type RouteDeactivate struct {
	lifecycle Lifecycle
}

func NewRouteDeactivate(lifecycle Lifecycle) *RouteDeactivate {
	return &RouteDeactivate{lifecycle: lifecycle}
}

func (route *RouteDeactivate) Register(mux *http.ServeMux, r *openapi3.Reflector) {
	mux.Handle("DELETE /v1/triggers/{node_id}",
		valmid.Middleware[NodeRequest]()(route.Handler()),
	)
	RegisterDeactivateSchema(r)
}

func RegisterDeactivateSchema(r *openapi3.Reflector) {
	op, _ := r.NewOperationContext(http.MethodDelete, "/v1/triggers/{node_id}")
	op.AddReqStructure(new(NodeRequest))
	op.AddRespStructure(struct {
		Data DeactivateResponse `json:"data"`
		Meta httptools.Meta     `json:"meta"`
		_    struct{}           `title:"DeactivateResponse"`
	}{}, func(cu *openapi.ContentUnit) {
		cu.HTTPStatus = http.StatusOK
		cu.Description = "Trigger deactivated"
	})
	oa.AddErrorResponses(op)
	op.SetSummary("Deactivate trigger")
	op.SetDescription("Deregister the node's Mercury webhook and forget its secret.")
	op.SetTags("Triggers")
	op.AddSecurity("ApiKeyAuth")
	r.AddOperation(op)
}

func (route *RouteDeactivate) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input := valmid.Get[NodeRequest](r)

		ok := route.lifecycle.Delete(r.Context(), input.NodeID)

		httptools.JSON(w, r, http.StatusOK, DeactivateResponse{Deregistered: ok})
	})
}
