package workflows

import (
	"net/http"

	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/grantsy/mercuryhook/internal/httptools"
	oa "github.com/grantsy/mercuryhook/internal/openapi"
	"github.com/grantsy/mercuryhook/internal/triggers"
)

type TriggerTypeView struct {
	Type             triggers.Type `json:"type"                    description:"Trigger type identifier"`
	Name             string        `json:"name"                    description:"Display name"`
	Description      string        `json:"description"             description:"What the trigger fires on"`
	EventTypes       []string      `json:"event_types"             description:"Mercury event types subscribed to"`
	StatusFilter     string        `json:"status_filter,omitempty" description:"Required mergePatch.status, if any"`
	FilterPaths      []string      `json:"filter_paths,omitempty"  description:"Mercury filter paths"`
	ResourceEndpoint string        `json:"resource_endpoint"       description:"Mercury API path fetched per delivery"`
}

type TriggerTypesResponse struct {
	TriggerTypes []TriggerTypeView `json:"trigger_types" description:"All supported trigger types"`
}

func ToTriggerTypeView(r triggers.Rule) TriggerTypeView {
	return TriggerTypeView{
		Type:             r.Type,
		Name:             r.Name,
		Description:      r.Description,
		EventTypes:       r.EventTypes,
		StatusFilter:     r.StatusFilter,
		FilterPaths:      r.FilterPaths,
		ResourceEndpoint: r.ResourceEndpoint,
	}
}

type RouteTriggerTypes struct{}

func NewRouteTriggerTypes() *RouteTriggerTypes {
	return &RouteTriggerTypes{}
}

func (route *RouteTriggerTypes) Register(mux *http.ServeMux, r *openapi3.Reflector) {
	mux.Handle("GET /v1/trigger-types", route.Handler())
	RegisterTriggerTypesSchema(r)
}

func RegisterTriggerTypesSchema(r *openapi3.Reflector) {
	op, _ := r.NewOperationContext(http.MethodGet, "/v1/trigger-types")
	op.AddRespStructure(struct {
		Data TriggerTypesResponse `json:"data"`
		Meta httptools.Meta       `json:"meta"`
		_    struct{}             `title:"TriggerTypesResponse"`
	}{}, func(cu *openapi.ContentUnit) {
		cu.HTTPStatus = http.StatusOK
		cu.Description = "Supported trigger types"
	})
	oa.AddErrorResponses(op)
	op.SetSummary("List trigger types")
	op.SetTags("Triggers")
	op.AddSecurity("ApiKeyAuth")
	r.AddOperation(op)
}

func (route *RouteTriggerTypes) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rules := triggers.All()
		views := make([]TriggerTypeView, 0, len(rules))
		for _, rule := range rules {
			views = append(views, ToTriggerTypeView(rule))
		}
		httptools.JSON(w, r, http.StatusOK, TriggerTypesResponse{TriggerTypes: views})
	})
}
