package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/grantsy/mercuryhook/internal/openapi"
	"github.com/grantsy/mercuryhook/internal/workflows"
)

func main() {
	reflector := openapi.NewReflector()

	// Register all API schemas
	workflows.RegisterActivateSchema(reflector)
	workflows.RegisterDeactivateSchema(reflector)
	workflows.RegisterStatusSchema(reflector)
	workflows.RegisterTriggerTypesSchema(reflector)
	// mercury webhook intentionally excluded from OpenAPI documentation

	data, err := json.MarshalIndent(reflector.Spec, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("openapi.json", data, 0644); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated openapi.json")
}
