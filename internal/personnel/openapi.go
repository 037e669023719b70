package personnel

import "github.com/JaimeStill/file-flow/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Create *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List personnel",
		Description: "All personnel ordered by name",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseSchema("Personnel", openapi.ArrayOf("Person")),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Add personnel",
		RequestBody: openapi.RequestBodyJSON("CreatePerson", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Person added", "PersonCreated"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

var Schemas = map[string]*openapi.Schema{
	"Person": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":   {Type: "integer", Format: "int64"},
			"name": {Type: "string"},
			"role": {Type: "string", Nullable: true},
		},
	},
	"CreatePerson": {
		Type:     "object",
		Required: []string{"name"},
		Properties: map[string]*openapi.Schema{
			"name": {Type: "string"},
			"role": {Type: "string"},
		},
	},
	"PersonCreated": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"message": {Type: "string"},
			"id":      {Type: "integer", Format: "int64"},
		},
	},
}
