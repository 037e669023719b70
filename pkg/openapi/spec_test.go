package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/file-flow/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("File Flow API", "0.1.0")
	spec.SetDescription("tracker")
	spec.AddServer("")
	spec.AddServer("http://localhost:8080")

	assert.Equal(t, openapi.Version, spec.OpenAPI)
	assert.Equal(t, "tracker", spec.Info.Description)
	assert.Len(t, spec.Servers, 1)
	assert.Contains(t, spec.Components.Responses, "NotFound")
	assert.Contains(t, spec.Components.Schemas, "Error")
}

func TestAddOperation(t *testing.T) {
	spec := openapi.NewSpec("t", "v")
	get := &openapi.Operation{Summary: "list"}
	post := &openapi.Operation{Summary: "create"}

	spec.AddOperation("GET", "/api/personnel", get)
	spec.AddOperation("post", "/api/personnel", post)
	spec.AddOperation("PATCH", "/api/other", post)

	item := spec.Paths["/api/personnel"]
	require.NotNil(t, item)
	assert.Same(t, get, item.Get)
	assert.Same(t, post, item.Post)
	assert.Nil(t, spec.Paths["/api/other"].Post)
}

func TestAddTag_Dedupes(t *testing.T) {
	spec := openapi.NewSpec("t", "v")
	spec.AddTag("Documents", "one")
	spec.AddTag("Documents", "two")

	require.Len(t, spec.Tags, 1)
	assert.Equal(t, "one", spec.Tags[0].Description)
}

func TestServeSpec(t *testing.T) {
	spec := openapi.NewSpec("File Flow API", "1.0.0")
	spec.AddOperation("GET", "/api/dashboard/statistics", &openapi.Operation{
		Summary:   "Statistics",
		Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("ok", "Statistics")},
	})

	data, err := openapi.MarshalJSON(spec)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	openapi.ServeSpec(data)(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.1.0", doc["openapi"])
	paths := doc["paths"].(map[string]any)
	assert.Contains(t, paths, "/api/dashboard/statistics")
}

func TestConfig_Defaults(t *testing.T) {
	cfg := &openapi.Config{}
	require.NoError(t, cfg.Finalize(nil))
	assert.Equal(t, "File Flow API", cfg.Title)
	assert.NotEmpty(t, cfg.Description)
}
