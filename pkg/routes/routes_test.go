package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/file-flow/pkg/openapi"
	"github.com/JaimeStill/file-flow/pkg/routes"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body+":"+r.PathValue("id"))
	}
}

func group() routes.Group {
	return routes.Group{
		Prefix:      "/documents",
		Tags:        []string{"Documents"},
		Description: "Document register",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write("list"), OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "GET", Pattern: "/{id}", Handler: write("find"), OpenAPI: &openapi.Operation{Summary: "Find"}},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/flow",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: write("flow"), OpenAPI: &openapi.Operation{Summary: "Flow"}},
				},
			},
		},
	}
}

func TestRegister_Dispatch(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, "/api", nil, group())

	tests := map[string]string{
		"/documents":        "list:",
		"/documents/5":      "find:5",
		"/documents/5/flow": "flow:5",
	}

	for target, want := range tests {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, want, w.Body.String(), target)
	}
}

func TestRegister_Spec(t *testing.T) {
	spec := openapi.NewSpec("t", "v")
	routes.Register(http.NewServeMux(), "/api", spec, group())

	require.Contains(t, spec.Paths, "/api/documents")
	require.Contains(t, spec.Paths, "/api/documents/{id}")
	require.Contains(t, spec.Paths, "/api/documents/{id}/flow")

	flow := spec.Paths["/api/documents/{id}/flow"].Get
	assert.Equal(t, []string{"Documents"}, flow.Tags)
	require.Len(t, spec.Tags, 1)
	assert.Equal(t, "Document register", spec.Tags[0].Description)
}
