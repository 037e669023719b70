package routes

import (
	"net/http"

	"github.com/JaimeStill/file-flow/pkg/openapi"
)

// Register adds every group's routes to mux and documents them in spec
// under basePath. Mux patterns are relative to the module mount point.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		register(mux, "", g)
		if spec != nil {
			g.AddToSpec(basePath, spec)
		}
	}
}

func register(mux *http.ServeMux, parent string, g Group) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		register(mux, prefix, child)
	}
}
