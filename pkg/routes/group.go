// Package routes describes HTTP endpoints as groups of routes carrying their
// OpenAPI metadata, and registers them on a ServeMux.
package routes

import (
	"net/http"

	"github.com/JaimeStill/file-flow/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// AddToSpec records the group's operations under basePath in spec.
func (g Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, nil, spec)
}

func (g Group) addToSpec(parent string, parentTags []string, spec *openapi.Spec) {
	prefix := parent + g.Prefix
	tags := g.Tags
	if len(tags) == 0 {
		tags = parentTags
	}

	for _, tag := range g.Tags {
		spec.AddTag(tag, g.Description)
	}
	if g.Schemas != nil {
		spec.AddSchemas(g.Schemas)
	}

	for _, r := range g.Routes {
		if r.OpenAPI == nil {
			continue
		}
		if len(r.OpenAPI.Tags) == 0 {
			r.OpenAPI.Tags = tags
		}
		spec.AddOperation(r.Method, prefix+r.Pattern, r.OpenAPI)
	}

	for _, child := range g.Children {
		child.addToSpec(prefix, tags, spec)
	}
}
