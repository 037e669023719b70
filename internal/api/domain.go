package api

import (
	"github.com/JaimeStill/file-flow/internal/dashboard"
	"github.com/JaimeStill/file-flow/internal/documents"
	"github.com/JaimeStill/file-flow/internal/personnel"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents documents.System
	Dashboard dashboard.System
	Personnel personnel.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	return &Domain{
		Documents: documents.New(db, runtime.Logger, runtime.Clock, runtime.Metrics),
		Dashboard: dashboard.New(db, runtime.Logger, runtime.Clock),
		Personnel: personnel.New(db, runtime.Logger),
	}
}
