// Package public provides the unauthenticated marketing routes.
package public

import (
	"net/http"

	module "github.com/meganhq/megan-web/internal/services/web/module"
	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

// Module provides the landing, informational, and health routes.
type Module struct {
	deps module.Dependencies
}

// New returns the public module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires the public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps)
	registerRoutes(mux, h)
	return module.Mount{Prefixes: []string{routepath.Root}, Handler: mux}, nil
}
