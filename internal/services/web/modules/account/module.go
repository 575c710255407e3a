// Package account provides the signed-in account management routes.
package account

import (
	"net/http"

	module "github.com/meganhq/megan-web/internal/services/web/module"
	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

// Module provides the account page and its actions.
type Module struct {
	deps module.Dependencies
}

// New returns the account module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "account" }

// Healthy reports whether the module has an operational account gateway.
func (m Module) Healthy() bool {
	return m.deps.Accounts != nil && m.deps.Sessions != nil
}

// Mount wires the account route handlers.
func (m Module) Mount() (module.Mount, error) {
	svc, err := newService(m.deps)
	if err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(svc, m.deps))
	return module.Mount{Prefixes: []string{routepath.Account}, Handler: mux}, nil
}
