// Package authflow provides the sign-in, registration, and email-token
// account flows.
package authflow

import (
	"net/http"

	module "github.com/meganhq/megan-web/internal/services/web/module"
	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

// Module provides the auth and email confirmation routes.
type Module struct {
	deps module.Dependencies
}

// New returns the auth flow module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "authflow" }

// Healthy reports whether the module has an operational account gateway.
func (m Module) Healthy() bool {
	return m.deps.Accounts != nil && m.deps.Sessions != nil
}

// Mount wires the auth flow route handlers.
func (m Module) Mount() (module.Mount, error) {
	svc, err := newService(m.deps)
	if err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(svc, m.deps))
	prefixes := []string{
		routepath.Auth,
		routepath.Logout,
		routepath.ConfirmEmail,
		routepath.ConfirmPassword,
		routepath.ForgotPassword,
	}
	return module.Mount{Prefixes: prefixes, Handler: mux}, nil
}
