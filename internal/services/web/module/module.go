// Package module defines the feature contract used by web composition.
package module

import (
	"log"
	"net/http"

	"github.com/meganhq/megan-web/internal/services/web/gateway"
	"github.com/meganhq/megan-web/internal/services/web/platform/pagerender"
	"github.com/meganhq/megan-web/internal/services/web/session"
	"github.com/meganhq/megan-web/internal/services/web/storage"
)

// Mount describes a module route mount. A module may own several top-level
// route prefixes; the composition root attaches Handler at each one.
type Mount struct {
	Prefixes []string
	Handler  http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}

// Dependencies carries the shared clients and platform services required to
// compose the web module registry.
type Dependencies struct {
	AppName  string
	Accounts gateway.AccountGateway
	Sessions *session.Manager
	Store    storage.Store
	Renderer pagerender.Renderer
	Logger   *log.Logger
}
