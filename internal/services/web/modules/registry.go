// Package modules composes the web module registry.
package modules

import (
	module "github.com/meganhq/megan-web/internal/services/web/module"
	"github.com/meganhq/megan-web/internal/services/web/modules/account"
	"github.com/meganhq/megan-web/internal/services/web/modules/authflow"
	"github.com/meganhq/megan-web/internal/services/web/modules/public"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Default returns the stable web modules in mount order.
func Default(deps module.Dependencies) []Module {
	return []Module{
		authflow.New(deps),
		account.New(deps),
		public.New(deps),
	}
}
