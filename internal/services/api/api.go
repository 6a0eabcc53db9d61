// Package api provides the HTTP API for the application
package api

import (
	"forumscope/internal/platform/config"
	"forumscope/internal/platform/logger"
	phttp "forumscope/internal/platform/net/http"
	"forumscope/internal/platform/store"

	"forumscope/internal/modkit"
	"forumscope/internal/modkit/httpkit"
	"forumscope/internal/modkit/module"
	"forumscope/internal/modkit/swaggerkit"

	metamod "forumscope/internal/services/api/meta/module"
	catalogmod "forumscope/internal/services/catalog/module"
	reportsmod "forumscope/internal/services/reports/module"

	cdom "forumscope/internal/services/catalog/domain"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Construct the catalog module first and extract its resolver port
	catalog := catalogmod.New(deps)
	resolver := module.MustPortsOf[cdom.ResolverPort](catalog)

	// Inject that resolver into the reports module
	reports := reportsmod.New(
		deps,
		modkit.WithPorts(reportsmod.Ports{
			Resolver: resolver,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		catalog, // owns the Resolver port
		reports, // depends on the catalog's Resolver
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
