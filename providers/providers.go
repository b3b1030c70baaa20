package providers

import (
	"github.com/km-arc/rule-validator/config"
	"github.com/km-arc/rule-validator/container"
	"github.com/km-arc/rule-validator/engine"
	"github.com/km-arc/rule-validator/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router as "router".
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		return routing.New()
	})
}

// ── EngineServiceProvider ─────────────────────────────────────────────────────

// EngineServiceProvider registers the rule-evaluation engine as "engine".
// The engine is stateless after construction, so one instance serves every
// request.
type EngineServiceProvider struct {
	container.BaseProvider
}

func (p *EngineServiceProvider) Register(app *container.Container) {
	app.Singleton("engine", func(c *container.Container) any {
		return engine.New()
	})
}
