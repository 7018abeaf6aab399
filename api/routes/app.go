package routes

import (
	"github.com/angelmondragon/tienda-backend/api/controllers"
	"github.com/angelmondragon/tienda-backend/pkg/bootstrap"
)

// OptionsFor derives router options from a booted service: its registry,
// logger and readiness checks against the store and Redis when present.
func OptionsFor(app *bootstrap.App) Options {
	ready := map[string]controllers.Pinger{"db": app.DB}
	if app.Redis != nil {
		ready["redis"] = app.Redis
	}
	return Options{
		Config:   app.Config,
		Logger:   app.Logger,
		Service:  app.Service.Name,
		Registry: app.Registry,
		Ready:    ready,
	}
}
