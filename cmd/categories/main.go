package main

import (
	"context"

	"github.com/angelmondragon/tienda-backend/api/routes"
	"github.com/angelmondragon/tienda-backend/internal/categories"
	"github.com/angelmondragon/tienda-backend/internal/products"
	"github.com/angelmondragon/tienda-backend/pkg/bootstrap"
	"github.com/angelmondragon/tienda-backend/pkg/metrics"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.Init(ctx, bootstrap.Service{Name: "categories", DefaultPort: "4004"})
	if err != nil {
		bootstrap.Fatal(nil, "categories bootstrap failed", err)
	}
	logg := app.Logger

	svc, err := categories.NewService(categories.ServiceParams{
		Repo:     categories.NewRepository(app.DB.DB()),
		Products: products.NewRepository(app.DB.DB()),
		Config:   app.Config.Categories,
		Metrics:  metrics.NewSagaMetrics(app.Registry),
		Logger:   logg,
	})
	if err != nil {
		bootstrap.Fatal(logg, "categories service init failed", err)
	}

	handler := routes.NewServiceRouter(routes.OptionsFor(app), routes.Categories(svc, logg))
	if err := app.Serve(ctx, handler); err != nil {
		bootstrap.Fatal(logg, "categories server stopped with error", err)
	}
}
