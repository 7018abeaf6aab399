package main

import (
	"context"
	"strings"

	"github.com/angelmondragon/tienda-backend/api/routes"
	"github.com/angelmondragon/tienda-backend/internal/media"
	"github.com/angelmondragon/tienda-backend/internal/products"
	"github.com/angelmondragon/tienda-backend/pkg/bootstrap"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.Init(ctx, bootstrap.Service{Name: "products", DefaultPort: "4003"})
	if err != nil {
		bootstrap.Fatal(nil, "products bootstrap failed", err)
	}
	logg := app.Logger

	publicBase := strings.TrimSpace(app.Config.App.PublicBaseURL)
	if publicBase == "" {
		publicBase = "http://localhost" + app.Addr()
	}
	storage, err := media.NewLocalStorage(app.Config.Media, publicBase)
	if err != nil {
		bootstrap.Fatal(logg, "media storage init failed", err)
	}

	svc, err := products.NewService(products.ServiceParams{
		Repo:   products.NewRepository(app.DB.DB()),
		Images: storage,
		Logger: logg,
	})
	if err != nil {
		bootstrap.Fatal(logg, "products service init failed", err)
	}

	handler := routes.NewServiceRouter(routes.OptionsFor(app), routes.Products(app.Config, svc, storage, logg))
	if err := app.Serve(ctx, handler); err != nil {
		bootstrap.Fatal(logg, "products server stopped with error", err)
	}
}
