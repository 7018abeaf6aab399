package main

import (
	"context"

	"github.com/angelmondragon/tienda-backend/api/routes"
	"github.com/angelmondragon/tienda-backend/internal/receipts"
	"github.com/angelmondragon/tienda-backend/pkg/bootstrap"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.Init(ctx, bootstrap.Service{Name: "receipts", DefaultPort: "4005"})
	if err != nil {
		bootstrap.Fatal(nil, "receipts bootstrap failed", err)
	}
	logg := app.Logger

	svc, err := receipts.NewService(receipts.ServiceParams{
		Repo:     receipts.NewRepository(app.DB.DB()),
		TxRunner: app.DB,
		Logger:   logg,
	})
	if err != nil {
		bootstrap.Fatal(logg, "receipts service init failed", err)
	}

	handler := routes.NewServiceRouter(routes.OptionsFor(app), routes.Receipts(svc, logg))
	if err := app.Serve(ctx, handler); err != nil {
		bootstrap.Fatal(logg, "receipts server stopped with error", err)
	}
}
