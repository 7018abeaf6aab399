package main

import (
	"context"

	"github.com/angelmondragon/tienda-backend/api/routes"
	"github.com/angelmondragon/tienda-backend/internal/receipts"
	"github.com/angelmondragon/tienda-backend/pkg/bootstrap"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.Init(ctx, bootstrap.Service{Name: "receipt-detail", DefaultPort: "4006"})
	if err != nil {
		bootstrap.Fatal(nil, "receipt-detail bootstrap failed", err)
	}
	logg := app.Logger

	svc, err := receipts.NewService(receipts.ServiceParams{
		Repo:     receipts.NewRepository(app.DB.DB()),
		TxRunner: app.DB,
		Logger:   logg,
	})
	if err != nil {
		bootstrap.Fatal(logg, "receipt-detail service init failed", err)
	}

	handler := routes.NewServiceRouter(routes.OptionsFor(app), routes.ReceiptDetail(svc, logg))
	if err := app.Serve(ctx, handler); err != nil {
		bootstrap.Fatal(logg, "receipt-detail server stopped with error", err)
	}
}
