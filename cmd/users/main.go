package main

import (
	"context"

	"github.com/angelmondragon/tienda-backend/api/routes"
	"github.com/angelmondragon/tienda-backend/internal/auth"
	"github.com/angelmondragon/tienda-backend/internal/users"
	"github.com/angelmondragon/tienda-backend/pkg/bootstrap"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.Init(ctx, bootstrap.Service{Name: "users", DefaultPort: "4002", UseRedis: true})
	if err != nil {
		bootstrap.Fatal(nil, "users bootstrap failed", err)
	}
	logg := app.Logger

	repo := users.NewRepository(app.DB.DB())
	userSvc, err := users.NewService(users.ServiceParams{Repo: repo, PasswordConfig: app.Config.Password})
	if err != nil {
		bootstrap.Fatal(logg, "users service init failed", err)
	}
	authSvc, err := auth.NewService(auth.ServiceParams{
		UserRepo:       repo,
		JWTConfig:      app.Config.JWT,
		PasswordConfig: app.Config.Password,
		Logger:         logg,
	})
	if err != nil {
		bootstrap.Fatal(logg, "auth service init failed", err)
	}

	handler := routes.NewServiceRouter(routes.OptionsFor(app), routes.Users(app.Config, userSvc, authSvc, app.Redis, logg))
	if err := app.Serve(ctx, handler); err != nil {
		bootstrap.Fatal(logg, "users server stopped with error", err)
	}
}
