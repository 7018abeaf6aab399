package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/tienda-backend/api/controllers"
	"github.com/angelmondragon/tienda-backend/api/middleware"
	"github.com/angelmondragon/tienda-backend/internal/auth"
	"github.com/angelmondragon/tienda-backend/internal/categories"
	"github.com/angelmondragon/tienda-backend/internal/media"
	"github.com/angelmondragon/tienda-backend/internal/products"
	"github.com/angelmondragon/tienda-backend/internal/receipts"
	"github.com/angelmondragon/tienda-backend/internal/users"
	"github.com/angelmondragon/tienda-backend/pkg/config"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
	"github.com/angelmondragon/tienda-backend/pkg/redis"
)

// Users mounts /usuarios. Listing and lookup require a bearer token; a nil
// redis client disables login throttling.
func Users(cfg *config.Config, userSvc users.Service, authSvc auth.Service, redisClient *redis.Client, logg *logger.Logger) RouteTable {
	var limiter middleware.FixedWindowLimiter
	if redisClient != nil {
		limiter = redisClient
	}
	loginPolicy := middleware.NewLoginRateLimitPolicy(cfg.AuthRateLimit)

	return func(r chi.Router) {
		r.Route("/usuarios", func(r chi.Router) {
			r.Post("/register", controllers.UsersRegister(userSvc, logg))
			r.With(middleware.LoginRateLimit(loginPolicy, limiter, logg)).Post("/login", controllers.AuthLogin(authSvc, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, logg))
				r.Get("/", controllers.UsersList(userSvc, logg))
				r.Get("/{id}", controllers.UsersGet(userSvc, logg))
			})
		})
	}
}

// Products mounts /productos and serves stored images under /uploads.
func Products(cfg *config.Config, svc products.Service, storage *media.LocalStorage, logg *logger.Logger) RouteTable {
	maxUpload := cfg.Media.MaxUploadBytes()
	return func(r chi.Router) {
		r.Route("/productos", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(svc, logg))
			r.Post("/", controllers.ProductsCreate(svc, maxUpload, logg))
			r.Get("/categoria/{categoria}", controllers.ProductsByCategory(svc, logg))
			r.Get("/{id}", controllers.ProductsGet(svc, logg))
			r.Put("/{id}", controllers.ProductsUpdate(svc, maxUpload, logg))
			r.Delete("/{id}", controllers.ProductsDelete(svc, logg))
		})
		if storage != nil {
			r.Get(media.PublicPrefix+"*", uploadsHandler(storage.Dir()))
		}
	}
}

// Categories mounts /categorias.
func Categories(svc categories.Service, logg *logger.Logger) RouteTable {
	return func(r chi.Router) {
		r.Route("/categorias", func(r chi.Router) {
			r.Get("/", controllers.CategoriesList(svc, logg))
			r.Post("/", controllers.CategoriesCreate(svc, logg))
			r.Get("/nombres", controllers.CategoriesNames(svc, logg))
			r.Post("/seed", controllers.CategoriesSeed(svc, logg))
			r.Put("/{id}", controllers.CategoriesUpdate(svc, logg))
			r.Delete("/{id}", controllers.CategoriesDelete(svc, logg))
		})
	}
}

// Receipts mounts /boletas.
func Receipts(svc receipts.Service, logg *logger.Logger) RouteTable {
	return func(r chi.Router) {
		r.Route("/boletas", func(r chi.Router) {
			r.Get("/", controllers.ReceiptsList(svc, logg))
			r.Post("/", controllers.ReceiptsCreate(svc, logg))
			r.Get("/numero/{numeroCompra}", controllers.ReceiptsGetByNumber(svc, logg))
			r.Get("/{usuarioId}", controllers.ReceiptsListByUser(svc, logg))
			r.Delete("/{usuarioId}", controllers.ReceiptsDeleteByUser(svc, logg))
		})
	}
}

// ReceiptDetail mounts the read-only /detalle endpoints.
func ReceiptDetail(svc receipts.Service, logg *logger.Logger) RouteTable {
	return func(r chi.Router) {
		r.Route("/detalle", func(r chi.Router) {
			r.Get("/", controllers.ReceiptsList(svc, logg))
			r.Get("/{numeroCompra}", controllers.ReceiptsGetByNumber(svc, logg))
		})
	}
}

// uploadsHandler serves files from dir without directory listings.
func uploadsHandler(dir string) http.HandlerFunc {
	files := http.StripPrefix(strings.TrimSuffix(media.PublicPrefix, "/"), http.FileServer(http.Dir(dir)))
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		files.ServeHTTP(w, r)
	}
}
