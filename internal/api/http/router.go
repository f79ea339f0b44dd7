package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/api/http/handlers"
	"github.com/spec-kit/marketplace-service/internal/auth"
	"github.com/spec-kit/marketplace-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Token          *handlers.TokenHandler
	Users          *handlers.UsersHandler
	Categories     *handlers.CategoriesHandler
	Products       *handlers.ProductsHandler
	Orders         *handlers.OrdersHandler
	AuthMiddleware *auth.AuthMiddleware
	Roles          auth.RoleResolver

	// AdvertiseRequireSeller gates PUT /products/advertise behind the seller role.
	AdvertiseRequireSeller bool
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/jwt", cfg.Token.Issue)

	authenticated := cfg.AuthMiddleware.Protect()
	adminOnly := cfg.AuthMiddleware.Protect(auth.RequireRole(cfg.Roles, domain.RoleAdmin))
	sellerOnly := cfg.AuthMiddleware.Protect(auth.RequireRole(cfg.Roles, domain.RoleSeller))

	users := app.Group("/users")
	users.Get("", cfg.Users.List)
	users.Post("", cfg.Users.Create)
	users.Get("/admin/:email", cfg.Users.IsAdmin)
	users.Get("/seller/:email", cfg.Users.IsSeller)
	users.Get("/allBuyers", adminOnly, cfg.Users.ListBuyers)
	users.Get("/allSellers", adminOnly, cfg.Users.ListSellers)
	users.Delete("/delete/:id", adminOnly, cfg.Users.Delete)
	users.Put("/varify/:id", adminOnly, cfg.Users.Verify)

	categories := app.Group("/categories")
	categories.Get("", cfg.Categories.List)
	categories.Get("/id/:id", cfg.Categories.GetByID)
	categories.Get("/:name", cfg.Categories.GetByName)

	products := app.Group("/products")
	products.Get("", cfg.Products.List)
	products.Get("/available", cfg.Products.ListAvailable)
	products.Get("/advertise", cfg.Products.ListAdvertised)
	products.Get("/category/:id", cfg.Products.ListByCategory)
	products.Get("/seller/:email",
		cfg.AuthMiddleware.Protect(auth.RequireRole(cfg.Roles, domain.RoleSeller), auth.RequireOwner("email")),
		cfg.Products.ListBySeller)
	products.Post("", sellerOnly, cfg.Products.Create)
	products.Delete("/delete/:id", sellerOnly, cfg.Products.Delete)

	advertise := []fiber.Handler{cfg.Products.SetAdvertisement}
	if cfg.AdvertiseRequireSeller {
		advertise = append([]fiber.Handler{sellerOnly}, advertise...)
	}
	products.Put("/advertise", advertise...)

	orders := app.Group("/orders")
	orders.Get("/:email", cfg.AuthMiddleware.Protect(auth.RequireOwner("email")), cfg.Orders.List)
	orders.Post("", authenticated, cfg.Orders.Create)
}
