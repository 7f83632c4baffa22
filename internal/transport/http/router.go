package http

import (
	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storefront-service/internal/auth"
)

// NewRouter wires the handlers into the route tree. Every route runs
// behind the auth middleware; public routes simply ignore the absent
// principal.
func NewRouter(
	sessions *auth.SessionManager,
	products *ProductHandler,
	users *UserHandler,
	orders *OrderHandler,
) *gin.Engine {
	router := gin.Default()
	router.Use(AuthMiddleware(sessions))

	api := router.Group("/api")
	{
		api.POST("/register", users.Register)
		api.POST("/login", users.Login)

		api.GET("/products", products.List)
		api.GET("/products/:slug", products.Get)
		api.GET("/products/:slug/similar", products.Similar)

		api.GET("/user/profile", users.Profile)

		api.GET("/wishlist", users.Wishlist)
		api.POST("/wishlist", users.AddWishlist)
		api.DELETE("/wishlist/:productId", users.RemoveWishlist)

		api.GET("/orders", orders.List)
		api.GET("/orders/:orderId", orders.Get)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/products", products.AdminList)
		admin.POST("/products", products.Create)
		admin.GET("/products/:id", products.AdminGet)
		admin.PUT("/products/:id", products.Update)
		admin.PATCH("/products/:id/status", products.ToggleStatus)
		admin.PATCH("/products/:id/featured", products.ToggleFeatured)
		admin.DELETE("/products/:id", products.Delete)

		admin.GET("/users", users.AdminList)
		admin.GET("/users/:id", users.AdminGet)
		admin.PATCH("/users/:id/role", users.UpdateRole)
		admin.DELETE("/users/:id", users.Delete)
	}

	return router
}
