package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/fernandodev-git/bakery-api/controllers/cart"
	productcontroller "github.com/fernandodev-git/bakery-api/controllers/product"
	userControllers "github.com/fernandodev-git/bakery-api/controllers/user"
	"github.com/fernandodev-git/bakery-api/middleware"
	"github.com/fernandodev-git/bakery-api/store"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, s *store.Stores) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(s.Users))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(s.Users))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(s.Catalog))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(s.Catalog))
			productAdmin.GET("", productcontroller.GetProducts(s.Catalog))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(s.Catalog))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(s.Catalog))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(s.Catalog))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(s.Catalog))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(s.Catalog))
			categoryAdmin.GET("", productcontroller.GetAllCategories(s.Catalog))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(s.Catalog))
		}

		// ─────────── Cart Inspection ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(s.Carts))
		}
		adminGroup.GET("/carts", cartControllers.GetAllCarts(s.Carts))
	}
}
