package routes

import (
	"github.com/gin-gonic/gin"

	branchControllers "github.com/fernandodev-git/bakery-api/controllers/branch"
	cartControllers "github.com/fernandodev-git/bakery-api/controllers/cart"
	orderControllers "github.com/fernandodev-git/bakery-api/controllers/order"
	productControllers "github.com/fernandodev-git/bakery-api/controllers/product"
	userControllers "github.com/fernandodev-git/bakery-api/controllers/user"
	"github.com/fernandodev-git/bakery-api/middleware"
	"github.com/fernandodev-git/bakery-api/store"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, s *store.Stores) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(s)) // GET /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(s.Carts))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(s.Carts, s.Catalog))      // POST /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(s.Carts)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(s.Carts))             // DELETE /user/cart
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(s))          // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(s.Orders)) // GET /user/orders

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(s.Catalog))        // GET /user/products
		userGroup.GET("/products/:id", productControllers.GetProductByID(s.Catalog)) // GET /user/products/:id

		// ──────────────── Browse Categories + Products ────────────────
		userGroup.GET("/categories", userControllers.GetAllCategoriesWithProducts(s.Catalog)) // GET /user/categories

		// ──────────────── Branches ────────────────
		userGroup.GET("/branches", branchControllers.GetBranches(s.Branches))       // GET /user/branches
		userGroup.GET("/branches/:id", branchControllers.GetBranchByID(s.Branches)) // GET /user/branches/:id
	}
}
