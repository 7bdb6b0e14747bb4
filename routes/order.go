package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/fernandodev-git/bakery-api/controllers/order"
	"github.com/fernandodev-git/bakery-api/middleware"
	"github.com/fernandodev-git/bakery-api/store"
)

func SetupOrderRoutes(r *gin.Engine, s *store.Stores) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch a single order
		orders.GET("/:orderID", middleware.ValidateToken, orderControllers.GetOrderByIDHandler(s.Orders))

		// Fetch all orders (admin)
		orders.GET("/", middleware.ValidateAPIKey, orderControllers.GetAllOrdersHandler(s.Orders))

		// Update order status (admin role)
		orders.PUT("/:orderID/status", middleware.ValidateToken, middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(s.Orders))
	}
}
