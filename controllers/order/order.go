package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fernandodev-git/bakery-api/models"
	"github.com/fernandodev-git/bakery-api/store"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	CustomerInfo models.CustomerInfo `json:"customer_info" binding:"required"`
	OrderType    string              `json:"order_type"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Core Logic --------

// placeOrder turns the user's cart into a permanent order: every line
// is checked against current stock first, then stock is decremented,
// the order recorded, and the cart cleared. Stock and orders live in
// separate files with no cross-file transaction, so a failure after the
// first decrement leaves earlier decrements in place.
func placeOrder(s *store.Stores, userID int, req CheckoutRequest) (models.Order, error) {
	cart := s.Carts.Cart(userID)
	if cart.IsEmpty() {
		return models.Order{}, &store.ValidationError{Field: "cart", Reason: "cart is empty"}
	}

	// Validate every line before touching stock, so an oversized order
	// is rejected whole and the catalog stays unchanged.
	for _, item := range cart.Items {
		product, err := s.Catalog.Product(item.ProductID)
		if err != nil {
			return models.Order{}, &store.ValidationError{
				Field:  "items",
				Reason: fmt.Sprintf("product %d no longer exists", item.ProductID),
			}
		}
		if product.Stock < item.Quantity {
			return models.Order{}, fmt.Errorf("product %q has %d in stock, %d requested: %w",
				product.Title, product.Stock, item.Quantity, store.ErrInsufficientStock)
		}
	}

	for _, item := range cart.Items {
		if _, err := s.Catalog.DecrementStock(item.ProductID, item.Quantity); err != nil {
			return models.Order{}, err
		}
	}

	orderType := req.OrderType
	if orderType == "" {
		orderType = "pickup"
	}
	order, err := s.Orders.Create(userID, cart, req.CustomerInfo, orderType)
	if err != nil {
		return models.Order{}, err
	}

	if err := s.Carts.Remove(userID); err != nil {
		// The order exists; a stale cart is the lesser problem.
		log.Printf("checkout: failed to clear cart for user %d: %v", userID, err)
	}
	return order, nil
}

// -------- Handlers --------

// POST /user/checkout
func CheckoutHandler(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(int)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := placeOrder(s, userID, req)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case store.IsValidation(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastOrderEvent("order_created", order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := orders.All()
		if all == nil {
			all = []models.Order{}
		}
		c.JSON(http.StatusOK, all)
	}
}

// GET /user/orders
func GetUserOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userOrders := orders.ByUser(userIDVal.(int))
		if userOrders == nil {
			userOrders = []models.Order{}
		}
		c.JSON(http.StatusOK, userOrders)
	}
}

// GET /orders/:orderID
// Clients can only read their own orders; admins can read any.
func GetOrderByIDHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID must be a number"})
			return
		}

		order, err := orders.Get(orderID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		if role != string(models.RoleAdmin) && userID != order.UserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/status (admin)
func UpdateOrderStatusHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID must be a number"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orders.UpdateStatus(orderID, newStatus)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case store.IsValidation(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			}
			return
		}

		broadcastOrderEvent("status_changed", order)
		c.JSON(http.StatusOK, order)
	}
}
