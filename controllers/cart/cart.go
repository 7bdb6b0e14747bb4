package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fernandodev-git/bakery-api/store"
)

type CartItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

func userIDFromContext(c *gin.Context) (int, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userIDVal.(int), true
}

// POST /user/cart
// Adding a product already in the cart accumulates its quantity.
func AddCartItem(carts *store.CartStore, catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, err := catalog.Product(input.ProductID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart := carts.Cart(userID)
		cart.AddItem(input.ProductID, input.Quantity)
		if err := carts.Save(cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id must be a number"})
			return
		}

		cart := carts.Cart(userID)
		if _, exists := cart.Items[strconv.Itoa(productID)]; !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		cart.RemoveItem(productID)
		if err := carts.Save(cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}
		if err := carts.Remove(userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
// Total is priced against the live catalog, not a purchase-time snapshot.
func GetUserCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}
		cart := carts.Cart(userID)
		c.JSON(http.StatusOK, gin.H{
			"user_id": cart.UserID,
			"items":   cart.Items,
			"total":   carts.Total(cart),
		})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a number"})
			return
		}
		cart := carts.Cart(userID)
		c.JSON(http.StatusOK, gin.H{
			"user_id": cart.UserID,
			"items":   cart.Items,
			"total":   carts.Total(cart),
		})
	}
}

// GET /admin/carts
func GetAllCarts(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, carts.All())
	}
}
