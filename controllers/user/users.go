package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fernandodev-git/bakery-api/models"
	"github.com/fernandodev-git/bakery-api/store"
)

// GET /user/
func GetUser(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(int)

		user, err := s.Users.ByID(userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		cart := s.Carts.Cart(userID)
		orders := s.Orders.ByUser(userID)
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, gin.H{
			"user":   user.Sanitized(),
			"cart":   cart,
			"orders": orders,
		})
	}
}

// GET /admin/users
func GetAllUsers(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := users.All()
		sanitized := make([]models.User, 0, len(all))
		for _, u := range all {
			sanitized = append(sanitized, u.Sanitized())
		}
		c.JSON(http.StatusOK, sanitized)
	}
}

// DELETE /admin/users/:id
func DeleteUser(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID must be a number"})
			return
		}

		if err := users.Delete(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}

// GET /user/categories
// Returns every category with the products filed under it.
func GetAllCategoriesWithProducts(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		type categoryWithProducts struct {
			models.Category
			Products []models.Product `json:"products"`
		}

		categories := catalog.Categories()
		result := make([]categoryWithProducts, 0, len(categories))
		for _, category := range categories {
			id := category.ID
			products := catalog.Products("", &id)
			if products == nil {
				products = []models.Product{}
			}
			result = append(result, categoryWithProducts{Category: category, Products: products})
		}
		c.JSON(http.StatusOK, result)
	}
}
