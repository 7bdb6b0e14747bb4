package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fernandodev-git/bakery-api/models"
	"github.com/fernandodev-git/bakery-api/store"
)

func GetAllCategories(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := catalog.Categories()
		if categories == nil {
			categories = []models.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")

		category, err := catalog.CreateCategory(name)
		if err != nil {
			if store.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func UpdateCategory(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID must be a number"})
			return
		}
		name := c.PostForm("name")

		category, err := catalog.UpdateCategory(id, name)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			case store.IsValidation(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			}
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategory(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID must be a number"})
			return
		}

		if err := catalog.DeleteCategory(id); err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			case errors.Is(err, store.ErrConflict):
				c.JSON(http.StatusConflict, gin.H{"error": "Category in use, cannot delete"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
