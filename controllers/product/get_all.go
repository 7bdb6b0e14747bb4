package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fernandodev-git/bakery-api/models"
	"github.com/fernandodev-git/bakery-api/store"
)

// GetProducts lists the catalog. ?title= narrows by case-insensitive
// substring, ?category_id= by exact category; both compose with AND.
func GetProducts(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleFilter := c.Query("title")

		var categoryID *int
		if raw := c.Query("category_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "category_id must be a number"})
				return
			}
			categoryID = &id
		}

		products := catalog.Products(titleFilter, categoryID)
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}
