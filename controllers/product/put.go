package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fernandodev-git/bakery-api/store"
)

// UpdateProduct applies a partial update: only the form fields present
// in the request are written onto the stored product.
func UpdateProduct(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID must be a number"})
			return
		}

		var update store.ProductUpdate

		if title, ok := c.GetPostForm("title"); ok {
			update.Title = &title
		}
		if description, ok := c.GetPostForm("description"); ok {
			update.Description = &description
		}
		if raw, ok := c.GetPostForm("price"); ok {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			update.Price = &price
		}
		if raw, ok := c.GetPostForm("stock"); ok {
			stock, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			update.Stock = &stock
		}
		if raw, ok := c.GetPostForm("category_id"); ok {
			categoryID, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			update.CategoryID = &categoryID
		}
		if raw, ok := c.GetPostForm("branch_id"); ok {
			branchID, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch_id"})
				return
			}
			update.BranchID = &branchID
		}
		if raw, ok := c.GetPostForm("weight"); ok {
			weight, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight"})
				return
			}
			update.Weight = &weight
		}

		// A newly uploaded image wins over an explicit image_url field.
		imageURL, err := saveProductImage(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if imageURL != "" {
			update.ImageURL = &imageURL
		} else if raw, ok := c.GetPostForm("image_url"); ok {
			update.ImageURL = &raw
		}

		product, err := catalog.UpdateProduct(id, update)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case store.IsValidation(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
