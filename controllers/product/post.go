package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fernandodev-git/bakery-api/store"
)

func uploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveProductImage stores an uploaded image under the uploads dir and
// returns the public URL it will be served from.
func saveProductImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// No file in the form; caller falls back to image_url.
		return "", nil
	}

	saveDir := filepath.Join(uploadsDir(), "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return fmt.Sprintf("/uploads/products/%s", filename), nil
}

// CreateProduct creates a new product from a multipart form, with an
// optional image upload.
func CreateProduct(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		title := c.PostForm("title")
		priceStr := c.PostForm("price")
		stockStr := c.PostForm("stock")
		categoryIDStr := c.PostForm("category_id")
		if title == "" || priceStr == "" || stockStr == "" || categoryIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, price, stock, and category_id are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}
		categoryID, err := strconv.Atoi(categoryIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}

		// Optional fields
		var branchID int
		if raw := c.PostForm("branch_id"); raw != "" {
			if branchID, err = strconv.Atoi(raw); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch_id"})
				return
			}
		}
		var weight float64
		if raw := c.PostForm("weight"); raw != "" {
			if weight, err = strconv.ParseFloat(raw, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight"})
				return
			}
		}

		imageURL, err := saveProductImage(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if imageURL == "" {
			imageURL = c.PostForm("image_url")
		}

		product, err := catalog.CreateProduct(store.ProductInput{
			Title:       title,
			Description: c.PostForm("description"),
			Price:       price,
			Stock:       stock,
			CategoryID:  categoryID,
			BranchID:    branchID,
			ImageURL:    imageURL,
			Weight:      weight,
		})
		if err != nil {
			if store.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
