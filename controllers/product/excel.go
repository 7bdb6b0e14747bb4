package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/fernandodev-git/bakery-api/store"
)

// ImportProductsFromExcel upserts catalog rows from an uploaded sheet
// with the same column layout the export produces. Rows with an ID that
// resolves to an existing product are updated, the rest are created;
// unparsable rows are counted and skipped.
func ImportProductsFromExcel(catalog *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			typ := get(1)
			title := get(2)
			description := get(3)
			price, err1 := strconv.ParseFloat(get(4), 64)
			stockFloat, err2 := strconv.ParseFloat(get(5), 64)
			categoryID, err3 := strconv.Atoi(get(6))
			branchID, _ := strconv.Atoi(get(7))
			imageURL := get(8)
			weight, _ := strconv.ParseFloat(get(9), 64)

			if title == "" || err1 != nil || err2 != nil || err3 != nil {
				skippedCount++
				continue
			}
			stock := int(stockFloat)

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					if _, err := catalog.Product(id); err == nil {
						_, err := catalog.UpdateProduct(id, store.ProductUpdate{
							Type:        &typ,
							Title:       &title,
							Description: &description,
							Price:       &price,
							Stock:       &stock,
							CategoryID:  &categoryID,
							BranchID:    &branchID,
							ImageURL:    &imageURL,
							Weight:      &weight,
						})
						if err == nil {
							updatedCount++
						} else {
							skippedCount++
						}
						continue
					}
				}
			}

			_, err := catalog.CreateProduct(store.ProductInput{
				Type:        typ,
				Title:       title,
				Description: description,
				Price:       price,
				Stock:       stock,
				CategoryID:  categoryID,
				BranchID:    branchID,
				ImageURL:    imageURL,
				Weight:      weight,
			})
			if err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
