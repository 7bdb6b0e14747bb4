package branchControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fernandodev-git/bakery-api/models"
	"github.com/fernandodev-git/bakery-api/store"
)

// GET /user/branches
// An empty list is a normal response: branch data is read-only seed
// data and load failures degrade rather than error.
func GetBranches(branches *store.BranchStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := branches.All()
		if all == nil {
			all = []models.Branch{}
		}
		c.JSON(http.StatusOK, all)
	}
}

// GET /user/branches/:id
func GetBranchByID(branches *store.BranchStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Branch ID must be a number"})
			return
		}

		branch, err := branches.Get(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch branch"})
			return
		}
		c.JSON(http.StatusOK, branch)
	}
}
