package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fernandodev-git/bakery-api/store"
)

// SetupRoutes is the single entry point that wires up Auth, User,
// Admin, and Order route groups.
func SetupRoutes(r *gin.Engine, s *store.Stores) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, s)

	// User routes (JWT-protected)
	SetupUserRoutes(r, s)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, s)

	// Order routes
	SetupOrderRoutes(r, s)
}
