package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/fernandodev-git/bakery-api/controllers/auth"
	"github.com/fernandodev-git/bakery-api/store"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, s *store.Stores) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(s.Users))
		authGroup.POST("/login", authControllers.Login(s.Users))
	}
}
