package routes

import (
	"net/http"

	"careernode_backend/internal/handlers"
	"careernode_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the full API under /api/v1.
//
// Jobs, applications and categories run behind OptionalAuthMiddleware: reads
// are public, and a write without a token reaches the policy layer as the
// anonymous actor and comes back 401. Routes that make no sense without an
// identity use AuthMiddleware directly.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	authRequired := middleware.AuthMiddleware()
	optionalAuth := middleware.OptionalAuthMiddleware()

	h.Auth.RegisterRoutes(api, authRequired)
	h.User.RegisterRoutes(api, authRequired)

	// Profile lives at /auth/me for API compatibility; same handlers as
	// /users/me.
	authMe := api.Group("/auth", authRequired)
	authMe.GET("/me", h.User.GetMe)
	authMe.PATCH("/me", h.User.UpdateMe)

	h.Job.RegisterRoutes(api, optionalAuth)
	h.Application.RegisterRoutes(api, optionalAuth)
	h.Category.RegisterRoutes(api, optionalAuth)
}
