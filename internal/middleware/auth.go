package middleware

import (
	"net/http"
	"strings"

	"careernode_backend/internal/auth"
	"careernode_backend/internal/logger"
	"careernode_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userID"
	roleKey   = "role"
)

// AuthMiddleware rejects requests without a valid bearer token
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(userIDKey, claims.UserID)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the actor when a bearer token is present
// and lets the request through as anonymous otherwise. Route groups that mix
// public reads with authenticated writes use this; the policy layer decides
// between 401 and 403, not the router.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			// A malformed token on an optional route is still a hard failure;
			// silently downgrading to anonymous would mask client bugs.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(userIDKey, claims.UserID)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles restricts a route group to the listed roles
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(roleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid role type"})
			return
		}

		if !roleSet[models.UserRole(roleStr)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// CurrentActor builds the explicit Actor value for policy checks.
// Returns the anonymous actor when the request carried no valid token.
func CurrentActor(c *gin.Context) auth.Actor {
	userIDVal, exists := c.Get(userIDKey)
	if !exists {
		return auth.Anonymous
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return auth.Anonymous
	}

	role, _ := c.Get(roleKey)
	roleStr, _ := role.(string)

	return auth.Actor{
		ID:            userID,
		Role:          models.UserRole(roleStr),
		Authenticated: true,
	}
}
