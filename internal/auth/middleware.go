package auth

import (
	"net/http"
	"strings"

	"taskboard-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextKeyUserID = "auth.user_id"
	contextKeyTeamID = "auth.team_id"
	contextKeyRole   = "auth.role"
)

// RequireAuth validates the bearer token and stashes the caller's identity in
// the request context
func RequireAuth(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := service.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyTeamID, claims.TeamID)
		c.Set(contextKeyRole, claims.Role)
		c.Next()
	}
}

// RequireManager rejects callers whose token does not carry the manager role.
// Must run after RequireAuth.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != models.UserRoleManager {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "manager role required"})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID from the request context
func GetUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(contextKeyUserID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetTeamID returns the authenticated user's team ID from the request context
func GetTeamID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(contextKeyTeamID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetRole returns the authenticated user's role from the request context
func GetRole(c *gin.Context) models.UserRole {
	if v, ok := c.Get(contextKeyRole); ok {
		if role, ok := v.(models.UserRole); ok {
			return role
		}
	}
	return ""
}
