package middleware

import (
	"net/http"
	"strings"

	"hotelbooking/internal/pkg/authz"
	jwtsvc "hotelbooking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
	ctxIsAdmin  = "is_admin"
)

// Auth validates the bearer token and stores the caller's identity in
// the gin context for ActorFromContext.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// ActorFromContext rebuilds the acting identity stored by Auth.
func ActorFromContext(c *gin.Context) authz.Actor {
	return authz.Actor{
		ID:       c.GetInt64(ctxUserID),
		Username: c.GetString(ctxUsername),
		IsAdmin:  c.GetBool(ctxIsAdmin),
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
