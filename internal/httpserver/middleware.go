package httpserver

import (
	"net/http"
	"strings"

	"storefront-api/internal/domain"
	"github.com/gin-gonic/gin"
)

const userCtxKey = "authUser"

// authMiddleware resolves the Bearer token into a user and stores it on
// the gin context. Requests without a valid token are rejected.
func authMiddleware(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiResponse{Success: false, Message: "missing bearer token"})
			return
		}
		u, err := svc.LookupByToken(c.Request.Context(), token)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Set(userCtxKey, u)
		c.Set("authToken", token)
		c.Next()
	}
}

// adminMiddleware must run after authMiddleware.
func adminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil || !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, apiResponse{Success: false, Message: "admin access required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
