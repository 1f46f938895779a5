package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nlefevre/gocommerce/pkg/helpers"
	"github.com/nlefevre/gocommerce/pkg/response"
)

// Principal identifies the authenticated caller. Handlers receive it
// explicitly through CurrentPrincipal; nothing reads ambient user state.
type Principal struct {
	UserID    int64
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

const ctxPrincipalKey = "principal"

// Auth validates the Authorization bearer token and rejects tokens that
// were revoked at logout. A nil store disables the revocation check. On
// success the principal is stored in the Gin context for CurrentPrincipal.
func Auth(revoked helpers.RevocationStore, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid bearer token", nil)
			c.Abort()
			return
		}
		if revoked != nil && revoked.Revoked(c.Request.Context(), claims.ID) {
			response.Error[any](c, http.StatusUnauthorized, "token revoked", nil)
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, Principal{
			UserID:    claims.UserID,
			Email:     claims.Email,
			TokenID:   claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
		})
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated principal set by Auth.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(ctxPrincipalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
