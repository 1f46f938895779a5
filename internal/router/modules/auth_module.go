package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/nlefevre/gocommerce/internal/interface/http"
)

// AuthModule registers account routes. Register and login are public and
// rate limited per client; everything touching an existing session sits
// behind the bearer-token guard.
type AuthModule struct {
	Users     *handlers.UserHandler
	Auth      *handlers.AuthHandler
	Guard     gin.HandlerFunc
	RateLimit gin.HandlerFunc
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	public := rg.Group("")
	if m.RateLimit != nil {
		public.Use(m.RateLimit)
	}
	public.POST("/register", m.Users.Register)
	public.POST("/login", m.Users.Login)
	public.POST("/email/verify/confirm", m.Auth.ConfirmEmailVerification)
	public.POST("/password/reset/request", m.Auth.RequestPasswordReset)
	public.POST("/password/reset/confirm", m.Auth.ConfirmPasswordReset)

	authed := rg.Group("", m.Guard)
	authed.POST("/logout", m.Users.Logout)
	authed.GET("/profile", m.Users.GetProfile)
	authed.POST("/email/verify/request", m.Auth.RequestEmailVerification)
}
