package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nlefevre/gocommerce/internal/container"
	"github.com/nlefevre/gocommerce/internal/interface/middleware"
	"github.com/nlefevre/gocommerce/internal/router/modules"
	"github.com/nlefevre/gocommerce/pkg/response"
)

// Setup builds the engine: global middleware first, then every feature
// module registered on /api through the registry.
func Setup(c *container.Container) *gin.Engine {
	gin.SetMode(c.Cfg.GinMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	if c.Cfg.HTTPLogEnabled {
		engine.Use(gin.Logger())
	}
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RealIP())
	engine.Use(corsMiddleware(c.Cfg.CORSOrigins()))

	engine.GET("/health", func(ctx *gin.Context) {
		response.Success[any](ctx, 200, gin.H{"status": "ok"}, "healthy", nil)
	})

	guard := middleware.Auth(c.Revocations, c.JWT)
	// 10 attempts per minute per client on the credential endpoints
	loginLimit := middleware.RateLimit(c.Redis, 10, time.Minute,
		middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	reg := NewRegistry(engine)
	reg.Add(&modules.AuthModule{Users: c.UserHandler, Auth: c.AuthHandler, Guard: guard, RateLimit: loginLimit})
	reg.Add(&modules.ProductModule{Products: c.ProductHandler, Reviews: c.ReviewHandler, Guard: guard})
	reg.Add(&modules.CategoryModule{Categories: c.CategoryHandler, Guard: guard})
	reg.Add(&modules.OrderModule{Orders: c.OrderHandler, Payments: c.PaymentHandler, Guard: guard})
	reg.Add(&modules.ReviewModule{Reviews: c.ReviewHandler, Guard: guard})
	reg.Add(&modules.CartModule{Carts: c.CartHandler, Guard: guard})
	reg.Add(&modules.WishlistModule{Wishlists: c.WishlistHandler, Guard: guard})
	reg.RegisterAll()

	return engine
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
