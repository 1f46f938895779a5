package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/nlefevre/gocommerce/internal/interface/http"
)

// ReviewModule covers standalone review routes; per-product listing is
// registered by ProductModule under /products/:id/reviews.
type ReviewModule struct {
	Reviews *handlers.ReviewHandler
	Guard   gin.HandlerFunc
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/reviews")
	g.GET("/:id", m.Reviews.Show)

	w := g.Group("", m.Guard)
	w.POST("", m.Reviews.Create)
	w.PUT("/:id", m.Reviews.Update)
	w.DELETE("/:id", m.Reviews.Delete)
}
