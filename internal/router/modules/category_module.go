package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/nlefevre/gocommerce/internal/interface/http"
)

// CategoryModule mirrors the product split: public reads, guarded writes.
type CategoryModule struct {
	Categories *handlers.CategoryHandler
	Guard      gin.HandlerFunc
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/categories")
	g.GET("", m.Categories.List)
	g.GET("/:id", m.Categories.Show)

	w := g.Group("", m.Guard)
	w.POST("", m.Categories.Create)
	w.PUT("/:id", m.Categories.Update)
	w.DELETE("/:id", m.Categories.Delete)
}
