package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/nlefevre/gocommerce/internal/interface/http"
)

// ProductModule exposes the catalog. Reads and search are public; writes,
// including image upload, require a bearer token. Product review listing
// lives here because it shares the /products/:id prefix.
type ProductModule struct {
	Products *handlers.ProductHandler
	Reviews  *handlers.ReviewHandler
	Guard    gin.HandlerFunc
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/products")
	g.GET("", m.Products.List)
	g.GET("/search", m.Products.Search)
	g.GET("/:id", m.Products.Show)
	g.GET("/:id/reviews", m.Reviews.ListByProduct)

	w := g.Group("", m.Guard)
	w.POST("", m.Products.Create)
	w.PUT("/:id", m.Products.Update)
	w.DELETE("/:id", m.Products.Delete)
	w.POST("/:id/image", m.Products.UploadImage)
}
