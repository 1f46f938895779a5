package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/nlefevre/gocommerce/internal/interface/http"
)

// CartModule is fully guarded. Item mutations are scoped to the cart in the
// path; a line id under a different cart reads as not found.
type CartModule struct {
	Carts *handlers.CartHandler
	Guard gin.HandlerFunc
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/carts", m.Guard)
	g.GET("/user/:userId/items", m.Carts.ItemsForUser)
	g.POST("/:cartId/items", m.Carts.AddItem)
	g.PUT("/:cartId/items/:itemId", m.Carts.UpdateItem)
	g.DELETE("/:cartId/items/:itemId", m.Carts.RemoveItem)
}
