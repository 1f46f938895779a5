package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/nlefevre/gocommerce/internal/interface/http"
)

type WishlistModule struct {
	Wishlists *handlers.WishlistHandler
	Guard     gin.HandlerFunc
}

func (m *WishlistModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/wishlists", m.Guard)
	g.GET("/user/:userId/items", m.Wishlists.ItemsForUser)
	g.POST("/:wishlistId/items", m.Wishlists.AddItem)
	g.PUT("/:wishlistId/items/:itemId", m.Wishlists.UpdateItem)
	g.DELETE("/:wishlistId/items/:itemId", m.Wishlists.RemoveItem)
}
