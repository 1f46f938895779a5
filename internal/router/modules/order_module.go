package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/nlefevre/gocommerce/internal/interface/http"
)

// OrderModule is fully guarded; orders and payments are never public.
type OrderModule struct {
	Orders   *handlers.OrderHandler
	Payments *handlers.PaymentHandler
	Guard    gin.HandlerFunc
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/orders", m.Guard)
	g.GET("", m.Orders.List)
	g.POST("", m.Orders.Create)
	g.GET("/:id", m.Orders.Show)
	g.PUT("/:id", m.Orders.Update)
	g.DELETE("/:id", m.Orders.Delete)
	g.POST("/:id/pay", m.Payments.Pay)
}
