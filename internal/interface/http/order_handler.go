package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nlefevre/gocommerce/internal/application"
	"github.com/nlefevre/gocommerce/internal/interface/middleware"
	"github.com/nlefevre/gocommerce/pkg/response"
	"github.com/nlefevre/gocommerce/pkg/validation"
)

type OrderHandler struct {
	Svc *application.OrderService
}

func NewOrderHandler(svc *application.OrderService) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

type orderItemRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

type createOrderRequest struct {
	UserID          int64              `json:"user_id" binding:"required"`
	OrderDate       time.Time          `json:"order_date" binding:"required"`
	Status          string             `json:"status" binding:"required,max=50"`
	TotalAmount     decimal.Decimal    `json:"total_amount" binding:"required"`
	OrderItems      []orderItemRequest `json:"order_items" binding:"required,min=1,dive"`
	ShippingAddress string             `json:"shipping_address" binding:"required"`
	ShippingDate    *time.Time         `json:"shipping_date"`
	TrackingNumber  *string            `json:"tracking_number"`
}

type updateOrderRequest struct {
	Status      string          `json:"status" binding:"required,max=50"`
	TotalAmount decimal.Decimal `json:"total_amount" binding:"required"`
}

// Create writes the order, its line items, and the shipping record together;
// a failure anywhere leaves no partial rows behind.
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	items := make([]application.OrderItemInput, len(req.OrderItems))
	for i, it := range req.OrderItems {
		items[i] = application.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
	}
	o, err := h.Svc.Create(c.Request.Context(), application.CreateOrderInput{
		UserID:          req.UserID,
		OrderDate:       req.OrderDate,
		Status:          req.Status,
		TotalAmount:     req.TotalAmount,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		ShippingDate:    req.ShippingDate,
		TrackingNumber:  req.TrackingNumber,
	})
	if err != nil {
		serviceError(c, err, "order not found")
		return
	}
	response.Success(c, http.StatusCreated, o, "order created", nil)
}

// List returns the caller's own orders; the owning user comes from the
// validated token, never from the query string.
func (h *OrderHandler) List(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	orders, err := h.Svc.ListForUser(c.Request.Context(), p.UserID)
	if err != nil {
		serviceError(c, err, "orders not found")
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", nil)
}

func (h *OrderHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "id", "order not found")
	if !ok {
		return
	}
	o, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "order not found")
		return
	}
	response.Success(c, http.StatusOK, o, "order", nil)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "order not found")
	if !ok {
		return
	}
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	o, err := h.Svc.Update(c.Request.Context(), id, application.UpdateOrderInput{
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		serviceError(c, err, "order not found")
		return
	}
	response.Success(c, http.StatusOK, o, "order updated", nil)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "order not found")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		serviceError(c, err, "order not found")
		return
	}
	c.Status(http.StatusNoContent)
}
