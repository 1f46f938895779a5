package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlefevre/gocommerce/internal/application"
	"github.com/nlefevre/gocommerce/pkg/response"
	"github.com/nlefevre/gocommerce/pkg/validation"
)

type CartHandler struct {
	Svc *application.CartService
}

func NewCartHandler(svc *application.CartService) *CartHandler {
	return &CartHandler{Svc: svc}
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ItemsForUser lists the line items of the given user's cart.
func (h *CartHandler) ItemsForUser(c *gin.Context) {
	userID, ok := pathID(c, "userId", "cart not found")
	if !ok {
		return
	}
	items, err := h.Svc.ItemsForUser(c.Request.Context(), userID)
	if err != nil {
		serviceError(c, err, "cart not found")
		return
	}
	response.Success(c, http.StatusOK, items, "cart items", gin.H{"count": len(items)})
}

// AddItem appends a line item; adding the same product twice keeps two lines.
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID, ok := pathID(c, "cartId", "cart not found")
	if !ok {
		return
	}
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	item, err := h.Svc.AddItem(c.Request.Context(), cartID, req.ProductID, req.Quantity)
	if err != nil {
		serviceError(c, err, "cart not found")
		return
	}
	response.Success(c, http.StatusCreated, item, "item added to cart", nil)
}

// UpdateItem changes one line's quantity; the line must belong to this cart.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID, ok := pathID(c, "cartId", "cart not found")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId", "cart item not found")
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.UpdateItemQuantity(c.Request.Context(), cartID, itemID, req.Quantity); err != nil {
		serviceError(c, err, "cart item not found")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"updated": true}, "cart item updated", nil)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, ok := pathID(c, "cartId", "cart not found")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId", "cart item not found")
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(c.Request.Context(), cartID, itemID); err != nil {
		serviceError(c, err, "cart item not found")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"removed": true}, "cart item removed", nil)
}
