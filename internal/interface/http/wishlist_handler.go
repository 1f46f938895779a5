package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlefevre/gocommerce/internal/application"
	"github.com/nlefevre/gocommerce/pkg/response"
	"github.com/nlefevre/gocommerce/pkg/validation"
)

// WishlistHandler mirrors CartHandler over the wishlist container.
type WishlistHandler struct {
	Svc *application.WishlistService
}

func NewWishlistHandler(svc *application.WishlistService) *WishlistHandler {
	return &WishlistHandler{Svc: svc}
}

type addWishlistItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type updateWishlistItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func (h *WishlistHandler) ItemsForUser(c *gin.Context) {
	userID, ok := pathID(c, "userId", "wishlist not found")
	if !ok {
		return
	}
	items, err := h.Svc.ItemsForUser(c.Request.Context(), userID)
	if err != nil {
		serviceError(c, err, "wishlist not found")
		return
	}
	response.Success(c, http.StatusOK, items, "wishlist items", gin.H{"count": len(items)})
}

func (h *WishlistHandler) AddItem(c *gin.Context) {
	wishlistID, ok := pathID(c, "wishlistId", "wishlist not found")
	if !ok {
		return
	}
	var req addWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	item, err := h.Svc.AddItem(c.Request.Context(), wishlistID, req.ProductID, req.Quantity)
	if err != nil {
		serviceError(c, err, "wishlist not found")
		return
	}
	response.Success(c, http.StatusCreated, item, "item added to wishlist", nil)
}

func (h *WishlistHandler) UpdateItem(c *gin.Context) {
	wishlistID, ok := pathID(c, "wishlistId", "wishlist not found")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId", "wishlist item not found")
	if !ok {
		return
	}
	var req updateWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.UpdateItemQuantity(c.Request.Context(), wishlistID, itemID, req.Quantity); err != nil {
		serviceError(c, err, "wishlist item not found")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"updated": true}, "wishlist item updated", nil)
}

func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	wishlistID, ok := pathID(c, "wishlistId", "wishlist not found")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId", "wishlist item not found")
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(c.Request.Context(), wishlistID, itemID); err != nil {
		serviceError(c, err, "wishlist item not found")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"removed": true}, "wishlist item removed", nil)
}
