package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlefevre/gocommerce/internal/application"
	"github.com/nlefevre/gocommerce/pkg/response"
	"github.com/nlefevre/gocommerce/pkg/validation"
)

type ReviewHandler struct {
	Svc *application.ReviewService
}

func NewReviewHandler(svc *application.ReviewService) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

type createReviewRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	UserID    int64  `json:"user_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type updateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), application.CreateReviewInput{
		ProductID: req.ProductID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		serviceError(c, err, "review not found")
		return
	}
	response.Success(c, http.StatusCreated, r, "review created", nil)
}

func (h *ReviewHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "id", "review not found")
	if !ok {
		return
	}
	r, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "review not found")
		return
	}
	response.Success(c, http.StatusOK, r, "review", nil)
}

// ListByProduct returns a product's reviews; a product with none reads as 404.
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, ok := pathID(c, "id", "no reviews found for this product")
	if !ok {
		return
	}
	reviews, err := h.Svc.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		serviceError(c, err, "no reviews found for this product")
		return
	}
	response.Success(c, http.StatusOK, reviews, "reviews", gin.H{"count": len(reviews)})
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "review not found")
	if !ok {
		return
	}
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	r, err := h.Svc.Update(c.Request.Context(), id, application.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		serviceError(c, err, "review not found")
		return
	}
	response.Success(c, http.StatusOK, r, "review updated", nil)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "review not found")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		serviceError(c, err, "review not found")
		return
	}
	c.Status(http.StatusNoContent)
}
