package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlefevre/gocommerce/internal/application"
	"github.com/nlefevre/gocommerce/pkg/response"
	"github.com/nlefevre/gocommerce/pkg/validation"
)

type CategoryHandler struct {
	Svc *application.CategoryService
}

func NewCategoryHandler(svc *application.CategoryService) *CategoryHandler {
	return &CategoryHandler{Svc: svc}
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.Create(c.Request.Context(), application.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		serviceError(c, err, "category not found")
		return
	}
	response.Success(c, http.StatusCreated, cat, "category created", nil)
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Svc.List(c.Request.Context())
	if err != nil {
		serviceError(c, err, "category not found")
		return
	}
	response.Success(c, http.StatusOK, cats, "categories", gin.H{"count": len(cats)})
}

func (h *CategoryHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "id", "category not found")
	if !ok {
		return
	}
	cat, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "category not found")
		return
	}
	response.Success(c, http.StatusOK, cat, "category", nil)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "category not found")
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.Update(c.Request.Context(), id, application.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		serviceError(c, err, "category not found")
		return
	}
	response.Success(c, http.StatusOK, cat, "category updated", nil)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "category not found")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		serviceError(c, err, "category not found")
		return
	}
	c.Status(http.StatusNoContent)
}
