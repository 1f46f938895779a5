package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlefevre/gocommerce/internal/application"
	"github.com/nlefevre/gocommerce/pkg/response"
)

type PaymentHandler struct {
	Svc *application.PaymentService
}

func NewPaymentHandler(svc *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// Pay creates a payment intent for the order total and returns the client
// secret the frontend needs to confirm the charge.
func (h *PaymentHandler) Pay(c *gin.Context) {
	orderID, ok := pathID(c, "id", "order not found")
	if !ok {
		return
	}
	p, clientSecret, err := h.Svc.Pay(c.Request.Context(), orderID)
	if err != nil {
		serviceError(c, err, "order not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"payment":       p,
		"client_secret": clientSecret,
	}, "payment intent created", nil)
}
