package api

import (
	"errors"
	"net/http"

	reqdto "bookslot/internal/handler/dto/request"
	resdto "bookslot/internal/handler/dto/response"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCmds commands.PaymentCommands
}

func NewPaymentHandler(paymentCmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{paymentCmds: paymentCmds}
}

// @Summary Create payment intent
// @Description Open a payment intent for a service's list price
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIntentRequest true "Payment intent request"
// @Success 201 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /payments/intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	intent, err := h.paymentCmds.CreateIntent(c.Request.Context(), commands.CreateIntentInput{
		ServiceID: req.ServiceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentsDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Payment processing is not configured",
			})
		case errors.Is(err, errs.ErrServiceNotAvailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Selected service is not available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentIntent(intent))
}
