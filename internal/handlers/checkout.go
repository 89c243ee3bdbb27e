// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/boomapp/boom-backend/internal/i18n"
	"github.com/boomapp/boom-backend/internal/metrics"
	"github.com/boomapp/boom-backend/internal/middleware"
	"github.com/boomapp/boom-backend/internal/services"
	"github.com/boomapp/boom-backend/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	metrics         *metrics.Registry
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

func NewCheckoutHandler(checkoutService *services.CheckoutService, metrics *metrics.Registry) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		metrics:         metrics,
	}
}

// POST /checkout
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	result, err := h.checkoutService.CreateCheckout(sess.ID, sess.Cart.CartItems())
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCheckoutEmptyCart), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// The cart empties only once the order snapshot is safely stored
	sess.Cart.ClearCart()
	h.metrics.CheckoutsTotal.Inc()

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCheckoutCreated),
		"checkout": result,
	})
}

// POST /checkout/confirm
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.checkoutService.ConfirmPayment(req.PaymentIntentID); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySuccess),
	})
}

// GET /orders
func (h *CheckoutHandler) GetOrders(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orders, err := h.checkoutService.GetSessionOrders(sess.ID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
	})
}
