// internal/handlers/cart.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/boomapp/boom-backend/internal/i18n"
	"github.com/boomapp/boom-backend/internal/metrics"
	"github.com/boomapp/boom-backend/internal/middleware"
	"github.com/boomapp/boom-backend/internal/models"
	"github.com/boomapp/boom-backend/internal/utils"
)

// ProductFinder is the slice of the catalog service the cart and
// favorites handlers need.
type ProductFinder interface {
	GetProduct(id uuid.UUID) (*models.Product, error)
}

type CartHandler struct {
	catalog ProductFinder
	metrics *metrics.Registry
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	// Fractional and non-positive quantities are normalized by the
	// store, not rejected here.
	Quantity float64 `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func NewCartHandler(catalog ProductFinder, metrics *metrics.Registry) *CartHandler {
	return &CartHandler{
		catalog: catalog,
		metrics: metrics,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	utils.SuccessResponse(c, gin.H{
		"items":      sess.Cart.CartItems(),
		"cart_count": sess.Cart.CartCount(),
		"subtotal":   sess.Cart.Subtotal(),
		"feedback":   sess.Cart.Feedback(),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalog.GetProduct(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Cart.AddToCart(*product, req.Quantity)
	h.metrics.CartAdds.Inc()

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyCartItemAdded),
		"items":      sess.Cart.CartItems(),
		"cart_count": sess.Cart.CartCount(),
		"feedback":   sess.Cart.Feedback(),
	})
}

// PUT /cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Cart.UpdateCartItemQuantity(productID, req.Quantity)

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyCartItemUpdated),
		"items":      sess.Cart.CartItems(),
		"cart_count": sess.Cart.CartCount(),
	})
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	// Removing an item that is not in the cart is deliberately silent
	sess.Cart.RemoveFromCart(productID)

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyCartItemRemoved),
		"items":      sess.Cart.CartItems(),
		"cart_count": sess.Cart.CartCount(),
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Cart.ClearCart()

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyCartCleared),
		"items":      sess.Cart.CartItems(),
		"cart_count": sess.Cart.CartCount(),
	})
}
