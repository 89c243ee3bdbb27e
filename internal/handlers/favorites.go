// internal/handlers/favorites.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/boomapp/boom-backend/internal/i18n"
	"github.com/boomapp/boom-backend/internal/metrics"
	"github.com/boomapp/boom-backend/internal/middleware"
	"github.com/boomapp/boom-backend/internal/utils"
)

type FavoritesHandler struct {
	catalog ProductFinder
	metrics *metrics.Registry
}

type ToggleFavoriteRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

func NewFavoritesHandler(catalog ProductFinder, metrics *metrics.Registry) *FavoritesHandler {
	return &FavoritesHandler{
		catalog: catalog,
		metrics: metrics,
	}
}

// GET /favorites
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	utils.SuccessResponse(c, gin.H{
		"favorites":      sess.Cart.Favorites(),
		"favorite_count": sess.Cart.FavoriteCount(),
	})
}

// POST /favorites/toggle
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req ToggleFavoriteRequest
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

	sess.Cart.ToggleFavorite(*product)
	h.metrics.FavoriteToggles.Inc()

	messageKey := i18n.KeyFavoriteRemoved
	if sess.Cart.IsFavorite(productID) {
		messageKey = i18n.KeyFavoriteAdded
	}

	utils.SuccessResponse(c, gin.H{
		"message":        i18n.T(lang, messageKey),
		"is_favorite":    sess.Cart.IsFavorite(productID),
		"favorite_count": sess.Cart.FavoriteCount(),
		"feedback":       sess.Cart.Feedback(),
	})
}
