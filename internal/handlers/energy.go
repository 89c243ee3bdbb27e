// internal/handlers/energy.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/boomapp/boom-backend/internal/i18n"
	"github.com/boomapp/boom-backend/internal/metrics"
	"github.com/boomapp/boom-backend/internal/middleware"
	"github.com/boomapp/boom-backend/internal/session"
	"github.com/boomapp/boom-backend/internal/utils"
)

type EnergyHandler struct {
	points  session.PointsTable
	metrics *metrics.Registry
}

type EngagementActionRequest struct {
	Action string `json:"action" validate:"required,engagement_action"`
}

func NewEnergyHandler(points session.PointsTable, metrics *metrics.Registry) *EnergyHandler {
	return &EnergyHandler{
		points:  points,
		metrics: metrics,
	}
}

// GET /energy
func (h *EnergyHandler) GetEnergy(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	utils.SuccessResponse(c, gin.H{
		"energy":     sess.Energy.Energy(),
		"energy_max": sess.Energy.Max(),
		"coins":      sess.Energy.Coins(),
	})
}

// POST /energy/actions
func (h *EnergyHandler) PerformAction(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req EngagementActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	points, ok := h.points[session.Action(req.Action)]
	if !ok {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyEnergyUnknownAction), nil)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	granted := sess.Energy.Earn(points)
	h.metrics.EnergyEarned.Add(points)
	if granted > 0 {
		h.metrics.CoinsGranted.Add(float64(granted))
	}

	utils.SuccessResponse(c, gin.H{
		"message":       i18n.T(lang, i18n.KeyEnergyEarned),
		"action":        req.Action,
		"points":        points,
		"coins_granted": granted,
		"energy":        sess.Energy.Energy(),
		"energy_max":    sess.Energy.Max(),
		"coins":         sess.Energy.Coins(),
	})
}
