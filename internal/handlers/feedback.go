// internal/handlers/feedback.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/boomapp/boom-backend/internal/i18n"
	"github.com/boomapp/boom-backend/internal/middleware"
	"github.com/boomapp/boom-backend/internal/utils"
)

// Feedback is a single-slot toast owned by the session's cart store.
// The client shows it for a fixed interval and then calls Dismiss;
// the server never times it out on its own.

// GET /feedback
func (h *CartHandler) GetFeedback(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	utils.SuccessResponse(c, gin.H{
		"feedback": sess.Cart.Feedback(),
	})
}

// DELETE /feedback
func (h *CartHandler) DismissFeedback(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Cart.DismissFeedback()

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFeedbackDismissed),
	})
}
