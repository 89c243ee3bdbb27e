// internal/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/boomapp/boom-backend/internal/config"
	"github.com/boomapp/boom-backend/internal/i18n"
	"github.com/boomapp/boom-backend/internal/metrics"
	"github.com/boomapp/boom-backend/internal/middleware"
	"github.com/boomapp/boom-backend/internal/session"
	"github.com/boomapp/boom-backend/internal/utils"
)

type SessionHandler struct {
	manager *session.Manager
	config  *config.Config
	metrics *metrics.Registry
}

func NewSessionHandler(manager *session.Manager, config *config.Config, metrics *metrics.Registry) *SessionHandler {
	return &SessionHandler{
		manager: manager,
		config:  config,
		metrics: metrics,
	}
}

// POST /sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sess := h.manager.Create()

	token, err := utils.GenerateSessionToken(sess.ID, h.config.JWT.SessionTTL)
	if err != nil {
		h.manager.Delete(sess.ID)
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	h.metrics.SessionsCreated.Inc()

	utils.CreatedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeySessionCreated),
		"session_id": sess.ID,
		"token":      token,
		// Client-side constants: the feed needs the overflow threshold
		// and how long to show a feedback toast before dismissing it.
		"energy_max":      sess.Energy.Max(),
		"feedback_ttl_ms": h.config.Engagement.FeedbackTTLMillis,
	})
}

// GET /sessions/me
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	utils.SuccessResponse(c, gin.H{
		"session_id":     sess.ID,
		"created_at":     sess.CreatedAt,
		"cart_count":     sess.Cart.CartCount(),
		"favorite_count": sess.Cart.FavoriteCount(),
		"energy":         sess.Energy.Energy(),
		"energy_max":     sess.Energy.Max(),
		"coins":          sess.Energy.Coins(),
	})
}

// DELETE /sessions/me
func (h *SessionHandler) EndSession(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	h.manager.Delete(sess.ID)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySessionEnded),
	})
}
