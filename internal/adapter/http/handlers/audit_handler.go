package handlers

import (
	"net/http"

	response "pure_essence_qms/internal/adapter/http/dto/response"
	"pure_essence_qms/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the audit collaborator's action log and
// notifications, read-only.
type AuditHandler struct {
	trail interfaces.IAuditTrail
}

func NewAuditHandler(trail interfaces.IAuditTrail) *AuditHandler {
	return &AuditHandler{trail: trail}
}

func (h *AuditHandler) ListLogs(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromActionLogs(h.trail.Logs()))
}

func (h *AuditHandler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromNotifications(h.trail.Notifications()))
}
