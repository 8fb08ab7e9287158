// api/controller/audit_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adaptivsec/vigil/api/audit"
	"github.com/adaptivsec/vigil/api/util"
	helper_util "github.com/adaptivsec/vigil/api/util/helper"
)

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	auditGroup := r.Group("/audit")
	{
		auditGroup.GET("/events", ac.ListEvents)
	}
}

// ListEvents endpoint; operator-facing query over the simulation audit trail.
func (ac *AuditController) ListEvents(c *gin.Context) {
	from, to, err := helper_util.GetTimeRangeParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid time range parameters", err)
		return
	}

	events, err := ac.auditService.QueryEvents(c, from, to, c.Query("type"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit events", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}
