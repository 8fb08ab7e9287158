// api/controller/health_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adaptivsec/vigil/api/db"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// RegisterRoutes registers the liveness route at the router root.
func (hc *HealthController) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", hc.Healthz)
}

// Healthz endpoint
func (hc *HealthController) Healthz(c *gin.Context) {
	if err := db.HealthCheck(c); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "content store unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
