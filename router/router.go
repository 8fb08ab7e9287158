// api/router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adaptivsec/vigil/api/controller"
	"github.com/adaptivsec/vigil/api/middleware"
	"github.com/adaptivsec/vigil/api/util"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	// The outermost exception boundary: panics from business logic are
	// normalized to the standard failure envelope.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   util.NormalizeErrorMessage(recovered),
		})
	}))
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	controllers.Health.RegisterRoutes(router)

	api := router.Group("/api/v1")

	controllers.Voice.RegisterRoutes(api)
	controllers.Summary.RegisterRoutes(api)
	controllers.Audit.RegisterRoutes(api)

	return router
}
