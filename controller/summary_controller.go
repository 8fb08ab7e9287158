// api/controller/summary_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adaptivsec/vigil/api/auth"
	vigil_errors "github.com/adaptivsec/vigil/api/errors"
	"github.com/adaptivsec/vigil/api/model"
	"github.com/adaptivsec/vigil/api/service"
	"github.com/adaptivsec/vigil/api/util"
)

// authBaseURLHeader lets trusted callers point the token check at a
// different validation deployment (staging, regional).
const authBaseURLHeader = "X-Auth-Base-Url"

type SummaryController struct {
	summaryService service.ISummaryService
	authorizer     auth.Checker
}

func NewSummaryController(summaryService service.ISummaryService, authorizer auth.Checker) *SummaryController {
	return &SummaryController{
		summaryService: summaryService,
		authorizer:     authorizer,
	}
}

// RegisterRoutes registers the API routes
func (sc *SummaryController) RegisterRoutes(r *gin.RouterGroup) {
	conversations := r.Group("/conversations")
	{
		conversations.POST("/summary", sc.SummarizeConversation)
	}
}

// SummarizeConversation endpoint. Structural validation runs before the
// authorization check so malformed input never consumes an upstream
// validation round-trip.
func (sc *SummaryController) SummarizeConversation(c *gin.Context) {
	var req model.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, util.ValidationErrorMessage(err), err)
		return
	}

	outcome := sc.authorizer.Check(c, req.AccessToken, c.GetHeader(authBaseURLHeader))
	if outcome != auth.Authorized {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", vigil_errors.ErrUnauthorized)
		return
	}

	summary, err := sc.summaryService.Summarize(c, req.Messages)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, util.NormalizeErrorMessage(err), err)
		return
	}

	c.JSON(http.StatusOK, model.SummaryResponse{
		Success:    true,
		Summary:    summary.Summary,
		NextSteps:  summary.NextSteps,
		StatusCard: summary.StatusCard,
	})
}
