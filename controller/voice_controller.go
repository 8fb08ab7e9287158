// api/controller/voice_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	vigil_errors "github.com/adaptivsec/vigil/api/errors"
	"github.com/adaptivsec/vigil/api/model"
	"github.com/adaptivsec/vigil/api/service"
	"github.com/adaptivsec/vigil/api/util"
)

type VoiceController struct {
	voiceService service.IVoicePromptService
}

func NewVoiceController(voiceService service.IVoicePromptService) *VoiceController {
	return &VoiceController{
		voiceService: voiceService,
	}
}

// RegisterRoutes registers the API routes
func (vc *VoiceController) RegisterRoutes(r *gin.RouterGroup) {
	voice := r.Group("/voice")
	{
		voice.POST("/prompt", vc.GetVoicePrompt)
	}
}

// GetVoicePrompt endpoint
func (vc *VoiceController) GetVoicePrompt(c *gin.Context) {
	var req model.VoicePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, util.ValidationErrorMessage(err), err)
		return
	}

	result, err := vc.voiceService.GetVoicePrompt(c, req.MicrolearningID, req.Language)
	if err != nil {
		switch {
		case errors.Is(err, vigil_errors.ErrContentNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Microlearning content not found", err)
		case errors.Is(err, vigil_errors.ErrPromptNotAvailable):
			util.RespondWithError(c, http.StatusNotFound, "Prompt or first message not available", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, util.NormalizeErrorMessage(err), err)
		}
		return
	}

	c.JSON(http.StatusOK, model.VoicePromptResponse{
		Success:         true,
		MicrolearningID: result.MicrolearningID,
		Language:        result.Language,
		Prompt:          result.Prompt,
		FirstMessage:    result.FirstMessage,
		AgentID:         result.AgentID,
		WsURL:           result.WsURL,
		SignedURL:       result.SignedURL,
	})
}
