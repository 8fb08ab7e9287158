package controller_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adaptivsec/vigil/api/controller"
	vigil_errors "github.com/adaptivsec/vigil/api/errors"
	logger "github.com/adaptivsec/vigil/api/logging"
	"github.com/adaptivsec/vigil/api/model"
	mock_service "github.com/adaptivsec/vigil/api/test/service_mock"
	"github.com/adaptivsec/vigil/api/util"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, util.RegisterValidators())
	return gin.New()
}

func TestVoiceController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVoiceService := mock_service.NewMockIVoicePromptService(ctrl)
	voiceController := controller.NewVoiceController(mockVoiceService)
	router := setupRouter(t)
	api := router.Group("/api/v1")
	voiceController.RegisterRoutes(api)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/voice/prompt", strings.NewReader(body))
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Success_EchoesStoredPromptVerbatim", func(t *testing.T) {
		mockVoiceService.EXPECT().
			GetVoicePrompt(gomock.Any(), "ml-1", "EN").
			Return(&model.VoicePromptResult{
				MicrolearningID: "ml-1",
				Language:        "en",
				Prompt:          "P",
				FirstMessage:    "F",
				AgentID:         "agent-1",
				WsURL:           "wss://voice.example.com",
			}, nil)

		w := post(`{"microlearningId":"ml-1","language":"EN"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp model.VoicePromptResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "en", resp.Language)
		assert.Equal(t, "P", resp.Prompt)
		assert.Equal(t, "F", resp.FirstMessage)
		assert.Empty(t, resp.SignedURL)
	})

	t.Run("Success_IncludesSignedURLWhenPresent", func(t *testing.T) {
		mockVoiceService.EXPECT().
			GetVoicePrompt(gomock.Any(), "ml-1", "en").
			Return(&model.VoicePromptResult{
				MicrolearningID: "ml-1",
				Language:        "en",
				Prompt:          "P",
				FirstMessage:    "F",
				AgentID:         "agent-1",
				WsURL:           "wss://voice.example.com",
				SignedURL:       "wss://session/abc",
			}, nil)

		w := post(`{"microlearningId":"ml-1","language":"en"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"signedUrl":"wss://session/abc"`)
	})

	t.Run("MissingMicrolearningID_BadRequest", func(t *testing.T) {
		w := post(`{"language":"en"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("LanguageTooShort_BadRequest", func(t *testing.T) {
		w := post(`{"microlearningId":"ml-1","language":"e"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ContentNotFound_NotFound", func(t *testing.T) {
		mockVoiceService.EXPECT().
			GetVoicePrompt(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, vigil_errors.ErrContentNotFound)

		w := post(`{"microlearningId":"missing","language":"en"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Microlearning content not found")
	})

	t.Run("PromptNotAvailable_NotFoundWithDistinctMessage", func(t *testing.T) {
		mockVoiceService.EXPECT().
			GetVoicePrompt(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, vigil_errors.ErrPromptNotAvailable)

		w := post(`{"microlearningId":"ml-1","language":"en"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Prompt or first message not available")
	})

	t.Run("UnexpectedError_InternalServerErrorWithMessage", func(t *testing.T) {
		mockVoiceService.EXPECT().
			GetVoicePrompt(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom"))

		w := post(`{"microlearningId":"ml-1","language":"en"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "boom")
	})
}
