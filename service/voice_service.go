package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	vigil_errors "github.com/adaptivsec/vigil/api/errors"
	logger "github.com/adaptivsec/vigil/api/logging"
	"github.com/adaptivsec/vigil/api/model"
	"github.com/adaptivsec/vigil/api/util"
)

// ContentReader abstracts the microlearning content store.
type ContentReader interface {
	GetMicrolearningContent(ctx context.Context, microlearningID string) (model.MicrolearningContent, error)
}

// SignedURLProvider abstracts the voice-session provisioning client.
type SignedURLProvider interface {
	Enabled() bool
	GetSignedURL(ctx context.Context, agentID string) (string, error)
}

// IVoicePromptService resolves the voice-agent prompt for a microlearning
// module.
type IVoicePromptService interface {
	GetVoicePrompt(ctx context.Context, microlearningID, language string) (*model.VoicePromptResult, error)
}

// VoicePromptService handles business logic for voice-prompt retrieval
type VoicePromptService struct {
	contentReader ContentReader
	voiceClient   SignedURLProvider
	sceneKey      string
	agentID       string
	wsURL         string
	eventBus      *util.EventBus
}

// NewVoicePromptService creates a new instance of VoicePromptService
func NewVoicePromptService(contentReader ContentReader, voiceClient SignedURLProvider, sceneKey, agentID, wsURL string, eventBus *util.EventBus) *VoicePromptService {
	return &VoicePromptService{
		contentReader: contentReader,
		voiceClient:   voiceClient,
		sceneKey:      sceneKey,
		agentID:       agentID,
		wsURL:         wsURL,
		eventBus:      eventBus,
	}
}

// GetVoicePrompt looks up the prompt and first message for the configured
// scene of a microlearning module. The language code is normalized to lower
// case. Signed-URL minting is best-effort enrichment: any failure there is
// logged and the result is returned without it.
func (s *VoicePromptService) GetVoicePrompt(ctx context.Context, microlearningID, language string) (*model.VoicePromptResult, error) {
	lang := strings.ToLower(language)

	content, err := s.contentReader.GetMicrolearningContent(ctx, microlearningID)
	if err != nil {
		return nil, fmt.Errorf("content lookup failed: %w", err)
	}
	if content == nil {
		return nil, vigil_errors.ErrContentNotFound
	}

	scene, ok := content[s.sceneKey]
	if !ok {
		return nil, vigil_errors.ErrContentNotFound
	}
	if scene.Prompt == "" || scene.FirstMessage == "" {
		return nil, vigil_errors.ErrPromptNotAvailable
	}

	result := &model.VoicePromptResult{
		MicrolearningID: microlearningID,
		Language:        lang,
		Prompt:          scene.Prompt,
		FirstMessage:    scene.FirstMessage,
		AgentID:         s.agentID,
		WsURL:           s.wsURL,
	}

	if s.voiceClient != nil && s.voiceClient.Enabled() {
		signedURL, err := s.voiceClient.GetSignedURL(ctx, s.agentID)
		if err != nil {
			logger.Warn("Signed URL provisioning failed, continuing without it",
				zap.Error(err),
				zap.String("microlearningID", microlearningID))
		} else {
			result.SignedURL = signedURL
		}
	}

	s.eventBus.Publish(ctx, util.EventVoiceSessionStarted, model.SimulationEvent{
		Timestamp:       time.Now().UTC(),
		EventType:       util.EventVoiceSessionStarted,
		MicrolearningID: microlearningID,
		Language:        lang,
	})

	return result, nil
}
