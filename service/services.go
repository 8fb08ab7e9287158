// api/service/services.go
package service

import (
	"github.com/adaptivsec/vigil/api/config"
	"github.com/adaptivsec/vigil/api/dao"
	"github.com/adaptivsec/vigil/api/util"
)

type Services struct {
	VoicePrompt IVoicePromptService
	Summary     ISummaryService
}

func InitializeServices(
	contentDAO *dao.ContentDAO,
	voiceClient SignedURLProvider,
	summarizer Summarizer,
	eventBus *util.EventBus,
) *Services {
	return &Services{
		VoicePrompt: NewVoicePromptService(
			contentDAO,
			voiceClient,
			config.GetString("content.sceneKey"),
			config.GetString("voice.agentId"),
			config.GetString("voice.wsUrl"),
			eventBus,
		),
		Summary: NewSummaryService(summarizer, eventBus),
	}
}
