package service

import (
	"context"
	"time"

	"github.com/adaptivsec/vigil/api/model"
	"github.com/adaptivsec/vigil/api/util"
)

// Summarizer abstracts the AI summarizer client.
type Summarizer interface {
	Summarize(ctx context.Context, messages []model.ConversationMessage) (*model.ConversationSummary, error)
}

// ISummaryService produces an incident-response summary for a finished
// conversation.
type ISummaryService interface {
	Summarize(ctx context.Context, messages []model.ConversationMessage) (*model.ConversationSummary, error)
}

// SummaryService handles business logic for conversation summaries
type SummaryService struct {
	summarizer Summarizer
	eventBus   *util.EventBus
}

// NewSummaryService creates a new instance of SummaryService
func NewSummaryService(summarizer Summarizer, eventBus *util.EventBus) *SummaryService {
	return &SummaryService{
		summarizer: summarizer,
		eventBus:   eventBus,
	}
}

// Summarize delegates to the AI summarizer. Its errors propagate to the
// handler boundary unchanged; the caller decides how to surface them.
func (s *SummaryService) Summarize(ctx context.Context, messages []model.ConversationMessage) (*model.ConversationSummary, error) {
	summary, err := s.summarizer.Summarize(ctx, messages)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventConversationSummarized, model.SimulationEvent{
		Timestamp:    time.Now().UTC(),
		EventType:    util.EventConversationSummarized,
		MessageCount: len(messages),
	})

	return summary, nil
}
