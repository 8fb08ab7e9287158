// api/audit/service.go
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	logger "github.com/adaptivsec/vigil/api/logging"
	"github.com/adaptivsec/vigil/api/model"
	"github.com/adaptivsec/vigil/api/util"
)

type Service interface {
	RecordEvent(ctx context.Context, event model.SimulationEvent) error
	QueryEvents(ctx context.Context, from, to time.Time, eventType string) ([]model.SimulationEvent, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RecordEvent(ctx context.Context, event model.SimulationEvent) error {
	return s.repo.RecordEvent(ctx, event)
}

func (s *service) QueryEvents(ctx context.Context, from, to time.Time, eventType string) ([]model.SimulationEvent, error) {
	return s.repo.QueryEvents(ctx, from, to, eventType)
}

// SubscribeToBus indexes simulation events published on the bus. Indexing
// failures are logged and dropped; the audit trail is best-effort.
func SubscribeToBus(bus *util.EventBus, svc Service) {
	handler := func(ctx context.Context, ev util.Event) error {
		record, ok := ev.Payload.(model.SimulationEvent)
		if !ok {
			logger.Warn("Dropping event with unexpected payload type", zap.String("eventType", ev.Type))
			return nil
		}
		return svc.RecordEvent(ctx, record)
	}
	bus.Subscribe(util.EventVoiceSessionStarted, handler)
	bus.Subscribe(util.EventConversationSummarized, handler)
}
