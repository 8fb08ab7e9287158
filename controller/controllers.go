// api/controller/controllers.go
package controller

import (
	"github.com/adaptivsec/vigil/api/audit"
	"github.com/adaptivsec/vigil/api/auth"
	"github.com/adaptivsec/vigil/api/service"
)

type Controllers struct {
	Voice   *VoiceController
	Summary *SummaryController
	Audit   *AuditController
	Health  *HealthController
}

func InitializeControllers(services *service.Services, authorizer auth.Checker, auditService audit.Service) *Controllers {
	return &Controllers{
		Voice:   NewVoiceController(services.VoicePrompt),
		Summary: NewSummaryController(services.Summary, authorizer),
		Audit:   NewAuditController(auditService),
		Health:  NewHealthController(),
	}
}
