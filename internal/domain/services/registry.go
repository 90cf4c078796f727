package services

import (
	"finguard/internal/domain/models"
	"finguard/internal/refdata"
	"finguard/pkg/logger"
)

// RegistryService answers verified-registry membership checks. It has no
// interaction with the risk-scoring engine.
type RegistryService struct {
	registry *refdata.VerifiedRegistry
	logger   *logger.Logger
}

// NewRegistryService creates the service.
func NewRegistryService(registry *refdata.VerifiedRegistry, log *logger.Logger) *RegistryService {
	return &RegistryService{
		registry: registry,
		logger:   log.WithComponent("registry"),
	}
}

// Verify tests the entity name against the verified list. An empty name
// is simply not registered.
func (s *RegistryService) Verify(entity string) models.RegistryCheck {
	registered := entity != "" && s.registry.Contains(entity)

	message := "❌ Not found in verified registry"
	if registered {
		message = "✅ Verified registered entity"
	}

	return models.RegistryCheck{
		Entity:     entity,
		Registered: registered,
		Message:    message,
	}
}
