package services

import "finguard/internal/domain/models"

// DeepfakeStub returns a fixed low-risk placeholder. Real video analysis
// is out of scope; the field exists so the composite response shape stays
// stable for clients.
type DeepfakeStub struct{}

// NewDeepfakeStub creates the stub.
func NewDeepfakeStub() *DeepfakeStub {
	return &DeepfakeStub{}
}

// Assess always reports the same low-risk placeholder.
func (s *DeepfakeStub) Assess() models.DeepfakeAssessment {
	return models.DeepfakeAssessment{
		Risk:    15,
		Message: "✅ No deepfake indicators detected (basic check)",
	}
}
