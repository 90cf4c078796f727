package services

import (
	"fmt"

	"finguard/internal/domain/models"
)

// blacklistWarning is the fixed warning appended when the author is on
// the scam watch list.
const blacklistWarning = "⚠️ Author is on scam watch list"

// ExplanationBuilder renders matched rules into ordered human-readable
// warnings. Output order follows detector evaluation order (category
// declaration order, then rule order), which keeps fixtures reproducible.
type ExplanationBuilder struct{}

// NewExplanationBuilder creates a builder.
func NewExplanationBuilder() *ExplanationBuilder {
	return &ExplanationBuilder{}
}

// Build renders one warning per matched rule, plus the watch-list warning
// when the author is blacklisted. The result is never nil.
func (b *ExplanationBuilder) Build(detections []models.Detection, blacklisted bool) []string {
	warnings := make([]string, 0, len(detections)+1)
	for _, d := range detections {
		warnings = append(warnings, b.render(d))
	}
	if blacklisted {
		warnings = append(warnings, blacklistWarning)
	}
	return warnings
}

func (b *ExplanationBuilder) render(d models.Detection) string {
	switch d.Category {
	case models.CategoryPumpDump:
		return fmt.Sprintf("Detected pump-and-dump language: '%s'", d.Pattern)
	case models.CategoryUrgency:
		return fmt.Sprintf("Urgency tactic detected: '%s'", d.Pattern)
	case models.CategoryGuarantees:
		return fmt.Sprintf("Illegal guarantee detected: '%s'", d.Pattern)
	case models.CategoryInvestmentFraud:
		return fmt.Sprintf("Payment fraud request detected: '%s'", d.Pattern)
	default:
		return fmt.Sprintf("Suspicious pattern detected: '%s'", d.Pattern)
	}
}
