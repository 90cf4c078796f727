package services

import (
	"finguard/internal/config"
	"finguard/internal/domain/models"
	"finguard/pkg/logger"
)

// RiskAggregator combines detector contributions into one bounded
// composite score and maps it onto the severity ladder.
//
// The ladder is the four-band one (>=80 HIGH, >=50 MEDIUM, >=30
// LOW-MEDIUM, else LOW), used for both the label and the human message.
type RiskAggregator struct {
	thresholds config.ThresholdsConfig
	logger     *logger.Logger
}

// NewRiskAggregator creates an aggregator with the given ladder.
func NewRiskAggregator(thresholds config.ThresholdsConfig, log *logger.Logger) *RiskAggregator {
	return &RiskAggregator{
		thresholds: thresholds,
		logger:     log.WithComponent("risk-aggregator"),
	}
}

// Aggregate sums the partial contributions and clamps to [0,100]. The
// clamp saturates: many co-occurring weak signals cap at 100 rather than
// overflowing the scale.
func (a *RiskAggregator) Aggregate(scamPartial, blacklistBonus, sentimentBonus int) int {
	score := scamPartial + blacklistBonus + sentimentBonus
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Severity maps a composite score to its label. Bands are evaluated
// top-down; the first match wins.
func (a *RiskAggregator) Severity(score int) models.Severity {
	switch {
	case score >= a.thresholds.High:
		return models.SeverityHigh
	case score >= a.thresholds.Medium:
		return models.SeverityMedium
	case score >= a.thresholds.LowMedium:
		return models.SeverityLowMedium
	default:
		return models.SeverityLow
	}
}

// Message renders the human-readable risk message for a score, using the
// same ladder as Severity.
func (a *RiskAggregator) Message(score int) string {
	switch a.Severity(score) {
	case models.SeverityHigh:
		return "🚨 HIGH RISK: Strong indicators of scam content. Avoid clicking links or sending money."
	case models.SeverityMedium:
		return "⚠️ MEDIUM RISK: Some suspicious patterns detected. Verify before acting."
	case models.SeverityLowMedium:
		return "⚠️ LOW-MEDIUM RISK: Minor red flags present."
	default:
		return "✅ LOW RISK: Content appears legitimate based on initial scan."
	}
}
