package services

import (
	"finguard/internal/config"
	"finguard/internal/domain/models"
	"finguard/internal/refdata"
	"finguard/pkg/logger"
)

// CredibilityDetector scores an author on a 1-10 scale from blacklist
// status and an optional follower count.
type CredibilityDetector struct {
	list   *refdata.Blacklist
	cfg    config.CredibilityConfig
	logger *logger.Logger
}

// NewCredibilityDetector creates the detector.
func NewCredibilityDetector(list *refdata.Blacklist, cfg config.CredibilityConfig, log *logger.Logger) *CredibilityDetector {
	return &CredibilityDetector{
		list:   list,
		cfg:    cfg,
		logger: log.WithComponent("credibility"),
	}
}

// Assess computes the credibility of author. Blacklisted authors drop to a
// fixed low score; a known follower count under the cutoff costs one
// point. The final score always lands in [1,10].
func (d *CredibilityDetector) Assess(author string, followerCount *int) models.CredibilityAssessment {
	score := d.cfg.Baseline
	if author != "" && d.list.Contains(author) {
		score = d.cfg.BlacklistedScore
	}
	if followerCount != nil && *followerCount < d.cfg.LowFollowerCutoff {
		score--
	}

	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}

	message := "Unverified advisor - check before trusting"
	if score > d.cfg.VerifiedCutoff {
		message = "Verified financial advisor"
	}

	return models.CredibilityAssessment{
		Name:    author,
		Score:   score,
		Message: message,
	}
}
