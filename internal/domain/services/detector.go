package services

import (
	"strings"

	"finguard/internal/domain/models"
	"finguard/pkg/logger"
)

// PatternScan is the output of one pass of the scam pattern detector.
type PatternScan struct {
	Score      int
	Detections []models.Detection
}

// ScamPatternDetector scans text against the full pattern catalog.
type ScamPatternDetector struct {
	catalog *PatternCatalog
	logger  *logger.Logger
}

// NewScamPatternDetector creates a detector over the given catalog.
func NewScamPatternDetector(catalog *PatternCatalog, log *logger.Logger) *ScamPatternDetector {
	return &ScamPatternDetector{
		catalog: catalog,
		logger:  log.WithComponent("scam-pattern-detector"),
	}
}

// Detect runs every rule against the lower-cased text. A rule's weight
// counts once no matter how many times its pattern occurs; all occurrences
// are kept as evidence. Empty text yields a zero scan.
func (d *ScamPatternDetector) Detect(text string) PatternScan {
	var scan PatternScan
	if strings.TrimSpace(text) == "" {
		return scan
	}

	lowered := strings.ToLower(text)
	for _, rule := range d.catalog.Rules() {
		found := rule.Matcher.Match(lowered)
		if len(found) == 0 {
			continue
		}
		scan.Score += rule.Weight
		scan.Detections = append(scan.Detections, models.Detection{
			Category: rule.Category,
			Pattern:  rule.Matcher.Source(),
			Matches:  found,
			Weight:   rule.Weight,
		})
	}

	if len(scan.Detections) > 0 {
		d.logger.Debug().
			Int("raw_score", scan.Score).
			Int("rules_matched", len(scan.Detections)).
			Msg("scam patterns detected")
	}
	return scan
}
