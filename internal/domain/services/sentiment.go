package services

import (
	"context"

	"finguard/internal/domain/services/ai"
	"finguard/pkg/logger"
)

// SentimentSkewDetector turns the external sentiment classifier into a
// weak risk signal. Strongly negative, high-confidence sentiment adds a
// small fixed bonus; anything else, including classifier failure, adds
// nothing. The classifier is never a hard dependency.
type SentimentSkewDetector struct {
	classifier    ai.Classifier
	logger        *logger.Logger
	bonus         int
	maxInputLen   int
	minConfidence float64
}

// NewSentimentSkewDetector creates the detector. A nil classifier disables
// the signal entirely.
func NewSentimentSkewDetector(classifier ai.Classifier, bonus, maxInputLen int, minConfidence float64, log *logger.Logger) *SentimentSkewDetector {
	return &SentimentSkewDetector{
		classifier:    classifier,
		logger:        log.WithComponent("sentiment-skew"),
		bonus:         bonus,
		maxInputLen:   maxInputLen,
		minConfidence: minConfidence,
	}
}

// Detect returns the sentiment bonus for the text. Input is capped to the
// first maxInputLen characters before it reaches the classifier.
func (d *SentimentSkewDetector) Detect(ctx context.Context, text string) int {
	if d.classifier == nil || text == "" {
		return 0
	}

	runes := []rune(text)
	if len(runes) > d.maxInputLen {
		text = string(runes[:d.maxInputLen])
	}

	sentiment, err := d.classifier.Classify(ctx, text)
	if err != nil {
		// Degrade to zero bonus, never surface the failure.
		d.logger.Debug().Err(err).Msg("sentiment classification failed, skipping signal")
		return 0
	}

	if sentiment.Label == ai.SentimentNegative && sentiment.Score > d.minConfidence {
		return d.bonus
	}
	return 0
}
