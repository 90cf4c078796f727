package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finguard/internal/config"
	"finguard/internal/domain/models"
	"finguard/internal/domain/services"
)

func newAggregator() *services.RiskAggregator {
	return services.NewRiskAggregator(config.Default().Scoring.Thresholds, testLogger())
}

func TestRiskAggregator_SumsContributions(t *testing.T) {
	a := newAggregator()

	assert.Equal(t, 0, a.Aggregate(0, 0, 0))
	assert.Equal(t, 50, a.Aggregate(15, 30, 5))
	assert.Equal(t, 80, a.Aggregate(80, 0, 0))
}

func TestRiskAggregator_ClampSaturates(t *testing.T) {
	a := newAggregator()

	// Six matched rules at weight 20 would sum to 120; the scale caps at 100.
	assert.Equal(t, 100, a.Aggregate(120, 0, 0))
	assert.Equal(t, 100, a.Aggregate(100, 30, 5))
	assert.Equal(t, 100, a.Aggregate(95, 30, 0))
}

func TestRiskAggregator_ScoreAlwaysBounded(t *testing.T) {
	a := newAggregator()

	for _, partial := range []int{0, 1, 29, 30, 49, 50, 79, 80, 99, 100, 250} {
		score := a.Aggregate(partial, 30, 5)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestRiskAggregator_SeverityLadderBoundaries(t *testing.T) {
	a := newAggregator()

	cases := []struct {
		score int
		want  models.Severity
	}{
		{0, models.SeverityLow},
		{29, models.SeverityLow},
		{30, models.SeverityLowMedium},
		{49, models.SeverityLowMedium},
		{50, models.SeverityMedium},
		{79, models.SeverityMedium},
		{80, models.SeverityHigh},
		{100, models.SeverityHigh},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, a.Severity(c.score), "score %d", c.score)
	}
}

func TestRiskAggregator_MessageMatchesLadder(t *testing.T) {
	a := newAggregator()

	assert.Contains(t, a.Message(100), "HIGH RISK")
	assert.Contains(t, a.Message(80), "HIGH RISK")
	assert.Contains(t, a.Message(50), "MEDIUM RISK")
	assert.Contains(t, a.Message(30), "LOW-MEDIUM RISK")
	assert.Contains(t, a.Message(0), "LOW RISK")
}
