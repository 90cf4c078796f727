package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finguard/internal/domain/models"
	"finguard/internal/domain/services"
)

func TestExplanationBuilder_EmptyInputYieldsEmptySlice(t *testing.T) {
	b := services.NewExplanationBuilder()

	warnings := b.Build(nil, false)
	require.NotNil(t, warnings)
	assert.Empty(t, warnings)
}

func TestExplanationBuilder_CategoryTemplates(t *testing.T) {
	b := services.NewExplanationBuilder()

	warnings := b.Build([]models.Detection{
		{Category: models.CategoryPumpDump, Pattern: "buy now"},
		{Category: models.CategoryUrgency, Pattern: "last chance"},
		{Category: models.CategoryGuarantees, Pattern: `risk-?free`},
		{Category: models.CategoryInvestmentFraud, Pattern: "send money"},
	}, false)

	assert.Equal(t, []string{
		"Detected pump-and-dump language: 'buy now'",
		"Urgency tactic detected: 'last chance'",
		"Illegal guarantee detected: 'risk-?free'",
		"Payment fraud request detected: 'send money'",
	}, warnings)
}

func TestExplanationBuilder_PreservesDetectionOrder(t *testing.T) {
	b := services.NewExplanationBuilder()

	detections := []models.Detection{
		{Category: models.CategoryUrgency, Pattern: "act fast"},
		{Category: models.CategoryPumpDump, Pattern: "buy now"},
	}

	warnings := b.Build(detections, false)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "act fast")
	assert.Contains(t, warnings[1], "buy now")
}

func TestExplanationBuilder_BlacklistWarningAppendedLast(t *testing.T) {
	b := services.NewExplanationBuilder()

	warnings := b.Build([]models.Detection{
		{Category: models.CategoryPumpDump, Pattern: "buy now"},
	}, true)

	require.Len(t, warnings, 2)
	assert.Equal(t, "⚠️ Author is on scam watch list", warnings[1])
}

func TestExplanationBuilder_BlacklistWarningWithoutDetections(t *testing.T) {
	b := services.NewExplanationBuilder()

	warnings := b.Build(nil, true)
	assert.Equal(t, []string{"⚠️ Author is on scam watch list"}, warnings)
}

func TestExplanationBuilder_NoDeduplicationAcrossRules(t *testing.T) {
	b := services.NewExplanationBuilder()

	// The same literal substring firing two rules still yields two warnings.
	warnings := b.Build([]models.Detection{
		{Category: models.CategoryPumpDump, Pattern: "buy now"},
		{Category: models.CategoryUrgency, Pattern: `act (?:fast|now)`},
	}, false)
	assert.Len(t, warnings, 2)
}
