package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finguard/internal/domain/models"
	"finguard/internal/domain/services"
	"finguard/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

func TestPatternCatalog_ClosedCategorySet(t *testing.T) {
	catalog := services.NewPatternCatalog(testLogger())

	want := []models.ScamCategory{
		models.CategoryPumpDump,
		models.CategoryUrgency,
		models.CategoryGuarantees,
		models.CategoryInvestmentFraud,
	}
	assert.Equal(t, want, catalog.Categories())
}

func TestPatternCatalog_AllWeightsPositive(t *testing.T) {
	catalog := services.NewPatternCatalog(testLogger())

	rules := catalog.Rules()
	require.NotEmpty(t, rules)
	for _, rule := range rules {
		assert.Greater(t, rule.Weight, 0, "rule %q must have positive weight", rule.Matcher.Source())
	}
}

func TestPatternCatalog_RulesFollowDeclarationOrder(t *testing.T) {
	catalog := services.NewPatternCatalog(testLogger())

	var got []models.ScamCategory
	for _, rule := range catalog.Rules() {
		if len(got) == 0 || got[len(got)-1] != rule.Category {
			got = append(got, rule.Category)
		}
	}
	// Each category appears as one contiguous block, in declaration order.
	assert.Equal(t, catalog.Categories(), got)
}

func TestPatternCatalog_CategoryWeights(t *testing.T) {
	catalog := services.NewPatternCatalog(testLogger())

	weights := map[models.ScamCategory]int{
		models.CategoryPumpDump:        15,
		models.CategoryUrgency:         10,
		models.CategoryGuarantees:      20,
		models.CategoryInvestmentFraud: 15,
	}
	for cat, want := range weights {
		rules := catalog.RulesFor(cat)
		require.NotEmpty(t, rules, "category %s has no rules", cat)
		for _, rule := range rules {
			assert.Equal(t, want, rule.Weight, "category %s", cat)
		}
	}
}

func TestPatternRule_LiteralRecordsEveryOccurrence(t *testing.T) {
	catalog := services.NewPatternCatalog(testLogger())

	var buyNow services.Rule
	for _, rule := range catalog.RulesFor(models.CategoryPumpDump) {
		if rule.Matcher.Source() == "buy now" {
			buyNow = rule
		}
	}
	require.NotNil(t, buyNow.Matcher)

	found := buyNow.Matcher.Match("buy now, yes buy now, really buy now")
	assert.Len(t, found, 3)
}

func TestPatternRule_RegexVariants(t *testing.T) {
	catalog := services.NewPatternCatalog(testLogger())

	var guaranteed services.Rule
	for _, rule := range catalog.RulesFor(models.CategoryGuarantees) {
		if rule.Matcher.Source() == `guaranteed? returns?` {
			guaranteed = rule
		}
	}
	require.NotNil(t, guaranteed.Matcher)

	assert.NotEmpty(t, guaranteed.Matcher.Match("guaranteed returns on this"))
	assert.NotEmpty(t, guaranteed.Matcher.Match("guarantee return"))
	assert.Empty(t, guaranteed.Matcher.Match("guarantees of quality"))
}
