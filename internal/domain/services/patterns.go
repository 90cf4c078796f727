package services

import (
	"regexp"
	"strings"

	"finguard/internal/domain/models"
	"finguard/pkg/logger"
)

// PatternRule matches lower-cased text and returns every occurrence it
// found. Two variants exist: literal substring and regex. The catalog can
// mix both without callers caring which.
type PatternRule interface {
	// Source returns the rule's pattern text, used in warnings and fixtures.
	Source() string
	// Match returns all occurrences of the pattern in the text, or nil.
	Match(lowered string) []string
}

type literalRule string

func (r literalRule) Source() string { return string(r) }

func (r literalRule) Match(lowered string) []string {
	pattern := string(r)
	var found []string
	for i := 0; ; {
		idx := strings.Index(lowered[i:], pattern)
		if idx < 0 {
			break
		}
		found = append(found, pattern)
		i += idx + len(pattern)
	}
	return found
}

type regexRule struct {
	expr string
	re   *regexp.Regexp
}

func (r regexRule) Source() string { return r.expr }

func (r regexRule) Match(lowered string) []string {
	return r.re.FindAllString(lowered, -1)
}

// Rule is one entry of the catalog: a matcher bound to a category and its
// scoring weight. Weight is always positive.
type Rule struct {
	Category models.ScamCategory
	Weight   int
	Matcher  PatternRule
}

// PatternCatalog is the consolidated, process-wide set of scam pattern
// rules. It is built once at startup and never mutated, so it is safe for
// unlimited concurrent readers.
type PatternCatalog struct {
	logger *logger.Logger
	order  []models.ScamCategory
	rules  map[models.ScamCategory][]Rule
}

// Per-category rule weights. Guarantees weigh heaviest: an explicit
// guarantee of returns is illegal outright, not merely suspicious.
const (
	weightPumpDump        = 15
	weightUrgency         = 10
	weightGuarantees      = 20
	weightInvestmentFraud = 15
)

func literal(s string) PatternRule { return literalRule(s) }

func regex(expr string) PatternRule {
	return regexRule{expr: expr, re: regexp.MustCompile(expr)}
}

// NewPatternCatalog builds the default catalog.
func NewPatternCatalog(log *logger.Logger) *PatternCatalog {
	c := &PatternCatalog{
		logger: log.WithComponent("pattern-catalog"),
		order: []models.ScamCategory{
			models.CategoryPumpDump,
			models.CategoryUrgency,
			models.CategoryGuarantees,
			models.CategoryInvestmentFraud,
		},
		rules: make(map[models.ScamCategory][]Rule),
	}
	c.loadDefaultRules()
	return c
}

// loadDefaultRules loads the hard-coded rule set. Patterns are written in
// lower case because matching always runs against lower-cased text.
func (c *PatternCatalog) loadDefaultRules() {
	add := func(cat models.ScamCategory, weight int, matchers ...PatternRule) {
		for _, m := range matchers {
			c.rules[cat] = append(c.rules[cat], Rule{Category: cat, Weight: weight, Matcher: m})
		}
	}

	add(models.CategoryPumpDump, weightPumpDump,
		literal("buy now"),
		regex(`get rich(?: quick| fast)?`),
		regex(`exclusive tips?`),
		regex(`insider (?:info|information)`),
		literal("before it explodes"),
		literal("going to moon"),
		regex(`100x returns?`),
	)

	add(models.CategoryUrgency, weightUrgency,
		regex(`act (?:fast|now)`),
		literal("limited time"),
		literal("now or never"),
		literal("last chance"),
		regex(`expire[sd]? (?:soon|today)`),
		regex(`don'?t miss (?:out|this)`),
	)

	add(models.CategoryGuarantees, weightGuarantees,
		regex(`guaranteed? returns?`),
		regex(`100%\s+profit`),
		regex(`risk-?free`),
		regex(`no (?:loss|risk)`),
		regex(`sure (?:shot|thing)`),
		regex(`can'?t lose`),
	)

	add(models.CategoryInvestmentFraud, weightInvestmentFraud,
		literal("send money"),
		literal("wire transfer"),
		regex(`deposit (?:now|immediately)`),
		regex(`upfront (?:fee|payment)`),
		literal("registration fee"),
	)

	total := 0
	for _, cat := range c.order {
		total += len(c.rules[cat])
	}
	c.logger.Debug().Int("rules", total).Int("categories", len(c.order)).Msg("pattern catalog loaded")
}

// Categories returns the categories in declaration order. Warning output
// follows this order, so it must stay stable.
func (c *PatternCatalog) Categories() []models.ScamCategory {
	out := make([]models.ScamCategory, len(c.order))
	copy(out, c.order)
	return out
}

// RulesFor returns the rules of one category in declaration order.
func (c *PatternCatalog) RulesFor(category models.ScamCategory) []Rule {
	rules := c.rules[category]
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Rules returns every rule, category declaration order first, then rule
// declaration order within each category.
func (c *PatternCatalog) Rules() []Rule {
	var out []Rule
	for _, cat := range c.order {
		out = append(out, c.rules[cat]...)
	}
	return out
}
