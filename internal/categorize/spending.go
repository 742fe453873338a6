package categorize

import (
	"fmt"
	"math"
	"sort"

	"github.com/jekabolt/grbpwr-insights/internal/entity"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
	"github.com/shopspring/decimal"
)

// SpendingMode selects how tier boundaries are obtained.
type SpendingMode string

const (
	// SpendingFixed compares totals against configured amounts.
	SpendingFixed SpendingMode = "fixed"
	// SpendingPercentile derives boundaries from the population's spending distribution.
	SpendingPercentile SpendingMode = "percentile"
)

// SpendingPolicy holds the tier boundaries: basic < standard boundary <= standard < premium boundary <= premium.
type SpendingPolicy struct {
	Mode               SpendingMode    `mapstructure:"mode"`
	StandardFrom       decimal.Decimal `mapstructure:"standard_from"`
	PremiumFrom        decimal.Decimal `mapstructure:"premium_from"`
	StandardPercentile float64         `mapstructure:"standard_percentile"`
	PremiumPercentile  float64         `mapstructure:"premium_percentile"`
}

func (p SpendingPolicy) validate() error {
	switch p.Mode {
	case SpendingFixed:
		if p.StandardFrom.IsNegative() {
			return fmt.Errorf("standard boundary is negative: %w", gerr.ErrInvalidPolicy)
		}
		if !p.PremiumFrom.GreaterThan(p.StandardFrom) {
			return fmt.Errorf("premium boundary %s must exceed standard boundary %s: %w",
				p.PremiumFrom, p.StandardFrom, gerr.ErrInvalidPolicy)
		}
	case SpendingPercentile:
		if p.StandardPercentile <= 0 || p.PremiumPercentile > 100 || p.StandardPercentile >= p.PremiumPercentile {
			return fmt.Errorf("percentiles must satisfy 0 < standard (%v) < premium (%v) <= 100: %w",
				p.StandardPercentile, p.PremiumPercentile, gerr.ErrInvalidPolicy)
		}
	default:
		return fmt.Errorf("spending mode %q: %w", p.Mode, gerr.ErrInvalidPolicy)
	}
	return nil
}

// SpendingClassifier assigns spending tiers over a client population.
type SpendingClassifier struct {
	p SpendingPolicy
}

func NewSpendingClassifier(p SpendingPolicy) (*SpendingClassifier, error) {
	if p.Mode == "" {
		p.Mode = SpendingFixed
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &SpendingClassifier{p: p}, nil
}

// Thresholds returns the standard and premium boundaries for the population.
func (c *SpendingClassifier) Thresholds(population []entity.ClientOrderSummary) (standard, premium decimal.Decimal) {
	if c.p.Mode == SpendingFixed {
		return c.p.StandardFrom, c.p.PremiumFrom
	}
	if len(population) == 0 {
		return decimal.Zero, decimal.Zero
	}
	totals := make([]decimal.Decimal, len(population))
	for i, s := range population {
		totals[i] = s.TotalSpent
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].LessThan(totals[j]) })
	return nearestRank(totals, c.p.StandardPercentile), nearestRank(totals, c.p.PremiumPercentile)
}

// Classify returns one spending category per summary, index-aligned with population.
func (c *SpendingClassifier) Classify(population []entity.ClientOrderSummary) []entity.SpendingCategory {
	standard, premium := c.Thresholds(population)
	out := make([]entity.SpendingCategory, len(population))
	for i, s := range population {
		out[i] = tier(s.TotalSpent, standard, premium)
	}
	return out
}

func tier(total, standard, premium decimal.Decimal) entity.SpendingCategory {
	switch {
	case total.GreaterThanOrEqual(premium):
		return entity.SpendingPremium
	case total.GreaterThanOrEqual(standard):
		return entity.SpendingStandard
	default:
		return entity.SpendingBasic
	}
}

// nearestRank returns the p-th percentile of sorted values.
func nearestRank(sorted []decimal.Decimal, p float64) decimal.Decimal {
	idx := int(math.Ceil(float64(len(sorted))*p/100)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
