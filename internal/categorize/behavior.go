package categorize

import (
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/entity"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
)

const day = 24 * time.Hour

// BehaviorPolicy holds the business thresholds for behavior rules.
// A zero threshold disables the rule that reads it.
type BehaviorPolicy struct {
	// Days since the last order, measured from the window end.
	PossibleInactiveAfterDays int `mapstructure:"possible_inactive_after_days"`
	InactiveAfterDays         int `mapstructure:"inactive_after_days"`
	LostAfterDays             int `mapstructure:"lost_after_days"`
	// Minimum gap in days between the last pre-window order and the first order in the window.
	RecoveredAfterGapDays int `mapstructure:"recovered_after_gap_days"`
	// Minimum orders within the window.
	ActiveMinOrders         int `mapstructure:"active_min_orders"`
	PossibleActiveMinOrders int `mapstructure:"possible_active_min_orders"`
	// Precedence overrides the rule evaluation order by category name.
	Precedence []string `mapstructure:"precedence"`
}

// DefaultPrecedence is the rule evaluation order; the first match wins.
var DefaultPrecedence = []entity.BehaviorCategory{
	entity.BehaviorLost,
	entity.BehaviorInactive,
	entity.BehaviorPossibleInactive,
	entity.BehaviorRecovered,
	entity.BehaviorNew,
	entity.BehaviorActive,
	entity.BehaviorPossibleActive,
	entity.BehaviorTracking,
}

func (p BehaviorPolicy) validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"possible_inactive_after_days", p.PossibleInactiveAfterDays},
		{"inactive_after_days", p.InactiveAfterDays},
		{"lost_after_days", p.LostAfterDays},
		{"recovered_after_gap_days", p.RecoveredAfterGapDays},
		{"active_min_orders", p.ActiveMinOrders},
		{"possible_active_min_orders", p.PossibleActiveMinOrders},
	} {
		if f.v < 0 {
			return fmt.Errorf("%s is negative: %w", f.name, gerr.ErrInvalidPolicy)
		}
	}
	if p.PossibleInactiveAfterDays > 0 && p.InactiveAfterDays > 0 && p.PossibleInactiveAfterDays >= p.InactiveAfterDays {
		return fmt.Errorf("possible_inactive_after_days must be below inactive_after_days: %w", gerr.ErrInvalidPolicy)
	}
	if p.InactiveAfterDays > 0 && p.LostAfterDays > 0 && p.InactiveAfterDays >= p.LostAfterDays {
		return fmt.Errorf("inactive_after_days must be below lost_after_days: %w", gerr.ErrInvalidPolicy)
	}
	if p.PossibleActiveMinOrders > 0 && p.ActiveMinOrders > 0 && p.PossibleActiveMinOrders >= p.ActiveMinOrders {
		return fmt.Errorf("possible_active_min_orders must be below active_min_orders: %w", gerr.ErrInvalidPolicy)
	}
	return nil
}

// BehaviorRule decides whether a client summary belongs to its category.
type BehaviorRule interface {
	Category() entity.BehaviorCategory
	Match(s entity.ClientOrderSummary, w entity.DateWindow) bool
}

// RuleFunc adapts a function to BehaviorRule.
type RuleFunc struct {
	Cat entity.BehaviorCategory
	Fn  func(s entity.ClientOrderSummary, w entity.DateWindow) bool
}

func (r RuleFunc) Category() entity.BehaviorCategory { return r.Cat }

func (r RuleFunc) Match(s entity.ClientOrderSummary, w entity.DateWindow) bool {
	return r.Fn(s, w)
}

// recencyRule matches clients whose last order is at least `after` before the window end.
type recencyRule struct {
	cat   entity.BehaviorCategory
	after time.Duration
}

func (r recencyRule) Category() entity.BehaviorCategory { return r.cat }

func (r recencyRule) Match(s entity.ClientOrderSummary, w entity.DateWindow) bool {
	if r.after <= 0 || s.LastOrderDate.IsZero() {
		return false
	}
	return w.To.Sub(s.LastOrderDate) >= r.after
}

type recoveredRule struct {
	gap time.Duration
}

func (r recoveredRule) Category() entity.BehaviorCategory { return entity.BehaviorRecovered }

func (r recoveredRule) Match(s entity.ClientOrderSummary, _ entity.DateWindow) bool {
	if r.gap <= 0 || !s.HasHistory() {
		return false
	}
	return s.FirstOrderDate.Sub(s.PreviousOrderDate) >= r.gap
}

// newRule matches clients whose first ever order falls within the window.
type newRule struct{}

func (newRule) Category() entity.BehaviorCategory { return entity.BehaviorNew }

func (newRule) Match(s entity.ClientOrderSummary, _ entity.DateWindow) bool {
	return s.OrderCount > 0 && !s.HasHistory()
}

type frequencyRule struct {
	cat entity.BehaviorCategory
	min int
}

func (r frequencyRule) Category() entity.BehaviorCategory { return r.cat }

func (r frequencyRule) Match(s entity.ClientOrderSummary, _ entity.DateWindow) bool {
	return r.min > 0 && s.OrderCount >= r.min
}

type trackingRule struct{}

func (trackingRule) Category() entity.BehaviorCategory { return entity.BehaviorTracking }

func (trackingRule) Match(entity.ClientOrderSummary, entity.DateWindow) bool { return true }

// BehaviorClassifier assigns exactly one behavior category to a client summary.
type BehaviorClassifier struct {
	rules      map[entity.BehaviorCategory]BehaviorRule
	precedence []entity.BehaviorCategory
}

// NewBehaviorClassifier builds the rule set from p. Rules in overrides replace the
// built-in rule of the same category.
func NewBehaviorClassifier(p BehaviorPolicy, overrides ...BehaviorRule) (*BehaviorClassifier, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	precedence, err := parsePrecedence(p.Precedence)
	if err != nil {
		return nil, err
	}
	rules := map[entity.BehaviorCategory]BehaviorRule{
		entity.BehaviorLost:             recencyRule{cat: entity.BehaviorLost, after: days(p.LostAfterDays)},
		entity.BehaviorInactive:         recencyRule{cat: entity.BehaviorInactive, after: days(p.InactiveAfterDays)},
		entity.BehaviorPossibleInactive: recencyRule{cat: entity.BehaviorPossibleInactive, after: days(p.PossibleInactiveAfterDays)},
		entity.BehaviorRecovered:        recoveredRule{gap: days(p.RecoveredAfterGapDays)},
		entity.BehaviorNew:              newRule{},
		entity.BehaviorActive:           frequencyRule{cat: entity.BehaviorActive, min: p.ActiveMinOrders},
		entity.BehaviorPossibleActive:   frequencyRule{cat: entity.BehaviorPossibleActive, min: p.PossibleActiveMinOrders},
		entity.BehaviorTracking:         trackingRule{},
	}
	for _, r := range overrides {
		if !r.Category().Valid() {
			return nil, fmt.Errorf("rule for %q: %w", r.Category(), gerr.ErrUnknownCategory)
		}
		rules[r.Category()] = r
	}
	return &BehaviorClassifier{
		rules:      rules,
		precedence: precedence,
	}, nil
}

func parsePrecedence(names []string) ([]entity.BehaviorCategory, error) {
	if len(names) == 0 {
		return DefaultPrecedence, nil
	}
	seen := make(map[entity.BehaviorCategory]bool, len(names))
	out := make([]entity.BehaviorCategory, 0, len(names)+1)
	for _, n := range names {
		c, err := entity.ParseBehaviorCategory(n)
		if err != nil {
			return nil, fmt.Errorf("precedence: %v: %w", err, gerr.ErrUnknownCategory)
		}
		if seen[c] {
			return nil, fmt.Errorf("precedence: duplicate %q: %w", n, gerr.ErrInvalidPolicy)
		}
		seen[c] = true
		out = append(out, c)
	}
	if !seen[entity.BehaviorTracking] {
		out = append(out, entity.BehaviorTracking)
	}
	return out, nil
}

// WithRule returns a copy of c with the rule for r's category replaced.
func (c *BehaviorClassifier) WithRule(r BehaviorRule) *BehaviorClassifier {
	rules := make(map[entity.BehaviorCategory]BehaviorRule, len(c.rules)+1)
	for k, v := range c.rules {
		rules[k] = v
	}
	rules[r.Category()] = r
	return &BehaviorClassifier{
		rules:      rules,
		precedence: c.precedence,
	}
}

// Classify returns the first category in precedence whose rule matches.
// Tracking is returned when nothing else matches.
func (c *BehaviorClassifier) Classify(s entity.ClientOrderSummary, w entity.DateWindow) entity.BehaviorCategory {
	for _, cat := range c.precedence {
		r, ok := c.rules[cat]
		if !ok {
			continue
		}
		if r.Match(s, w) {
			return cat
		}
	}
	return entity.BehaviorTracking
}

func days(n int) time.Duration {
	return time.Duration(n) * day
}
