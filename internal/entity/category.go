package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BehaviorCategory classifies a client by recency and frequency of orders.
type BehaviorCategory string

const (
	BehaviorNew              BehaviorCategory = "new"
	BehaviorPossibleActive   BehaviorCategory = "possible-active"
	BehaviorPossibleInactive BehaviorCategory = "possible-inactive"
	BehaviorActive           BehaviorCategory = "active"
	BehaviorInactive         BehaviorCategory = "inactive"
	BehaviorRecovered        BehaviorCategory = "recovered"
	BehaviorLost             BehaviorCategory = "lost"
	BehaviorTracking         BehaviorCategory = "tracking"
)

// BehaviorCategories lists every behavior category in default display order.
var BehaviorCategories = []BehaviorCategory{
	BehaviorNew,
	BehaviorPossibleActive,
	BehaviorActive,
	BehaviorRecovered,
	BehaviorPossibleInactive,
	BehaviorInactive,
	BehaviorLost,
	BehaviorTracking,
}

func (c BehaviorCategory) Valid() bool {
	switch c {
	case BehaviorNew, BehaviorPossibleActive, BehaviorPossibleInactive, BehaviorActive,
		BehaviorInactive, BehaviorRecovered, BehaviorLost, BehaviorTracking:
		return true
	}
	return false
}

func (c BehaviorCategory) Label() string {
	switch c {
	case BehaviorNew:
		return "New"
	case BehaviorPossibleActive:
		return "Possibly active"
	case BehaviorPossibleInactive:
		return "Possibly inactive"
	case BehaviorActive:
		return "Active"
	case BehaviorInactive:
		return "Inactive"
	case BehaviorRecovered:
		return "Recovered"
	case BehaviorLost:
		return "Lost"
	case BehaviorTracking:
		return "Tracking"
	}
	return string(c)
}

// Color is the chart color used by the dashboard for the category.
func (c BehaviorCategory) Color() string {
	switch c {
	case BehaviorNew:
		return "#3b82f6"
	case BehaviorPossibleActive:
		return "#22c55e"
	case BehaviorPossibleInactive:
		return "#f59e0b"
	case BehaviorActive:
		return "#16a34a"
	case BehaviorInactive:
		return "#f97316"
	case BehaviorRecovered:
		return "#8b5cf6"
	case BehaviorLost:
		return "#ef4444"
	case BehaviorTracking:
		return "#6b7280"
	}
	return "#000000"
}

// ParseBehaviorCategory maps a wire token to a behavior category.
func ParseBehaviorCategory(s string) (BehaviorCategory, error) {
	c := BehaviorCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown behavior category %q", s)
	}
	return c, nil
}

// SpendingCategory classifies a client by total spend within a window.
type SpendingCategory string

const (
	SpendingPremium  SpendingCategory = "premium"
	SpendingStandard SpendingCategory = "standard"
	SpendingBasic    SpendingCategory = "basic"
)

// SpendingCategories lists every spending category in default display order.
var SpendingCategories = []SpendingCategory{
	SpendingPremium,
	SpendingStandard,
	SpendingBasic,
}

func (c SpendingCategory) Valid() bool {
	switch c {
	case SpendingPremium, SpendingStandard, SpendingBasic:
		return true
	}
	return false
}

func (c SpendingCategory) Label() string {
	switch c {
	case SpendingPremium:
		return "Premium"
	case SpendingStandard:
		return "Standard"
	case SpendingBasic:
		return "Basic"
	}
	return string(c)
}

func (c SpendingCategory) Color() string {
	switch c {
	case SpendingPremium:
		return "#a855f7"
	case SpendingStandard:
		return "#0ea5e9"
	case SpendingBasic:
		return "#94a3b8"
	}
	return "#000000"
}

// ParseSpendingCategory maps a wire token to a spending category.
func ParseSpendingCategory(s string) (SpendingCategory, error) {
	c := SpendingCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown spending category %q", s)
	}
	return c, nil
}

// CategoryStats is one row of a category partition.
type CategoryStats struct {
	Category        string
	Count           int
	Percentage      float64
	TotalSpent      decimal.Decimal
	AverageSpending decimal.Decimal
}

// ClientCategories holds both partitions over the same client population.
type ClientCategories struct {
	Window        DateWindow
	TotalClients  int
	BehaviorStats []CategoryStats
	SpendingStats []CategoryStats
}

// CategoryStatsWithComparison pairs a category row with the comparison window row.
type CategoryStatsWithComparison struct {
	CategoryStats
	CompareCount      *int
	CompareTotalSpent *decimal.Decimal
	ChangePct         *float64
}

// ClientCategoriesReport is the period-over-period categorization result.
type ClientCategoriesReport struct {
	Period        DateWindow
	ComparePeriod *DateWindow
	TotalClients  int
	CompareTotal  *int
	Behavior      []CategoryStatsWithComparison
	Spending      []CategoryStatsWithComparison
}
