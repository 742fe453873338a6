package categorize

import (
	"fmt"

	"github.com/jekabolt/grbpwr-insights/internal/dependency"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
)

// Config is the analytics section of the service configuration.
type Config struct {
	Behavior BehaviorPolicy `mapstructure:"behavior"`
	Spending SpendingPolicy `mapstructure:"spending"`
	// Display orders of the stats rows; empty keeps the enum order.
	BehaviorOrder []string `mapstructure:"behavior_order"`
	SpendingOrder []string `mapstructure:"spending_order"`
}

// NewFromConfig validates c and builds an engine over the given collaborators.
func NewFromConfig(c Config, orders dependency.Orders, clients dependency.Clients) (*Engine, error) {
	behavior, err := NewBehaviorClassifier(c.Behavior)
	if err != nil {
		return nil, fmt.Errorf("behavior policy: %w", err)
	}
	spending, err := NewSpendingClassifier(c.Spending)
	if err != nil {
		return nil, fmt.Errorf("spending policy: %w", err)
	}

	bo := make([]entity.BehaviorCategory, 0, len(c.BehaviorOrder))
	for _, s := range c.BehaviorOrder {
		bc, err := entity.ParseBehaviorCategory(s)
		if err != nil {
			return nil, fmt.Errorf("behavior order: %w", err)
		}
		bo = append(bo, bc)
	}
	so := make([]entity.SpendingCategory, 0, len(c.SpendingOrder))
	for _, s := range c.SpendingOrder {
		sc, err := entity.ParseSpendingCategory(s)
		if err != nil {
			return nil, fmt.Errorf("spending order: %w", err)
		}
		so = append(so, sc)
	}

	return New(orders, clients, behavior, spending,
		WithBehaviorOrder(bo),
		WithSpendingOrder(so),
	), nil
}
