package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/dependency"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
)

type ordersStore struct {
	*MYSQLStore
}

// Orders returns an object implementing dependency.Orders interface
func (ms *MYSQLStore) Orders() dependency.Orders {
	return &ordersStore{
		MYSQLStore: ms,
	}
}

func (s *ordersStore) OrdersInWindow(ctx context.Context, tenantId int, w entity.DateWindow) ([]entity.OrderRecord, error) {
	query := `
	SELECT
		co.id AS order_id,
		co.client_id,
		co.placed AS order_date,
		co.amount
	FROM customer_order co
	JOIN client c ON c.id = co.client_id AND c.tenant_id = co.tenant_id
	WHERE co.tenant_id = :tenantId
		AND co.placed BETWEEN :from AND :to
	ORDER BY co.client_id, co.placed, co.id`

	orders, err := QueryListNamed[entity.OrderRecord](ctx, s.DB(), query, map[string]any{
		"tenantId": tenantId,
		"from":     w.From,
		"to":       w.To,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get orders in window: %w", err)
	}
	return orders, nil
}

type previousOrder struct {
	ClientId int       `db:"client_id"`
	Placed   time.Time `db:"placed"`
}

func (s *ordersStore) PreviousOrderDates(ctx context.Context, tenantId int, clientIds []int, before time.Time) (map[int]time.Time, error) {
	out := make(map[int]time.Time, len(clientIds))
	if len(clientIds) == 0 {
		return out, nil
	}

	query := `
	SELECT client_id, MAX(placed) AS placed
	FROM customer_order
	WHERE tenant_id = :tenantId
		AND client_id IN (:clientIds)
		AND placed < :before
	GROUP BY client_id`

	rows, err := QueryListNamed[previousOrder](ctx, s.DB(), query, map[string]any{
		"tenantId":  tenantId,
		"clientIds": clientIds,
		"before":    before,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get previous order dates: %w", err)
	}
	for _, r := range rows {
		out[r.ClientId] = r.Placed
	}
	return out, nil
}

func (s *ordersStore) AddOrders(ctx context.Context, orders []entity.OrderInsert) error {
	rows := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, map[string]any{
			"uuid":      o.UUID,
			"tenant_id": o.TenantId,
			"client_id": o.ClientId,
			"placed":    o.Placed,
			"amount":    o.Amount,
		})
	}
	if err := BulkInsert(ctx, s.DB(), "customer_order", rows); err != nil {
		return fmt.Errorf("can't add orders: %w", err)
	}
	return nil
}
