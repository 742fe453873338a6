package categorize

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/dependency"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
	"github.com/shopspring/decimal"
)

// Engine classifies the clients that ordered within a window.
type Engine struct {
	orders        dependency.Orders
	clients       dependency.Clients
	behavior      *BehaviorClassifier
	spending      *SpendingClassifier
	behaviorOrder []entity.BehaviorCategory
	spendingOrder []entity.SpendingCategory
}

type Option func(*Engine)

// WithBehaviorOrder sets the display order of behavior rows.
func WithBehaviorOrder(order []entity.BehaviorCategory) Option {
	return func(e *Engine) {
		if len(order) > 0 {
			e.behaviorOrder = order
		}
	}
}

// WithSpendingOrder sets the display order of spending rows.
func WithSpendingOrder(order []entity.SpendingCategory) Option {
	return func(e *Engine) {
		if len(order) > 0 {
			e.spendingOrder = order
		}
	}
}

// WithRule replaces the behavior rule registered for r's category.
func WithRule(r BehaviorRule) Option {
	return func(e *Engine) {
		e.behavior = e.behavior.WithRule(r)
	}
}

func New(orders dependency.Orders, clients dependency.Clients, behavior *BehaviorClassifier, spending *SpendingClassifier, opts ...Option) *Engine {
	e := &Engine{
		orders:        orders,
		clients:       clients,
		behavior:      behavior,
		spending:      spending,
		behaviorOrder: entity.BehaviorCategories,
		spendingOrder: entity.SpendingCategories,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Categorize partitions the tenant's clients active in w by behavior and by spending.
func (e *Engine) Categorize(ctx context.Context, tenantId int, w entity.DateWindow) (*entity.ClientCategories, error) {
	summaries, err := e.summaries(ctx, tenantId, w)
	if err != nil {
		return nil, err
	}
	return e.Stats(w, e.Classify(summaries, w)), nil
}

// Members lists the classified clients matching filter, joined with their identity,
// highest spend first.
func (e *Engine) Members(ctx context.Context, tenantId int, w entity.DateWindow, filter entity.MemberFilter) ([]entity.ClientCategorized, error) {
	summaries, err := e.summaries(ctx, tenantId, w)
	if err != nil {
		return nil, err
	}

	members := []entity.ClientCategorized{}
	for _, c := range e.Classify(summaries, w) {
		if filter.Matches(c.Behavior, c.Spending) {
			members = append(members, c)
		}
	}
	if len(members) == 0 {
		return members, nil
	}

	ids := make([]int, len(members))
	for i, m := range members {
		ids[i] = m.Summary.ClientId
	}
	identities, err := e.clients.ClientIdentities(ctx, tenantId, ids)
	if err != nil {
		return nil, fmt.Errorf("can't get client identities: %w", err)
	}
	for i := range members {
		if id, ok := identities[members[i].Summary.ClientId]; ok {
			members[i].Identity = &id
		}
	}

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Summary.TotalSpent.GreaterThan(members[j].Summary.TotalSpent)
	})
	return members, nil
}

func (e *Engine) summaries(ctx context.Context, tenantId int, w entity.DateWindow) ([]entity.ClientOrderSummary, error) {
	orders, err := e.orders.OrdersInWindow(ctx, tenantId, w)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get orders in window",
			slog.Int("tenant_id", tenantId),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get orders in window: %w", err)
	}
	if len(orders) == 0 {
		return []entity.ClientOrderSummary{}, nil
	}

	history, err := e.orders.PreviousOrderDates(ctx, tenantId, clientIds(orders), w.From)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get previous order dates",
			slog.Int("tenant_id", tenantId),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get previous order dates: %w", err)
	}
	return Summarize(orders, history), nil
}

// Classify assigns both categories to every summary. Spending tiers are computed over
// the whole slice, so it must be the complete population of the window.
func (e *Engine) Classify(summaries []entity.ClientOrderSummary, w entity.DateWindow) []entity.ClientCategorized {
	spending := e.spending.Classify(summaries)
	out := make([]entity.ClientCategorized, len(summaries))
	for i, s := range summaries {
		out[i] = entity.ClientCategorized{
			Summary:  s,
			Behavior: e.behavior.Classify(s, w),
			Spending: spending[i],
		}
	}
	return out
}

// Stats builds both partitions from classified clients.
func (e *Engine) Stats(w entity.DateWindow, classified []entity.ClientCategorized) *entity.ClientCategories {
	behavior := make([]entity.BehaviorCategory, len(classified))
	spending := make([]entity.SpendingCategory, len(classified))
	spent := make([]decimal.Decimal, len(classified))
	for i, c := range classified {
		behavior[i] = c.Behavior
		spending[i] = c.Spending
		spent[i] = c.Summary.TotalSpent
	}
	return &entity.ClientCategories{
		Window:        w,
		TotalClients:  len(classified),
		BehaviorStats: BuildStats(e.behaviorOrder, behavior, spent),
		SpendingStats: BuildStats(e.spendingOrder, spending, spent),
	}
}

// Summarize groups orders by client. history holds each client's latest order before
// the window. The result is sorted by client id.
func Summarize(orders []entity.OrderRecord, history map[int]time.Time) []entity.ClientOrderSummary {
	byClient := make(map[int]*entity.ClientOrderSummary)
	for _, o := range orders {
		s, ok := byClient[o.ClientId]
		if !ok {
			s = &entity.ClientOrderSummary{
				ClientId:          o.ClientId,
				TotalSpent:        decimal.Zero,
				FirstOrderDate:    o.OrderDate,
				LastOrderDate:     o.OrderDate,
				PreviousOrderDate: history[o.ClientId],
			}
			byClient[o.ClientId] = s
		}
		s.OrderCount++
		s.TotalSpent = s.TotalSpent.Add(o.Amount)
		if o.OrderDate.Before(s.FirstOrderDate) {
			s.FirstOrderDate = o.OrderDate
		}
		if o.OrderDate.After(s.LastOrderDate) {
			s.LastOrderDate = o.OrderDate
		}
	}

	out := make([]entity.ClientOrderSummary, 0, len(byClient))
	for _, s := range byClient {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClientId < out[j].ClientId })
	return out
}

func clientIds(orders []entity.OrderRecord) []int {
	seen := make(map[int]struct{}, len(orders))
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.ClientId]; ok {
			continue
		}
		seen[o.ClientId] = struct{}{}
		ids = append(ids, o.ClientId)
	}
	sort.Ints(ids)
	return ids
}
