// Package clientreport builds period-over-period client categorization reports.
package clientreport

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/dependency"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
	"github.com/jekabolt/grbpwr-insights/internal/metrics"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	categorizer dependency.ClientCategorizer
}

func New(categorizer dependency.ClientCategorizer) *Service {
	return &Service{categorizer: categorizer}
}

// Report categorizes the requested windows. With a comparison window both windows are
// categorized concurrently; Period is the chronologically newer window and the compare
// fields hold the older one.
func (s *Service) Report(ctx context.Context, tenantId int, c entity.ComparisonRequest) (*entity.ClientCategoriesReport, error) {
	if !c.Comparing() {
		cur, err := s.categorize(ctx, tenantId, c.Primary)
		if err != nil {
			return nil, err
		}
		return &entity.ClientCategoriesReport{
			Period:       cur.Window,
			TotalClients: cur.TotalClients,
			Behavior:     withoutComparison(cur.BehaviorStats),
			Spending:     withoutComparison(cur.SpendingStats),
		}, nil
	}

	newer, older := c.Ordered()
	var cur, prev *entity.ClientCategories

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cur, err = s.categorize(gctx, tenantId, newer)
		return err
	})
	g.Go(func() error {
		var err error
		prev, err = s.categorize(gctx, tenantId, older)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	compareTotal := prev.TotalClients
	comparePeriod := prev.Window
	return &entity.ClientCategoriesReport{
		Period:        cur.Window,
		ComparePeriod: &comparePeriod,
		TotalClients:  cur.TotalClients,
		CompareTotal:  &compareTotal,
		Behavior:      pair(cur.BehaviorStats, prev.BehaviorStats),
		Spending:      pair(cur.SpendingStats, prev.SpendingStats),
	}, nil
}

func (s *Service) categorize(ctx context.Context, tenantId int, w entity.DateWindow) (*entity.ClientCategories, error) {
	start := time.Now()
	res, err := s.categorizer.Categorize(ctx, tenantId, w)
	clients := 0
	if res != nil {
		clients = res.TotalClients
	}
	metrics.RecordCategorization(err, clients, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("can't categorize clients for %s - %s: %w",
			w.From.Format(time.DateOnly), w.To.Format(time.DateOnly), err)
	}
	return res, nil
}

func withoutComparison(rows []entity.CategoryStats) []entity.CategoryStatsWithComparison {
	out := make([]entity.CategoryStatsWithComparison, len(rows))
	for i, r := range rows {
		out[i] = entity.CategoryStatsWithComparison{CategoryStats: r}
	}
	return out
}

// pair joins rows by category. Categories present only in prev are appended with
// a zero current row.
func pair(cur, prev []entity.CategoryStats) []entity.CategoryStatsWithComparison {
	byCategory := make(map[string]entity.CategoryStats, len(prev))
	for _, p := range prev {
		byCategory[p.Category] = p
	}

	out := make([]entity.CategoryStatsWithComparison, 0, len(cur))
	seen := make(map[string]bool, len(cur))
	for _, c := range cur {
		seen[c.Category] = true
		out = append(out, compare(c, byCategory[c.Category]))
	}
	for _, p := range prev {
		if seen[p.Category] {
			continue
		}
		zero := entity.CategoryStats{
			Category:        p.Category,
			TotalSpent:      decimal.Zero,
			AverageSpending: decimal.Zero,
		}
		out = append(out, compare(zero, p))
	}
	return out
}

func compare(cur, prev entity.CategoryStats) entity.CategoryStatsWithComparison {
	count := prev.Count
	spent := prev.TotalSpent
	return entity.CategoryStatsWithComparison{
		CategoryStats:     cur,
		CompareCount:      &count,
		CompareTotalSpent: &spent,
		ChangePct:         changePctInt(cur.Count, prev.Count),
	}
}

func changePctInt(current, previous int) *float64 {
	if previous == 0 {
		return nil
	}
	f := (float64(current-previous) / float64(previous)) * 100
	return &f
}
