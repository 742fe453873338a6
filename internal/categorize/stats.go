package categorize

import (
	"github.com/jekabolt/grbpwr-insights/internal/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BuildStats aggregates index-aligned category assignments and spend into one row per
// category. Rows follow order; assigned categories missing from order are appended in
// order of first appearance so the partition stays exhaustive. An empty population
// yields an empty slice.
func BuildStats[C ~string](order []C, assigned []C, spent []decimal.Decimal) []entity.CategoryStats {
	if len(assigned) == 0 {
		return []entity.CategoryStats{}
	}

	counts := make(map[C]int)
	totals := make(map[C]decimal.Decimal)
	var seen []C
	for i, c := range assigned {
		if _, ok := counts[c]; !ok {
			seen = append(seen, c)
		}
		counts[c]++
		totals[c] = totals[c].Add(spent[i])
	}

	rows := make([]entity.CategoryStats, 0, len(order))
	listed := make(map[C]bool, len(order))
	for _, c := range order {
		if listed[c] {
			continue
		}
		listed[c] = true
		rows = append(rows, statsRow(string(c), counts[c], totals[c], len(assigned)))
	}
	for _, c := range seen {
		if !listed[c] {
			rows = append(rows, statsRow(string(c), counts[c], totals[c], len(assigned)))
		}
	}
	return rows
}

func statsRow(category string, count int, total decimal.Decimal, population int) entity.CategoryStats {
	row := entity.CategoryStats{
		Category:        category,
		Count:           count,
		TotalSpent:      total,
		AverageSpending: decimal.Zero,
	}
	if count == 0 || population == 0 {
		return row
	}
	pct, _ := decimal.NewFromInt(int64(count)).
		Div(decimal.NewFromInt(int64(population))).
		Mul(hundred).
		Round(1).
		Float64()
	row.Percentage = pct
	row.AverageSpending = total.Div(decimal.NewFromInt(int64(count)))
	return row
}
