package dto

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/daterange"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEntityClientCategoriesReport(t *testing.T) {
	assert.Nil(t, ConvertEntityClientCategoriesReport(nil))

	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	prev := entity.DateWindow{From: from.AddDate(0, -1, 0), To: from.Add(-time.Millisecond)}
	compareCount := 2
	compareTotal := decimal.RequireFromString("10.5")
	change := 50.0

	out := ConvertEntityClientCategoriesReport(&entity.ClientCategoriesReport{
		Period:        entity.DateWindow{From: from, To: from.AddDate(0, 1, 0), Preset: "this-month"},
		ComparePeriod: &prev,
		TotalClients:  3,
		Behavior: []entity.CategoryStatsWithComparison{{
			CategoryStats: entity.CategoryStats{
				Category:        string(entity.BehaviorLost),
				Count:           3,
				Percentage:      100,
				TotalSpent:      decimal.RequireFromString("99.999"),
				AverageSpending: decimal.RequireFromString("33.333"),
			},
			CompareCount:      &compareCount,
			CompareTotalSpent: &compareTotal,
			ChangePct:         &change,
		}},
		Spending: []entity.CategoryStatsWithComparison{},
	})

	require.NotNil(t, out.ComparePeriod)
	assert.Equal(t, prev.From, out.ComparePeriod.From)
	assert.Equal(t, "this-month", out.Period.Preset)
	require.Len(t, out.BehaviorStats, 1)

	row := out.BehaviorStats[0]
	assert.Equal(t, "Lost", row.Label)
	assert.Equal(t, entity.BehaviorLost.Color(), row.Color)
	assert.Equal(t, "100.00", row.TotalSpent)
	assert.Equal(t, "33.33", row.AverageSpending)
	require.NotNil(t, row.CompareTotalSpent)
	assert.Equal(t, "10.50", *row.CompareTotalSpent)

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"spending_stats":[]`)
}

func TestConvertEntityClientIdentity(t *testing.T) {
	assert.Nil(t, ConvertEntityClientIdentity(nil))

	c := ConvertEntityClientIdentity(&entity.ClientIdentity{
		Id:    5,
		Name:  "Ana",
		Email: sql.NullString{String: "ana@example.com", Valid: true},
	})
	assert.Equal(t, 5, c.Id)
	assert.Nil(t, c.Phone)
	require.NotNil(t, c.Email)
	assert.Equal(t, "ana@example.com", *c.Email)
}

func TestConvertEntityClientsCategorized(t *testing.T) {
	prev := time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC)
	out := ConvertEntityClientsCategorized([]entity.ClientCategorized{
		{Summary: entity.ClientOrderSummary{ClientId: 1, TotalSpent: decimal.NewFromInt(5)}, Behavior: entity.BehaviorNew},
		{Summary: entity.ClientOrderSummary{ClientId: 2, TotalSpent: decimal.Zero, PreviousOrderDate: prev}, Behavior: entity.BehaviorRecovered},
	})
	require.Len(t, out, 2)
	assert.Nil(t, out[0].PreviousOrderDate)
	assert.Nil(t, out[0].Identity)
	assert.Equal(t, "5.00", out[0].TotalSpent)
	require.NotNil(t, out[1].PreviousOrderDate)
	assert.Equal(t, prev, *out[1].PreviousOrderDate)

	assert.Empty(t, ConvertEntityClientsCategorized(nil))
}

func TestConvertPresetWindows(t *testing.T) {
	now := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)
	r := daterange.New(daterange.WithNow(func() time.Time { return now }))

	out := ConvertPresetWindows(r.PresetWindows())
	require.Len(t, out, len(daterange.Presets))
	for i, p := range daterange.Presets {
		assert.Equal(t, p.String(), out[i].Preset)
		assert.False(t, out[i].From.After(out[i].To))
	}
}
