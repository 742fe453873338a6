package daterange

import (
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveComparison(t *testing.T) {
	r := fixedResolver(time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))

	t.Run("disabled", func(t *testing.T) {
		c, err := r.ResolveComparison(WindowRequest{Preset: "this-month", ComparePreset: "last-month"})
		require.NoError(t, err)
		assert.False(t, c.Comparing())
		assert.Nil(t, c.Secondary)
	})

	t.Run("enabled without window defaults to last 30 days", func(t *testing.T) {
		c, err := r.ResolveComparison(WindowRequest{Preset: "this-month", Compare: true})
		require.NoError(t, err)
		require.NotNil(t, c.Secondary)
		assert.Equal(t, r.Preset(Last30Days), *c.Secondary)
	})

	t.Run("explicit comparison window", func(t *testing.T) {
		c, err := r.ResolveComparison(WindowRequest{
			Preset:      "this-month",
			Compare:     true,
			CompareFrom: "2025-04-01",
			CompareTo:   "2025-04-30",
		})
		require.NoError(t, err)
		require.NotNil(t, c.Secondary)
		assert.True(t, c.Secondary.IsCustom())
		assert.True(t, day(2025, 4, 1).Equal(c.Secondary.From))
	})

	t.Run("invalid comparison window", func(t *testing.T) {
		_, err := r.ResolveComparison(WindowRequest{Compare: true, CompareFrom: "bad", CompareTo: "2025-04-30"})
		assert.Error(t, err)
	})
}

func TestComparisonToggle(t *testing.T) {
	r := fixedResolver(time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))
	custom, err := r.Custom("2025-01-01", "2025-01-31")
	require.NoError(t, err)

	c, err := r.ResolveComparison(WindowRequest{Preset: "this-month"})
	require.NoError(t, err)

	c = r.EnableComparison(c, &custom)
	require.NotNil(t, c.Secondary)
	assert.Equal(t, custom, *c.Secondary)

	c = DisableComparison(c)
	assert.Nil(t, c.Secondary)

	// re-enabling does not restore the earlier custom window
	c = r.EnableComparison(c, nil)
	require.NotNil(t, c.Secondary)
	assert.Equal(t, r.Preset(Last30Days), *c.Secondary)
}

func TestComparisonOrdered(t *testing.T) {
	r := fixedResolver(time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))
	thisMonth := r.Preset(ThisMonth)
	lastMonth := r.Preset(LastMonth)

	c := r.EnableComparison(entity.ComparisonRequest{Primary: thisMonth}, &lastMonth)
	newer, older := c.Ordered()
	assert.Equal(t, thisMonth, newer)
	assert.Equal(t, lastMonth, older)

	// caller put the older window first
	c = r.EnableComparison(entity.ComparisonRequest{Primary: lastMonth}, &thisMonth)
	newer, older = c.Ordered()
	assert.Equal(t, thisMonth, newer)
	assert.Equal(t, lastMonth, older)

	newer, older = DisableComparison(c).Ordered()
	assert.Equal(t, lastMonth, newer)
	assert.Equal(t, lastMonth, older)
}
