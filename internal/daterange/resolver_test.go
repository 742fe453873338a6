package daterange

import (
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/entity"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedResolver(now time.Time) *Resolver {
	return New(WithNow(func() time.Time { return now }))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayEnd(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

func TestPresetBoundsOrdered(t *testing.T) {
	r := fixedResolver(time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))
	for _, p := range Presets {
		w := r.Preset(p)
		assert.Falsef(t, w.From.After(w.To), "%s: from %v after to %v", p, w.From, w.To)
		assert.Equal(t, time.UTC, w.From.Location(), p)
		assert.Equal(t, 0, w.From.Hour()+w.From.Minute()+w.From.Second()+w.From.Nanosecond(), p)
		assert.Equal(t, 23, w.To.Hour(), p)
		assert.Equal(t, 59, w.To.Minute(), p)
		assert.Equal(t, 59, w.To.Second(), p)
		assert.Equal(t, int(999*time.Millisecond), w.To.Nanosecond(), p)
		assert.Equal(t, p.String(), w.Preset)
	}
}

func TestPresetValues(t *testing.T) {
	r := fixedResolver(time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		preset Preset
		from   time.Time
		to     time.Time
	}{
		{Today, day(2025, 5, 31), dayEnd(2025, 5, 31)},
		{Yesterday, day(2025, 5, 30), dayEnd(2025, 5, 30)},
		{Last7Days, day(2025, 5, 25), dayEnd(2025, 5, 31)},
		{Last30Days, day(2025, 5, 2), dayEnd(2025, 5, 31)},
		{ThisMonth, day(2025, 5, 1), dayEnd(2025, 5, 31)},
		{LastMonth, day(2025, 4, 1), dayEnd(2025, 4, 30)},
		{Last3Months, day(2025, 2, 28), dayEnd(2025, 5, 31)},
		{ThisYear, day(2025, 1, 1), dayEnd(2025, 5, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			w := r.Preset(tt.preset)
			assert.True(t, tt.from.Equal(w.From), "from: got %v want %v", w.From, tt.from)
			assert.True(t, tt.to.Equal(w.To), "to: got %v want %v", w.To, tt.to)
		})
	}
}

func TestLastMonthInJanuary(t *testing.T) {
	r := fixedResolver(time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC))
	w := r.Preset(LastMonth)
	assert.True(t, day(2025, 12, 1).Equal(w.From))
	assert.True(t, dayEnd(2025, 12, 31).Equal(w.To))
}

func TestSingleDayPresetsSameCalendarDay(t *testing.T) {
	r := fixedResolver(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	for _, p := range []Preset{Today, Yesterday} {
		w := r.Preset(p)
		fy, fm, fd := w.From.Date()
		ty, tm, td := w.To.Date()
		assert.Equal(t, []int{fy, int(fm), fd}, []int{ty, int(tm), td}, p)
	}
}

func TestTodayIsUTCAnchored(t *testing.T) {
	// 22:30 at UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	r := fixedResolver(time.Date(2025, 5, 31, 22, 30, 0, 0, loc))
	w := r.Preset(Today)
	assert.True(t, day(2025, 6, 1).Equal(w.From))
	assert.True(t, dayEnd(2025, 6, 1).Equal(w.To))
}

func TestUnknownPresetFallsBack(t *testing.T) {
	r := fixedResolver(time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))

	got, err := r.Resolve(WindowRequest{Preset: "unknown-token"})
	require.NoError(t, err)
	want, err := r.Resolve(WindowRequest{Preset: "last-30-days"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	empty, err := r.Resolve(WindowRequest{})
	require.NoError(t, err)
	assert.Equal(t, want, empty)

	p, ok := ParsePreset("next-week")
	assert.False(t, ok)
	assert.Equal(t, DefaultPreset, p)
}

func TestCustomWindow(t *testing.T) {
	r := fixedResolver(time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))

	w, err := r.Resolve(WindowRequest{Preset: "this-year", From: "2025-02-10", To: "2025-02-20"})
	require.NoError(t, err)
	assert.True(t, w.IsCustom())
	assert.Empty(t, w.Preset)
	assert.True(t, day(2025, 2, 10).Equal(w.From))
	assert.True(t, dayEnd(2025, 2, 20).Equal(w.To))

	w, err = r.Custom("2025-02-10T23:30:00-03:00", "2025-02-11")
	require.NoError(t, err)
	assert.True(t, day(2025, 2, 11).Equal(w.From))
	assert.True(t, dayEnd(2025, 2, 11).Equal(w.To))
}

func TestCustomWindowRejected(t *testing.T) {
	r := fixedResolver(time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))

	_, err := r.Custom("2025-02-20", "2025-02-10")
	assert.ErrorIs(t, err, gerr.ErrInvalidWindow)

	_, err = r.Custom("2025-13-01", "2025-02-10")
	assert.ErrorIs(t, err, gerr.ErrInvalidDate)

	_, err = r.Resolve(WindowRequest{From: "2025-02-10"})
	assert.ErrorIs(t, err, gerr.ErrInvalidDate)

	_, err = r.Resolve(WindowRequest{From: "yesterday", To: "today"})
	assert.ErrorIs(t, err, gerr.ErrInvalidDate)
}

func TestValidDate(t *testing.T) {
	tests := map[string]bool{
		"2025-01-31":                true,
		"2024-02-29":                true,
		"2025-02-29":                false,
		"2025-1-3":                  false,
		"2025-01-31T10:00:00Z":      true,
		"2025-01-31T10:00:00+02:00": true,
		"31/01/2025":                false,
		"":                          false,
		"   ":                       false,
	}
	for in, want := range tests {
		assert.Equal(t, want, ValidDate(in), in)
	}
}

func TestPresetWindows(t *testing.T) {
	r := fixedResolver(time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))
	pw := r.PresetWindows()
	require.Len(t, pw, len(Presets))
	for i, p := range Presets {
		assert.Equal(t, p, pw[i].Preset)
		assert.Equal(t, r.Preset(p), pw[i].Window)
	}
}

func TestWindowContains(t *testing.T) {
	w := entity.DateWindow{From: day(2025, 1, 1), To: dayEnd(2025, 1, 31)}
	assert.True(t, w.Contains(day(2025, 1, 1)))
	assert.True(t, w.Contains(dayEnd(2025, 1, 31)))
	assert.False(t, w.Contains(day(2025, 2, 1)))
}
