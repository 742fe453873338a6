// Package daterange turns preset tokens or caller-supplied bounds into UTC day-aligned
// analysis windows, optionally paired with a comparison window.
package daterange

// Preset is a named shorthand for a window relative to today.
type Preset string

const (
	Today       Preset = "today"
	Yesterday   Preset = "yesterday"
	Last7Days   Preset = "last-7-days"
	Last30Days  Preset = "last-30-days"
	ThisMonth   Preset = "this-month"
	LastMonth   Preset = "last-month"
	Last3Months Preset = "last-3-months"
	ThisYear    Preset = "this-year"
)

// DefaultPreset is used for unknown tokens and for an unspecified comparison window.
const DefaultPreset = Last30Days

// Presets lists the supported presets in picker order.
var Presets = []Preset{
	Today,
	Yesterday,
	Last7Days,
	Last30Days,
	ThisMonth,
	LastMonth,
	Last3Months,
	ThisYear,
}

func (p Preset) Valid() bool {
	switch p {
	case Today, Yesterday, Last7Days, Last30Days, ThisMonth, LastMonth, Last3Months, ThisYear:
		return true
	}
	return false
}

func (p Preset) String() string {
	return string(p)
}

// ParsePreset returns the preset for s, falling back to DefaultPreset.
// The second result is false when the fallback was applied.
func ParsePreset(s string) (Preset, bool) {
	p := Preset(s)
	if p.Valid() {
		return p, true
	}
	return DefaultPreset, false
}
