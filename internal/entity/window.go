package entity

import "time"

// DateWindow is a closed interval [From, To] scoping which orders are considered.
// Preset is empty when the bounds were supplied by the caller.
type DateWindow struct {
	From   time.Time
	To     time.Time
	Preset string
}

// Valid reports whether the window bounds are set and ordered.
func (w DateWindow) Valid() bool {
	return !w.From.IsZero() && !w.To.IsZero() && !w.From.After(w.To)
}

// Contains reports whether t falls inside the window, bounds included.
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// IsCustom reports whether the window was built from explicit bounds.
func (w DateWindow) IsCustom() bool {
	return w.Preset == ""
}

// ComparisonRequest pairs a primary window with an optional secondary one.
// Secondary is nil when comparison is disabled.
type ComparisonRequest struct {
	Primary   DateWindow
	Secondary *DateWindow
}

// Comparing reports whether a secondary window is present.
func (c ComparisonRequest) Comparing() bool {
	return c.Secondary != nil
}

// Ordered returns the chronologically newer and older windows by From.
// Without a secondary window both results are the primary window.
func (c ComparisonRequest) Ordered() (newer, older DateWindow) {
	if c.Secondary == nil {
		return c.Primary, c.Primary
	}
	if c.Secondary.From.After(c.Primary.From) {
		return *c.Secondary, c.Primary
	}
	return c.Primary, *c.Secondary
}
