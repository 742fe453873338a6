package daterange

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
)

const dateLayout = "2006-01-02"

// WindowRequest is the caller's description of the primary and comparison windows.
// Explicit bounds take precedence over the preset token.
type WindowRequest struct {
	Preset string
	From   string
	To     string

	Compare       bool
	ComparePreset string
	CompareFrom   string
	CompareTo     string
}

// Resolver builds windows against UTC midnight of "today".
type Resolver struct {
	now func() time.Time
}

type Option func(*Resolver)

// WithNow overrides the clock used to compute "today".
func WithNow(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{now: time.Now}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Today returns UTC midnight of the current day.
func (r *Resolver) Today() time.Time {
	return startOfDay(r.now())
}

// Resolve builds the primary window of req.
func (r *Resolver) Resolve(req WindowRequest) (entity.DateWindow, error) {
	return r.resolve(req.Preset, req.From, req.To)
}

// ResolveComparison builds the primary window and, when comparison is enabled,
// the secondary one. A comparison without bounds or preset uses DefaultPreset.
func (r *Resolver) ResolveComparison(req WindowRequest) (entity.ComparisonRequest, error) {
	primary, err := r.Resolve(req)
	if err != nil {
		return entity.ComparisonRequest{}, fmt.Errorf("primary window: %w", err)
	}
	c := entity.ComparisonRequest{Primary: primary}
	if !req.Compare {
		return c, nil
	}
	if req.ComparePreset == "" && req.CompareFrom == "" && req.CompareTo == "" {
		return r.EnableComparison(c, nil), nil
	}
	secondary, err := r.resolve(req.ComparePreset, req.CompareFrom, req.CompareTo)
	if err != nil {
		return entity.ComparisonRequest{}, fmt.Errorf("comparison window: %w", err)
	}
	return r.EnableComparison(c, &secondary), nil
}

func (r *Resolver) resolve(preset, from, to string) (entity.DateWindow, error) {
	if from != "" || to != "" {
		return r.Custom(from, to)
	}
	p, ok := ParsePreset(preset)
	if !ok && preset != "" {
		slog.Default().Debug("unknown preset, using default",
			slog.String("preset", preset),
			slog.String("default", DefaultPreset.String()),
		)
	}
	return r.Preset(p), nil
}

// Preset resolves p to concrete UTC day bounds. Unknown presets resolve as DefaultPreset.
func (r *Resolver) Preset(p Preset) entity.DateWindow {
	if !p.Valid() {
		p = DefaultPreset
	}
	today := r.Today()
	var from, to time.Time
	switch p {
	case Today:
		from, to = today, today
	case Yesterday:
		from = today.AddDate(0, 0, -1)
		to = from
	case Last7Days:
		from, to = today.AddDate(0, 0, -6), today
	case Last30Days:
		from, to = today.AddDate(0, 0, -29), today
	case ThisMonth:
		from, to = startOfMonth(today), today
	case LastMonth:
		from = startOfMonth(today).AddDate(0, -1, 0)
		to = startOfMonth(today).AddDate(0, 0, -1)
	case Last3Months:
		from, to = addMonthsClamped(today, -3), today
	case ThisYear:
		from, to = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), today
	}
	return entity.DateWindow{
		From:   from,
		To:     endOfDay(to),
		Preset: p.String(),
	}
}

// Custom builds a window from explicit date strings. The preset tag is left empty.
func (r *Resolver) Custom(from, to string) (entity.DateWindow, error) {
	f, err := ParseDate(from)
	if err != nil {
		return entity.DateWindow{}, fmt.Errorf("from: %w", err)
	}
	t, err := ParseDate(to)
	if err != nil {
		return entity.DateWindow{}, fmt.Errorf("to: %w", err)
	}
	w := entity.DateWindow{
		From: startOfDay(f),
		To:   endOfDay(t),
	}
	if w.From.After(w.To) {
		return entity.DateWindow{}, fmt.Errorf("from %s after to %s: %w", from, to, gerr.ErrInvalidWindow)
	}
	return w, nil
}

// ValidDate reports whether s is a calendar date (2006-01-02) or an RFC3339 timestamp.
func ValidDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return govalidator.IsTime(s, dateLayout) || govalidator.IsTime(s, time.RFC3339)
}

// ParseDate parses a string accepted by ValidDate and returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	if !ValidDate(s) {
		return time.Time{}, fmt.Errorf("%q: %w", s, gerr.ErrInvalidDate)
	}
	s = strings.TrimSpace(s)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%q: %w", s, gerr.ErrInvalidDate)
		}
	}
	return t.UTC(), nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// endOfDay returns 23:59:59.999 of t's UTC day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Millisecond)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// addMonthsClamped shifts t by n months keeping the day within the target month,
// so that May 31 minus three months is Feb 28/29 rather than early March.
func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
