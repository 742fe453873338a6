package daterange

import (
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/entity"
)

// EnableComparison returns c with a secondary window. A nil secondary falls back to
// DefaultPreset; nothing from a previously disabled comparison is restored.
func (r *Resolver) EnableComparison(c entity.ComparisonRequest, secondary *entity.DateWindow) entity.ComparisonRequest {
	if secondary == nil {
		w := r.Preset(DefaultPreset)
		secondary = &w
	}
	s := *secondary
	return entity.ComparisonRequest{
		Primary:   c.Primary,
		Secondary: &s,
	}
}

// DisableComparison returns c without its secondary window.
func DisableComparison(c entity.ComparisonRequest) entity.ComparisonRequest {
	return entity.ComparisonRequest{Primary: c.Primary}
}

// PresetWindow is a preset with its resolved bounds, used by the date picker.
type PresetWindow struct {
	Preset Preset
	Window entity.DateWindow
}

// PresetWindows resolves every supported preset against the same "today".
func (r *Resolver) PresetWindows() []PresetWindow {
	frozen := r.now()
	fr := New(WithNow(func() time.Time { return frozen }))
	out := make([]PresetWindow, 0, len(Presets))
	for _, p := range Presets {
		out = append(out, PresetWindow{Preset: p, Window: fr.Preset(p)})
	}
	return out
}
