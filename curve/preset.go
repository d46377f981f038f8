package curve

import (
	"fmt"
	"slices"
)

var presets = map[string][4]float64{
	"default":     {0.5, 0.0, 0.5, 0.9},
	"linear":      {1.0 / 3.0, 1.0 / 3.0, 2.0 / 3.0, 2.0 / 3.0},
	"ease":        {0.25, 0.1, 0.25, 1.0},
	"ease-in":     {0.42, 0.0, 1.0, 1.0},
	"ease-out":    {0.0, 0.0, 0.58, 1.0},
	"ease-in-out": {0.42, 0.0, 0.58, 1.0},
}

// Preset returns a new curve for one of the named presets.
func Preset(name string) (*Curve, error) {
	h, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return New(h[0], h[1], h[2], h[3]), nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
