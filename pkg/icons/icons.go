// Package icons is the closed registry mapping a model.Kind to its
// baseline size multiplier and placeholder glyph, consulted by
// pkg/laf/inflate for per-kind sizing and by pkg/render/svg for the
// <symbol> fragment drawn inside each leaf element's box. Real icon
// artwork is out of scope; this package only carries the numbers and a
// minimal glyph.
package icons

import "github.com/abstractlayout/laf/pkg/model"

// Spec describes how a Kind's baseline box scales off the shared
// ICON_WIDTH unit, and the glyph drawn inside it.
type Spec struct {
	WidthMultiplier  float64
	HeightMultiplier float64
	Glyph            string // a short SVG <symbol> body, viewBox 0 0 100 100
}

var registry = map[model.Kind]Spec{
	model.KindServer: {
		WidthMultiplier: 1.0, HeightMultiplier: 1.0,
		Glyph: `<rect x="15" y="10" width="70" height="80" rx="4"/><line x1="15" y1="30" x2="85" y2="30"/>`,
	},
	model.KindFirewall: {
		WidthMultiplier: 1.0, HeightMultiplier: 1.0,
		Glyph: `<rect x="10" y="10" width="80" height="80"/><line x1="10" y1="35" x2="90" y2="35"/><line x1="10" y1="60" x2="90" y2="60"/>`,
	},
	model.KindBuilding: {
		WidthMultiplier: 1.2, HeightMultiplier: 1.4,
		Glyph: `<rect x="10" y="5" width="80" height="90"/><rect x="25" y="20" width="15" height="15"/><rect x="60" y="20" width="15" height="15"/>`,
	},
	model.KindCloud: {
		WidthMultiplier: 1.3, HeightMultiplier: 0.9,
		Glyph: `<ellipse cx="50" cy="55" rx="40" ry="25"/>`,
	},
	model.KindGeneric: {
		WidthMultiplier: 1.0, HeightMultiplier: 1.0,
		Glyph: `<rect x="10" y="10" width="80" height="80" rx="8"/>`,
	},
}

// Lookup returns the Spec for kind, falling back to the generic spec for
// any kind outside the registry (which, since model.Kind is itself a
// closed set normalized by model.ParseKind, should not happen in
// practice).
func Lookup(kind model.Kind) Spec {
	if s, ok := registry[kind]; ok {
		return s
	}
	return registry[model.KindGeneric]
}
