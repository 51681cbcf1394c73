package palette

import "github.com/alexisbeaulieu97/framecolors/internal/color"

// Style is a region's coloring style.
type Style string

const (
	StyleLight     Style = "light"
	StyleDark      Style = "dark"
	StyleNegaLight Style = "nega-light"
	StyleNegaDark  Style = "nega-dark"
)

// Styles lists every coloring style.
var Styles = []Style{StyleLight, StyleDark, StyleNegaLight, StyleNegaDark}

type styleTrait struct {
	direction int
	negative  bool
}

var styleTraits = map[Style]styleTrait{
	StyleLight:     {direction: +1},
	StyleDark:      {direction: -1},
	StyleNegaLight: {direction: +1, negative: true},
	StyleNegaDark:  {direction: -1, negative: true},
}

// Direction is +1 when the hue-carrying color is pushed lighter and -1 when
// it is pushed darker. Unknown styles behave like light.
func (s Style) Direction() int {
	if trait, ok := styleTraits[s]; ok {
		return trait.direction
	}
	return +1
}

// Negative reports whether the hue moves to the foreground.
func (s Style) Negative() bool {
	return styleTraits[s].negative
}

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	_, ok := styleTraits[s]
	return ok
}

// Arrangers returns the foreground and background adjustments for s.
// Plain styles tint the background and give the foreground a strong,
// desaturated contrast; negative styles swap the two.
func (s Style) Arrangers() (fg, bg color.Arranger) {
	dir := s.Direction()
	tint := color.Arranger{Lightness: 2 * dir, Clamp: true}
	contrast := color.Arranger{Saturation: -2, Lightness: -5 * dir, Clamp: true}
	if s.Negative() {
		return tint, contrast
	}
	return contrast, tint
}
