package palette

import "github.com/alexisbeaulieu97/framecolors/internal/color"

// Region is a group of slots that share one color source and style.
type Region string

const (
	RegionTitleBar    Region = "titleBar"
	RegionActivityBar Region = "activityBar"
	RegionStatusBar   Region = "statusBar"
	// RegionNoFolder is the status bar shown with no folder open. It has no
	// settings of its own: it always hashes to 0, persists globally and
	// borrows the status bar style.
	RegionNoFolder Region = "noFolder"
)

// ConfigurableRegions are the regions with their own source/style settings.
var ConfigurableRegions = []Region{RegionTitleBar, RegionActivityBar, RegionStatusBar}

// Role says which of the palette's base arrangers a slot starts from.
type Role int

const (
	Background Role = iota
	Foreground
)

// Slot is one output key and how its color is derived.
type Slot struct {
	Key    string
	Region Region
	Role   Role
	// Accent runs after the role arranger. Its Lightness is multiplied by
	// the style direction.
	Accent color.Arranger
}

// Slots is the complete output table, in write order.
var Slots = []Slot{
	{Key: "titleBar.activeBackground", Region: RegionTitleBar, Role: Background},
	{Key: "titleBar.activeForeground", Region: RegionTitleBar, Role: Foreground},
	{Key: "titleBar.inactiveBackground", Region: RegionTitleBar, Role: Background, Accent: color.Arranger{Saturation: -1, Lightness: 1, Clamp: true}},
	{Key: "titleBar.inactiveForeground", Region: RegionTitleBar, Role: Foreground, Accent: color.Arranger{Saturation: -1, Lightness: -1, Clamp: true}},

	{Key: "activityBar.background", Region: RegionActivityBar, Role: Background},
	{Key: "activityBar.foreground", Region: RegionActivityBar, Role: Foreground},
	{Key: "activityBar.inactiveForeground", Region: RegionActivityBar, Role: Foreground, Accent: color.Arranger{Alpha: -3, Clamp: true}},
	{Key: "activityBarBadge.background", Region: RegionActivityBar, Role: Background, Accent: color.Arranger{Hue: 3, Lightness: -1, Clamp: true}},
	{Key: "activityBarBadge.foreground", Region: RegionActivityBar, Role: Foreground, Accent: color.Arranger{Hue: 3, Clamp: true}},

	{Key: "statusBar.background", Region: RegionStatusBar, Role: Background},
	{Key: "statusBar.foreground", Region: RegionStatusBar, Role: Foreground},
	{Key: "statusBar.debuggingBackground", Region: RegionStatusBar, Role: Background, Accent: color.Arranger{Hue: 1, Clamp: true}},
	{Key: "statusBar.debuggingForeground", Region: RegionStatusBar, Role: Foreground, Accent: color.Arranger{Hue: 1, Clamp: true}},

	{Key: "statusBar.noFolderBackground", Region: RegionNoFolder, Role: Background},
	{Key: "statusBar.noFolderForeground", Region: RegionNoFolder, Role: Foreground},
}

// Chain returns the arranger chain for s under style, excluding the seed.
func (s Slot) Chain(style Style) color.Chain {
	fg, bg := style.Arrangers()
	base := bg
	if s.Role == Foreground {
		base = fg
	}
	if s.Accent == (color.Arranger{}) {
		return color.Chain{base}
	}
	accent := s.Accent
	accent.Lightness *= style.Direction()
	return color.Chain{base, accent}
}
