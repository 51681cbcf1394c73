// Package palette turns a base color, a hue seed and a coloring style into
// the concrete color of every output slot.
package palette

import (
	"github.com/alexisbeaulieu97/framecolors/internal/color"
	"github.com/alexisbeaulieu97/framecolors/internal/ports"
	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
)

// Seed is the arranger that rotates the base hue by hash golden-angle steps.
func Seed(hash int) color.Arranger {
	return color.Arranger{Hue: hash}
}

// SlotColor derives one slot's color. A nil hash means the slot has no
// override and yields nil, which removes any previous value.
func SlotColor(base color.HSLA, hash *int, chain color.Chain) *string {
	if hash == nil {
		return nil
	}
	out := color.Format(color.Chain{Seed(*hash)}.Then(chain...).Apply(base))
	return &out
}

// Choice is the configured source and style of one region.
type Choice struct {
	Source workspace.Source
	Style  Style
}

// Palette carries everything needed to color one region within a cycle.
type Palette struct {
	Region Region
	Source workspace.Source
	Style  Style
	Hash   *int
}

// Values resolves the identifier of a color source.
type Values interface {
	Value(src workspace.Source) (string, bool)
}

// New builds the palette of region from its choice and the cycle's values.
func New(region Region, choice Choice, values Values) Palette {
	p := Palette{Region: region, Source: choice.Source, Style: choice.Style}
	if text, ok := values.Value(choice.Source); ok {
		h := color.Hash(text)
		p.Hash = &h
	}
	return p
}

// NoFolder builds the no-folder palette: hash 0 on the hostname source, so
// it is always written globally.
func NoFolder(style Style) Palette {
	zero := 0
	return Palette{Region: RegionNoFolder, Source: workspace.SourceHostname, Style: style, Hash: &zero}
}

// Scope is where this palette's colors persist.
func (p Palette) Scope() ports.Scope {
	return p.Source.Scope()
}

// Assignment is the computed value of one slot.
type Assignment struct {
	Slot  Slot
	Scope ports.Scope
	// Value is nil when the slot must be cleared.
	Value *string
}

// Compose colors every slot. choices must hold an entry for each of
// ConfigurableRegions; missing regions are treated as source none.
func Compose(base color.HSLA, choices map[Region]Choice, values Values) []Assignment {
	palettes := make(map[Region]Palette, len(ConfigurableRegions)+1)
	for _, region := range ConfigurableRegions {
		choice, ok := choices[region]
		if !ok {
			choice = Choice{Source: workspace.SourceNone, Style: StyleLight}
		}
		palettes[region] = New(region, choice, values)
	}
	palettes[RegionNoFolder] = NoFolder(choices[RegionStatusBar].Style)

	out := make([]Assignment, 0, len(Slots))
	for _, slot := range Slots {
		p := palettes[slot.Region]
		out = append(out, Assignment{
			Slot:  slot,
			Scope: p.Scope(),
			Value: SlotColor(base, p.Hash, slot.Chain(p.Style)),
		})
	}
	return out
}
