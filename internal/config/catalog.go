// Package config holds the frameColors settings catalog: every setting the
// engine reads, its default and the validator rule guarding it.
package config

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/framecolors/internal/color"
	"github.com/alexisbeaulieu97/framecolors/internal/logger"
	"github.com/alexisbeaulieu97/framecolors/internal/palette"
	"github.com/alexisbeaulieu97/framecolors/internal/setting"
	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
	fcerrors "github.com/alexisbeaulieu97/framecolors/pkg/errors"
)

const (
	// Section prefixes every setting name.
	Section = "frameColors"

	// DefaultBaseColor is the color every palette is rotated from.
	DefaultBaseColor = "#5679C9"
)

var defaultChoices = map[palette.Region]palette.Choice{
	palette.RegionTitleBar:    {Source: workspace.SourceWorkspaceFolder, Style: palette.StyleNegaDark},
	palette.RegionActivityBar: {Source: workspace.SourceWorkspace, Style: palette.StyleDark},
	palette.RegionStatusBar:   {Source: workspace.SourceHostname, Style: palette.StyleLight},
}

// DefaultChoice returns the default source and style of region.
func DefaultChoice(region palette.Region) palette.Choice {
	return defaultChoices[region]
}

// Name returns the full setting name for key.
func Name(key string) string {
	return Section + "." + key
}

// SourceName is the setting holding region's color source.
func SourceName(region palette.Region) string {
	return Name(string(region) + "ColorSource")
}

// StyleName is the setting holding region's coloring style.
func StyleName(region palette.Region) string {
	return Name(string(region) + "ColoringStyle")
}

// Snapshot is the effective configuration of one cycle.
type Snapshot struct {
	BaseColor  color.HSLA
	ApplyScope workspace.ApplyScope
	Choices    map[palette.Region]palette.Choice
}

// Catalog is the set of settings the engine reads. Values are memoized
// between refreshes.
type Catalog struct {
	BaseColor  *setting.Setting[string]
	ApplyScope *setting.Setting[workspace.ApplyScope]
	Sources    map[palette.Region]*setting.Setting[workspace.Source]
	Styles     map[palette.Region]*setting.Setting[palette.Style]
}

// NewCatalog builds the catalog. Rejected values are logged on log and
// replaced by their defaults.
func NewCatalog(log *logger.Logger) *Catalog {
	log = log.Component("config")
	onInvalid := func(err error) {
		fields := map[string]any{"error": err.Error()}
		var verr *fcerrors.ValidationError
		if errors.As(err, &verr) {
			fields["setting"] = verr.Setting
			fields["rule"] = verr.Rule
			fields["value"] = fmt.Sprint(verr.Value)
		}
		log.WithFields(fields).Warn("invalid setting, using default")
	}

	c := &Catalog{
		BaseColor: &setting.Setting[string]{
			Name:      Name("baseColor"),
			Default:   DefaultBaseColor,
			Validate:  rule[string](Name("baseColor"), "rgb_hex"),
			OnInvalid: onInvalid,
		},
		ApplyScope: &setting.Setting[workspace.ApplyScope]{
			Name:      Name("applyScope"),
			Default:   workspace.ApplyAny,
			Validate:  rule[workspace.ApplyScope](Name("applyScope"), "apply_scope"),
			OnInvalid: onInvalid,
		},
		Sources: make(map[palette.Region]*setting.Setting[workspace.Source], len(palette.ConfigurableRegions)),
		Styles:  make(map[palette.Region]*setting.Setting[palette.Style], len(palette.ConfigurableRegions)),
	}
	for _, region := range palette.ConfigurableRegions {
		def := defaultChoices[region]
		c.Sources[region] = &setting.Setting[workspace.Source]{
			Name:      SourceName(region),
			Default:   def.Source,
			Validate:  rule[workspace.Source](SourceName(region), "color_source"),
			OnInvalid: onInvalid,
		}
		c.Styles[region] = &setting.Setting[palette.Style]{
			Name:      StyleName(region),
			Default:   def.Style,
			Validate:  rule[palette.Style](StyleName(region), "coloring_style"),
			OnInvalid: onInvalid,
		}
	}
	return c
}

// Names lists every setting name in the catalog.
func (c *Catalog) Names() []string {
	names := []string{c.BaseColor.Name, c.ApplyScope.Name}
	for _, region := range palette.ConfigurableRegions {
		names = append(names, c.Sources[region].Name, c.Styles[region].Name)
	}
	return names
}

// Refresh re-reads every setting through r and reports whether any
// effective value changed since the previous refresh.
func (c *Catalog) Refresh(r setting.Reader) (Snapshot, bool) {
	changed := c.BaseColor.Update(r)
	changed = c.ApplyScope.Update(r) || changed
	for _, region := range palette.ConfigurableRegions {
		changed = c.Sources[region].Update(r) || changed
		changed = c.Styles[region].Update(r) || changed
	}
	return c.Snapshot(r), changed
}

// Snapshot returns the memoized values, reading through r where needed.
func (c *Catalog) Snapshot(r setting.Reader) Snapshot {
	base, err := color.Parse(c.BaseColor.Get(r))
	if err != nil {
		base = color.MustParse(DefaultBaseColor)
	}
	snap := Snapshot{
		BaseColor:  base,
		ApplyScope: c.ApplyScope.Get(r),
		Choices:    make(map[palette.Region]palette.Choice, len(palette.ConfigurableRegions)),
	}
	for _, region := range palette.ConfigurableRegions {
		snap.Choices[region] = palette.Choice{
			Source: c.Sources[region].Get(r),
			Style:  c.Styles[region].Get(r),
		}
	}
	return snap
}
