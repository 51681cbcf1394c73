package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/framecolors/internal/color"
	"github.com/alexisbeaulieu97/framecolors/internal/ports"
	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
)

var base = color.MustParse("#5679C9")

func byKey(assignments []Assignment) map[string]Assignment {
	out := make(map[string]Assignment, len(assignments))
	for _, a := range assignments {
		out[a.Slot.Key] = a
	}
	return out
}

func TestStyleTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style     Style
		direction int
		negative  bool
	}{
		{StyleLight, +1, false},
		{StyleDark, -1, false},
		{StyleNegaLight, +1, true},
		{StyleNegaDark, -1, true},
	}
	require.Len(t, tests, len(Styles))
	for _, tt := range tests {
		assert.True(t, tt.style.Valid())
		assert.Equal(t, tt.direction, tt.style.Direction(), string(tt.style))
		assert.Equal(t, tt.negative, tt.style.Negative(), string(tt.style))
	}
	assert.False(t, Style("sepia").Valid())
}

func TestNegativeStylesSwapArrangers(t *testing.T) {
	t.Parallel()

	fg, bg := StyleDark.Arrangers()
	negFg, negBg := StyleNegaDark.Arrangers()
	assert.Equal(t, fg, negBg)
	assert.Equal(t, bg, negFg)
}

func TestSlotColorNilHashClears(t *testing.T) {
	t.Parallel()

	assert.Nil(t, SlotColor(base, nil, color.Chain{{Lightness: 1}}))
}

func TestSlotColorSeedsHue(t *testing.T) {
	t.Parallel()

	zero, three := 0, 3
	a := SlotColor(base, &zero, nil)
	b := SlotColor(base, &three, nil)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, "#5679c9", *a)
	assert.NotEqual(t, *a, *b)
}

func TestComposeHostnameNegaDarkScenario(t *testing.T) {
	t.Parallel()

	frame := workspace.NewFrame("c1", workspace.State{Hostname: "myhost"})
	choices := map[Region]Choice{
		RegionTitleBar:    {Source: workspace.SourceHostname, Style: StyleNegaDark},
		RegionActivityBar: {Source: workspace.SourceNone, Style: StyleDark},
		RegionStatusBar:   {Source: workspace.SourceNone, Style: StyleLight},
	}

	got := byKey(Compose(base, choices, frame))
	bg := got["titleBar.activeBackground"]
	fg := got["titleBar.activeForeground"]

	require.NotNil(t, bg.Value)
	require.NotNil(t, fg.Value)
	assert.NotEqual(t, *bg.Value, *fg.Value)
	assert.Equal(t, ports.ScopeGlobal, bg.Scope)
	assert.Equal(t, ports.ScopeGlobal, fg.Scope)

	assert.Nil(t, got["activityBar.background"].Value)
	assert.Equal(t, ports.ScopeNone, got["activityBar.background"].Scope)
}

func TestComposeIsDeterministic(t *testing.T) {
	t.Parallel()

	frame := workspace.NewFrame("c1", workspace.State{
		Hostname: "myhost",
		Folders:  []string{"file:///src/app"},
		Document: "file:///src/app/main.go",
	})
	choices := map[Region]Choice{
		RegionTitleBar:    {Source: workspace.SourceWorkspaceFolder, Style: StyleNegaDark},
		RegionActivityBar: {Source: workspace.SourceDocument, Style: StyleDark},
		RegionStatusBar:   {Source: workspace.SourceFileType, Style: StyleLight},
	}

	assert.Equal(t, Compose(base, choices, frame), Compose(base, choices, frame))
}

func TestComposeCoversEverySlot(t *testing.T) {
	t.Parallel()

	frame := workspace.NewFrame("c1", workspace.State{})
	got := Compose(base, map[Region]Choice{}, frame)
	require.Len(t, got, len(Slots))

	keys := byKey(got)
	require.Len(t, keys, len(Slots), "slot keys must be unique")
	for key, a := range keys {
		if a.Slot.Region == RegionNoFolder {
			continue
		}
		assert.Nil(t, a.Value, key)
	}
}

func TestNoFolderSlotsAlwaysWriteGlobally(t *testing.T) {
	t.Parallel()

	frame := workspace.NewFrame("c1", workspace.State{})
	choices := map[Region]Choice{
		RegionStatusBar: {Source: workspace.SourceNone, Style: StyleDark},
	}

	got := byKey(Compose(base, choices, frame))
	for _, key := range []string{"statusBar.noFolderBackground", "statusBar.noFolderForeground"} {
		a := got[key]
		require.NotNil(t, a.Value, key)
		assert.Equal(t, ports.ScopeGlobal, a.Scope, key)
	}

	zero := 0
	want := SlotColor(base, &zero, got["statusBar.noFolderBackground"].Slot.Chain(StyleDark))
	assert.Equal(t, *want, *got["statusBar.noFolderBackground"].Value)
}

func TestAccentLightnessFollowsDirection(t *testing.T) {
	t.Parallel()

	slot := Slot{Key: "x", Role: Background, Accent: color.Arranger{Lightness: 1, Clamp: true}}
	light := slot.Chain(StyleLight)
	dark := slot.Chain(StyleDark)

	require.Len(t, light, 2)
	assert.Equal(t, 1, light[1].Lightness)
	assert.Equal(t, -1, dark[1].Lightness)
	assert.Equal(t, 1, slot.Accent.Lightness, "slot table must not be mutated")
}
