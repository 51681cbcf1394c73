package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/framecolors/internal/palette"
	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

func newShowCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Preview the palette computed for the current workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			plan, err := app.engine.Plan(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plan.Skipped {
				fmt.Fprintln(out, mutedStyle.Render("apply scope does not match this workspace; nothing would be written"))
			}
			assignments := plan.Assignments
			if assignments == nil {
				assignments = palette.Compose(plan.Settings.BaseColor, plan.Settings.Choices, plan.Frame)
			}
			renderPalette(out, plan.Settings.Choices, assignments)
			return nil
		},
	}

	return cmd
}

func renderPalette(w io.Writer, choices map[palette.Region]palette.Choice, assignments []palette.Assignment) {
	var region palette.Region
	for _, a := range assignments {
		if a.Slot.Region != region {
			region = a.Slot.Region
			fmt.Fprintln(w, headingStyle.Render(regionHeading(region, choices)))
		}
		fmt.Fprintf(w, "  %s %-34s %-10s %s\n", swatch(a.Value), a.Slot.Key, valueText(a.Value), a.Scope)
	}
}

func regionHeading(region palette.Region, choices map[palette.Region]palette.Choice) string {
	if region == palette.RegionNoFolder {
		return fmt.Sprintf("%s (%s, %s)", region, workspace.SourceHostname, choices[palette.RegionStatusBar].Style)
	}
	c := choices[region]
	return fmt.Sprintf("%s (%s, %s)", region, c.Source, c.Style)
}

func swatch(value *string) string {
	if value == nil {
		return "    "
	}
	// lipgloss colors carry no alpha
	hex := strings.TrimSpace(*value)
	if len(hex) > 7 {
		hex = hex[:7]
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

func valueText(value *string) string {
	if value == nil {
		return "(cleared)"
	}
	return *value
}
