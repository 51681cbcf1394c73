package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/framecolors/internal/color"
	"github.com/alexisbeaulieu97/framecolors/internal/config"
	"github.com/alexisbeaulieu97/framecolors/internal/palette"
)

func newHashCmd() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "hash <text>",
		Short: "Print the hue seed of an identifier and the color it rotates the base to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.Parse(base)
			if err != nil {
				return err
			}
			h := color.Hash(args[0])
			seeded := palette.SlotColor(c, &h, nil)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", h, *seeded)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", config.DefaultBaseColor, "Base color to rotate")

	return cmd
}
