package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/framecolors/internal/ports"
	"github.com/alexisbeaulieu97/framecolors/internal/reconcile"
)

func newApplyCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run one reconciliation cycle and write changed scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			res, err := app.engine.Apply(cmd.Context(), ports.TriggerStartup)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeResult(res))
			return nil
		},
	}

	return cmd
}

func describeResult(res reconcile.Result) string {
	switch {
	case res.Skipped:
		return "skipped: apply scope does not match this workspace"
	case !res.Changed:
		return "up to date"
	}
	scopes := make([]string, 0, len(res.Scopes))
	for _, s := range res.Scopes {
		scopes = append(scopes, s.String())
	}
	return "updated: " + strings.Join(scopes, ", ")
}
