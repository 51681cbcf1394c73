package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/framecolors/internal/reconcile"
	"github.com/alexisbeaulieu97/framecolors/pkg/diff"
)

func newVerifyCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Show what apply would change without writing",
		Long: `Verify computes the colors for the current workspace and compares them with
the stored scopes. It exits with code 0 when everything is up to date and
code 1 when apply would write.`,
		Args: cobra.NoArgs,
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
				fmt.Fprintln(out, "skipped: apply scope does not match this workspace")
				return nil
			}
			dirty := plan.Dirty()
			if len(dirty) == 0 {
				fmt.Fprintln(out, "up to date")
				return nil
			}
			for _, b := range dirty {
				label := b.Target.String() + " " + reconcile.OutputKey
				fmt.Fprint(out, diff.Objects(b.Stored(), b.Current(), label+" (stored)", label+" (computed)"))
			}
			return &exitError{code: 1, msg: fmt.Sprintf("%d scope(s) out of date; run %q", len(dirty), "framecolors apply")}
		},
	}

	return cmd
}
