package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/framecolors/internal/logger"
)

type rootFlags struct {
	verbose    bool
	logFormat  string
	folders    []string
	document   string
	statePath  string
	globalFile string
	hostname   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "framecolors",
		Short:         "Derive accent colors from workspace identity and keep them reconciled",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&flags.logFormat, "log-format", logger.FormatAuto, "Log format: auto, json or console")
	pf.StringArrayVar(&flags.folders, "folder", nil, "Workspace folder (repeatable; the first is the root)")
	pf.StringVar(&flags.document, "document", "", "Path of the active document")
	pf.StringVar(&flags.statePath, "state", "", "YAML file describing open folders and the active document")
	pf.StringVar(&flags.globalFile, "global-file", "", "Global settings file (default: user config dir)")
	pf.StringVar(&flags.hostname, "hostname", "", "Override the machine host name")

	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newHashCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
