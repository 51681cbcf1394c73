package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/framecolors/internal/config"
	"github.com/alexisbeaulieu97/framecolors/internal/logger"
	"github.com/alexisbeaulieu97/framecolors/internal/reconcile"
	"github.com/alexisbeaulieu97/framecolors/internal/store"
	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
)

// appContext bundles the services a command needs.
type appContext struct {
	log     *logger.Logger
	store   *store.Files
	host    workspace.Host
	catalog *config.Catalog
	engine  *reconcile.Engine
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Format: flags.logFormat, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}

	global := flags.globalFile
	if global == "" {
		global, err = store.DefaultGlobalPath()
		if err != nil {
			return nil, err
		}
	}

	if global, err = filepath.Abs(global); err != nil {
		return nil, fmt.Errorf("resolve global settings path: %w", err)
	}

	files := store.NewFiles(global)
	host := newHost(flags)
	catalog := config.NewCatalog(log)
	return &appContext{
		log:     log,
		store:   files,
		host:    host,
		catalog: catalog,
		engine:  reconcile.New(files, host, catalog, log),
	}, nil
}
