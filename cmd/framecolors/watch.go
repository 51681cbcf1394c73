package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/framecolors/internal/logger"
	"github.com/alexisbeaulieu97/framecolors/internal/ports"
	"github.com/alexisbeaulieu97/framecolors/internal/reconcile"
	"github.com/alexisbeaulieu97/framecolors/internal/store"
	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
)

func newWatchCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reconcile on every settings or editor state change",
		Long: `Watch runs a cycle at startup and again whenever a settings document or the
--state file changes. Changes that arrive while a cycle is running are folded
into a single follow-up cycle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			return runWatch(cmd.Context(), cmd, app, root.statePath)
		},
	}

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, app *appContext, statePath string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fsw.Close() //nolint:errcheck

	w := &watcher{
		fs:      fsw,
		log:     app.log.Component("watch"),
		global:  app.store.Global,
		watched: make(map[string]struct{}),
	}
	if statePath != "" {
		if w.state, err = filepath.Abs(statePath); err != nil {
			return fmt.Errorf("resolve state path: %w", err)
		}
	}

	runner := reconcile.NewRunner(app.engine, app.log)
	runner.OnCycle = func(t ports.Trigger, res reconcile.Result, err error) {
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", t, err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", t, describeResult(res))
	}

	if err := w.watchDir(filepath.Dir(w.global), true); err != nil {
		return err
	}
	if w.state != "" {
		if err := w.watchDir(filepath.Dir(w.state), false); err != nil {
			return err
		}
	}
	w.syncFolders(ctx, app.host)

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()
	runner.Trigger(ports.TriggerStartup)

	for {
		select {
		case <-ctx.Done():
			return <-done
		case event, ok := <-fsw.Events:
			if !ok {
				return <-done
			}
			trigger, ok := w.classify(event)
			if !ok {
				continue
			}
			if trigger == ports.TriggerWorkspaceFoldersChanged {
				w.syncFolders(ctx, app.host)
			}
			runner.Trigger(trigger)
		case err, ok := <-fsw.Errors:
			if !ok {
				return <-done
			}
			w.log.Error(err, "watcher error")
		}
	}
}

// watcher maps filesystem events onto reconciliation triggers.
type watcher struct {
	fs      *fsnotify.Watcher
	log     *logger.Logger
	global  string
	state   string
	watched map[string]struct{}
}

func (w *watcher) watchDir(dir string, create bool) error {
	if _, ok := w.watched[dir]; ok {
		return nil
	}
	if create {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := w.fs.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.watched[dir] = struct{}{}
	w.log.WithFields(map[string]any{"dir": dir}).Debug("watching")
	return nil
}

// syncFolders adds the folders the host currently reports, and their
// settings directories when present.
func (w *watcher) syncFolders(ctx context.Context, host workspace.Host) {
	state, err := host.Current(ctx)
	if err != nil {
		w.log.Error(err, "read host state")
		return
	}
	for _, uri := range state.Folders {
		dir, ok := workspace.FilePath(uri)
		if !ok {
			continue
		}
		if err := w.watchDir(dir, false); err != nil {
			w.log.Warn(err.Error())
			continue
		}
		settings := filepath.Join(dir, store.DirName)
		if info, err := os.Stat(settings); err == nil && info.IsDir() {
			if err := w.watchDir(settings, false); err != nil {
				w.log.Warn(err.Error())
			}
		}
	}
}

// classify reports which trigger an event stands for, if any.
func (w *watcher) classify(event fsnotify.Event) (ports.Trigger, bool) {
	if event.Op == fsnotify.Chmod {
		return "", false
	}
	name := filepath.Clean(event.Name)
	base := filepath.Base(name)

	switch {
	case w.state != "" && name == w.state:
		return ports.TriggerWorkspaceFoldersChanged, true
	case name == w.global:
		return ports.TriggerConfigurationChanged, true
	case strings.HasPrefix(base, ".settings-"):
		return "", false
	case base == store.DirName && event.Has(fsnotify.Create):
		if err := w.watchDir(name, false); err != nil && !errors.Is(err, os.ErrNotExist) {
			w.log.Warn(err.Error())
		}
		return ports.TriggerConfigurationChanged, true
	case filepath.Base(filepath.Dir(name)) == store.DirName && (base == store.WorkspaceFile || base == store.LocalFile):
		return ports.TriggerConfigurationChanged, true
	}
	return "", false
}
