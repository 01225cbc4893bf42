// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelpad/main.go
// Summary: texelpad command: a tab of side-by-side panes in the terminal.
// Usage: `texelpad`, `texelpad --panes 2`, `texelpad apps [query]`, `texelpad config show`.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	_ "github.com/framegrace/texelpad/apps/scratchpad"
	"github.com/framegrace/texelpad/config"
	"github.com/framegrace/texelpad/internal/devshell"
	"github.com/framegrace/texelpad/internal/logging"
	"github.com/framegrace/texelpad/internal/theming"
	"github.com/framegrace/texelpad/internal/version"
	"github.com/framegrace/texelpad/registry"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// stdoutIsTerminal is replaced in tests.
var stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

type rootOptions struct {
	configPath string
	logLevel   string
	app        string
	panes      int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "texelpad",
		Short: "Side-by-side scratch panes in your terminal",
		Long: `texelpad opens a row of panes in the terminal, each hosting a pane
content such as the scratchpad.

Keys: Ctrl-N new pane, Ctrl-W close pane, Alt-Left/Alt-Right switch pane,
Ctrl-Q quit. The config file is watched and reapplied on change.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	configHelp := "Config file"
	if path, err := config.DefaultPath(); err == nil {
		configHelp += " (default " + path + ")"
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", configHelp)
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off when unset")
	root.Flags().StringVar(&opts.app, "app", "", "App opened in new panes (overrides default_app)")
	root.Flags().IntVar(&opts.panes, "panes", 0, "Number of panes to open (overrides panes)")

	root.AddCommand(newAppsCmd(), newConfigCmd(opts), newVersionCmd())
	return root
}

func newAppsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apps [query]",
		Short: "List the pane contents texelpad can open",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New()
			registry.RegisterBuiltIns(reg)
			if reg.Count() == 0 {
				return errors.New("no apps registered")
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				groups := reg.ListByCategory()
				categories := make([]string, 0, len(groups))
				for category := range groups {
					categories = append(categories, category)
				}
				sort.Strings(categories)
				for _, category := range categories {
					fmt.Fprintf(out, "%s:\n", category)
					for _, entry := range groups[category] {
						printApp(out, entry.Manifest)
					}
				}
				return nil
			}
			entries := reg.Search(args[0])
			if len(entries) == 0 {
				return fmt.Errorf("no app matches %q", args[0])
			}
			for _, entry := range entries {
				printApp(out, entry.Manifest)
			}
			return nil
		},
	}
}

func printApp(out io.Writer, m *registry.Manifest) {
	fmt.Fprintf(out, "  %s  %-12s %s\n", m.Icon, m.Name, m.Description)
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Manage the texelpad config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				path = p
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.Open(opts.configPath)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(store.Settings()); err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			return enc.Close()
		},
	}

	cfg.AddCommand(initCmd, showCmd)
	return cfg
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "texelpad %s\n", version.String())
		},
	}
}

func runShell(cmd *cobra.Command, opts *rootOptions) error {
	if !stdoutIsTerminal() {
		return errors.New("texelpad needs an interactive terminal on stdout")
	}

	store, err := config.Open(opts.configPath)
	if err != nil {
		return err
	}
	settings := store.Settings()

	level := opts.logLevel
	if level == "" {
		level = settings.LogLevel
	}
	if err := logging.Initialize(level, settings.LogFile); err != nil {
		return err
	}
	defer logging.Sync()
	log := logging.Named("main")

	theming.Apply(settings)

	reg := registry.New()
	registry.RegisterBuiltIns(reg)

	shellOpts := devshell.Options{DefaultApp: settings.DefaultApp, Panes: settings.Panes}
	if cmd.Flags().Changed("app") {
		shellOpts.DefaultApp = opts.app
	}
	if cmd.Flags().Changed("panes") {
		shellOpts.Panes = opts.panes
	}
	if reg.Get(shellOpts.DefaultApp) == nil {
		return fmt.Errorf("unknown app %q (see `texelpad apps`)", shellOpts.DefaultApp)
	}

	shell := devshell.New(reg, shellOpts)
	apply := func(next *config.Settings) {
		shell.Post(func() {
			theming.Apply(next)
			shell.Tab().UpdateSettings(next)
		})
	}
	store.Watch(apply)
	log.Info("starting", zap.String("config", store.Path()), zap.String("version", version.Version))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go reloadOn(ctx, hup, store, apply)
	return shell.Run(ctx)
}

// reloadOn re-reads the config each time hup fires until ctx is done.
func reloadOn(ctx context.Context, hup <-chan os.Signal, store *config.Store, apply func(*config.Settings)) {
	log := logging.Named("main")
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := store.Reload(); err != nil {
				log.Warn("reload failed", zap.Error(err))
				continue
			}
			log.Info("settings reloaded", zap.String("config", store.Path()))
			apply(store.Settings())
		}
	}
}
