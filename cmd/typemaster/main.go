// Package main provides the CLI entrypoint for typemaster.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/typemaster/internal/auth"
	"github.com/verte-zerg/typemaster/internal/config"
	"github.com/verte-zerg/typemaster/internal/dashboard"
	"github.com/verte-zerg/typemaster/internal/logger"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/progress"
	"github.com/verte-zerg/typemaster/internal/store"
)

const (
	defaultCurveWindow = 5
	defaultLogLevel    = "info"
)

var dashboardLast int

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typemaster",
		Short:         "Terminal typing trainer with levels, certificates and a game",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runDashboardCmd,
	}
	rootCmd.Flags().IntVar(&dashboardLast, "last", 0, "limit history to the last N sessions")

	rootCmd.AddCommand(newSignupCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newDeleteAccountCmd())
	rootCmd.AddCommand(newLevelsCmd())
	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newPracticeCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newCertificatesCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// app holds what every command needs once the config is read.
type app struct {
	cfg      config.FileConfig
	logger   *zap.Logger
	store    *store.Store
	auth     *auth.Service
	progress *progress.Service
}

func openApp() (*app, error) {
	cfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logOpts := logger.Options{Level: defaultLogLevel, File: config.DefaultLogPath()}
	if cfg.Log.Level != nil {
		logOpts.Level = *cfg.Log.Level
	}
	if cfg.Log.File != nil {
		logOpts.File = *cfg.Log.File
	}
	log, err := logger.New(logOpts)
	if err != nil {
		return nil, err
	}

	dbPath := config.DefaultDBPath()
	if cfg.Store.Path != nil {
		dbPath = *cfg.Store.Path
	}
	st, err := store.Open(dbPath)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath))
	return &app{
		cfg:      cfg,
		logger:   log,
		store:    st,
		auth:     auth.NewService(st, log),
		progress: progress.NewService(st, log),
	}, nil
}

func (a *app) Close() {
	if cerr := a.store.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
	if err := a.logger.Sync(); err != nil {
		// Syncing stderr fails on some terminals.
		_ = err
	}
}

// currentUser returns the signed-in account with fresh progress.
func (a *app) currentUser(ctx context.Context) (model.User, error) {
	u, err := a.auth.Current(ctx)
	if errors.Is(err, auth.ErrNotSignedIn) {
		return model.User{}, fmt.Errorf("not signed in; run `typemaster signup` or `typemaster login --token <token>`")
	}
	if err != nil {
		return model.User{}, err
	}
	p, err := a.store.GetProgress(ctx, u.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load progress: %w", err)
	}
	u.Progress = p
	return u, nil
}

func runDashboardCmd(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	for {
		user, err := a.currentUser(ctx)
		if err != nil {
			return err
		}
		m := dashboard.NewModel(a.store, dashboard.Config{
			User:        user,
			Last:        dashboardLast,
			CurveWindow: defaultCurveWindow,
		})
		program := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		lvl, ok := m.Selected()
		if !ok {
			return nil
		}
		if err := a.trainFrom(ctx, user, lvl); err != nil {
			return err
		}
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
