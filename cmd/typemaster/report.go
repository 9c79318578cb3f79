package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/typemaster/internal/certificates"
	"github.com/verte-zerg/typemaster/internal/export"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/progress"
	"github.com/verte-zerg/typemaster/internal/stats"
)

var keyboardLayouts = []string{"qwerty", "azerty", "qwertz", "dvorak", "colemak"}

var (
	levelsDifficulty string

	statsLast        int
	statsCurveWindow int
	statsGames       int

	certLevel int

	settingsSound    bool
	settingsAutoSave bool
	settingsTips     bool
	settingsLayout   string

	exportFormat string
	exportOut    string
)

func newLevelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List levels with their lock status",
		Args:  cobra.NoArgs,
		RunE:  runLevelsCmd,
	}
	cmd.Flags().StringVar(&levelsDifficulty, "difficulty", "", "only show one tier (beginner, intermediate, advanced, expert)")
	return cmd
}

func runLevelsCmd(cmd *cobra.Command, _ []string) error {
	var tier model.Difficulty
	if levelsDifficulty != "" {
		tier = model.Difficulty(strings.ToLower(levelsDifficulty))
		if !tier.Valid() {
			return fmt.Errorf("--difficulty must be one of beginner, intermediate, advanced, expert")
		}
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	// Without a sign-in the table shows a fresh account.
	ctx := context.Background()
	rows := progress.BuildOverview(model.NewProgress())
	if u, err := a.auth.Current(ctx); err == nil {
		if rows, _, err = a.progress.Overview(ctx, u.ID); err != nil {
			return fmt.Errorf("failed to load levels: %w", err)
		}
	}
	if tier != "" {
		kept := rows[:0]
		for _, r := range rows {
			if r.Level.Difficulty == tier {
				kept = append(kept, r)
			}
		}
		rows = kept
	}
	return stats.RenderLevelTable(cmd.OutOrStdout(), rows)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progress, trend and history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().IntVar(&statsGames, "games", 10, "number of recent games to list")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if statsCurveWindow <= 0 {
		return fmt.Errorf("--curve-window must be > 0")
	}
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	u, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	report, err := stats.BuildReport(ctx, a.store, stats.ReportConfig{
		UserID:      u.ID,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
		Games:       statsGames,
	})
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout())
}

func newCertificatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certificates",
		Short: "List earned certificates or show one",
		Args:  cobra.NoArgs,
		RunE:  runCertificatesCmd,
	}
	cmd.Flags().IntVar(&certLevel, "level", 0, "show the certificate card for a level")
	return cmd
}

func runCertificatesCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	u, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	first, err := a.store.FirstPassingAttempts(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("failed to load attempts: %w", err)
	}
	certs := certificates.Build(u.Progress, first)
	out := cmd.OutOrStdout()
	if certLevel != 0 {
		c, ok := certificates.Find(certs, certLevel)
		if !ok {
			return fmt.Errorf("no certificate for level %d yet", certLevel)
		}
		holder := strings.TrimSpace(u.FirstName + " " + u.LastName)
		if holder == "" {
			holder = u.Username
		}
		_, err := fmt.Fprintln(out, certificates.Card(c, holder))
		return err
	}
	if len(certs) == 0 {
		_, err := fmt.Fprintln(out, "No certificates yet. Pass a level to earn one.")
		return err
	}
	lines := make([]string, 0, len(certs))
	for _, c := range certs {
		lines = append(lines, certificates.Line(c))
	}
	return writeLines(out, lines)
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change account settings",
		Args:  cobra.NoArgs,
		RunE:  runSettingsCmd,
	}
	cmd.Flags().BoolVar(&settingsSound, "sound", true, "ring the terminal bell on mistyped keys")
	cmd.Flags().BoolVar(&settingsAutoSave, "auto-save", true, "save practice runs and game scores")
	cmd.Flags().BoolVar(&settingsTips, "show-tips", true, "show level tips while training")
	cmd.Flags().StringVar(&settingsLayout, "layout", "", "keyboard layout ("+strings.Join(keyboardLayouts, ", ")+")")
	return cmd
}

func runSettingsCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	u, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	s := u.Settings
	flags := cmd.Flags()
	changed := false
	if flags.Changed("sound") {
		s.SoundEnabled, changed = settingsSound, true
	}
	if flags.Changed("auto-save") {
		s.AutoSave, changed = settingsAutoSave, true
	}
	if flags.Changed("show-tips") {
		s.ShowTips, changed = settingsTips, true
	}
	if flags.Changed("layout") {
		layout := strings.ToLower(strings.TrimSpace(settingsLayout))
		if !knownLayout(layout) {
			return fmt.Errorf("--layout must be one of %s", strings.Join(keyboardLayouts, ", "))
		}
		s.KeyboardLayout, changed = layout, true
	}
	if changed {
		if err := a.store.UpdateSettings(ctx, u.ID, s); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		a.logger.Info("settings updated", zap.String("user_id", u.ID))
	}
	return writeLines(cmd.OutOrStdout(), []string{
		fmt.Sprintf("Sound: %s", onOff(s.SoundEnabled)),
		fmt.Sprintf("Auto-save: %s", onOff(s.AutoSave)),
		fmt.Sprintf("Show tips: %s", onOff(s.ShowTips)),
		fmt.Sprintf("Keyboard layout: %s", s.KeyboardLayout),
	})
}

func knownLayout(layout string) bool {
	for _, l := range keyboardLayouts {
		if l == layout {
			return true
		}
	}
	return false
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your data as JSON or XLSX",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportFormat, "format", string(export.FormatJSON), "json or xlsx")
	cmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout for json)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	if format == export.FormatXLSX && exportOut == "" {
		return fmt.Errorf("--out is required for xlsx")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	u, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	bundle, err := export.Load(ctx, a.store, u.ID)
	if err != nil {
		return err
	}

	write := export.WriteJSON
	if format == export.FormatXLSX {
		write = export.WriteXLSX
	}
	if exportOut == "" {
		return write(cmd.OutOrStdout(), bundle)
	}
	return writeExportFile(exportOut, func(w *bufio.Writer) error {
		return write(w, bundle)
	})
}

func writeExportFile(path string, fn func(w *bufio.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	writer := bufio.NewWriter(file)
	if err := fn(writer); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush export: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	return nil
}
