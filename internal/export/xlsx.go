package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/verte-zerg/typemaster/internal/progress"
)

// Workbook sheet names.
const (
	SheetProfile  = "Profile"
	SheetLevels   = "Levels"
	SheetAttempts = "Attempts"
	SheetGames    = "Games"
)

// WriteXLSX writes the bundle as a workbook with one sheet per table.
func WriteXLSX(w io.Writer, b Bundle) error {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close of the in-memory workbook.
			_ = cerr
		}
	}()
	f.SetSheetName("Sheet1", SheetProfile)
	for _, name := range []string{SheetLevels, SheetAttempts, SheetGames} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	u := b.User
	profile := [][]any{
		{"Field", "Value"},
		{"Username", u.Username},
		{"Email", u.Email},
		{"First name", u.FirstName},
		{"Last name", u.LastName},
		{"Member since", u.CreatedAt.Format(time.DateOnly)},
		{"Current level", u.Progress.CurrentLevel},
		{"Levels completed", len(u.Progress.CompletedLevels)},
		{"Lessons completed", u.Progress.Stats.LessonsCompleted},
		{"Aggregate WPM", u.Progress.Stats.AggregateWPM},
		{"Aggregate accuracy", u.Progress.Stats.AggregateAccuracy},
		{"Training seconds", u.Progress.Stats.TotalTimeSeconds},
		{"Keyboard layout", u.Settings.KeyboardLayout},
		{"Exported at", b.ExportedAt.Format(time.RFC3339)},
	}
	if err := writeSheet(f, SheetProfile, profile, header); err != nil {
		return err
	}

	lv := [][]any{{"Level", "Name", "Difficulty", "Required WPM", "Required accuracy", "Status", "Progress %"}}
	for _, r := range progress.BuildOverview(u.Progress) {
		lv = append(lv, []any{r.Level.ID, r.Level.Name, string(r.Level.Difficulty),
			r.Level.RequiredWPM, r.Level.RequiredAccuracy, string(r.Status), r.Percent})
	}
	if err := writeSheet(f, SheetLevels, lv, header); err != nil {
		return err
	}

	at := [][]any{{"ID", "Level", "Started", "Ended", "Chars", "Errors", "WPM", "Accuracy", "Seconds", "Passed"}}
	for _, a := range b.Attempts {
		at = append(at, []any{a.ID, a.LevelID, a.StartedAt.Format(time.RFC3339), a.EndedAt.Format(time.RFC3339),
			a.Chars, a.Errors, a.WPM, a.Accuracy, a.ElapsedSeconds, a.Passed})
	}
	if err := writeSheet(f, SheetAttempts, at, header); err != nil {
		return err
	}

	gm := [][]any{{"ID", "Played", "Score", "Words", "Level", "Accuracy", "Seconds"}}
	for _, g := range b.Games {
		gm = append(gm, []any{g.ID, g.PlayedAt.Format(time.RFC3339), g.Score, g.WordsTyped, g.Level, g.Accuracy, g.DurationSeconds})
	}
	if err := writeSheet(f, SheetGames, gm, header); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	return nil
}
