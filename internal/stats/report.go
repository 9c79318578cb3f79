package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/store"
)

// Source is the part of the store a report reads.
type Source interface {
	GetProgress(ctx context.Context, userID string) (model.UserProgress, error)
	ListAttempts(ctx context.Context, filter store.AttemptFilter) ([]model.Attempt, error)
	ListGameResults(ctx context.Context, userID string, limit int) ([]model.GameResult, error)
}

// ReportConfig selects the slice of history to report on.
type ReportConfig struct {
	UserID      string
	Last        int
	CurveWindow int
	Games       int
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Progress  model.UserProgress
	Attempts  []model.Attempt
	Summary   Summary
	Games     []model.GameResult
	Struggles []Struggle
	TopLevels []LevelCount
	Window    int
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, src Source, cfg ReportConfig) (Report, error) {
	p, err := src.GetProgress(ctx, cfg.UserID)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load progress: %w", err)
	}
	attempts, err := src.ListAttempts(ctx, store.AttemptFilter{UserID: cfg.UserID, Last: cfg.Last})
	if err != nil {
		return Report{}, fmt.Errorf("failed to load attempts: %w", err)
	}
	games, err := src.ListGameResults(ctx, cfg.UserID, cfg.Games)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load games: %w", err)
	}
	return Report{
		Progress:  p,
		Attempts:  attempts,
		Summary:   Summarize(attempts),
		Games:     games,
		Struggles: StrugglingLevels(attempts, 3),
		TopLevels: TopLevelsByAttempts(attempts, 3),
		Window:    cfg.CurveWindow,
	}, nil
}

// Render writes the full plain-text report.
func (r Report) Render(w io.Writer) error {
	if err := RenderSummary(w, r.Summary, r.Progress); err != nil {
		return err
	}
	if err := RenderTrend(w, r.Attempts, r.Window); err != nil {
		return err
	}
	if len(r.Struggles) > 0 {
		lines := []string{"Needs practice"}
		for _, s := range r.Struggles {
			lines = append(lines, fmt.Sprintf("  %d %s: best %d/%d wpm, %d attempts",
				s.Level.ID, s.Level.Name, s.Count.BestWPM, s.Level.RequiredWPM, s.Count.Attempts))
		}
		if err := writeLines(w, append(lines, "")); err != nil {
			return err
		}
	}
	if len(r.TopLevels) > 0 {
		lines := []string{"Most practiced"}
		for _, c := range r.TopLevels {
			lines = append(lines, fmt.Sprintf("  level %d: %d attempts, %d passed, best %d wpm",
				c.LevelID, c.Attempts, c.Passed, c.BestWPM))
		}
		if err := writeLines(w, append(lines, "")); err != nil {
			return err
		}
	}
	if err := RenderHistory(w, r.Attempts); err != nil {
		return err
	}
	return RenderGames(w, r.Games)
}
