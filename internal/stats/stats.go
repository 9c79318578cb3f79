// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/typemaster/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates a run of attempts.
type Summary struct {
	Sessions     int
	Passed       int
	AvgWPM       float64
	BestWPM      int
	AvgAccuracy  float64
	TotalSeconds float64
	TotalChars   int
	TotalErrors  int
}

// Summarize folds attempts into a Summary.
func Summarize(attempts []model.Attempt) Summary {
	var s Summary
	if len(attempts) == 0 {
		return s
	}
	var wpm, acc float64
	for _, a := range attempts {
		s.Sessions++
		if a.Passed {
			s.Passed++
		}
		wpm += float64(a.WPM)
		acc += float64(a.Accuracy)
		if a.WPM > s.BestWPM {
			s.BestWPM = a.WPM
		}
		s.TotalSeconds += a.ElapsedSeconds
		s.TotalChars += a.Chars
		s.TotalErrors += a.Errors
	}
	s.AvgWPM = wpm / float64(s.Sessions)
	s.AvgAccuracy = acc / float64(s.Sessions)
	return s
}

// WPMSeries returns the WPM of each attempt in order.
func WPMSeries(attempts []model.Attempt) []float64 {
	out := make([]float64, len(attempts))
	for i, a := range attempts {
		out[i] = float64(a.WPM)
	}
	return out
}

// AccuracySeries returns the accuracy of each attempt in order.
func AccuracySeries(attempts []model.Attempt) []float64 {
	out := make([]float64, len(attempts))
	for i, a := range attempts {
		out[i] = float64(a.Accuracy)
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		idx := int(math.Round((v - lo) / (hi - lo) * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[max(0, min(idx, len(sparkChars)-1))])
	}
	return b.String()
}

// FormatDuration renders seconds as "1h 02m", "3m 05s" or "42s".
func FormatDuration(seconds float64) string {
	total := int(math.Round(seconds))
	h, m, s := total/3600, (total%3600)/60, total%60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// RenderSummary prints the aggregate block.
func RenderSummary(w io.Writer, s Summary, p model.UserProgress) error {
	lines := []string{
		"Summary",
		fmt.Sprintf("Levels completed: %d", len(p.CompletedLevels)),
		fmt.Sprintf("Current level: %d", p.CurrentLevel),
		fmt.Sprintf("Lessons completed: %d", p.Stats.LessonsCompleted),
		fmt.Sprintf("Progress WPM: %d", p.Stats.AggregateWPM),
		fmt.Sprintf("Progress accuracy: %d%%", p.Stats.AggregateAccuracy),
		fmt.Sprintf("Training time: %s", FormatDuration(p.Stats.TotalTimeSeconds)),
	}
	if s.Sessions > 0 {
		lines = append(lines,
			fmt.Sprintf("Sessions: %d (%d passed)", s.Sessions, s.Passed),
			fmt.Sprintf("Avg WPM: %.1f", s.AvgWPM),
			fmt.Sprintf("Best WPM: %d", s.BestWPM),
			fmt.Sprintf("Avg accuracy: %.1f%%", s.AvgAccuracy),
		)
	} else {
		lines = append(lines, "No sessions found.")
	}
	return writeLines(w, append(lines, ""))
}

// RenderTrend prints smoothed sparklines for WPM and accuracy.
func RenderTrend(w io.Writer, attempts []model.Attempt, window int) error {
	if len(attempts) < 2 {
		return nil
	}
	wpm := MovingAverage(WPMSeries(attempts), window)
	acc := MovingAverage(AccuracySeries(attempts), window)
	headers := []string{"Trend", "Min", "Max", ""}
	rows := [][]string{
		seriesRow("WPM", wpm),
		seriesRow("Accuracy", acc),
	}
	lines := formatTable(headers, rows, map[int]bool{1: true, 2: true})
	return writeLines(w, append(lines, ""))
}

func seriesRow(name string, values []float64) []string {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return []string{name, fmt.Sprintf("%.0f", lo), fmt.Sprintf("%.0f", hi), Sparkline(values)}
}

// RenderHistory prints attempts newest first. Level 0 is shown as practice.
func RenderHistory(w io.Writer, attempts []model.Attempt) error {
	if len(attempts) == 0 {
		return writeLines(w, []string{"No sessions found.", ""})
	}
	headers := []string{"Date", "Level", "WPM", "Accuracy", "Errors", "Time", "Result"}
	rows := make([][]string, 0, len(attempts))
	for i := len(attempts) - 1; i >= 0; i-- {
		a := attempts[i]
		rows = append(rows, []string{
			a.EndedAt.Local().Format("2006-01-02 15:04"),
			levelLabel(a.LevelID),
			fmt.Sprintf("%d", a.WPM),
			fmt.Sprintf("%d%%", a.Accuracy),
			fmt.Sprintf("%d", a.Errors),
			FormatDuration(a.ElapsedSeconds),
			resultLabel(a),
		})
	}
	lines := append([]string{"History"}, formatTable(headers, rows, map[int]bool{2: true, 3: true, 4: true, 5: true})...)
	return writeLines(w, append(lines, ""))
}

// RenderGames prints game results in the order given.
func RenderGames(w io.Writer, games []model.GameResult) error {
	if len(games) == 0 {
		return writeLines(w, []string{"No games played.", ""})
	}
	headers := []string{"Date", "Score", "Words", "Level", "Accuracy"}
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		rows = append(rows, []string{
			g.PlayedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", g.Score),
			fmt.Sprintf("%d", g.WordsTyped),
			fmt.Sprintf("%d", g.Level),
			fmt.Sprintf("%d%%", g.Accuracy),
		})
	}
	lines := append([]string{"Games"}, formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true, 4: true})...)
	return writeLines(w, append(lines, ""))
}

func levelLabel(id int) string {
	if id == 0 {
		return "practice"
	}
	return fmt.Sprintf("%d", id)
}

func resultLabel(a model.Attempt) string {
	switch {
	case a.LevelID == 0:
		return "-"
	case a.Passed:
		return "passed"
	default:
		return "failed"
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
