// Package certificates derives achievement certificates from progress.
package certificates

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typemaster/internal/levels"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/stats"
)

// Build returns one certificate per completed level, followed by one per
// fully completed difficulty. first maps a level to its earliest passing
// attempt; levels without one keep zero figures.
func Build(p model.UserProgress, first map[int]model.Attempt) []model.Certificate {
	completed := append([]int(nil), p.CompletedLevels...)
	sort.Ints(completed)

	var certs []model.Certificate
	byLevel := make(map[int]model.Certificate, len(completed))
	for _, id := range completed {
		lvl, ok := levels.Get(id)
		if !ok {
			continue
		}
		c := model.Certificate{
			LevelID:    id,
			Title:      lvl.Name + " Mastery",
			Difficulty: lvl.Difficulty,
		}
		if a, ok := first[id]; ok {
			c.EarnedAt = a.EndedAt
			c.WPM = a.WPM
			c.Accuracy = a.Accuracy
			c.TimeSpentSeconds = a.ElapsedSeconds
		}
		certs = append(certs, c)
		byLevel[id] = c
	}

	for _, d := range model.Difficulties {
		if c, ok := tierCertificate(d, byLevel); ok {
			certs = append(certs, c)
		}
	}
	return certs
}

func tierCertificate(d model.Difficulty, byLevel map[int]model.Certificate) (model.Certificate, bool) {
	tier := levels.ByDifficulty(d)
	if len(tier) == 0 {
		return model.Certificate{}, false
	}
	c := model.Certificate{
		LevelID:    tier[len(tier)-1].ID,
		Title:      titleCase(string(d)) + " Tier Complete",
		Difficulty: d,
		Tier:       true,
	}
	var wpm, acc int
	for _, lvl := range tier {
		lc, ok := byLevel[lvl.ID]
		if !ok {
			return model.Certificate{}, false
		}
		if lc.EarnedAt.After(c.EarnedAt) {
			c.EarnedAt = lc.EarnedAt
		}
		wpm += lc.WPM
		acc += lc.Accuracy
		c.TimeSpentSeconds += lc.TimeSpentSeconds
	}
	c.WPM = wpm / len(tier)
	c.Accuracy = acc / len(tier)
	return c, true
}

// Find returns the level certificate for levelID.
func Find(certs []model.Certificate, levelID int) (model.Certificate, bool) {
	for _, c := range certs {
		if !c.Tier && c.LevelID == levelID {
			return c, true
		}
	}
	return model.Certificate{}, false
}

// ID is the printable certificate number.
func ID(c model.Certificate) string {
	if c.Tier {
		return "TT-" + strings.ToUpper(string(c.Difficulty))
	}
	return fmt.Sprintf("TT-%04d", c.LevelID)
}

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(1, 4).
	Align(lipgloss.Center)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	nameStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle   = lipgloss.NewStyle().Faint(true)
)

// Card renders a certificate for the terminal.
func Card(c model.Certificate, holder string) string {
	statCol := func(label, value string) string {
		return lipgloss.JoinVertical(lipgloss.Center, labelStyle.Render(label), value)
	}
	statsRow := lipgloss.JoinHorizontal(lipgloss.Top,
		statCol("Words Per Minute", fmt.Sprintf("%d", c.WPM)),
		"    ",
		statCol("Accuracy", fmt.Sprintf("%d%%", c.Accuracy)),
		"    ",
		statCol("Time Invested", stats.FormatDuration(c.TimeSpentSeconds)),
	)
	date := "-"
	if !c.EarnedAt.IsZero() {
		date = c.EarnedAt.Local().Format("January 2, 2006")
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		statCol("Date of Completion", date),
		"    ",
		statCol("Certificate ID", ID(c)),
	)
	body := lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render("Certificate of Achievement"),
		"",
		"This is to certify that",
		nameStyle.Render(holder),
		"has successfully completed",
		titleStyle.Render(c.Title),
		"",
		statsRow,
		"",
		footer,
	)
	return cardStyle.Render(body)
}

// Line is the one-line list entry for a certificate.
func Line(c model.Certificate) string {
	date := "-"
	if !c.EarnedAt.IsZero() {
		date = c.EarnedAt.Local().Format(time.DateOnly)
	}
	return fmt.Sprintf("%-9s %-36s %-12s %3d wpm %3d%%  %s", ID(c), c.Title, c.Difficulty, c.WPM, c.Accuracy, date)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
