// Package dashboard provides the Bubble Tea home screen with progress,
// levels, certificates and game history.
package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typemaster/internal/certificates"
	"github.com/verte-zerg/typemaster/internal/levels"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/progress"
	"github.com/verte-zerg/typemaster/internal/stats"
)

const (
	tabOverview = iota
	tabLevels
	tabCertificates
	tabGames
)

const recentGames = 20

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Source is what the dashboard reads.
type Source interface {
	stats.Source
	FirstPassingAttempts(ctx context.Context, userID string) (map[int]model.Attempt, error)
}

// Config selects the user and the report window.
type Config struct {
	User        model.User
	Last        int
	CurveWindow int
}

// Model implements the dashboard UI.
type Model struct {
	src Source
	cfg Config

	report stats.Report
	rows   []progress.LevelView
	certs  []model.Certificate
	errMsg string

	tabs      []string
	activeTab int
	viewports []viewport.Model
	levels    table.Model

	width  int
	height int

	selected int
}

// NewModel loads the dashboard data for cfg.User.
func NewModel(src Source, cfg Config) *Model {
	if cfg.CurveWindow <= 0 {
		cfg.CurveWindow = 5
	}
	m := &Model{
		src:  src,
		cfg:  cfg,
		tabs: []string{"Overview", "Levels", "Certificates", "Games"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.levels = table.New(
		table.WithColumns(levelColumns()),
		table.WithHeight(10),
		table.WithFocused(true),
	)
	m.levels.SetStyles(levelTableStyles())
	m.refresh()
	return m
}

// Selected returns the level chosen with enter on the levels tab.
func (m *Model) Selected() (model.Level, bool) {
	if m.selected == 0 {
		return model.Level{}, false
	}
	return levels.Get(m.selected)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "r":
			m.refresh()
			return m, nil
		case "=":
			m.cfg.CurveWindow++
			m.renderTabContents()
			return m, nil
		case "-":
			m.cfg.CurveWindow = max(m.cfg.CurveWindow-1, 1)
			m.renderTabContents()
			return m, nil
		case "enter":
			if m.activeTab == tabLevels {
				return m, m.selectLevel()
			}
			return m, nil
		}
		if m.activeTab == tabLevels {
			var cmd tea.Cmd
			m.levels, cmd = m.levels.Update(msg)
			return m, cmd
		}
		vp := m.viewports[m.activeTab]
		var cmd tea.Cmd
		vp, cmd = vp.Update(msg)
		m.viewports[m.activeTab] = vp
		return m, cmd
	}
	return m, nil
}

func (m *Model) selectLevel() tea.Cmd {
	idx := m.levels.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return nil
	}
	row := m.rows[idx]
	if row.Status == levels.StatusLocked {
		m.errMsg = fmt.Sprintf("Level %d is locked. Complete level %d first.", row.Level.ID, row.Level.ID-1)
		return nil
	}
	m.selected = row.Level.ID
	return tea.Quit
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = 80, 24
	}
	header := m.renderTabs() + "\n" + headerStyle.Render(m.renderGreeting())
	footer := headerStyle.Render("Nav: left/right  Scroll: up/down  Train: enter  Window: -/=  Reload: r  Quit: q")
	if m.errMsg != "" {
		footer += "\n" + errorStyle.Render(m.errMsg)
	}
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	body := m.renderBody()
	return strings.Join([]string{header, fitLines(body, width, bodyHeight), footer}, "\n")
}

func (m *Model) renderGreeting() string {
	p := m.report.Progress
	return fmt.Sprintf("%s · level %d of %d · %d completed", m.cfg.User.DisplayName(), p.CurrentLevel, levels.Count(), len(p.CompletedLevels))
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderBody() string {
	if m.activeTab == tabLevels {
		return m.levels.View()
	}
	return m.viewports[m.activeTab].View()
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	m.activeTab = (m.activeTab + delta + count) % count
	if m.activeTab == tabLevels {
		m.levels.Focus()
	} else {
		m.levels.Blur()
	}
}

func (m *Model) updateLayout() {
	bodyHeight := max(m.height-6, 1)
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.levels.SetWidth(m.width)
	m.levels.SetHeight(bodyHeight)
}

func (m *Model) refresh() {
	ctx := context.Background()
	userID := m.cfg.User.ID
	report, err := stats.BuildReport(ctx, m.src, stats.ReportConfig{
		UserID:      userID,
		Last:        m.cfg.Last,
		CurveWindow: m.cfg.CurveWindow,
		Games:       recentGames,
	})
	if err != nil {
		m.errMsg = err.Error()
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load progress.")
		}
		return
	}
	m.errMsg = ""
	first, err := m.src.FirstPassingAttempts(ctx, userID)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load certificates: %v", err)
	}
	m.report = report
	m.rows = progress.BuildOverview(report.Progress)
	m.certs = certificates.Build(report.Progress, first)
	m.levels.SetRows(levelRows(m.rows))
	m.levels.SetCursor(max(report.Progress.CurrentLevel-1, 0))
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.report.Window = m.cfg.CurveWindow
	m.viewports[tabOverview].SetContent(renderOverview(m.report, width))
	m.viewports[tabCertificates].SetContent(renderCertificates(m.certs))
	m.viewports[tabGames].SetContent(renderGames(m.report.Games))
}

func renderOverview(r stats.Report, width int) string {
	p := r.Progress
	cards := []string{
		metricCard("Current Level", fmt.Sprintf("%d", p.CurrentLevel)),
		metricCard("Completed", fmt.Sprintf("%d/%d", len(p.CompletedLevels), levels.Count())),
		metricCard("WPM", fmt.Sprintf("%d", p.Stats.AggregateWPM)),
		metricCard("Accuracy", fmt.Sprintf("%d%%", p.Stats.AggregateAccuracy)),
		metricCard("Training Time", stats.FormatDuration(p.Stats.TotalTimeSeconds)),
		metricCard("Lessons", fmt.Sprintf("%d", p.Stats.LessonsCompleted)),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4], cards[5])
		summary = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}
	var buf bytes.Buffer
	if err := stats.RenderTrend(&buf, r.Attempts, r.Window); err != nil {
		return summary + "\n\n" + fmt.Sprintf("Failed to render trend: %v", err)
	}
	if len(r.Struggles) > 0 {
		buf.WriteString("Needs practice\n")
		for _, s := range r.Struggles {
			fmt.Fprintf(&buf, "  %d %s: best %d/%d wpm, %d attempts\n",
				s.Level.ID, s.Level.Name, s.Count.BestWPM, s.Level.RequiredWPM, s.Count.Attempts)
		}
		buf.WriteString("\n")
	}
	if err := stats.RenderHistory(&buf, r.Attempts); err != nil {
		return summary + "\n\n" + fmt.Sprintf("Failed to render history: %v", err)
	}
	return strings.TrimRight(summary+"\n\n"+buf.String(), "\n")
}

func renderCertificates(certs []model.Certificate) string {
	if len(certs) == 0 {
		return "No certificates yet. Pass a level to earn one."
	}
	lines := make([]string, 0, len(certs)+1)
	lines = append(lines, cardTitleStyle.Render(fmt.Sprintf("%d certificates", len(certs))))
	for _, c := range certs {
		lines = append(lines, certificates.Line(c))
	}
	return strings.Join(lines, "\n")
}

func renderGames(games []model.GameResult) string {
	var buf bytes.Buffer
	if err := stats.RenderGames(&buf, games); err != nil {
		return fmt.Sprintf("Failed to render games: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func levelColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 28},
		{Title: "Difficulty", Width: 12},
		{Title: "Target", Width: 12},
		{Title: "Status", Width: 12},
		{Title: "Best", Width: 12},
	}
}

func levelRows(rows []progress.LevelView) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		best := "-"
		if r.Status == levels.StatusCompleted {
			best = fmt.Sprintf("%d wpm %d%%", r.WPM, r.Accuracy)
		}
		out = append(out, table.Row{
			fmt.Sprintf("%d", r.Level.ID),
			r.Level.Name,
			string(r.Level.Difficulty),
			fmt.Sprintf("%d wpm %d%%", r.Level.RequiredWPM, r.Level.RequiredAccuracy),
			string(r.Status),
			best,
		})
	}
	return out
}

func levelTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func fitLines(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
