// Package tui provides the Bubble Tea typing interfaces.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/scoring"
)

const footerInterval = 100 * time.Millisecond

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = currentWordStyle.Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tipStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	passStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	failStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
)

// Banner is shown once a finished session has been saved.
type Banner struct {
	Graded  bool
	Passed  bool
	Message string
	Next    *model.Level
}

// Finisher stores a finished session and describes the outcome.
type Finisher func(startedAt time.Time, res scoring.Result) (Banner, error)

// TrainConfig sets up a typing run. Level is nil for freeform practice.
type TrainConfig struct {
	Title    string
	Level    *model.Level
	Text     string
	Shuffle  func(current string) string
	ShowTips bool
	Finish   Finisher
	// Bell runs after a mistyped rune when set.
	Bell   func()
	Logger *zap.Logger
	Clock  func() time.Time
}

type tickMsg time.Time

type savedMsg struct {
	gen    int
	banner Banner
	err    error
}

// TrainModel implements the level training and practice screen.
type TrainModel struct {
	cfg     TrainConfig
	logger  *zap.Logger
	session *scoring.Session
	bar     progress.Model

	width  int
	height int

	ticking bool
	saving  bool
	banner  *Banner
	errMsg  string
	next    bool
	// gen changes on every reset so saves from a discarded run are dropped.
	gen int
}

// NewTrainModel builds the typing screen for cfg.
func NewTrainModel(cfg TrainConfig) *TrainModel {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	text := cfg.Text
	if cfg.Level != nil && text == "" {
		text = cfg.Level.Content
	}
	return &TrainModel{
		cfg:     cfg,
		logger:  logger,
		session: scoring.NewSession(text, cfg.Clock),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// NextRequested reports whether the user asked to continue with the next level.
func (m *TrainModel) NextRequested() (model.Level, bool) {
	if !m.next || m.banner == nil || m.banner.Next == nil {
		return model.Level{}, false
	}
	return *m.banner.Next, true
}

// Init implements tea.Model.
func (m *TrainModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *TrainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = m.contentWidth()
		return m, nil
	case tickMsg:
		if m.session.State() != scoring.Active {
			m.ticking = false
			return m, nil
		}
		return m, tick()
	case savedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.saving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.logger.Error("failed to save session", zap.Error(msg.err))
			return m, nil
		}
		banner := msg.banner
		m.banner = &banner
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *TrainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlR:
		m.reset(m.session.Target())
		return m, nil
	case tea.KeyCtrlS:
		if m.cfg.Shuffle != nil && !m.saving {
			m.reset(m.cfg.Shuffle(m.session.Target()))
		}
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		// Input only grows; ctrl+r starts over.
		return m, nil
	case tea.KeyEnter:
		if m.banner != nil && m.banner.Passed && m.banner.Next != nil {
			m.next = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeySpace:
		return m, m.typeRunes([]rune{' '})
	case tea.KeyRunes:
		if m.session.State() == scoring.Finished && msg.String() == "q" {
			return m, tea.Quit
		}
		return m, m.typeRunes(msg.Runes)
	default:
		return m, nil
	}
}

func (m *TrainModel) typeRunes(runes []rune) tea.Cmd {
	if m.session.State() == scoring.Finished {
		return nil
	}
	target := []rune(m.session.Target())
	missed := false
	for _, r := range runes {
		pos := len([]rune(m.session.Input()))
		if err := m.session.Type(r); err != nil {
			break
		}
		missed = missed || target[pos] != r
	}
	var cmds []tea.Cmd
	if missed && m.cfg.Bell != nil {
		bell := m.cfg.Bell
		cmds = append(cmds, func() tea.Msg {
			bell()
			return nil
		})
	}
	if m.session.State() == scoring.Active && !m.ticking {
		m.ticking = true
		cmds = append(cmds, tick())
	}
	if m.session.State() == scoring.Finished && !m.saving {
		m.saving = true
		cmds = append(cmds, m.save())
	}
	return tea.Batch(cmds...)
}

func (m *TrainModel) save() tea.Cmd {
	finish := m.cfg.Finish
	startedAt := m.session.StartedAt()
	res := m.session.Snapshot()
	gen := m.gen
	return func() tea.Msg {
		if finish == nil {
			return savedMsg{gen: gen, banner: Banner{Message: resultLine(res)}}
		}
		banner, err := finish(startedAt, res)
		return savedMsg{gen: gen, banner: banner, err: err}
	}
}

func (m *TrainModel) reset(text string) {
	m.session.Retarget(text)
	m.gen++
	m.banner = nil
	m.errMsg = ""
	m.saving = false
}

func tick() tea.Cmd {
	return tea.Tick(footerInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *TrainModel) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	return max(int(float64(m.width)*0.70), 1)
}

// View implements tea.Model.
func (m *TrainModel) View() string {
	target := []rune(m.session.Target())
	if len(target) == 0 {
		return ""
	}
	width := m.contentWidth()
	sections := []string{}
	if header := m.renderHeader(); header != "" {
		sections = append(sections, header)
	}
	if tips := m.renderTips(); tips != "" {
		sections = append(sections, tips)
	}
	sections = append(sections,
		wrapCells(styleCells(target, []rune(m.session.Input())), width),
		"",
		m.bar.ViewAs(m.session.Progress()),
		renderFooter(m.session.Snapshot()),
	)
	if status := m.renderStatus(); status != "" {
		sections = append(sections, "", status)
	}
	sections = append(sections, footerStyle.Render(m.helpLine()))
	content := lipgloss.NewStyle().Width(width).Render(strings.Join(sections, "\n"))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *TrainModel) renderHeader() string {
	lvl := m.cfg.Level
	if lvl == nil {
		if m.cfg.Title == "" {
			return ""
		}
		return titleStyle.Render(m.cfg.Title)
	}
	title := titleStyle.Render(fmt.Sprintf("Level %d · %s", lvl.ID, lvl.Name))
	target := footerStyle.Render(fmt.Sprintf("Target %d WPM · %d%% accuracy", lvl.RequiredWPM, lvl.RequiredAccuracy))
	return title + "\n" + target
}

func (m *TrainModel) renderTips() string {
	if !m.cfg.ShowTips || m.cfg.Level == nil || len(m.cfg.Level.Tips) == 0 {
		return ""
	}
	lines := make([]string, len(m.cfg.Level.Tips))
	for i, tip := range m.cfg.Level.Tips {
		lines[i] = tipStyle.Render("Tip: " + tip)
	}
	return strings.Join(lines, "\n")
}

func (m *TrainModel) renderStatus() string {
	switch {
	case m.errMsg != "":
		return failStyle.Render("Not saved: " + m.errMsg)
	case m.saving:
		return footerStyle.Render("Saving...")
	case m.banner == nil:
		return ""
	}
	return renderBanner(*m.banner)
}

func (m *TrainModel) helpLine() string {
	keys := []string{"ctrl+r restart"}
	if m.cfg.Shuffle != nil {
		keys = append(keys, "ctrl+s new text")
	}
	if m.banner != nil && m.banner.Passed && m.banner.Next != nil {
		keys = append(keys, "enter next level")
	}
	keys = append(keys, "esc quit")
	return strings.Join(keys, " · ")
}

func renderFooter(res scoring.Result) string {
	return footerStyle.Render(fmt.Sprintf("Time %.1fs · WPM %d · Accuracy %d%% · Errors %d",
		res.ElapsedSeconds, res.WPM, res.Accuracy, res.Errors))
}

func renderBanner(b Banner) string {
	if !b.Graded {
		return titleStyle.Render(b.Message)
	}
	if b.Passed {
		return passStyle.Render(b.Message)
	}
	return failStyle.Render(b.Message)
}

func resultLine(res scoring.Result) string {
	return fmt.Sprintf("%d WPM · %d%% accuracy · %d errors", res.WPM, res.Accuracy, res.Errors)
}
