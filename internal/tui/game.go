package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/typemaster/internal/game"
	"github.com/verte-zerg/typemaster/internal/model"
)

const (
	defaultBoardRows = 20
	maxFrameStep     = time.Second
)

var boardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder(), true).
	BorderForeground(lipgloss.Color("#4A4A4A"))

// GameConfig wires the falling-words screen.
type GameConfig struct {
	Engine *game.Engine
	UserID string
	Best   int
	Save   func(res model.GameResult) error
	Logger *zap.Logger
	Clock  func() time.Time
}

type frameMsg time.Time

type gameSavedMsg struct {
	score int
	err   error
}

// GameModel implements the falling-words screen.
type GameModel struct {
	cfg    GameConfig
	engine *game.Engine
	logger *zap.Logger
	clock  func() time.Time
	input  textinput.Model

	width  int
	height int

	lastFrame time.Time
	running   bool
	saved     bool
	best      int
	errMsg    string
}

// NewGameModel builds the game screen in the menu state.
func NewGameModel(cfg GameConfig) *GameModel {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	engine := cfg.Engine
	if engine == nil {
		engine = game.New(game.Config{}, nil)
	}
	in := textinput.New()
	in.Placeholder = "type a falling word"
	in.Prompt = "> "
	in.CharLimit = 32
	return &GameModel{
		cfg:    cfg,
		engine: engine,
		logger: logger,
		clock:  clock,
		input:  in,
		best:   cfg.Best,
	}
}

// Init implements tea.Model.
func (m *GameModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		return m, m.frame(time.Time(msg))
	case gameSavedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.logger.Error("failed to save game", zap.Error(msg.err))
			return m, nil
		}
		m.best = max(m.best, msg.score)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyCtrlR:
		m.engine.Reset()
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	}
	switch m.engine.State() {
	case game.Menu, game.GameOver:
		switch msg.Type {
		case tea.KeyEnter, tea.KeySpace:
			return m, m.start()
		case tea.KeyEsc:
			return m, tea.Quit
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case game.Paused:
		if msg.Type == tea.KeyEsc || msg.String() == "p" {
			m.engine.TogglePause()
			m.lastFrame = m.clock()
			return m, m.input.Focus()
		}
		return m, nil
	}
	if msg.Type == tea.KeyEsc {
		m.engine.TogglePause()
		m.input.Blur()
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before && m.engine.Input(value) {
		m.input.SetValue("")
	}
	return m, cmd
}

func (m *GameModel) start() tea.Cmd {
	m.engine.Start()
	m.saved = false
	m.errMsg = ""
	m.input.SetValue("")
	m.lastFrame = m.clock()
	cmds := []tea.Cmd{m.input.Focus()}
	if !m.running {
		m.running = true
		cmds = append(cmds, frame())
	}
	return tea.Batch(cmds...)
}

func (m *GameModel) frame(now time.Time) tea.Cmd {
	switch m.engine.State() {
	case game.Playing:
		dt := min(now.Sub(m.lastFrame), maxFrameStep)
		m.lastFrame = now
		if dt > 0 {
			m.engine.Advance(dt)
		}
	case game.Paused:
		m.lastFrame = now
	default:
		m.running = false
		return nil
	}
	if m.engine.State() == game.GameOver {
		m.running = false
		m.input.Blur()
		return m.saveResult()
	}
	return frame()
}

func (m *GameModel) saveResult() tea.Cmd {
	if m.saved {
		return nil
	}
	m.saved = true
	res := m.engine.Result(m.cfg.UserID, m.clock())
	save := m.cfg.Save
	return func() tea.Msg {
		if save == nil {
			return gameSavedMsg{score: res.Score}
		}
		return gameSavedMsg{score: res.Score, err: save(res)}
	}
}

func frame() tea.Cmd {
	return tea.Tick(game.MoveInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// View implements tea.Model.
func (m *GameModel) View() string {
	cols := 60
	rows := defaultBoardRows
	if m.width > 0 {
		cols = max(m.width-4, 10)
	}
	if m.height > 0 {
		rows = max(m.height-8, 5)
	}
	var sections []string
	sections = append(sections, titleStyle.Render("Falling Words"), m.renderStats())
	switch m.engine.State() {
	case game.Menu:
		sections = append(sections, m.renderMessage(cols, rows,
			"Type each word before it hits the ground.",
			"enter start · esc quit"))
	case game.GameOver:
		sections = append(sections, m.renderMessage(cols, rows,
			fmt.Sprintf("Game over: %d points, %d words, %d%% accuracy", m.engine.Score(), m.engine.WordsTyped(), m.engine.Accuracy()),
			"enter play again · esc quit"))
	default:
		board := renderBoard(m.engine.Words(), m.input.Value(), cols, rows)
		if m.engine.State() == game.Paused {
			board = m.renderMessage(cols, rows, "Paused", "p resume")
		} else {
			board = boardStyle.Render(board)
		}
		sections = append(sections, board, m.input.View())
	}
	if m.errMsg != "" {
		sections = append(sections, failStyle.Render("Not saved: "+m.errMsg))
	}
	sections = append(sections, footerStyle.Render("esc pause · ctrl+r menu · ctrl+c quit"))
	return strings.Join(sections, "\n")
}

func (m *GameModel) renderStats() string {
	return footerStyle.Render(fmt.Sprintf("Score %d · Level %d · Lives %d · Time %ds · Best %d",
		m.engine.Score(), m.engine.Level(), m.engine.Lives(), int(m.engine.Remaining()/time.Second), m.best))
}

func (m *GameModel) renderMessage(cols, rows int, lines ...string) string {
	body := lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
	return boardStyle.Render(body)
}

type placement struct {
	col  int
	text string
	hit  int
}

// renderBoard lays the falling words onto a rows x cols grid. The first word
// matching typed shows the typed prefix highlighted.
func renderBoard(words []game.Word, typed string, cols, rows int) string {
	lines := make([][]placement, rows)
	matched := false
	lower := strings.ToLower(typed)
	for _, w := range words {
		n := len([]rune(w.Text))
		row := min(max(int(w.Y/game.BoardHeight*float64(rows-1)), 0), rows-1)
		col := min(max(int(w.X/100*float64(cols)), 0), max(cols-n, 0))
		p := placement{col: col, text: w.Text}
		if !matched && lower != "" && strings.HasPrefix(strings.ToLower(w.Text), lower) {
			p.hit = len([]rune(typed))
			matched = true
		}
		lines[row] = append(lines[row], p)
	}
	out := make([]string, rows)
	for i, row := range lines {
		out[i] = renderRow(row, cols)
	}
	return strings.Join(out, "\n")
}

func renderRow(row []placement, cols int) string {
	sort.SliceStable(row, func(i, j int) bool { return row[i].col < row[j].col })
	var b strings.Builder
	pos := 0
	for _, p := range row {
		runes := []rune(p.text)
		if pos > 0 && p.col <= pos {
			p.col = pos + 1
		}
		if p.col+len(runes) > cols {
			continue
		}
		b.WriteString(strings.Repeat(" ", p.col-pos))
		b.WriteString(correctStyle.Render(string(runes[:p.hit])))
		b.WriteString(currentWordStyle.Render(string(runes[p.hit:])))
		pos = p.col + len(runes)
	}
	b.WriteString(strings.Repeat(" ", max(cols-pos, 0)))
	return b.String()
}
