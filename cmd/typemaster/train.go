package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/typemaster/internal/game"
	"github.com/verte-zerg/typemaster/internal/generator"
	"github.com/verte-zerg/typemaster/internal/levels"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/scoring"
	"github.com/verte-zerg/typemaster/internal/tui"
	"github.com/verte-zerg/typemaster/internal/wordlist"
)

const (
	defaultWords        = 25
	defaultCaps         = 0.2
	defaultPunct        = 0.2
	defaultGameDuration = 60
	defaultGameLives    = 3
	maxGameWordLength   = 12
)

const defaultPunctSet = ".,!?;:"

var (
	trainTips bool

	practiceFile     string
	practiceText     string
	practiceDrill    bool
	practiceWords    int
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string

	gameWordsFile string
	gameDuration  int
	gameLives     int
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train <level>",
		Short: "Train an unlocked level",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrainCmd,
	}
	cmd.Flags().BoolVar(&trainTips, "tips", true, "show level tips (defaults to the account setting)")
	return cmd
}

func runTrainCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("level must be a number: %q", args[0])
	}
	lvl, ok := levels.Get(id)
	if !ok {
		return fmt.Errorf("level must be between 1 and %d", levels.Count())
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	if !levels.IsUnlocked(lvl.ID, user.Progress.CompletedLevels) {
		return fmt.Errorf("level %d is locked; complete level %d first", lvl.ID, lvl.ID-1)
	}
	applyBoolConfig(cmd, "tips", &user.Settings.ShowTips, a.cfg.Practice.ShowTips)
	if cmd.Flags().Changed("tips") {
		user.Settings.ShowTips = trainTips
	}
	return a.trainFrom(ctx, user, lvl)
}

// trainFrom runs lvl and keeps going while the user asks for the next level.
func (a *app) trainFrom(ctx context.Context, user model.User, lvl model.Level) error {
	for {
		current := lvl
		m := tui.NewTrainModel(tui.TrainConfig{
			Level:    &current,
			ShowTips: user.Settings.ShowTips,
			Bell:     bellFor(user.Settings),
			Logger:   a.logger,
			Finish: func(startedAt time.Time, res scoring.Result) (tui.Banner, error) {
				out, err := a.progress.Complete(ctx, user.ID, current, startedAt, res)
				if err != nil {
					return tui.Banner{}, err
				}
				return tui.LevelBanner(current, out), nil
			},
		})
		program := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		next, ok := m.NextRequested()
		if !ok {
			return nil
		}
		lvl = next
	}
}

func newPracticeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Freeform practice without affecting progress",
		Args:  cobra.NoArgs,
		RunE:  runPracticeCmd,
	}
	cmd.Flags().StringVar(&practiceFile, "file", "", "paragraph file (blank lines separate texts)")
	cmd.Flags().StringVar(&practiceText, "text", "", "practice this exact text")
	cmd.Flags().BoolVar(&practiceDrill, "drill", false, "random word drill from the game word list")
	cmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per drill")
	cmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	cmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	cmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	cmd.Flags().StringVar(&gameWordsFile, "words-file", "", "word list for drills (one word per line)")
	return cmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	p := a.cfg.Practice
	applyStringConfig(cmd, "file", &practiceFile, p.TextFile)
	applyIntConfig(cmd, "words", &practiceWords, p.Words)
	applyFloatConfig(cmd, "caps", &practiceCaps, p.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, p.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, p.PunctSet)
	applyStringConfig(cmd, "words-file", &gameWordsFile, a.cfg.Game.WordsFile)
	if err := validatePractice(); err != nil {
		return err
	}

	ctx := context.Background()
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}

	text, shuffle, err := practiceSource()
	if err != nil {
		return err
	}
	m := tui.NewTrainModel(tui.TrainConfig{
		Title:   "Practice",
		Text:    text,
		Shuffle: shuffle,
		Bell:    bellFor(user.Settings),
		Logger:  a.logger,
		Finish: func(startedAt time.Time, res scoring.Result) (tui.Banner, error) {
			if !user.Settings.AutoSave {
				return tui.Banner{Message: "Practice finished (auto-save is off)"}, nil
			}
			attempt, err := a.progress.PracticeFinished(ctx, user.ID, startedAt, res)
			if err != nil {
				return tui.Banner{}, err
			}
			a.logger.Info("practice saved",
				zap.String("user_id", user.ID),
				zap.Int("wpm", attempt.WPM),
				zap.Int("accuracy", attempt.Accuracy),
			)
			return tui.PracticeBanner(attempt), nil
		},
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// practiceSource picks the first text and how ctrl+s replaces it.
func practiceSource() (string, func(string) string, error) {
	if practiceText != "" {
		text, ok := generator.Custom(practiceText)
		if !ok {
			return "", nil, fmt.Errorf("--text must not be blank")
		}
		return text, nil, nil
	}
	if practiceDrill {
		words, err := loadGameWords(gameWordsFile)
		if err != nil {
			return "", nil, err
		}
		gen := generator.New(nil)
		punct := []rune(practicePunctSet)
		drill := func(string) string {
			return gen.Drill(words, practiceWords, practiceCaps, practicePunct, punct)
		}
		return drill(""), drill, nil
	}
	var texts []string
	if practiceFile != "" {
		loaded, err := wordlist.LoadTexts(practiceFile)
		if err != nil {
			return "", nil, fmt.Errorf("failed to load practice texts from %s: %w", practiceFile, err)
		}
		texts = loaded
	}
	gen := generator.New(texts)
	return gen.Random(), gen.Shuffle, nil
}

func validatePractice() error {
	if practiceWords <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if practiceCaps < 0 || practiceCaps > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if practicePunct < 0 || practicePunct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if practicePunct > 0 && practicePunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Play falling words",
		Args:  cobra.NoArgs,
		RunE:  runGameCmd,
	}
	cmd.Flags().StringVar(&gameWordsFile, "words-file", "", "word list (one word per line)")
	cmd.Flags().IntVar(&gameDuration, "duration", defaultGameDuration, "round length in seconds")
	cmd.Flags().IntVar(&gameLives, "lives", defaultGameLives, "lives per round")
	return cmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	g := a.cfg.Game
	applyStringConfig(cmd, "words-file", &gameWordsFile, g.WordsFile)
	applyIntConfig(cmd, "duration", &gameDuration, g.Duration)
	applyIntConfig(cmd, "lives", &gameLives, g.Lives)
	if gameDuration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if gameLives <= 0 {
		return fmt.Errorf("--lives must be > 0")
	}

	ctx := context.Background()
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	words, err := loadGameWords(gameWordsFile)
	if err != nil {
		return err
	}
	best, err := a.store.BestGameScore(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load best score: %w", err)
	}

	engine := game.New(game.Config{
		Duration: time.Duration(gameDuration) * time.Second,
		Lives:    gameLives,
		Words:    words,
	}, nil)
	m := tui.NewGameModel(tui.GameConfig{
		Engine: engine,
		UserID: user.ID,
		Best:   best,
		Logger: a.logger,
		Save: func(res model.GameResult) error {
			if !user.Settings.AutoSave {
				return nil
			}
			if _, err := a.store.InsertGameResult(ctx, res); err != nil {
				return fmt.Errorf("failed to save game: %w", err)
			}
			a.logger.Info("game saved",
				zap.String("user_id", user.ID),
				zap.Int("score", res.Score),
				zap.Int("accuracy", res.Accuracy),
			)
			return nil
		},
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func bellFor(s model.Settings) func() {
	if !s.SoundEnabled {
		return nil
	}
	return func() { logErrf("\a") }
}

// loadGameWords reads path, or returns the built-in vocabulary when empty.
func loadGameWords(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return game.DefaultWords, nil
	}
	raw, err := wordlist.LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	words := wordlist.Filter(wordlist.FilterGameWords(raw), wordlist.MaxLength(maxGameWordLength))
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s has no usable words (lowercase ASCII letters, up to %d long)", path, maxGameWordLength)
	}
	return words, nil
}
