// Package game runs the falling-words arcade game as a time-stepped engine.
//
// The engine never starts goroutines or reads the clock. Callers drive it
// with Advance and feed the typed word with Input.
package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/scoring"
)

const (
	// BoardHeight is the y past which a word is lost.
	BoardHeight = 400.0
	// MoveInterval is the time between fall steps.
	MoveInterval = 50 * time.Millisecond

	minSpawnInterval = 200 * time.Millisecond
	wordsPerLevel    = 10
	pointsPerChar    = 10
)

// DefaultWords is the built-in vocabulary.
var DefaultWords = []string{
	"cat", "dog", "run", "jump", "fast", "slow", "big", "small", "red", "blue",
	"green", "yellow", "happy", "sad", "good", "bad", "hot", "cold", "new", "old",
	"quick", "brown", "fox", "lazy", "over", "under", "above", "below", "left", "right",
}

// State is the game phase.
type State int

// Game phases.
const (
	Menu State = iota
	Playing
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "menu"
	}
}

// Word is one falling word. X is a percentage of the board width.
type Word struct {
	ID    int
	Text  string
	X     float64
	Y     float64
	Speed float64
}

// Config sets the round parameters. Zero values take the defaults.
type Config struct {
	Duration time.Duration
	Lives    int
	Words    []string
}

func (c Config) withDefaults() Config {
	if c.Duration <= 0 {
		c.Duration = 60 * time.Second
	}
	if c.Lives <= 0 {
		c.Lives = 3
	}
	if len(c.Words) == 0 {
		c.Words = DefaultWords
	}
	return c
}

// Engine holds one game.
type Engine struct {
	cfg   Config
	rnd   *rand.Rand
	state State

	words  []Word
	nextID int
	input  string

	score      int
	lives      int
	level      int
	wordsTyped int
	keystrokes int
	correct    int
	remaining  time.Duration
	elapsed    time.Duration

	moveAcc   time.Duration
	spawnAcc  time.Duration
	secondAcc time.Duration
}

// New returns an engine in the menu state.
func New(cfg Config, rnd *rand.Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{cfg: cfg.withDefaults(), rnd: rnd}
	e.Reset()
	return e
}

// Reset clears the round and returns to the menu.
func (e *Engine) Reset() {
	e.state = Menu
	e.words = nil
	e.input = ""
	e.score = 0
	e.lives = e.cfg.Lives
	e.level = 1
	e.wordsTyped = 0
	e.keystrokes = 0
	e.correct = 0
	e.remaining = e.cfg.Duration
	e.elapsed = 0
	e.moveAcc = 0
	e.spawnAcc = 0
	e.secondAcc = 0
}

// Start begins a fresh round.
func (e *Engine) Start() {
	e.Reset()
	e.state = Playing
}

// TogglePause switches between playing and paused.
func (e *Engine) TogglePause() {
	switch e.state {
	case Playing:
		e.state = Paused
	case Paused:
		e.state = Playing
	}
}

// SpawnInterval is the delay between new words at the current level.
func (e *Engine) SpawnInterval() time.Duration {
	d := 2000*time.Millisecond - time.Duration(e.level)*100*time.Millisecond
	if d < minSpawnInterval {
		return minSpawnInterval
	}
	return d
}

// Advance runs the game clock forward by dt. Moves, spawns and countdown
// steps fire in time order and stop as soon as the game ends.
func (e *Engine) Advance(dt time.Duration) {
	for e.state == Playing && dt > 0 {
		toMove := MoveInterval - e.moveAcc
		toSpawn := max(e.SpawnInterval()-e.spawnAcc, 0)
		toSecond := time.Second - e.secondAcc
		step := min(toMove, toSpawn, toSecond)
		if step > dt {
			e.tick(dt)
			return
		}
		e.tick(step)
		dt -= step

		if e.moveAcc >= MoveInterval {
			e.moveAcc = 0
			e.fall()
		}
		if e.spawnAcc >= e.SpawnInterval() {
			e.spawnAcc = 0
			e.spawn()
		}
		if e.secondAcc >= time.Second {
			e.secondAcc = 0
			e.remaining -= time.Second
		}
		if e.lives <= 0 || e.remaining <= 0 {
			e.remaining = max(e.remaining, 0)
			e.state = GameOver
		}
	}
}

func (e *Engine) tick(d time.Duration) {
	e.moveAcc += d
	e.spawnAcc += d
	e.secondAcc += d
	e.elapsed += d
}

func (e *Engine) fall() {
	kept := e.words[:0]
	for _, w := range e.words {
		w.Y += w.Speed
		if w.Y > BoardHeight {
			if e.lives > 0 {
				e.lives--
			}
			continue
		}
		kept = append(kept, w)
	}
	e.words = kept
}

func (e *Engine) spawn() {
	e.nextID++
	e.words = append(e.words, Word{
		ID:    e.nextID,
		Text:  e.cfg.Words[e.rnd.Intn(len(e.cfg.Words))],
		X:     e.rnd.Float64()*80 + 10,
		Speed: 1 + float64(e.level)*0.5,
	})
}

// Input sets the typed text and reports whether it completed a word.
// Every call counts as one keystroke.
func (e *Engine) Input(value string) bool {
	if e.state != Playing {
		return false
	}
	e.input = value
	e.keystrokes++
	typed := strings.ToLower(value)
	idx := -1
	for i, w := range e.words {
		if strings.HasPrefix(strings.ToLower(w.Text), typed) {
			idx = i
			break
		}
	}
	if idx < 0 || strings.ToLower(e.words[idx].Text) != typed {
		return false
	}
	w := e.words[idx]
	e.words = append(e.words[:idx], e.words[idx+1:]...)
	n := len([]rune(w.Text))
	e.score += n * pointsPerChar * e.level
	e.wordsTyped++
	e.correct += n
	e.input = ""
	if e.wordsTyped%wordsPerLevel == 0 {
		e.level++
	}
	return true
}

// Accuracy is the share of keystrokes that ended in completed words.
func (e *Engine) Accuracy() int {
	if e.keystrokes == 0 {
		return 100
	}
	return min(scoring.Round(100*float64(e.correct)/float64(e.keystrokes)), 100)
}

// State returns the current phase.
func (e *Engine) State() State { return e.state }

// Words returns a copy of the falling words.
func (e *Engine) Words() []Word { return append([]Word(nil), e.words...) }

// Typed returns the pending input.
func (e *Engine) Typed() string { return e.input }

// Score returns the points earned so far.
func (e *Engine) Score() int { return e.score }

// Lives returns the lives left.
func (e *Engine) Lives() int { return e.lives }

// Level returns the current game level.
func (e *Engine) Level() int { return e.level }

// WordsTyped returns how many words were completed.
func (e *Engine) WordsTyped() int { return e.wordsTyped }

// Remaining returns the time left on the countdown.
func (e *Engine) Remaining() time.Duration { return e.remaining }

// Result summarizes the round for storage.
func (e *Engine) Result(userID string, playedAt time.Time) model.GameResult {
	return model.GameResult{
		UserID:          userID,
		PlayedAt:        playedAt,
		Score:           e.score,
		WordsTyped:      e.wordsTyped,
		Level:           e.level,
		Accuracy:        e.Accuracy(),
		DurationSeconds: int(e.elapsed / time.Second),
	}
}
