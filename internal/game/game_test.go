package game

import (
	"math/rand"
	"testing"
	"time"
)

func newTestEngine(cfg Config) *Engine {
	e := New(cfg, rand.New(rand.NewSource(42)))
	e.Start()
	return e
}

func typeWord(e *Engine, word string) bool {
	done := false
	for i := 1; i <= len(word); i++ {
		done = e.Input(word[:i])
	}
	return done
}

func TestCompletingWordScores(t *testing.T) {
	e := newTestEngine(Config{Words: []string{"cat"}})
	e.Advance(e.SpawnInterval())
	if len(e.Words()) != 1 {
		t.Fatalf("expected one word after first spawn, got %d", len(e.Words()))
	}
	if !typeWord(e, "cat") {
		t.Fatalf("expected cat to complete")
	}
	if e.Score() != 30 || e.WordsTyped() != 1 {
		t.Fatalf("expected score 30 and one word, got %d/%d", e.Score(), e.WordsTyped())
	}
	if e.Typed() != "" || len(e.Words()) != 0 {
		t.Fatalf("expected input cleared and word removed")
	}
	if e.Accuracy() != 100 {
		t.Fatalf("expected accuracy 100, got %d", e.Accuracy())
	}
}

func TestInputIsCaseInsensitive(t *testing.T) {
	e := newTestEngine(Config{Words: []string{"Fox"}})
	e.Advance(e.SpawnInterval())
	if !e.Input("fOX") {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestMismatchCountsKeystroke(t *testing.T) {
	e := newTestEngine(Config{Words: []string{"dog"}})
	e.Advance(e.SpawnInterval())
	if e.Input("x") {
		t.Fatalf("unexpected completion")
	}
	if e.Accuracy() != 0 {
		t.Fatalf("expected accuracy 0, got %d", e.Accuracy())
	}
	typeWord(e, "dog")
	// 3 correct of 4 keystrokes.
	if e.Accuracy() != 75 {
		t.Fatalf("expected accuracy 75, got %d", e.Accuracy())
	}
}

func TestTenthWordRaisesLevel(t *testing.T) {
	e := newTestEngine(Config{Words: []string{"cat"}})
	for i := 0; i < 10; i++ {
		e.Advance(e.SpawnInterval())
		if !typeWord(e, "cat") {
			t.Fatalf("word %d did not complete", i+1)
		}
		if i < 9 && e.Level() != 1 {
			t.Fatalf("level raised early after %d words", i+1)
		}
	}
	if e.Level() != 2 {
		t.Fatalf("expected level 2, got %d", e.Level())
	}
	if e.SpawnInterval() != 1800*time.Millisecond {
		t.Fatalf("unexpected spawn interval %v", e.SpawnInterval())
	}
	e.Advance(e.SpawnInterval())
	words := e.Words()
	if len(words) != 1 || words[0].Speed != 2 {
		t.Fatalf("expected level-2 speed, got %+v", words)
	}
	before := e.Score()
	typeWord(e, "cat")
	if e.Score()-before != 60 {
		t.Fatalf("expected 60 points at level 2, got %d", e.Score()-before)
	}
}

func TestFallenWordCostsLife(t *testing.T) {
	e := newTestEngine(Config{Words: []string{"cat"}})
	e.Advance(e.SpawnInterval())
	e.Advance(15 * time.Second)
	if e.Lives() != 2 {
		t.Fatalf("expected 2 lives, got %d", e.Lives())
	}
	for _, w := range e.Words() {
		if w.Y > BoardHeight {
			t.Fatalf("word past the board still present: %+v", w)
		}
	}
}

func TestLivesEndGame(t *testing.T) {
	e := newTestEngine(Config{Lives: 1})
	e.Advance(30 * time.Second)
	if e.State() != GameOver || e.Lives() != 0 {
		t.Fatalf("expected game over with no lives, got %s/%d", e.State(), e.Lives())
	}
}

func TestCountdownEndsGame(t *testing.T) {
	e := newTestEngine(Config{Lives: 1000})
	e.Advance(59 * time.Second)
	if e.State() != Playing || e.Remaining() != time.Second {
		t.Fatalf("expected 1s left, got %s %v", e.State(), e.Remaining())
	}
	e.Advance(2 * time.Second)
	if e.State() != GameOver || e.Remaining() != 0 {
		t.Fatalf("expected game over, got %s %v", e.State(), e.Remaining())
	}
	res := e.Result("u1", time.Unix(0, 0))
	if res.DurationSeconds != 60 {
		t.Fatalf("expected 60s duration, got %d", res.DurationSeconds)
	}
	if e.Input("cat") {
		t.Fatalf("input accepted after game over")
	}
}

func TestPauseFreezesClock(t *testing.T) {
	e := newTestEngine(Config{})
	e.TogglePause()
	e.Advance(10 * time.Second)
	if e.Remaining() != 60*time.Second || len(e.Words()) != 0 {
		t.Fatalf("paused game advanced")
	}
	e.TogglePause()
	e.Advance(time.Second)
	if e.Remaining() != 59*time.Second {
		t.Fatalf("expected 59s after resume, got %v", e.Remaining())
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	e := newTestEngine(Config{})
	e.level = 50
	if e.SpawnInterval() != minSpawnInterval {
		t.Fatalf("expected floor %v, got %v", minSpawnInterval, e.SpawnInterval())
	}
}

func TestSpawnPosition(t *testing.T) {
	e := newTestEngine(Config{Lives: 1000})
	e.Advance(10 * time.Second)
	for _, w := range e.Words() {
		if w.X < 10 || w.X >= 90 {
			t.Fatalf("x out of range: %v", w.X)
		}
	}
}

func TestResetReturnsToMenu(t *testing.T) {
	e := newTestEngine(Config{Words: []string{"cat"}})
	e.Advance(e.SpawnInterval())
	typeWord(e, "cat")
	e.Reset()
	if e.State() != Menu || e.Score() != 0 || e.Lives() != 3 || e.Level() != 1 || e.Accuracy() != 100 {
		t.Fatalf("reset left state behind")
	}
}
