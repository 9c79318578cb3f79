package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/progress"
	"github.com/verte-zerg/typemaster/internal/scoring"
)

func stepClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestRenderFooterFormats(t *testing.T) {
	out := renderFooter(scoring.Result{ElapsedSeconds: 12.34, WPM: 40, Accuracy: 97, Errors: 1})
	for _, want := range []string{"Time 12.3s", "WPM 40", "Accuracy 97%", "Errors 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}

func TestTrainModelSavesFinishedSession(t *testing.T) {
	lvl := model.Level{ID: 1, Name: "Home Row", Content: "ab", RequiredWPM: 1, RequiredAccuracy: 50, Tips: []string{"Rest on the home row"}}
	next := model.Level{ID: 2, Name: "Top Row"}
	var got scoring.Result
	m := NewTrainModel(TrainConfig{
		Level:    &lvl,
		ShowTips: true,
		Clock:    stepClock(time.Second),
		Finish: func(_ time.Time, res scoring.Result) (Banner, error) {
			got = res
			return Banner{Graded: true, Passed: true, Message: "passed", Next: &next}, nil
		},
	})

	_, cmd := m.Update(keyRune('a'))
	if cmd == nil || !m.ticking {
		t.Fatalf("expected the footer tick to start")
	}
	_, cmd = m.Update(keyRune('b'))
	if cmd == nil {
		t.Fatalf("expected a save command")
	}
	msg, ok := cmd().(savedMsg)
	if !ok {
		t.Fatalf("expected savedMsg")
	}
	m.Update(msg)
	if !got.Completed || got.Chars != 2 || got.Accuracy != 100 {
		t.Fatalf("unexpected result passed to finisher: %+v", got)
	}
	view := m.View()
	for _, want := range []string{"Level 1 · Home Row", "Tip: Rest on the home row", "passed", "enter next level"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit on enter")
	}
	if lvl, ok := m.NextRequested(); !ok || lvl.ID != 2 {
		t.Fatalf("expected next level 2, got %+v %v", lvl, ok)
	}
}

func TestTrainModelIgnoresBackspaceAndResets(t *testing.T) {
	m := NewTrainModel(TrainConfig{Text: "abc", Clock: stepClock(time.Second)})
	m.Update(keyRune('a'))
	m.Update(keyRune('x'))
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.session.Input() != "ax" {
		t.Fatalf("backspace changed input: %q", m.session.Input())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.session.Input() != "" || m.session.State() != scoring.Idle {
		t.Fatalf("expected reset to idle, got %q %s", m.session.Input(), m.session.State())
	}
}

func TestTrainModelDropsSaveFromResetRun(t *testing.T) {
	lvl := model.Level{ID: 1, Name: "Home Row", Content: "ab", RequiredWPM: 1, RequiredAccuracy: 50}
	next := model.Level{ID: 2, Name: "Top Row"}
	m := NewTrainModel(TrainConfig{
		Level: &lvl,
		Clock: stepClock(time.Second),
		Finish: func(time.Time, scoring.Result) (Banner, error) {
			return Banner{Graded: true, Passed: true, Message: "passed", Next: &next}, nil
		},
	})
	m.Update(keyRune('a'))
	_, cmd := m.Update(keyRune('b'))
	if cmd == nil {
		t.Fatalf("expected a save command")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m.Update(cmd())
	if m.banner != nil || m.saving {
		t.Fatalf("save from the reset run was applied: banner=%v saving=%v", m.banner, m.saving)
	}
	if m.session.State() != scoring.Idle || m.session.Input() != "" {
		t.Fatalf("expected idle session, got %s %q", m.session.State(), m.session.Input())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.NextRequested(); ok {
		t.Fatalf("enter on a fresh session must not advance")
	}

	m.Update(keyRune('a'))
	_, cmd = m.Update(keyRune('b'))
	m.Update(cmd())
	if m.banner == nil || !m.banner.Passed {
		t.Fatalf("expected the banner for the new run")
	}
}

func TestTrainModelRingsBellOnMistype(t *testing.T) {
	rings := 0
	m := NewTrainModel(TrainConfig{Text: "abc", Bell: func() { rings++ }})
	m.Update(keyRune('a'))
	_, cmd := m.Update(keyRune('x'))
	if cmd == nil {
		t.Fatalf("expected a bell command")
	}
	cmd()
	if rings != 1 {
		t.Fatalf("expected one ring, got %d", rings)
	}
}

func TestTrainModelShuffle(t *testing.T) {
	m := NewTrainModel(TrainConfig{
		Text:    "first",
		Shuffle: func(string) string { return "second" },
	})
	m.Update(keyRune('f'))
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.session.Target() != "second" || m.session.Input() != "" {
		t.Fatalf("expected new text, got %q / %q", m.session.Target(), m.session.Input())
	}
}

func TestTrainModelShowsSaveError(t *testing.T) {
	m := NewTrainModel(TrainConfig{
		Text:  "a",
		Clock: stepClock(time.Second),
		Finish: func(time.Time, scoring.Result) (Banner, error) {
			return Banner{}, errors.New("disk full")
		},
	})
	_, cmd := m.Update(keyRune('a'))
	if cmd == nil {
		t.Fatalf("expected a save command")
	}
	m.Update(cmd())
	if !strings.Contains(m.View(), "Not saved: disk full") {
		t.Fatalf("expected error in view:\n%s", m.View())
	}
}

func TestLevelBanner(t *testing.T) {
	lvl := model.Level{ID: 3, RequiredWPM: 20, RequiredAccuracy: 90}
	failed := LevelBanner(lvl, progress.Outcome{Attempt: model.Attempt{WPM: 12, Accuracy: 95}})
	if failed.Passed || !strings.Contains(failed.Message, "needs 20 WPM and 90%") {
		t.Fatalf("unexpected failed banner: %+v", failed)
	}
	next := model.Level{ID: 4, Name: "Bottom Row"}
	passed := LevelBanner(lvl, progress.Outcome{Passed: true, Attempt: model.Attempt{WPM: 25, Accuracy: 96}, NextLevel: &next})
	if !passed.Passed || passed.Next == nil || !strings.Contains(passed.Message, "Level 4 Bottom Row is unlocked") {
		t.Fatalf("unexpected passed banner: %+v", passed)
	}
}
