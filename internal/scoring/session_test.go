package scoring

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
}

func TestSessionScenarioCat(t *testing.T) {
	clock := newFakeClock()
	s := NewSession("cat", clock.Now)
	if s.State() != Idle {
		t.Fatalf("expected idle, got %s", s.State())
	}
	for i, r := range "cat" {
		if i > 0 {
			clock.Advance(3 * time.Second)
		}
		if err := s.Type(r); err != nil {
			t.Fatalf("type %q: %v", r, err)
		}
		if i == 0 && s.State() != Active {
			t.Fatalf("expected active after first keystroke, got %s", s.State())
		}
	}
	res := s.Snapshot()
	if !res.Completed {
		t.Fatalf("expected completed")
	}
	if res.ElapsedSeconds != 6 {
		t.Fatalf("expected 6s elapsed, got %v", res.ElapsedSeconds)
	}
	if res.WPM != 6 {
		t.Fatalf("expected 6 wpm, got %d", res.WPM)
	}
	if res.Accuracy != 100 || res.Errors != 0 {
		t.Fatalf("unexpected accuracy/errors: %+v", res)
	}
}

func TestSessionRejectsInputPastTarget(t *testing.T) {
	s := NewSession("ab", newFakeClock().Now)
	_ = s.Type('a')
	_ = s.Type('b')
	if err := s.Type('c'); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished, got %v", err)
	}
	if s.Input() != "ab" {
		t.Fatalf("input changed after finish: %q", s.Input())
	}
}

func TestSessionSnapshotFrozenAfterFinish(t *testing.T) {
	clock := newFakeClock()
	s := NewSession("ab", clock.Now)
	_ = s.Type('a')
	clock.Advance(time.Second)
	_ = s.Type('b')
	first := s.Snapshot()
	clock.Advance(time.Minute)
	second := s.Snapshot()
	if first != second {
		t.Fatalf("snapshot changed after finish: %+v vs %+v", first, second)
	}
}

func TestSessionSetInputPreconditions(t *testing.T) {
	s := NewSession("cat", newFakeClock().Now)
	if err := s.SetInput("cats"); !errors.Is(err, ErrInputTooLong) {
		t.Fatalf("expected ErrInputTooLong, got %v", err)
	}
	if err := s.SetInput("ca"); err != nil {
		t.Fatalf("set input: %v", err)
	}
	if err := s.SetInput("c"); !errors.Is(err, ErrInputShrunk) {
		t.Fatalf("expected ErrInputShrunk, got %v", err)
	}
	if err := s.SetInput("cbt"); err != nil {
		t.Fatalf("set input: %v", err)
	}
	res := s.Snapshot()
	if !res.Completed || res.Accuracy != 67 || res.Errors != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSessionReset(t *testing.T) {
	clock := newFakeClock()
	s := NewSession("cat", clock.Now)
	_ = s.SetInput("cat")
	s.Reset()
	if s.State() != Idle || s.Input() != "" || !s.StartedAt().IsZero() {
		t.Fatalf("reset did not discard state")
	}
	res := s.Snapshot()
	if res.WPM != 0 || res.Accuracy != 100 || res.Completed {
		t.Fatalf("unexpected result after reset: %+v", res)
	}
}

func TestSessionActiveSamplesClock(t *testing.T) {
	clock := newFakeClock()
	s := NewSession("hello world", clock.Now)
	_ = s.SetInput("hello")
	clock.Advance(6 * time.Second)
	res := s.Snapshot()
	if res.Completed {
		t.Fatalf("expected not completed")
	}
	// 5 chars = 1 word in 0.1 min.
	if res.WPM != 10 {
		t.Fatalf("expected 10 wpm, got %d", res.WPM)
	}
	if got := s.Progress(); got < 0.45 || got > 0.46 {
		t.Fatalf("unexpected progress %v", got)
	}
}
