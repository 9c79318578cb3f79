package scoring

import (
	"errors"
	"time"
)

var (
	// ErrSessionFinished is returned when typing past the end of the target.
	ErrSessionFinished = errors.New("session already finished")
	// ErrInputTooLong is returned when input exceeds the target length.
	ErrInputTooLong = errors.New("input longer than target")
	// ErrInputShrunk is returned when input is shorter than before without a reset.
	ErrInputShrunk = errors.New("input shrank without reset")
)

// State is the lifecycle stage of a Session.
type State int

// Session states.
const (
	Idle State = iota
	Active
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Result is the derived view of a session at one instant.
type Result struct {
	Chars          int
	ElapsedSeconds float64
	WPM            int
	Accuracy       int
	Errors         int
	Completed      bool
}

// Session tracks one typing attempt against a fixed target.
type Session struct {
	target []rune
	input  []rune
	clock  func() time.Time

	state     State
	startedAt time.Time
	endedAt   time.Time
}

// NewSession starts an idle session. A nil clock uses time.Now.
func NewSession(target string, clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{target: []rune(target), clock: clock}
}

// Target returns the text being typed.
func (s *Session) Target() string { return string(s.target) }

// Input returns what has been typed so far.
func (s *Session) Input() string { return string(s.input) }

// State returns the current lifecycle stage.
func (s *Session) State() State { return s.state }

// StartedAt returns the first keystroke time, zero while idle.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// EndedAt returns the finishing time, zero until finished.
func (s *Session) EndedAt() time.Time { return s.endedAt }

// Type appends one rune.
func (s *Session) Type(r rune) error {
	if len(s.target) == 0 || len(s.input) >= len(s.target) {
		return ErrSessionFinished
	}
	s.begin()
	s.input = append(s.input, r)
	s.maybeFinish()
	return nil
}

// SetInput replaces the input with a longer or equal value.
func (s *Session) SetInput(value string) error {
	runes := []rune(value)
	if len(runes) > len(s.target) {
		return ErrInputTooLong
	}
	if len(runes) < len(s.input) {
		return ErrInputShrunk
	}
	if s.state == Finished {
		if len(runes) == len(s.input) {
			return nil
		}
		return ErrSessionFinished
	}
	if len(runes) == 0 {
		return nil
	}
	s.begin()
	s.input = runes
	s.maybeFinish()
	return nil
}

// Reset discards all typed input and timing.
func (s *Session) Reset() {
	s.input = nil
	s.state = Idle
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
}

// Retarget resets and switches to a new target text.
func (s *Session) Retarget(target string) {
	s.target = []rune(target)
	s.Reset()
}

// Snapshot computes the derived values. While active it samples the clock;
// once finished the values stay fixed.
func (s *Session) Snapshot() Result {
	elapsed := 0.0
	switch s.state {
	case Active:
		elapsed = s.clock().Sub(s.startedAt).Seconds()
	case Finished:
		elapsed = s.endedAt.Sub(s.startedAt).Seconds()
	}
	if elapsed < 0 {
		elapsed = 0
	}
	target := string(s.target)
	input := string(s.input)
	return Result{
		Chars:          len(s.input),
		ElapsedSeconds: elapsed,
		WPM:            WPM(len(s.input), elapsed),
		Accuracy:       Accuracy(target, input),
		Errors:         Errors(target, input),
		Completed:      s.state == Finished,
	}
}

// Progress returns the typed fraction of the target in [0, 1].
func (s *Session) Progress() float64 {
	if len(s.target) == 0 {
		return 0
	}
	return float64(len(s.input)) / float64(len(s.target))
}

func (s *Session) begin() {
	if s.state == Idle {
		s.state = Active
		s.startedAt = s.clock()
	}
}

func (s *Session) maybeFinish() {
	if len(s.input) == len(s.target) {
		s.state = Finished
		s.endedAt = s.clock()
	}
}
