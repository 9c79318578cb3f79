package progress

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/typemaster/internal/levels"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/scoring"
)

// Repository persists progression records and attempt history.
type Repository interface {
	GetProgress(ctx context.Context, userID string) (model.UserProgress, error)
	// UpdateProgress applies fn to the stored record as one atomic
	// read-modify-write and returns the value written.
	UpdateProgress(ctx context.Context, userID string, fn func(model.UserProgress) model.UserProgress) (model.UserProgress, error)
	InsertAttempt(ctx context.Context, attempt model.Attempt) (int64, error)
}

// Outcome reports what a finished training session did.
type Outcome struct {
	Passed    bool
	Attempt   model.Attempt
	Progress  model.UserProgress
	NextLevel *model.Level
}

// Service connects scoring results to the persisted ledger.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService builds a Service. A nil logger discards output.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Complete records a finished training session and, when it meets the level
// thresholds, applies it to the user's progress.
func (s *Service) Complete(ctx context.Context, userID string, lvl model.Level, startedAt time.Time, res scoring.Result) (Outcome, error) {
	if !res.Completed {
		return Outcome{}, fmt.Errorf("level %d: session not finished", lvl.ID)
	}
	passed := levels.Passed(lvl, res.WPM, res.Accuracy)
	attempt := s.attempt(userID, lvl.ID, startedAt, res, passed)
	id, err := s.repo.InsertAttempt(ctx, attempt)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to save attempt: %w", err)
	}
	attempt.ID = id
	out := Outcome{Passed: passed, Attempt: attempt}

	if !passed {
		p, err := s.repo.GetProgress(ctx, userID)
		if err != nil {
			return Outcome{}, fmt.Errorf("failed to load progress: %w", err)
		}
		out.Progress = p
		s.logger.Info("level attempt below threshold",
			zap.String("user_id", userID),
			zap.Int("level_id", lvl.ID),
			zap.Int("wpm", res.WPM),
			zap.Int("accuracy", res.Accuracy),
		)
		return out, nil
	}

	p, err := s.repo.UpdateProgress(ctx, userID, func(cur model.UserProgress) model.UserProgress {
		return RecordCompletion(cur, lvl.ID, res.WPM, res.Accuracy, res.ElapsedSeconds)
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to update progress: %w", err)
	}
	out.Progress = p
	if next, ok := levels.Next(lvl.ID); ok {
		out.NextLevel = &next
	}
	s.logger.Info("level completed",
		zap.String("user_id", userID),
		zap.Int("level_id", lvl.ID),
		zap.Int("wpm", res.WPM),
		zap.Int("accuracy", res.Accuracy),
		zap.Int("lessons_completed", p.Stats.LessonsCompleted),
	)
	return out, nil
}

// PracticeFinished records a freeform session without touching progress.
func (s *Service) PracticeFinished(ctx context.Context, userID string, startedAt time.Time, res scoring.Result) (model.Attempt, error) {
	attempt := s.attempt(userID, 0, startedAt, res, false)
	id, err := s.repo.InsertAttempt(ctx, attempt)
	if err != nil {
		return model.Attempt{}, fmt.Errorf("failed to save practice: %w", err)
	}
	attempt.ID = id
	return attempt, nil
}

// LevelView is one dashboard row.
type LevelView struct {
	Level    model.Level
	Status   levels.Status
	Percent  int
	WPM      int
	Accuracy int
}

// Overview lists every level with its status for the user. Completed
// levels show the aggregate figures.
func (s *Service) Overview(ctx context.Context, userID string) ([]LevelView, model.UserProgress, error) {
	p, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return nil, model.UserProgress{}, fmt.Errorf("failed to load progress: %w", err)
	}
	return BuildOverview(p), p, nil
}

// BuildOverview derives dashboard rows from a progress record.
func BuildOverview(p model.UserProgress) []LevelView {
	all := levels.All()
	rows := make([]LevelView, 0, len(all))
	for _, lvl := range all {
		st := levels.StatusOf(lvl.ID, p)
		row := LevelView{Level: lvl, Status: st, Percent: levels.ProgressPercent(st)}
		if st == levels.StatusCompleted {
			row.WPM = p.Stats.AggregateWPM
			row.Accuracy = p.Stats.AggregateAccuracy
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Service) attempt(userID string, levelID int, startedAt time.Time, res scoring.Result, passed bool) model.Attempt {
	endedAt := startedAt.Add(time.Duration(res.ElapsedSeconds * float64(time.Second)))
	if startedAt.IsZero() {
		endedAt = s.now()
		startedAt = endedAt.Add(-time.Duration(res.ElapsedSeconds * float64(time.Second)))
	}
	return model.Attempt{
		UserID:         userID,
		LevelID:        levelID,
		StartedAt:      startedAt,
		EndedAt:        endedAt,
		Chars:          res.Chars,
		Errors:         res.Errors,
		WPM:            res.WPM,
		Accuracy:       res.Accuracy,
		ElapsedSeconds: res.ElapsedSeconds,
		Passed:         passed,
	}
}
