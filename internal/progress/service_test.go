package progress

import (
	"context"
	"testing"
	"time"

	"github.com/verte-zerg/typemaster/internal/levels"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/scoring"
)

type memoryRepo struct {
	progress map[string]model.UserProgress
	attempts []model.Attempt
	updates  int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{progress: map[string]model.UserProgress{"u1": model.NewProgress()}}
}

func (r *memoryRepo) GetProgress(_ context.Context, userID string) (model.UserProgress, error) {
	return r.progress[userID], nil
}

func (r *memoryRepo) UpdateProgress(_ context.Context, userID string, fn func(model.UserProgress) model.UserProgress) (model.UserProgress, error) {
	r.updates++
	next := fn(r.progress[userID])
	r.progress[userID] = next
	return next, nil
}

func (r *memoryRepo) InsertAttempt(_ context.Context, a model.Attempt) (int64, error) {
	r.attempts = append(r.attempts, a)
	return int64(len(r.attempts)), nil
}

func TestCompleteBelowSpeedThresholdDoesNotRecord(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil)
	lvl := model.Level{ID: 1, RequiredWPM: 30, RequiredAccuracy: 85}
	res := scoring.Result{Completed: true, WPM: 28, Accuracy: 90, ElapsedSeconds: 30, Chars: 70}

	out, err := svc.Complete(context.Background(), "u1", lvl, time.Now(), res)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Passed {
		t.Fatalf("expected failed outcome")
	}
	if repo.updates != 0 {
		t.Fatalf("progress must not be updated, got %d updates", repo.updates)
	}
	if len(repo.attempts) != 1 || repo.attempts[0].Passed {
		t.Fatalf("expected one failed attempt recorded, got %+v", repo.attempts)
	}
}

func TestCompletePassedUpdatesProgress(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil)
	lvl, _ := levels.Get(1)
	res := scoring.Result{Completed: true, WPM: lvl.RequiredWPM, Accuracy: lvl.RequiredAccuracy, ElapsedSeconds: 20}

	out, err := svc.Complete(context.Background(), "u1", lvl, time.Now(), res)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !out.Passed {
		t.Fatalf("expected passed outcome")
	}
	if out.Progress.CurrentLevel != 2 || !out.Progress.HasCompleted(1) {
		t.Fatalf("unexpected progress: %+v", out.Progress)
	}
	if out.NextLevel == nil || out.NextLevel.ID != 2 {
		t.Fatalf("expected next level 2")
	}
	if repo.updates != 1 {
		t.Fatalf("expected a single atomic update, got %d", repo.updates)
	}
}

func TestCompleteRejectsUnfinishedSession(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	lvl, _ := levels.Get(1)
	if _, err := svc.Complete(context.Background(), "u1", lvl, time.Now(), scoring.Result{WPM: 99, Accuracy: 100}); err == nil {
		t.Fatalf("expected error for unfinished session")
	}
}

func TestPracticeFinishedRecordsFreeformAttempt(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil)
	a, err := svc.PracticeFinished(context.Background(), "u1", time.Time{}, scoring.Result{Completed: true, WPM: 40, Accuracy: 97, ElapsedSeconds: 12})
	if err != nil {
		t.Fatalf("practice: %v", err)
	}
	if a.LevelID != 0 || a.ID != 1 {
		t.Fatalf("unexpected attempt: %+v", a)
	}
	if !a.EndedAt.After(a.StartedAt) {
		t.Fatalf("expected end after start: %+v", a)
	}
	if repo.updates != 0 {
		t.Fatalf("practice must not touch progress")
	}
}

func TestBuildOverview(t *testing.T) {
	p := model.UserProgress{CurrentLevel: 3, CompletedLevels: []int{1, 2}, Stats: model.Stats{AggregateWPM: 25, AggregateAccuracy: 91}}
	rows := BuildOverview(p)
	if len(rows) != levels.Count() {
		t.Fatalf("expected %d rows, got %d", levels.Count(), len(rows))
	}
	if rows[0].Status != levels.StatusCompleted || rows[0].WPM != 25 || rows[0].Percent != 100 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[2].Status != levels.StatusCurrent || rows[2].WPM != 0 {
		t.Fatalf("unexpected current row: %+v", rows[2])
	}
	if rows[3].Status != levels.StatusLocked {
		t.Fatalf("expected level 4 locked, got %s", rows[3].Status)
	}
}
