package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "typemaster.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func testUser(id, email, username, token string) model.User {
	return model.User{
		ID:           id,
		Email:        email,
		Username:     username,
		FirstName:    "Test",
		Token:        token,
		PasswordHash: "hash",
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Progress:     model.NewProgress(),
		Settings:     model.DefaultSettings(),
	}
}

func TestUserLookups(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	u := testUser("u1", "a@example.com", "alice", "swiftkeys1")
	if err := st.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	for name, lookup := range map[string]func() (model.User, error){
		"id":       func() (model.User, error) { return st.UserByID(ctx, "u1") },
		"token":    func() (model.User, error) { return st.UserByToken(ctx, "swiftkeys1") },
		"email":    func() (model.User, error) { return st.UserByEmail(ctx, "a@example.com") },
		"username": func() (model.User, error) { return st.UserByUsername(ctx, "alice") },
	} {
		got, err := lookup()
		if err != nil {
			t.Fatalf("lookup by %s: %v", name, err)
		}
		if got.ID != "u1" || !got.CreatedAt.Equal(u.CreatedAt) || got.Settings != u.Settings {
			t.Fatalf("lookup by %s returned %+v", name, got)
		}
		if got.Progress.CurrentLevel != 1 || len(got.Progress.CompletedLevels) != 0 {
			t.Fatalf("lookup by %s progress %+v", name, got.Progress)
		}
	}

	if _, err := st.UserByToken(ctx, "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := st.CreateUser(ctx, testUser("u2", "a@example.com", "bob", "swiftkeys2")); err == nil {
		t.Fatalf("expected unique email violation")
	}
}

func TestCurrentUser(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	id, err := st.CurrentUserID(ctx)
	if err != nil || id != "" {
		t.Fatalf("expected no current user, got %q (%v)", id, err)
	}
	if err := st.SetCurrentUserID(ctx, "u1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.SetCurrentUserID(ctx, "u2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if id, _ := st.CurrentUserID(ctx); id != "u2" {
		t.Fatalf("expected u2, got %q", id)
	}
	if err := st.SetCurrentUserID(ctx, ""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if id, _ := st.CurrentUserID(ctx); id != "" {
		t.Fatalf("expected signed out, got %q", id)
	}
}

func TestUpdateTokenAndSettings(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.CreateUser(ctx, testUser("u1", "a@example.com", "alice", "swiftkeys1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.UpdateToken(ctx, "u1", "jetbolt7"); err != nil {
		t.Fatalf("update token: %v", err)
	}
	if _, err := st.UserByToken(ctx, "swiftkeys1"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("old token still resolves: %v", err)
	}
	settings := model.Settings{SoundEnabled: false, AutoSave: true, ShowTips: false, KeyboardLayout: "dvorak"}
	if err := st.UpdateSettings(ctx, "u1", settings); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	got, err := st.UserByToken(ctx, "jetbolt7")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.Settings != settings {
		t.Fatalf("expected %+v, got %+v", settings, got.Settings)
	}
	if err := st.UpdateToken(ctx, "nobody", "x"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateProgressPersists(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.CreateUser(ctx, testUser("u1", "a@example.com", "alice", "swiftkeys1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := st.UpdateProgress(ctx, "u1", func(p model.UserProgress) model.UserProgress {
		return progress.RecordCompletion(p, 1, 30, 90, 12.5)
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	_, err = st.UpdateProgress(ctx, "u1", func(p model.UserProgress) model.UserProgress {
		return progress.RecordCompletion(p, 1, 40, 100, 10)
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := st.GetProgress(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CurrentLevel != 2 || len(got.CompletedLevels) != 1 || got.CompletedLevels[0] != 1 {
		t.Fatalf("unexpected progress: %+v", got)
	}
	if got.Stats.LessonsCompleted != 2 || got.Stats.AggregateWPM != 28 || got.Stats.TotalTimeSeconds != 22.5 {
		t.Fatalf("unexpected stats: %+v", got.Stats)
	}
	if _, err := st.GetProgress(ctx, "nobody"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAttemptsFilterAndLast(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.CreateUser(ctx, testUser("u1", "a@example.com", "alice", "swiftkeys1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		start := base.Add(time.Duration(i) * time.Minute)
		a := model.Attempt{
			UserID:         "u1",
			LevelID:        1 + i%2,
			StartedAt:      start,
			EndedAt:        start.Add(20 * time.Second),
			Chars:          50,
			WPM:            20 + i,
			Accuracy:       90,
			ElapsedSeconds: 20,
			Passed:         i >= 3,
		}
		if _, err := st.InsertAttempt(ctx, a); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	all, err := st.ListAttempts(ctx, AttemptFilter{UserID: "u1"})
	if err != nil || len(all) != 5 {
		t.Fatalf("expected 5 attempts, got %d (%v)", len(all), err)
	}
	last, err := st.ListAttempts(ctx, AttemptFilter{UserID: "u1", Last: 2})
	if err != nil {
		t.Fatalf("last: %v", err)
	}
	if len(last) != 2 || last[0].WPM != 23 || last[1].WPM != 24 {
		t.Fatalf("unexpected last attempts: %+v", last)
	}
	level := 2
	byLevel, err := st.ListAttempts(ctx, AttemptFilter{UserID: "u1", LevelID: &level})
	if err != nil || len(byLevel) != 2 {
		t.Fatalf("expected 2 level-2 attempts, got %d (%v)", len(byLevel), err)
	}
	first, err := st.FirstPassingAttempts(ctx, "u1")
	if err != nil {
		t.Fatalf("first passing: %v", err)
	}
	if first[2].WPM != 23 || first[1].WPM != 24 {
		t.Fatalf("unexpected first passing: %+v", first)
	}
}

func TestGameResults(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.CreateUser(ctx, testUser("u1", "a@example.com", "alice", "swiftkeys1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	best, err := st.BestGameScore(ctx, "u1")
	if err != nil || best != 0 {
		t.Fatalf("expected zero best, got %d (%v)", best, err)
	}
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range []int{120, 340, 90} {
		g := model.GameResult{UserID: "u1", PlayedAt: base.Add(time.Duration(i) * time.Hour), Score: score, WordsTyped: 4, Level: 1, Accuracy: 88, DurationSeconds: 60}
		if _, err := st.InsertGameResult(ctx, g); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	recent, err := st.ListGameResults(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 90 || recent[1].Score != 340 {
		t.Fatalf("unexpected recent games: %+v", recent)
	}
	if best, _ := st.BestGameScore(ctx, "u1"); best != 340 {
		t.Fatalf("expected best 340, got %d", best)
	}
}

func TestDeleteUser(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.CreateUser(ctx, testUser("u1", "a@example.com", "alice", "swiftkeys1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.SetCurrentUserID(ctx, "u1"); err != nil {
		t.Fatalf("set current: %v", err)
	}
	if err := st.DeleteUser(ctx, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.UserByID(ctx, "u1"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if id, _ := st.CurrentUserID(ctx); id != "" {
		t.Fatalf("expected sign-in cleared, got %q", id)
	}
}
