package dashboard

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typemaster/internal/levels"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/progress"
	"github.com/verte-zerg/typemaster/internal/scoring"
	"github.com/verte-zerg/typemaster/internal/store"
)

func seededModel(t *testing.T) *Model {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "typemaster.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()
	user := model.User{
		ID:        "u1",
		Email:     "a@example.com",
		Username:  "alice",
		FirstName: "Alice",
		Token:     "swiftkeys1",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Progress:  model.NewProgress(),
		Settings:  model.DefaultSettings(),
	}
	if err := st.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	lvl, _ := levels.Get(1)
	svc := progress.NewService(st, nil)
	res := scoring.Result{Chars: 120, ElapsedSeconds: 30, WPM: 200, Accuracy: 100, Completed: true}
	if _, err := svc.Complete(ctx, "u1", lvl, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), res); err != nil {
		t.Fatalf("complete: %v", err)
	}
	return NewModel(st, Config{User: user})
}

func TestDashboardLoadsProgress(t *testing.T) {
	m := seededModel(t)
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	if len(m.rows) != levels.Count() || m.rows[0].Status != levels.StatusCompleted || m.rows[1].Status != levels.StatusCurrent {
		t.Fatalf("unexpected level rows: %+v", m.rows[:2])
	}
	view := m.View()
	for _, want := range []string{"Overview", "Certificates", "Alice · level 2 of"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if out := renderCertificates(m.certs); !strings.Contains(out, "TT-0001") {
		t.Fatalf("expected level 1 certificate, got %s", out)
	}
}

func TestDashboardSelectsUnlockedLevel(t *testing.T) {
	m := seededModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabLevels {
		t.Fatalf("expected levels tab, got %d", m.activeTab)
	}

	m.levels.SetCursor(5)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("locked level should not quit")
	}
	if !strings.Contains(m.errMsg, "locked") {
		t.Fatalf("expected locked message, got %q", m.errMsg)
	}

	m.levels.SetCursor(1)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatalf("expected quit after selecting a level")
	}
	lvl, ok := m.Selected()
	if !ok || lvl.ID != 2 {
		t.Fatalf("expected level 2 selected, got %+v %v", lvl, ok)
	}
}

func TestFitLines(t *testing.T) {
	out := fitLines("ab\ncd\nef", 3, 2)
	if out != "ab \ncd " {
		t.Fatalf("unexpected fit: %q", out)
	}
}
