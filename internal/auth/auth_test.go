package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/verte-zerg/typemaster/internal/model"
)

type memoryRepo struct {
	users   map[string]model.User
	current string
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: map[string]model.User{}}
}

func (r *memoryRepo) CreateUser(_ context.Context, u model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memoryRepo) UserByID(_ context.Context, id string) (model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("user %s: %w", id, model.ErrNotFound)
	}
	return u, nil
}

func (r *memoryRepo) find(match func(model.User) bool) (model.User, error) {
	for _, u := range r.users {
		if match(u) {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *memoryRepo) UserByToken(_ context.Context, token string) (model.User, error) {
	return r.find(func(u model.User) bool { return u.Token == token })
}

func (r *memoryRepo) UserByEmail(_ context.Context, email string) (model.User, error) {
	return r.find(func(u model.User) bool { return u.Email == email })
}

func (r *memoryRepo) UserByUsername(_ context.Context, username string) (model.User, error) {
	return r.find(func(u model.User) bool { return u.Username == username })
}

func (r *memoryRepo) UpdateToken(_ context.Context, userID, token string) error {
	u, ok := r.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	u.Token = token
	r.users[userID] = u
	return nil
}

func (r *memoryRepo) SetCurrentUserID(_ context.Context, userID string) error {
	r.current = userID
	return nil
}

func (r *memoryRepo) CurrentUserID(_ context.Context) (string, error) {
	return r.current, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, nil,
		WithHashCost(bcrypt.MinCost),
		WithTokenGenerator(NewTokenGenerator(rand.New(rand.NewSource(7)))),
	)
}

func signupAlice(t *testing.T, svc *Service) model.User {
	t.Helper()
	u, err := svc.Signup(context.Background(), SignupData{
		Email:     "alice@example.com",
		Password:  "secret1",
		Username:  "alice",
		FirstName: "Alice",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	return u
}

func TestTokenFormat(t *testing.T) {
	gen := NewTokenGenerator(rand.New(rand.NewSource(1)))
	for i := 0; i < 200; i++ {
		token := gen.Generate()
		adjective := ""
		for _, a := range tokenAdjectives {
			if strings.HasPrefix(token, a) {
				adjective = a
				break
			}
		}
		if adjective == "" {
			t.Fatalf("token %q has unknown adjective", token)
		}
		rest := token[len(adjective):]
		noun := ""
		for _, n := range tokenNouns {
			if strings.HasPrefix(rest, n) {
				noun = n
				break
			}
		}
		if noun == "" {
			t.Fatalf("token %q has unknown noun", token)
		}
		var num int
		if _, err := fmt.Sscanf(rest[len(noun):], "%d", &num); err != nil {
			t.Fatalf("token %q has no number: %v", token, err)
		}
		if num < 1 || num > maxTokenNumber {
			t.Fatalf("token %q number out of range", token)
		}
	}
}

func TestSignupCreatesSignedInAccount(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	u := signupAlice(t, svc)

	if u.ID == "" || u.Token == "" {
		t.Fatalf("expected id and token, got %+v", u)
	}
	if u.PasswordHash == "secret1" {
		t.Fatalf("password stored in plain text")
	}
	if u.Progress.CurrentLevel != 1 || len(u.Progress.CompletedLevels) != 0 {
		t.Fatalf("unexpected initial progress: %+v", u.Progress)
	}
	if u.Settings != model.DefaultSettings() {
		t.Fatalf("unexpected settings: %+v", u.Settings)
	}
	cur, err := svc.Current(context.Background())
	if err != nil || cur.ID != u.ID {
		t.Fatalf("expected signed in as %s, got %+v (%v)", u.ID, cur, err)
	}
}

func TestSignupValidation(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	signupAlice(t, svc)

	cases := []struct {
		name string
		data SignupData
		want error
	}{
		{"duplicate email", SignupData{Email: "alice@example.com", Password: "secret1", Username: "other"}, ErrEmailTaken},
		{"duplicate username", SignupData{Email: "b@example.com", Password: "secret1", Username: "alice"}, ErrUsernameTaken},
		{"short password", SignupData{Email: "c@example.com", Password: "12345", Username: "carol"}, ErrPasswordTooShort},
		{"bad email", SignupData{Email: "not-an-email", Password: "secret1", Username: "dave"}, ErrInvalidEmail},
		{"empty username", SignupData{Email: "e@example.com", Password: "secret1", Username: "  "}, ErrInvalidUsername},
	}
	for _, tc := range cases {
		if _, err := svc.Signup(context.Background(), tc.data); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestLoginAndLogout(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	u := signupAlice(t, svc)
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Current(context.Background()); !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("expected not signed in, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nosuchtoken1"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	got, err := svc.Login(context.Background(), " "+u.Token+" ")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != u.ID || repo.current != u.ID {
		t.Fatalf("expected login as %s", u.ID)
	}
}

func TestRecoverAndResetToken(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	u := signupAlice(t, svc)
	ctx := context.Background()

	if _, err := svc.RecoverToken(ctx, "nobody@example.com", "secret1"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected account not found, got %v", err)
	}
	if _, err := svc.RecoverToken(ctx, "alice@example.com", "wrong!!"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected invalid password, got %v", err)
	}
	token, err := svc.RecoverToken(ctx, "alice@example.com", "secret1")
	if err != nil || token != u.Token {
		t.Fatalf("expected recovered token %q, got %q (%v)", u.Token, token, err)
	}

	fresh, err := svc.ResetToken(ctx, "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if fresh == u.Token {
		t.Fatalf("expected a new token")
	}
	if _, err := svc.Login(ctx, u.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("old token still valid: %v", err)
	}
	if _, err := svc.Login(ctx, fresh); err != nil {
		t.Fatalf("new token rejected: %v", err)
	}
}

func TestUniqueTokenExhausted(t *testing.T) {
	repo := newMemoryRepo()
	// A source that always produces the same token collides every time.
	gen := NewTokenGenerator(rand.New(constSource{}))
	svc := NewService(repo, nil, WithTokenGenerator(gen), WithHashCost(bcrypt.MinCost))
	first := gen.Generate()
	repo.users["x"] = model.User{ID: "x", Token: first}
	if _, err := svc.uniqueToken(context.Background()); !errors.Is(err, ErrTokenExhausted) {
		t.Fatalf("expected token exhaustion, got %v", err)
	}
}

type constSource struct{}

func (constSource) Int63() int64 { return 0 }
func (constSource) Seed(int64)   {}
