// Package auth implements token sign-in over locally stored accounts.
//
// Tokens are plain lookup keys and carry no security guarantees. They let
// a user pick their account on a shared machine without typing a password
// on every run.
package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/verte-zerg/typemaster/internal/model"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

const maxTokenAttempts = 64

var (
	ErrEmailTaken       = errors.New("user with this email already exists")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidUsername  = errors.New("username must not be empty")
	ErrInvalidToken     = errors.New("invalid token, please check your token and try again")
	ErrAccountNotFound  = errors.New("no account found with this email address")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrNotSignedIn      = errors.New("not signed in")
	ErrTokenExhausted   = errors.New("could not generate a unique token")
)

// Repository stores accounts and the current sign-in. Lookups of missing
// users return an error wrapping model.ErrNotFound.
type Repository interface {
	CreateUser(ctx context.Context, u model.User) error
	UserByID(ctx context.Context, id string) (model.User, error)
	UserByToken(ctx context.Context, token string) (model.User, error)
	UserByEmail(ctx context.Context, email string) (model.User, error)
	UserByUsername(ctx context.Context, username string) (model.User, error)
	UpdateToken(ctx context.Context, userID, token string) error
	SetCurrentUserID(ctx context.Context, userID string) error
	CurrentUserID(ctx context.Context) (string, error)
}

// SignupData is the input for a new account.
type SignupData struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
}

// Service runs sign-up, sign-in and token recovery.
type Service struct {
	repo   Repository
	tokens *TokenGenerator
	logger *zap.Logger
	now    func() time.Time
	cost   int
}

// Option configures a Service.
type Option func(*Service)

// WithTokenGenerator replaces the random token source.
func WithTokenGenerator(g *TokenGenerator) Option {
	return func(s *Service) { s.tokens = g }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithHashCost sets the bcrypt cost.
func WithHashCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

// NewService builds a Service over repo.
func NewService(repo Repository, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		repo:   repo,
		tokens: NewTokenGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))),
		logger: logger,
		now:    time.Now,
		cost:   bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup creates an account, signs it in and returns it with its token.
func (s *Service) Signup(ctx context.Context, data SignupData) (model.User, error) {
	data.Email = strings.TrimSpace(data.Email)
	data.Username = strings.TrimSpace(data.Username)
	if _, err := mail.ParseAddress(data.Email); err != nil {
		return model.User{}, ErrInvalidEmail
	}
	if data.Username == "" {
		return model.User{}, ErrInvalidUsername
	}
	if err := s.ensureFree(ctx, data); err != nil {
		return model.User{}, err
	}
	if len(data.Password) < MinPasswordLength {
		return model.User{}, ErrPasswordTooShort
	}
	token, err := s.uniqueToken(ctx)
	if err != nil {
		return model.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), s.cost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	u := model.User{
		ID:           uuid.NewString(),
		Email:        data.Email,
		Username:     data.Username,
		FirstName:    strings.TrimSpace(data.FirstName),
		LastName:     strings.TrimSpace(data.LastName),
		Token:        token,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
		Progress:     model.NewProgress(),
		Settings:     model.DefaultSettings(),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	if err := s.repo.SetCurrentUserID(ctx, u.ID); err != nil {
		return model.User{}, fmt.Errorf("failed to sign in: %w", err)
	}
	s.logger.Info("account created", zap.String("user_id", u.ID), zap.String("username", u.Username))
	return u, nil
}

// Login signs in the account owning token.
func (s *Service) Login(ctx context.Context, token string) (model.User, error) {
	u, err := s.repo.UserByToken(ctx, strings.TrimSpace(token))
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, ErrInvalidToken
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to look up token: %w", err)
	}
	if err := s.repo.SetCurrentUserID(ctx, u.ID); err != nil {
		return model.User{}, fmt.Errorf("failed to sign in: %w", err)
	}
	s.logger.Info("signed in", zap.String("user_id", u.ID))
	return u, nil
}

// Logout clears the current sign-in.
func (s *Service) Logout(ctx context.Context) error {
	return s.repo.SetCurrentUserID(ctx, "")
}

// Current returns the signed-in account.
func (s *Service) Current(ctx context.Context) (model.User, error) {
	id, err := s.repo.CurrentUserID(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to read sign-in: %w", err)
	}
	if id == "" {
		return model.User{}, ErrNotSignedIn
	}
	u, err := s.repo.UserByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, ErrNotSignedIn
	}
	return u, err
}

// RecoverToken returns the token of the account matching email and password.
func (s *Service) RecoverToken(ctx context.Context, email, password string) (string, error) {
	u, err := s.verify(ctx, email, password)
	if err != nil {
		return "", err
	}
	return u.Token, nil
}

// ResetToken replaces the token of the account matching email and password.
func (s *Service) ResetToken(ctx context.Context, email, password string) (string, error) {
	u, err := s.verify(ctx, email, password)
	if err != nil {
		return "", err
	}
	token, err := s.uniqueToken(ctx)
	if err != nil {
		return "", err
	}
	if err := s.repo.UpdateToken(ctx, u.ID, token); err != nil {
		return "", fmt.Errorf("failed to update token: %w", err)
	}
	s.logger.Info("token reset", zap.String("user_id", u.ID))
	return token, nil
}

func (s *Service) verify(ctx context.Context, email, password string) (model.User, error) {
	u, err := s.repo.UserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, ErrAccountNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to look up email: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return model.User{}, ErrInvalidPassword
	}
	return u, nil
}

func (s *Service) ensureFree(ctx context.Context, data SignupData) error {
	if _, err := s.repo.UserByEmail(ctx, data.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to look up email: %w", err)
	}
	if _, err := s.repo.UserByUsername(ctx, data.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to look up username: %w", err)
	}
	return nil
}

func (s *Service) uniqueToken(ctx context.Context) (string, error) {
	for i := 0; i < maxTokenAttempts; i++ {
		token := s.tokens.Generate()
		_, err := s.repo.UserByToken(ctx, token)
		if errors.Is(err, model.ErrNotFound) {
			return token, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check token: %w", err)
		}
	}
	return "", ErrTokenExhausted
}
