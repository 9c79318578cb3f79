// Package export writes a user's data as JSON or an XLSX workbook.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/verte-zerg/typemaster/internal/certificates"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/store"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a --format value.
func ParseFormat(v string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(v))); f {
	case FormatJSON, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or xlsx)", v)
	}
}

// Source is the part of the store an export reads.
type Source interface {
	UserByID(ctx context.Context, id string) (model.User, error)
	ListAttempts(ctx context.Context, filter store.AttemptFilter) ([]model.Attempt, error)
	ListGameResults(ctx context.Context, userID string, limit int) ([]model.GameResult, error)
	FirstPassingAttempts(ctx context.Context, userID string) (map[int]model.Attempt, error)
}

// Bundle is everything exported for one user.
type Bundle struct {
	User         model.User
	Attempts     []model.Attempt
	Games        []model.GameResult
	Certificates []model.Certificate
	ExportedAt   time.Time
}

// Load collects the bundle for userID.
func Load(ctx context.Context, src Source, userID string) (Bundle, error) {
	u, err := src.UserByID(ctx, userID)
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to load user: %w", err)
	}
	attempts, err := src.ListAttempts(ctx, store.AttemptFilter{UserID: userID})
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to load attempts: %w", err)
	}
	games, err := src.ListGameResults(ctx, userID, 0)
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to load games: %w", err)
	}
	first, err := src.FirstPassingAttempts(ctx, userID)
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to load certificates: %w", err)
	}
	return Bundle{
		User:         u,
		Attempts:     attempts,
		Games:        games,
		Certificates: certificates.Build(u.Progress, first),
		ExportedAt:   time.Now().UTC(),
	}, nil
}

type profileDoc struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

type certificateDoc struct {
	ID               string    `json:"id"`
	LevelID          int       `json:"levelId"`
	Title            string    `json:"title"`
	Difficulty       string    `json:"difficulty"`
	Tier             bool      `json:"tier"`
	EarnedAt         time.Time `json:"earnedAt"`
	WPM              int       `json:"wpm"`
	Accuracy         int       `json:"accuracy"`
	TimeSpentSeconds float64   `json:"timeSpentSeconds"`
}

type document struct {
	ExportedAt   time.Time          `json:"exportedAt"`
	User         profileDoc         `json:"user"`
	Settings     model.Settings     `json:"settings"`
	Progress     model.UserProgress `json:"progress"`
	Attempts     []model.Attempt    `json:"attempts"`
	Games        []model.GameResult `json:"games"`
	Certificates []certificateDoc   `json:"certificates"`
}

// WriteJSON writes the bundle as indented JSON. The password hash is never
// included.
func WriteJSON(w io.Writer, b Bundle) error {
	doc := document{
		ExportedAt: b.ExportedAt,
		User: profileDoc{
			ID:        b.User.ID,
			Email:     b.User.Email,
			Username:  b.User.Username,
			FirstName: b.User.FirstName,
			LastName:  b.User.LastName,
			Token:     b.User.Token,
			CreatedAt: b.User.CreatedAt,
		},
		Settings:     b.User.Settings,
		Progress:     b.User.Progress,
		Attempts:     nonNil(b.Attempts),
		Games:        nonNil(b.Games),
		Certificates: make([]certificateDoc, 0, len(b.Certificates)),
	}
	for _, c := range b.Certificates {
		doc.Certificates = append(doc.Certificates, certificateDoc{
			ID:               certificates.ID(c),
			LevelID:          c.LevelID,
			Title:            c.Title,
			Difficulty:       string(c.Difficulty),
			Tier:             c.Tier,
			EarnedAt:         c.EarnedAt,
			WPM:              c.WPM,
			Accuracy:         c.Accuracy,
			TimeSpentSeconds: c.TimeSpentSeconds,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
