// Package model defines shared data structures.
package model

import (
	"errors"
	"time"
)

// ErrNotFound is returned by stores for missing records.
var ErrNotFound = errors.New("not found")

// Difficulty groups levels into tiers.
type Difficulty string

// Level difficulties in catalog order.
const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
	Expert       Difficulty = "expert"
)

// Difficulties lists every tier in ascending order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced, Expert}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// Level is one fixed practice unit.
type Level struct {
	ID               int
	Name             string
	Description      string
	Difficulty       Difficulty
	RequiredWPM      int
	RequiredAccuracy int
	Content          string
	Tips             []string
}

// Stats holds the blended performance figures of a user.
type Stats struct {
	AggregateWPM      int     `json:"aggregateWPM"`
	AggregateAccuracy int     `json:"aggregateAccuracy"`
	TotalTimeSeconds  float64 `json:"totalTimeSeconds"`
	LessonsCompleted  int     `json:"lessonsCompleted"`
}

// UserProgress is the persisted progression record.
type UserProgress struct {
	CurrentLevel    int   `json:"currentLevel"`
	CompletedLevels []int `json:"completedLevels"`
	Stats           Stats `json:"stats"`
}

// NewProgress returns the record of a user who has completed nothing.
func NewProgress() UserProgress {
	return UserProgress{CurrentLevel: 1, CompletedLevels: []int{}}
}

// HasCompleted reports whether levelID is in the completed set.
func (p UserProgress) HasCompleted(levelID int) bool {
	for _, id := range p.CompletedLevels {
		if id == levelID {
			return true
		}
	}
	return false
}

// Settings are per-user preferences.
type Settings struct {
	SoundEnabled   bool   `json:"soundEnabled"`
	AutoSave       bool   `json:"autoSave"`
	ShowTips       bool   `json:"showTips"`
	KeyboardLayout string `json:"keyboardLayout"`
}

// DefaultSettings returns the settings of a new account.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:   true,
		AutoSave:       true,
		ShowTips:       true,
		KeyboardLayout: "qwerty",
	}
}

// User is an account with its progress and settings.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Username     string       `json:"username"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Token        string       `json:"token"`
	PasswordHash string       `json:"-"`
	CreatedAt    time.Time    `json:"createdAt"`
	Progress     UserProgress `json:"progress"`
	Settings     Settings     `json:"settings"`
}

// DisplayName prefers the first name over the username.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

// Attempt records one finished typing session. LevelID 0 means freeform practice.
type Attempt struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"userId"`
	LevelID        int       `json:"levelId"`
	StartedAt      time.Time `json:"startedAt"`
	EndedAt        time.Time `json:"endedAt"`
	Chars          int       `json:"chars"`
	Errors         int       `json:"errors"`
	WPM            int       `json:"wpm"`
	Accuracy       int       `json:"accuracy"`
	ElapsedSeconds float64   `json:"elapsedSeconds"`
	Passed         bool      `json:"passed"`
}

// GameResult records one finished falling-words game.
type GameResult struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"userId"`
	PlayedAt        time.Time `json:"playedAt"`
	Score           int       `json:"score"`
	WordsTyped      int       `json:"wordsTyped"`
	Level           int       `json:"level"`
	Accuracy        int       `json:"accuracy"`
	DurationSeconds int       `json:"durationSeconds"`
}

// Certificate marks a completed level or difficulty tier.
type Certificate struct {
	LevelID          int
	Title            string
	Difficulty       Difficulty
	EarnedAt         time.Time
	WPM              int
	Accuracy         int
	TimeSpentSeconds float64
	Tier             bool
}
