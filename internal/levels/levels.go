// Package levels holds the fixed level catalog and unlock rules.
package levels

import "github.com/verte-zerg/typemaster/internal/model"

// Status is how a level appears to a user.
type Status string

// Level statuses, in precedence order.
const (
	StatusCompleted Status = "completed"
	StatusCurrent   Status = "current"
	StatusUnlocked  Status = "unlocked"
	StatusLocked    Status = "locked"
)

// All returns a copy of the catalog in ID order.
func All() []model.Level {
	out := make([]model.Level, len(catalog))
	for i, lvl := range catalog {
		out[i] = clone(lvl)
	}
	return out
}

// Count returns the number of levels.
func Count() int {
	return len(catalog)
}

// Get returns the level with the given ID.
func Get(id int) (model.Level, bool) {
	if id < 1 || id > len(catalog) {
		return model.Level{}, false
	}
	return clone(catalog[id-1]), true
}

// Next returns the level following id.
func Next(id int) (model.Level, bool) {
	return Get(id + 1)
}

// ByDifficulty returns the levels of one tier in ID order.
func ByDifficulty(d model.Difficulty) []model.Level {
	var out []model.Level
	for _, lvl := range catalog {
		if lvl.Difficulty == d {
			out = append(out, clone(lvl))
		}
	}
	return out
}

// IsUnlocked reports whether levelID may be attempted. Level 1 is always
// open; any later level needs its predecessor completed.
func IsUnlocked(levelID int, completed []int) bool {
	if levelID == 1 {
		return true
	}
	for _, id := range completed {
		if id == levelID-1 {
			return true
		}
	}
	return false
}

// Passed reports whether a finished session meets both level thresholds.
func Passed(lvl model.Level, wpm, accuracy int) bool {
	return wpm >= lvl.RequiredWPM && accuracy >= lvl.RequiredAccuracy
}

// StatusOf classifies a level against a user's progress.
func StatusOf(levelID int, p model.UserProgress) Status {
	switch {
	case p.HasCompleted(levelID):
		return StatusCompleted
	case levelID == p.CurrentLevel:
		return StatusCurrent
	case IsUnlocked(levelID, p.CompletedLevels):
		return StatusUnlocked
	default:
		return StatusLocked
	}
}

// ProgressPercent is the dashboard fill for a status.
func ProgressPercent(s Status) int {
	switch s {
	case StatusCompleted:
		return 100
	case StatusCurrent:
		return 50
	default:
		return 0
	}
}

func clone(lvl model.Level) model.Level {
	lvl.Tips = append([]string(nil), lvl.Tips...)
	return lvl
}
