// Package progress applies completed sessions to a user's progression record.
package progress

import (
	"sort"

	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/scoring"
)

// RecordCompletion returns p updated for a passed session on levelID.
//
// Set membership is idempotent, but LessonsCompleted counts every call,
// including replays of an already completed level. The aggregates blend
// half toward the latest sample rather than keeping a true mean; stored
// records depend on this exact formula.
func RecordCompletion(p model.UserProgress, levelID, wpm, accuracy int, timeSpent float64) model.UserProgress {
	next := model.UserProgress{
		CurrentLevel:    p.CurrentLevel,
		CompletedLevels: append([]int(nil), p.CompletedLevels...),
		Stats:           p.Stats,
	}
	if !p.HasCompleted(levelID) {
		next.CompletedLevels = append(next.CompletedLevels, levelID)
		sort.Ints(next.CompletedLevels)
	}
	if levelID+1 > next.CurrentLevel {
		next.CurrentLevel = levelID + 1
	}
	next.Stats.LessonsCompleted++
	next.Stats.AggregateWPM = scoring.Round(float64(p.Stats.AggregateWPM+wpm) / 2)
	next.Stats.AggregateAccuracy = scoring.Round(float64(p.Stats.AggregateAccuracy+accuracy) / 2)
	next.Stats.TotalTimeSeconds += timeSpent
	return next
}
