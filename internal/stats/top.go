package stats

import (
	"sort"

	"github.com/verte-zerg/typemaster/internal/model"
)

// LevelCount aggregates the attempts at one level.
type LevelCount struct {
	LevelID    int
	Attempts   int
	Passed     int
	BestWPM    int
	BestAcc    int
	LastPlayed model.Attempt
}

// PerLevel groups level attempts by level, skipping freeform practice.
func PerLevel(attempts []model.Attempt) map[int]LevelCount {
	out := make(map[int]LevelCount)
	for _, a := range attempts {
		if a.LevelID == 0 {
			continue
		}
		c := out[a.LevelID]
		c.LevelID = a.LevelID
		c.Attempts++
		if a.Passed {
			c.Passed++
		}
		c.BestWPM = max(c.BestWPM, a.WPM)
		c.BestAcc = max(c.BestAcc, a.Accuracy)
		c.LastPlayed = a
		out[a.LevelID] = c
	}
	return out
}

// TopLevelsByAttempts returns the n most attempted levels.
func TopLevelsByAttempts(attempts []model.Attempt, n int) []LevelCount {
	if n <= 0 {
		return nil
	}
	items := sortedCounts(PerLevel(attempts))
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Attempts > items[j].Attempts
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

func sortedCounts(m map[int]LevelCount) []LevelCount {
	items := make([]LevelCount, 0, len(m))
	for _, c := range m {
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].LevelID < items[j].LevelID })
	return items
}
