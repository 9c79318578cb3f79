package stats

import (
	"sort"

	"github.com/verte-zerg/typemaster/internal/levels"
	"github.com/verte-zerg/typemaster/internal/model"
)

// Struggle is a level attempted but not yet passed.
type Struggle struct {
	Level  model.Level
	Count  LevelCount
	WPMGap int
	AccGap int
}

// StrugglingLevels returns up to top levels with attempts but no pass,
// widest WPM gap to the requirement first.
func StrugglingLevels(attempts []model.Attempt, top int) []Struggle {
	var out []Struggle
	for _, c := range sortedCounts(PerLevel(attempts)) {
		if c.Passed > 0 {
			continue
		}
		lvl, ok := levels.Get(c.LevelID)
		if !ok {
			continue
		}
		out = append(out, Struggle{
			Level:  lvl,
			Count:  c,
			WPMGap: max(lvl.RequiredWPM-c.BestWPM, 0),
			AccGap: max(lvl.RequiredAccuracy-c.BestAcc, 0),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WPMGap > out[j].WPMGap
	})
	if top > 0 && top < len(out) {
		out = out[:top]
	}
	return out
}
