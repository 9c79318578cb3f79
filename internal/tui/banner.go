package tui

import (
	"fmt"

	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/progress"
)

// LevelBanner describes a graded level attempt.
func LevelBanner(lvl model.Level, out progress.Outcome) Banner {
	a := out.Attempt
	if !out.Passed {
		return Banner{
			Graded: true,
			Message: fmt.Sprintf("Not yet: %d WPM · %d%% accuracy. Level %d needs %d WPM and %d%%.",
				a.WPM, a.Accuracy, lvl.ID, lvl.RequiredWPM, lvl.RequiredAccuracy),
		}
	}
	msg := fmt.Sprintf("Level %d passed: %d WPM · %d%% accuracy.", lvl.ID, a.WPM, a.Accuracy)
	if out.NextLevel != nil {
		msg += fmt.Sprintf(" Level %d %s is unlocked.", out.NextLevel.ID, out.NextLevel.Name)
	} else {
		msg += " Every level is complete."
	}
	return Banner{Graded: true, Passed: true, Message: msg, Next: out.NextLevel}
}

// PracticeBanner describes a saved practice run.
func PracticeBanner(a model.Attempt) Banner {
	return Banner{Message: fmt.Sprintf("Practice saved: %d WPM · %d%% accuracy · %d errors", a.WPM, a.Accuracy, a.Errors)}
}
