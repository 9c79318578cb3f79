package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/typemaster/internal/progress"
)

// RenderLevelTable prints every level with its status and thresholds.
func RenderLevelTable(w io.Writer, rows []progress.LevelView) error {
	headers := []string{"#", "Level", "Difficulty", "Req WPM", "Req Acc", "Status", "Progress"}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			fmt.Sprintf("%d", r.Level.ID),
			r.Level.Name,
			string(r.Level.Difficulty),
			fmt.Sprintf("%d", r.Level.RequiredWPM),
			fmt.Sprintf("%d%%", r.Level.RequiredAccuracy),
			string(r.Status),
			fmt.Sprintf("%d%%", r.Percent),
		})
	}
	lines := formatTable(headers, table, map[int]bool{0: true, 3: true, 4: true, 6: true})
	return writeLines(w, append(lines, ""))
}
