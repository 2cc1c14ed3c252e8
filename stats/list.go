package stats

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/internal/timeutil"
	"github.com/ayoisaiah/breathe/internal/ui"
)

func timeLayout(twentyFourHour bool) string {
	if twentyFourHour {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

func sessionRows(
	sessions []*models.Session,
	twentyFourHour bool,
) [][]string {
	layout := timeLayout(twentyFourHour)

	rows := [][]string{
		{"#", "START DATE", "EXERCISE", "DURATION", "CYCLES", "STATUS"},
	}

	for i, sess := range sessions {
		statusText := ui.Green("completed")
		if !sess.Completed {
			statusText = ui.Yellow("partial")
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format(layout),
			sess.Exercise,
			timeutil.FormatElapsed(sess.Elapsed),
			fmt.Sprintf("%d", sess.Cycles),
			statusText,
		})
	}

	return rows
}

// List prints out a table of the given sessions.
func List(w io.Writer, sessions []*models.Session, twentyFourHour bool) {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	ui.PrintTable(sessionRows(sessions, twentyFourHour), w)
}
