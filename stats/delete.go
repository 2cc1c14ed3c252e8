package stats

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/store"
)

// StartedFrom returns the sessions that started at or after start. Range
// queries also return a session that began earlier and overlaps the range.
func StartedFrom(sessions []*models.Session, start time.Time) []*models.Session {
	filtered := make([]*models.Session, 0, len(sessions))

	for _, sess := range sessions {
		if sess.StartTime.Before(start) {
			continue
		}

		filtered = append(filtered, sess)
	}

	return filtered
}

// Delete attempts to delete the given sessions that started at or after
// start. It requests confirmation on in before proceeding with the permanent
// removal of the sessions from the database, and reports how many were
// deleted.
func Delete(
	db store.DB,
	sessions []*models.Session,
	start time.Time,
	in io.Reader,
	out io.Writer,
) (int, error) {
	sessions = StartedFrom(sessions, start)

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return 0, nil
	}

	List(out, sessions, false)

	warning := pterm.Warning.Sprint(
		"The above sessions will be deleted permanently. Type 'y' and press ENTER to proceed: ",
	)

	fmt.Fprint(out, warning)

	reader := bufio.NewReader(in)

	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return 0, nil
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
	default:
		return 0, nil
	}

	startTimes := make([]time.Time, len(sessions))
	for i, sess := range sessions {
		startTimes[i] = sess.StartTime
	}

	err = db.DeleteSessions(startTimes)
	if err != nil {
		return 0, err
	}

	return len(sessions), nil
}
