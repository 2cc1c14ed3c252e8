package timer

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/breathe/internal/breathing"
)

type notifyMsg struct {
	err error
}

// desktopNotify shows a desktop notification without an icon.
func desktopNotify(title, msg string) error {
	return beeep.Notify(title, msg, "")
}

// checkTarget returns a command that notifies the user the first time the
// session reaches the target length of its exercise.
func (t *Timer) checkTarget(s breathing.Snapshot) tea.Cmd {
	target := s.Exercise.Target

	if !t.cfg.Settings.Notify || t.notified || !s.Active || target <= 0 ||
		s.ElapsedTime() < target {
		return nil
	}

	t.notified = true

	title := s.Exercise.Name + " is complete"
	msg := fmt.Sprintf(
		"You reached your %s target. Keep going or take a moment to rest.",
		target,
	)

	notify := t.notify

	return func() tea.Msg {
		err := notify(title, msg)
		if err != nil {
			slog.Error("notification failed", slog.Any("error", err))
			return notifyMsg{err: errNotify.Wrap(err)}
		}

		return notifyMsg{}
	}
}
