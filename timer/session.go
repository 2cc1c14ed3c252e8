package timer

import (
	"log/slog"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/breathe/internal/models"
)

type sessionCmdMsg struct {
	err error
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Fmt(sessionCmd).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	err = cmd.Run()
	if err != nil {
		return errSessionCmd.Fmt(sessionCmd).Wrap(err)
	}

	return nil
}

// start begins a new session.
func (t *Timer) start() {
	t.ctrl.Start()

	t.recorded = false
	t.notified = false
	t.snap = t.ctrl.Snapshot()
}

// endSession stops the session and records it once. It returns a command
// that runs the configured session command, if any.
func (t *Timer) endSession() tea.Cmd {
	t.ctrl.Stop()

	snap := t.ctrl.Snapshot()
	t.snap = snap

	if t.recorded || !snap.Started || snap.Elapsed == 0 {
		return nil
	}

	t.recorded = true

	sess := models.NewSession(snap, t.clock.Now())

	err := t.db.SaveSession(sess)
	if err != nil {
		t.err = errSaveSession.Wrap(err)

		slog.Error("saving session failed", slog.Any("error", err))

		return nil
	}

	slog.Info(
		"session recorded",
		slog.String("id", sess.ID.String()),
		slog.String("exercise", sess.Exercise),
		slog.Int("elapsed", sess.Elapsed),
		slog.Bool("completed", sess.Completed),
	)

	sessionCmd := t.cfg.Settings.Cmd
	if sessionCmd == "" {
		return nil
	}

	run := t.runCmd

	return func() tea.Msg {
		return sessionCmdMsg{err: run(sessionCmd)}
	}
}

// selectExercise records the current session and switches to the exercise
// offset positions away from the current one.
func (t *Timer) selectExercise(offset int) tea.Cmd {
	cmd := t.endSession()

	n := len(t.exercises)
	t.index = ((t.index+offset)%n + n) % n

	ex := t.exercises[t.index]

	t.ctrl.SelectExercise(ex)
	t.snap = t.ctrl.Snapshot()
	t.cued = false

	t.applyStyle(ex)

	return cmd
}

// reset records the current session and clears it.
func (t *Timer) reset() tea.Cmd {
	cmd := t.endSession()

	t.ctrl.Reset()
	t.snap = t.ctrl.Snapshot()
	t.cued = false

	return cmd
}
