package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/breathe/internal/breathing"
)

// cue plays the phase sound when a paced session enters a new phase.
func (t *Timer) cue(s breathing.Snapshot) {
	if !s.Active || !s.Exercise.Paced() {
		t.cued = false
		return
	}

	if t.cued && t.lastPhase == s.Phase {
		return
	}

	t.cued = true
	t.lastPhase = s.Phase

	if t.sound != nil {
		t.sound.Play()
	}
}

// handleSnapshot processes a state change published by the controller.
func (t *Timer) handleSnapshot(s breathing.Snapshot) (tea.Model, tea.Cmd) {
	t.snap = s

	t.cue(s)

	return t, tea.Batch(waitForSnapshot(t.snaps), t.checkTarget(s))
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.ctrl.Snapshot().Active {
			return t, t.endSession()
		}

		t.start()

		return t, nil

	case key.Matches(msg, defaultKeymap.reset):
		return t, t.reset()

	case key.Matches(msg, defaultKeymap.next):
		return t, t.selectExercise(1)

	case key.Matches(msg, defaultKeymap.prev):
		return t, t.selectExercise(-1)

	case key.Matches(msg, defaultKeymap.quit):
		cmd := t.endSession()

		t.Close()

		return t, tea.Sequence(cmd, tea.Quit)
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(snapshotMsg); !ok &&
		slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("timer update", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case snapshotMsg:
		return t.handleSnapshot(breathing.Snapshot(msg))

	case sessionCmdMsg:
		if msg.err != nil {
			t.err = msg.err

			slog.Error("session command failed", slog.Any("error", msg.err))
		}

		return t, nil

	case notifyMsg:
		if msg.err != nil {
			t.err = msg.err
		}

		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil
	}

	return t, nil
}
