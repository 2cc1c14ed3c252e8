// Package timer runs the interactive breathing timer and records finished
// sessions
package timer

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/breathe/internal/breathing"
	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/store"
)

// Timer is the bubbletea model for a breathing session.
type Timer struct {
	db          store.DB
	cfg         *config.Config
	clock       clockwork.Clock
	ctrl        *breathing.Controller
	snaps       <-chan breathing.Snapshot
	unsubscribe func()
	sound       player
	notify      func(title, msg string) error
	runCmd      func(cmd string) error
	err         error
	help        help.Model
	progress    progress.Model
	style       style
	exercises   []breathing.Exercise
	snap        breathing.Snapshot
	index       int
	// lastPhase and cued track the last phase a sound was played for
	lastPhase breathing.Phase
	cued      bool
	notified  bool
	recorded  bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock sets the clock that drives the breathing session.
func WithClock(clock clockwork.Clock) Option {
	return func(t *Timer) {
		t.clock = clock
	}
}

// WithNotifier replaces the desktop notifier.
func WithNotifier(fn func(title, msg string) error) Option {
	return func(t *Timer) {
		t.notify = fn
	}
}

// WithCmdRunner replaces the function that runs the session command.
func WithCmdRunner(fn func(cmd string) error) Option {
	return func(t *Timer) {
		t.runCmd = fn
	}
}

func withPlayer(p player) Option {
	return func(t *Timer) {
		t.sound = p
	}
}

// New creates a timer for the selected exercise in cfg.
func New(db store.DB, cfg *config.Config, opts ...Option) (*Timer, error) {
	t := &Timer{
		db:        db,
		cfg:       cfg,
		clock:     clockwork.NewRealClock(),
		notify:    desktopNotify,
		runCmd:    runSessionCmd,
		exercises: slices.Clone(cfg.Exercises),
		help:      help.New(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if len(t.exercises) == 0 {
		t.exercises = breathing.Defaults()
	}

	selected := cfg.Selected()

	t.index = max(slices.IndexFunc(t.exercises, func(e breathing.Exercise) bool {
		return strings.EqualFold(e.Name, selected.Name)
	}), 0)

	if t.sound == nil && cfg.Settings.PhaseSound != "" {
		sound, err := newPhaseSound(cfg.Settings.PhaseSound)
		if err != nil {
			return nil, err
		}

		t.sound = sound
	}

	ex := t.exercises[t.index]

	t.ctrl = breathing.NewController(ex, breathing.WithClock(t.clock))
	t.snaps, t.unsubscribe = t.ctrl.Subscribe()
	t.snap = t.ctrl.Snapshot()

	t.progress = progress.New(
		progress.WithSolidFill(ex.Color),
		progress.WithoutPercentage(),
	)

	t.applyStyle(ex)

	return t, nil
}

func (t *Timer) applyStyle(ex breathing.Exercise) {
	t.style = newStyle(ex.Color, t.cfg.Display.DarkTheme)
	t.progress.FullColor = ex.Color
}

type snapshotMsg breathing.Snapshot

// waitForSnapshot blocks until the controller publishes a new snapshot.
func waitForSnapshot(snaps <-chan breathing.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-snaps
		if !ok {
			return nil
		}

		return snapshotMsg(s)
	}
}

func (t *Timer) Init() tea.Cmd {
	return waitForSnapshot(t.snaps)
}

// Close stops the session and releases the controller.
func (t *Timer) Close() {
	t.unsubscribe()
	t.ctrl.Close()
}
