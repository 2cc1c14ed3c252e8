package timer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/breathe/internal/breathing"
	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/models"
)

type fakeDB struct {
	mu       sync.Mutex
	sessions []*models.Session
	saveErr  error
}

func (f *fakeDB) SaveSession(sess *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}

	f.sessions = append(f.sessions, sess)

	return nil
}

func (f *fakeDB) GetSessions(
	_, _ time.Time,
	_ []string,
) ([]*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.sessions, nil
}

func (f *fakeDB) DeleteSessions(_ []time.Time) error {
	return nil
}

func (f *fakeDB) Open() error {
	return nil
}

func (f *fakeDB) Close() error {
	return nil
}

func (f *fakeDB) saved() []*models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.sessions
}

type countingPlayer struct {
	plays int
}

func (c *countingPlayer) Play() {
	c.plays++
}

type harness struct {
	timer    *Timer
	db       *fakeDB
	clock    *clockwork.FakeClock
	player   *countingPlayer
	notified []string
	cmds     []string
}

func testConfig() *config.Config {
	return &config.Config{
		Exercises: breathing.Defaults(),
		Settings: config.SettingsConfig{
			DefaultExercise: "4-7-8 Breathing",
			Notify:          true,
			Cmd:             "notify-send 'session done'",
		},
	}
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()

	h := &harness{
		db:     &fakeDB{},
		clock:  clockwork.NewFakeClock(),
		player: &countingPlayer{},
	}

	timer, err := New(
		h.db,
		cfg,
		WithClock(h.clock),
		WithNotifier(func(title, _ string) error {
			h.notified = append(h.notified, title)
			return nil
		}),
		WithCmdRunner(func(cmd string) error {
			h.cmds = append(h.cmds, cmd)
			return nil
		}),
		withPlayer(h.player),
	)
	require.NoError(t, err)

	t.Cleanup(timer.Close)

	h.timer = timer

	return h
}

// step advances the session by the given number of seconds.
func (h *harness) step(t *testing.T, seconds int) {
	t.Helper()

	for range seconds {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		require.NoError(t, h.clock.BlockUntilContext(ctx, 1))
		cancel()

		h.clock.Advance(time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, h.clock.BlockUntilContext(ctx, 1))
}

func (h *harness) press(msg tea.KeyMsg) tea.Cmd {
	_, cmd := h.timer.Update(msg)
	return cmd
}

var (
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyReset    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyQuit     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestNewSelectsConfiguredExercise(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.DefaultExercise = "box breathing"

	h := newHarness(t, cfg)

	assert.Equal(t, 1, h.timer.index)
	assert.Equal(t, "Box Breathing", h.timer.ctrl.Snapshot().Exercise.Name)
}

func TestNewRejectsUnsupportedSound(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.PhaseSound = "/tmp/chime.aiff"

	_, err := New(&fakeDB{}, cfg)

	assert.ErrorIs(t, err, errInvalidSoundFormat)
}

func TestToggleRecordsSession(t *testing.T) {
	h := newHarness(t, testConfig())

	assert.Nil(t, h.press(keySpace))
	assert.True(t, h.timer.ctrl.Snapshot().Active)

	h.step(t, 12)

	cmd := h.press(keySpace)
	require.NotNil(t, cmd)

	snap := h.timer.ctrl.Snapshot()
	assert.False(t, snap.Active)
	assert.Equal(t, breathing.Exhale, snap.Phase)

	saved := h.db.saved()
	require.Len(t, saved, 1)

	assert.Equal(t, "4-7-8 Breathing", saved[0].Exercise)
	assert.Equal(t, 12, saved[0].Elapsed)
	assert.Equal(t, h.clock.Now().Add(-12*time.Second), saved[0].StartTime)
	assert.False(t, saved[0].Completed)

	assert.Equal(t, sessionCmdMsg{}, cmd())
	assert.Equal(t, []string{"notify-send 'session done'"}, h.cmds)
}

func TestStopWithoutElapsedIsNotRecorded(t *testing.T) {
	h := newHarness(t, testConfig())

	h.press(keySpace)
	h.press(keySpace)

	assert.Empty(t, h.db.saved())
}

func TestResetAfterStopRecordsOnce(t *testing.T) {
	h := newHarness(t, testConfig())

	h.press(keySpace)
	h.step(t, 5)
	h.press(keySpace)
	h.press(keyReset)

	assert.Len(t, h.db.saved(), 1)

	snap := h.timer.ctrl.Snapshot()
	assert.Zero(t, snap.Elapsed)
	assert.False(t, snap.Started)
}

func TestResetWhileActive(t *testing.T) {
	h := newHarness(t, testConfig())

	h.press(keySpace)
	h.step(t, 5)
	h.press(keyReset)

	require.Len(t, h.db.saved(), 1)
	assert.Equal(t, 5, h.db.saved()[0].Elapsed)

	snap := h.timer.ctrl.Snapshot()
	assert.False(t, snap.Active)
	assert.Zero(t, snap.Elapsed)
	assert.Equal(t, breathing.Inhale, snap.Phase)
}

func TestRestartRecordsEachSession(t *testing.T) {
	h := newHarness(t, testConfig())

	h.press(keySpace)
	h.step(t, 3)
	h.press(keySpace)

	h.press(keySpace)
	h.step(t, 4)
	h.press(keySpace)

	saved := h.db.saved()
	require.Len(t, saved, 2)

	assert.Equal(t, 3, saved[0].Elapsed)
	assert.Equal(t, 4, saved[1].Elapsed)
}

func TestSwitchExercise(t *testing.T) {
	h := newHarness(t, testConfig())

	h.press(keySpace)
	h.step(t, 2)
	h.press(keyTab)

	snap := h.timer.ctrl.Snapshot()
	assert.Equal(t, "Box Breathing", snap.Exercise.Name)
	assert.Zero(t, snap.Elapsed)
	assert.False(t, snap.Active)
	assert.Len(t, h.db.saved(), 1)

	h.press(keyShiftTab)
	h.press(keyShiftTab)

	assert.Equal(t, "Body Scan", h.timer.ctrl.Snapshot().Exercise.Name)
	assert.Len(t, h.db.saved(), 1)
}

func TestQuitRecordsAndCloses(t *testing.T) {
	h := newHarness(t, testConfig())

	h.press(keySpace)
	h.step(t, 7)

	cmd := h.press(keyQuit)
	require.NotNil(t, cmd)

	assert.Len(t, h.db.saved(), 1)

	h.timer.ctrl.Start()
	assert.False(t, h.timer.ctrl.Snapshot().Active)

	// the subscription is closed, so after the last buffered snapshot no
	// further snapshots arrive
	_ = waitForSnapshot(h.timer.snaps)()

	assert.Nil(t, waitForSnapshot(h.timer.snaps)())
}

func TestSaveFailureIsReported(t *testing.T) {
	h := newHarness(t, testConfig())
	h.db.saveErr = errors.New("disk full")

	h.press(keySpace)
	h.step(t, 2)

	assert.Nil(t, h.press(keySpace))
	assert.ErrorIs(t, h.timer.err, errSaveSession)
	assert.Contains(t, h.timer.View(), "disk full")
}

func TestPhaseSound(t *testing.T) {
	h := newHarness(t, testConfig())

	ex := breathing.DefaultExercise()

	send := func(s breathing.Snapshot) {
		h.timer.Update(snapshotMsg(s))
	}

	send(breathing.Snapshot{Exercise: ex, Phase: breathing.Inhale})
	assert.Zero(t, h.player.plays)

	send(breathing.Snapshot{Exercise: ex, Phase: breathing.Inhale, Active: true, Started: true})
	assert.Equal(t, 1, h.player.plays)

	send(breathing.Snapshot{Exercise: ex, Phase: breathing.Inhale, Active: true, Started: true, Elapsed: 1})
	assert.Equal(t, 1, h.player.plays)

	send(breathing.Snapshot{Exercise: ex, Phase: breathing.Hold, Active: true, Started: true, Elapsed: 4})
	assert.Equal(t, 2, h.player.plays)

	send(breathing.Snapshot{Exercise: ex, Phase: breathing.Hold, Started: true, Elapsed: 5})
	assert.Equal(t, 2, h.player.plays)

	send(breathing.Snapshot{Exercise: breathing.Defaults()[2], Active: true, Started: true})
	assert.Equal(t, 2, h.player.plays)
}

func TestTargetNotification(t *testing.T) {
	h := newHarness(t, testConfig())

	ex := breathing.DefaultExercise()

	snap := func(elapsed int) breathing.Snapshot {
		return breathing.Snapshot{
			Exercise: ex,
			Active:   true,
			Started:  true,
			Elapsed:  elapsed,
		}
	}

	assert.Nil(t, h.timer.checkTarget(snap(299)))

	cmd := h.timer.checkTarget(snap(300))
	require.NotNil(t, cmd)
	assert.Equal(t, notifyMsg{}, cmd())
	assert.Equal(t, []string{"4-7-8 Breathing is complete"}, h.notified)

	assert.Nil(t, h.timer.checkTarget(snap(301)))

	// a new session may notify again
	h.timer.start()
	assert.NotNil(t, h.timer.checkTarget(snap(300)))
}

func TestTargetNotificationDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.Notify = false

	h := newHarness(t, cfg)

	s := breathing.Snapshot{
		Exercise: breathing.DefaultExercise(),
		Active:   true,
		Started:  true,
		Elapsed:  600,
	}

	assert.Nil(t, h.timer.checkTarget(s))
}

func TestView(t *testing.T) {
	h := newHarness(t, testConfig())

	view := h.timer.View()
	assert.Contains(t, view, "4-7-8 Breathing")
	assert.Contains(t, view, "Ready")
	assert.Contains(t, view, "0:00 / 5:00")

	h.press(keySpace)
	h.step(t, 5)
	h.timer.snap = h.timer.ctrl.Snapshot()

	view = h.timer.View()
	assert.Contains(t, view, "Hold")
	assert.Contains(t, view, "0:05")

	h.press(keySpace)

	assert.Contains(t, h.timer.View(), "[Paused]")
}

func TestBallWidth(t *testing.T) {
	ex := breathing.DefaultExercise()

	assert.Equal(t, minBallWidth, ballWidth(breathing.Snapshot{Exercise: ex}))
	assert.Equal(t, maxBallWidth, ballWidth(breathing.Snapshot{
		Exercise: ex,
		Started:  true,
		Phase:    breathing.Hold,
	}))
	assert.Equal(t, minBallWidth, ballWidth(breathing.Snapshot{
		Exercise: ex,
		Started:  true,
		Phase:    breathing.Exhale,
	}))
}

func TestRunSessionCmd(t *testing.T) {
	assert.NoError(t, runSessionCmd(""))
	assert.ErrorIs(t, runSessionCmd("echo 'unterminated"), errSessionCmd)
}
