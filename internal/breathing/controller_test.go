package breathing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/breathe/internal/breathing"
)

// settle waits until the session loop is parked on its single clock timer.
func settle(t *testing.T, clock *clockwork.FakeClock) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
}

// step advances the fake clock one second at a time and waits for the
// session loop to apply each second.
func step(t *testing.T, clock *clockwork.FakeClock, seconds int) {
	t.Helper()

	for range seconds {
		settle(t, clock)
		clock.Advance(time.Second)
	}

	settle(t, clock)
}

func newController(
	t *testing.T,
	ex breathing.Exercise,
) (*breathing.Controller, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClock()
	c := breathing.NewController(ex, breathing.WithClock(clock))

	t.Cleanup(c.Close)

	return c, clock
}

func TestNewControllerIsInactive(t *testing.T) {
	c, _ := newController(t, breathing.DefaultExercise())

	want := breathing.Snapshot{
		Exercise: breathing.DefaultExercise(),
		Phase:    breathing.Inhale,
	}

	if diff := cmp.Diff(want, c.Snapshot()); diff != "" {
		t.Fatalf("unexpected snapshot (-want +got):\n%s", diff)
	}
}

func TestStartBeginsAtInhale(t *testing.T) {
	c, _ := newController(t, breathing.DefaultExercise())

	c.Start()

	snap := c.Snapshot()

	assert.True(t, snap.Active)
	assert.True(t, snap.Started)
	assert.Equal(t, breathing.Inhale, snap.Phase)
	assert.Zero(t, snap.Elapsed)
}

func TestPhaseCycle(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	c.Start()

	type transition struct {
		Phase breathing.Phase
		At    int
	}

	got := []transition{{Phase: breathing.Inhale, At: 0}}

	for range 19 {
		step(t, clock, 1)

		snap := c.Snapshot()
		if snap.Phase != got[len(got)-1].Phase {
			got = append(got, transition{Phase: snap.Phase, At: snap.Elapsed})
		}
	}

	want := []transition{
		{Phase: breathing.Inhale, At: 0},
		{Phase: breathing.Hold, At: 4},
		{Phase: breathing.Exhale, At: 11},
		{Phase: breathing.Inhale, At: 19},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected phase order (-want +got):\n%s", diff)
	}

	assert.Equal(t, 1, c.Snapshot().Cycles)
}

func TestPhaseCycleRepeats(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	c.Start()

	step(t, clock, 19*3+4)

	snap := c.Snapshot()

	assert.Equal(t, 61, snap.Elapsed)
	assert.Equal(t, 3, snap.Cycles)
	assert.Equal(t, breathing.Hold, snap.Phase)
}

func TestElapsedTicksOncePerSecond(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	c.Start()

	for i := 1; i <= 25; i++ {
		step(t, clock, 1)
		require.Equal(t, i, c.Snapshot().Elapsed)
	}
}

func TestElapsedFrozenWhileInactive(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	clock.Advance(10 * time.Second)
	assert.Zero(t, c.Snapshot().Elapsed)

	c.Start()
	step(t, clock, 5)
	c.Stop()

	clock.Advance(time.Minute)

	assert.Equal(t, 5, c.Snapshot().Elapsed)
}

func TestRepeatedStartKeepsOneCycle(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	c.Start()
	step(t, clock, 2)

	c.Start()
	c.Start()

	step(t, clock, 3)

	snap := c.Snapshot()

	// the second and third calls must not restart the counter or add a
	// second tick chain
	assert.Equal(t, 5, snap.Elapsed)
	assert.Equal(t, breathing.Hold, snap.Phase)
}

func TestStopFreezesPhase(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	c.Start()
	step(t, clock, 5)

	c.Stop()

	want := c.Snapshot()

	assert.False(t, want.Active)
	assert.Equal(t, breathing.Hold, want.Phase)

	clock.Advance(time.Hour)

	assert.Equal(t, want, c.Snapshot())
}

func TestStopDiscardsDueTransition(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	c.Start()
	step(t, clock, 3)

	// the phase transition at t=4 is due as soon as the clock moves, and
	// may or may not be applied before Stop takes the lock
	clock.Advance(time.Second)
	c.Stop()

	want := c.Snapshot()

	clock.Advance(30 * time.Second)
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, want, c.Snapshot())
	assert.False(t, c.Snapshot().Active)
}

func TestStopWhenInactive(t *testing.T) {
	c, _ := newController(t, breathing.DefaultExercise())

	c.Stop()

	assert.False(t, c.Snapshot().Active)
	assert.False(t, c.Snapshot().Started)
}

func TestRestartAfterStop(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	c.Start()
	step(t, clock, 6)
	c.Stop()

	c.Start()

	snap := c.Snapshot()
	assert.Zero(t, snap.Elapsed)
	assert.Equal(t, breathing.Inhale, snap.Phase)

	step(t, clock, 4)

	snap = c.Snapshot()
	assert.Equal(t, 4, snap.Elapsed)
	assert.Equal(t, breathing.Hold, snap.Phase)
}

func TestReset(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	c.Start()
	step(t, clock, 12)

	require.Equal(t, breathing.Exhale, c.Snapshot().Phase)

	c.Reset()

	want := breathing.Snapshot{
		Exercise: breathing.DefaultExercise(),
		Phase:    breathing.Inhale,
	}

	if diff := cmp.Diff(want, c.Snapshot()); diff != "" {
		t.Fatalf("unexpected snapshot after reset (-want +got):\n%s", diff)
	}

	clock.Advance(time.Minute)

	assert.Equal(t, want, c.Snapshot())
}

func TestSelectExerciseResetsSession(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	box := breathing.Defaults()[1]

	c.Start()
	step(t, clock, 9)

	c.SelectExercise(box)

	snap := c.Snapshot()

	assert.Equal(t, box, snap.Exercise)
	assert.Zero(t, snap.Elapsed)
	assert.Equal(t, breathing.Inhale, snap.Phase)
	assert.False(t, snap.Active)

	c.Start()
	step(t, clock, 4)

	assert.Equal(t, breathing.Hold, c.Snapshot().Phase)
}

func TestZeroDurationPhasesAreSkipped(t *testing.T) {
	ex := breathing.Exercise{
		Name:   "Skip hold",
		Kind:   breathing.KindBreathing,
		Inhale: 2 * time.Second,
		Exhale: 3 * time.Second,
	}

	c, clock := newController(t, ex)

	c.Start()

	step(t, clock, 2)
	assert.Equal(t, breathing.Exhale, c.Snapshot().Phase)

	step(t, clock, 3)

	snap := c.Snapshot()
	assert.Equal(t, breathing.Inhale, snap.Phase)
	assert.Equal(t, 1, snap.Cycles)
}

func TestStartSkipsZeroInhale(t *testing.T) {
	ex := breathing.Exercise{
		Name:   "Hold first",
		Kind:   breathing.KindBreathing,
		Hold:   2 * time.Second,
		Exhale: 2 * time.Second,
	}

	c, clock := newController(t, ex)

	c.Start()
	assert.Equal(t, breathing.Hold, c.Snapshot().Phase)

	step(t, clock, 4)

	snap := c.Snapshot()
	assert.Equal(t, breathing.Hold, snap.Phase)
	assert.Equal(t, 1, snap.Cycles)
}

func TestMeditationOnlyTicks(t *testing.T) {
	c, clock := newController(t, breathing.Defaults()[2])

	c.Start()
	step(t, clock, 30)

	snap := c.Snapshot()

	assert.Equal(t, 30, snap.Elapsed)
	assert.Equal(t, breathing.Inhale, snap.Phase)
	assert.Zero(t, snap.Cycles)
}

func TestSubscribe(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	ch, unsubscribe := c.Subscribe()

	initial := <-ch
	assert.False(t, initial.Active)

	c.Start()

	started := <-ch
	assert.True(t, started.Active)

	step(t, clock, 1)

	ticked := <-ch
	assert.Equal(t, 1, ticked.Elapsed)

	unsubscribe()
	unsubscribe()

	_, ok := <-ch
	assert.False(t, ok)
}

func TestSubscribeKeepsLatest(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	ch, unsubscribe := c.Subscribe()
	defer unsubscribe()

	c.Start()
	step(t, clock, 5)

	snap := <-ch

	assert.Equal(t, 5, snap.Elapsed)
	assert.Equal(t, breathing.Hold, snap.Phase)
}

func TestCloseEndsSubscriptions(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := breathing.NewController(breathing.DefaultExercise(), breathing.WithClock(clock))

	ch, _ := c.Subscribe()
	<-ch

	c.Start()
	assert.True(t, (<-ch).Active)

	c.Close()

	_, ok := <-ch
	assert.False(t, ok)

	c.Start()
	assert.False(t, c.Snapshot().Active)

	late, _ := c.Subscribe()
	_, ok = <-late
	assert.False(t, ok)
}

func TestConcurrentControl(t *testing.T) {
	c, clock := newController(t, breathing.DefaultExercise())

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 50 {
				switch i % 4 {
				case 0:
					c.Start()
				case 1:
					c.Stop()
				case 2:
					c.Reset()
				default:
					clock.Advance(time.Second)
				}
			}
		}()
	}

	wg.Wait()

	c.Reset()

	snap := c.Snapshot()

	assert.False(t, snap.Active)
	assert.Zero(t, snap.Elapsed)
	assert.Equal(t, breathing.Inhale, snap.Phase)
}

func TestPhaseText(t *testing.T) {
	assert.Equal(t, "Breathe In", breathing.Inhale.Text())
	assert.Equal(t, "Hold", breathing.Hold.Text())
	assert.Equal(t, "Breathe Out", breathing.Exhale.Text())
	assert.Equal(t, "exhale", breathing.Exhale.String())
	assert.Equal(t, breathing.Inhale, breathing.Exhale.Next())
}
