// Package breathing drives a breathing session: a repeating Inhale, Hold,
// Exhale cycle and an elapsed-time counter that runs while the session is
// active.
package breathing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const tickInterval = time.Second

// Snapshot is a read-only view of a session.
type Snapshot struct {
	Exercise Exercise
	Phase    Phase
	// Elapsed is the number of seconds the session has been active.
	Elapsed int
	// Cycles is the number of completed breathing cycles.
	Cycles int
	Active bool
	// Started is false until the session is started and again after a
	// reset or an exercise switch.
	Started bool
}

// ElapsedTime returns the elapsed seconds as a duration.
func (s Snapshot) ElapsedTime() time.Duration {
	return time.Duration(s.Elapsed) * time.Second
}

// run identifies one active session. Everything it schedules is discarded
// once gen no longer matches the controller's generation.
type run struct {
	cancel context.CancelFunc
	done   chan struct{}
	gen    uint64
}

// Controller owns a single session and exposes start, stop, reset and
// exercise selection to the presentation layer.
type Controller struct {
	clock clockwork.Clock

	mu      sync.Mutex
	sess    Snapshot
	current *run
	gen     uint64
	subs    map[int]chan Snapshot
	nextSub int
	closed  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for scheduling.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// NewController returns an inactive controller for the given exercise.
func NewController(ex Exercise, opts ...Option) *Controller {
	c := &Controller{
		clock: clockwork.NewRealClock(),
		sess: Snapshot{
			Exercise: ex,
			Phase:    Inhale,
		},
		subs: make(map[int]chan Snapshot),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Snapshot returns the current state of the session.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sess
}

// Subscribe returns a channel that receives a snapshot after every state
// change. The channel holds only the latest snapshot, so slow readers skip
// intermediate states. The returned function ends the subscription.
func (c *Controller) Subscribe() (<-chan Snapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Snapshot, 1)

	if c.closed {
		close(ch)
		return ch, func() {}
	}

	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch

	ch <- c.sess

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()

			if _, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(ch)
			}
		})
	}
}

// Start begins a new session at the first phase of the cycle with the
// elapsed counter at zero. Calling Start on an active session does nothing.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Active || c.closed {
		return
	}

	c.gen++

	ctx, cancel := context.WithCancel(context.Background())

	r := &run{
		cancel: cancel,
		done:   make(chan struct{}),
		gen:    c.gen,
	}

	c.current = r

	c.sess.Active = true
	c.sess.Started = true
	c.sess.Elapsed = 0
	c.sess.Cycles = 0
	c.sess.Phase = Inhale

	sched := newSchedule(&c.sess)

	slog.Debug(
		"breathing session started",
		"exercise", c.sess.Exercise.Name,
		"generation", r.gen,
	)

	go c.loop(ctx, r, sched, c.clock.Now())

	c.publish()
}

// Stop ends the session. Pending phase transitions and ticks are cancelled
// and never applied, and Stop returns only after the scheduling goroutine has
// exited. The phase is left where it was.
func (c *Controller) Stop() {
	c.mu.Lock()

	r := c.halt()
	if r != nil {
		c.publish()
	}

	c.mu.Unlock()

	wait(r)
}

// Reset stops the session and clears the elapsed counter and phase.
func (c *Controller) Reset() {
	c.mu.Lock()

	r := c.halt()
	c.clear()
	c.publish()

	c.mu.Unlock()

	wait(r)
}

// SelectExercise replaces the exercise and resets the session.
func (c *Controller) SelectExercise(ex Exercise) {
	c.mu.Lock()

	r := c.halt()
	c.sess.Exercise = ex
	c.clear()
	c.publish()

	c.mu.Unlock()

	wait(r)
}

// Close stops the session and ends every subscription. The controller
// cannot be started again.
func (c *Controller) Close() {
	c.mu.Lock()

	r := c.halt()

	c.closed = true

	for id, ch := range c.subs {
		close(ch)
		delete(c.subs, id)
	}

	c.mu.Unlock()

	wait(r)
}

// halt deactivates the session and invalidates everything the current run
// scheduled. It must be called with c.mu held.
func (c *Controller) halt() *run {
	r := c.current
	if r == nil {
		return nil
	}

	c.current = nil
	c.gen++
	c.sess.Active = false

	r.cancel()

	slog.Debug(
		"breathing session stopped",
		"exercise", c.sess.Exercise.Name,
		"elapsed", c.sess.Elapsed,
	)

	return r
}

func (c *Controller) clear() {
	c.sess.Elapsed = 0
	c.sess.Cycles = 0
	c.sess.Phase = Inhale
	c.sess.Started = false
}

// publish delivers the current snapshot to every subscriber, replacing any
// snapshot that has not been read yet. It must be called with c.mu held.
func (c *Controller) publish() {
	for _, ch := range c.subs {
		select {
		case ch <- c.sess:
			continue
		default:
		}

		select {
		case <-ch:
		default:
		}

		select {
		case ch <- c.sess:
		default:
		}
	}
}

func wait(r *run) {
	if r != nil {
		<-r.done
	}
}

// loop waits for the next scheduled event and applies every event that is
// due. It holds at most one clock timer at a time.
func (c *Controller) loop(
	ctx context.Context,
	r *run,
	sched *schedule,
	start time.Time,
) {
	defer close(r.done)

	for {
		timer := c.clock.NewTimer(sched.next() - c.clock.Since(start))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.Chan():
		}

		if !c.apply(r.gen, sched, c.clock.Since(start)) {
			return
		}
	}
}

// apply advances the session to offset now. It reports false if the run
// has been superseded, in which case nothing is changed.
func (c *Controller) apply(gen uint64, sched *schedule, now time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}

	if sched.advance(&c.sess, now) {
		c.publish()
	}

	return true
}
