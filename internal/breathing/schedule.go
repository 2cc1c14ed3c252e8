package breathing

import (
	"math"
	"time"
)

const never = time.Duration(math.MaxInt64)

// schedule tracks the offsets, relative to the start of a session, at which
// the next elapsed tick and the next phase transition are due.
type schedule struct {
	nextTick  time.Duration
	nextPhase time.Duration
}

// newSchedule positions sess on the first phase with a non-zero duration and
// returns the schedule for its first tick and transition.
func newSchedule(sess *Snapshot) *schedule {
	s := &schedule{
		nextTick:  tickInterval,
		nextPhase: never,
	}

	if !sess.Exercise.Paced() {
		return s
	}

	d := sess.Exercise.Duration(sess.Phase)
	if d == 0 {
		d = nextPhase(sess)
	}

	s.nextPhase = d

	return s
}

func (s *schedule) next() time.Duration {
	return min(s.nextTick, s.nextPhase)
}

// advance applies every tick and phase transition due at or before now and
// reports whether sess changed.
func (s *schedule) advance(sess *Snapshot, now time.Duration) bool {
	var changed bool

	for s.nextTick <= now {
		sess.Elapsed++
		s.nextTick += tickInterval
		changed = true
	}

	for s.nextPhase <= now {
		s.nextPhase += nextPhase(sess)
		changed = true
	}

	return changed
}

// nextPhase moves sess to the next phase with a non-zero duration and
// returns that duration. Leaving Exhale completes a cycle. The exercise must
// be paced.
func nextPhase(sess *Snapshot) time.Duration {
	for {
		if sess.Phase == Exhale {
			sess.Cycles++
		}

		sess.Phase = sess.Phase.Next()

		if d := sess.Exercise.Duration(sess.Phase); d > 0 {
			return d
		}
	}
}
