package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/breathe/internal/breathing"
)

// Session is a recorded practice session.
type Session struct {
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Exercise  string         `json:"exercise"`
	Kind      breathing.Kind `json:"kind"`
	ID        uuid.UUID      `json:"id"`
	// Elapsed is the number of seconds the session was active.
	Elapsed int `json:"elapsed"`
	// Cycles is the number of completed breathing cycles.
	Cycles    int           `json:"cycles"`
	Target    time.Duration `json:"target"`
	Completed bool          `json:"completed"`
}

// NewSession builds a session record from the final snapshot of a session
// that ended at end.
func NewSession(snap breathing.Snapshot, end time.Time) *Session {
	sess := &Session{
		ID:        uuid.New(),
		Exercise:  snap.Exercise.Name,
		Kind:      snap.Exercise.Kind,
		StartTime: end.Add(-snap.ElapsedTime()),
		EndTime:   end,
		Elapsed:   snap.Elapsed,
		Cycles:    snap.Cycles,
		Target:    snap.Exercise.Target,
	}

	sess.Completed = sess.TargetReached()

	return sess
}

// Duration returns the active time of the session.
func (s *Session) Duration() time.Duration {
	return time.Duration(s.Elapsed) * time.Second
}

// TargetReached reports whether the session lasted at least as long as its
// target. Sessions without a target never reach it.
func (s *Session) TargetReached() bool {
	return s.Target > 0 && s.Duration() >= s.Target
}
