package store

import (
	"time"

	"github.com/ayoisaiah/breathe/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// GetSessions returns saved sessions that overlap the given time range,
	// optionally limited to the named exercises
	GetSessions(
		startTime, endTime time.Time,
		exercises []string,
	) ([]*models.Session, error)
	// SaveSession stores a session keyed by its start time. An existing
	// session with the same start time is overwritten.
	SaveSession(sess *models.Session) error
	// DeleteSessions deletes the sessions with the given start times
	DeleteSessions(startTimes []time.Time) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
