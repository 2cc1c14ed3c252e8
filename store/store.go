// Package store persists recorded sessions in a BoltDB database
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"slices"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/internal/timeutil"
)

const sessionBucket = "sessions"

const lockTimeout = 1 * time.Second

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

func (c *Client) SaveSession(sess *models.Session) error {
	key := timeutil.ToKey(sess.StartTime)

	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	slog.Debug(
		"saving session",
		slog.String("exercise", sess.Exercise),
		slog.Int("elapsed", sess.Elapsed),
	)

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put(key, value)
	})
}

func (c *Client) DeleteSessions(startTimes []time.Time) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		for _, t := range startTimes {
			err := b.Delete(timeutil.ToKey(t))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

func (c *Client) GetSessions(
	startTime, endTime time.Time,
	exercises []string,
) ([]*models.Session, error) {
	var sessions []*models.Session

	keep := func(v []byte) error {
		var sess models.Session

		err := json.Unmarshal(v, &sess)
		if err != nil {
			return errDecodeSession.Fmt(string(v)).Wrap(err)
		}

		if matchExercise(exercises, sess.Exercise) {
			sessions = append(sessions, &sess)
		}

		return nil
	}

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()
		lo := timeutil.ToKey(startTime)
		hi := timeutil.ToKey(endTime)

		sk, _ := cur.Seek(lo)

		// include the previous session if it ended within the range
		var pk, pv []byte
		if sk == nil {
			pk, pv = cur.Last()
		} else {
			pk, pv = cur.Prev()
		}

		if pk != nil {
			var prev models.Session

			err := json.Unmarshal(pv, &prev)
			if err != nil {
				return errDecodeSession.Fmt(string(pk)).Wrap(err)
			}

			if prev.EndTime.After(startTime) {
				err = keep(pv)
				if err != nil {
					return err
				}
			}
		}

		for k, v := cur.Seek(lo); k != nil && bytes.Compare(k, hi) <= 0; k, v = cur.Next() {
			err := keep(v)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func matchExercise(exercises []string, name string) bool {
	if len(exercises) == 0 {
		return true
	}

	return slices.ContainsFunc(exercises, func(e string) bool {
		return strings.EqualFold(e, name)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: lockTimeout},
	)
	if err != nil {
		if errors.Is(err, berrors.ErrDatabaseOpen) ||
			errors.Is(err, berrors.ErrTimeout) {
			return nil, errBreatheRunning
		}

		return nil, errOpenDB.Fmt(pathToDB).Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Client{
		DB:   db,
		path: dbPath,
	}, nil
}
