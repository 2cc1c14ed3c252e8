package store

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	errBreatheRunning = &apperr.Error{
		Message: "is breathe already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "opening database %s failed",
	}

	errDecodeSession = &apperr.Error{
		Message: "decoding session %s failed",
	}
)
