package timer

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errLoadSound = &apperr.Error{
		Message: "unable to load phase sound %s",
	}

	errSaveSession = &apperr.Error{
		Message: "unable to record the session",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to run session command %q",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}
)
