package config

import "github.com/ayoisaiah/breathe/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errNoExercises = &apperr.Error{
		Message: "at least one exercise must be configured",
	}

	errEmptyExerciseName = &apperr.Error{
		Message: "exercise #%d must have a name",
	}

	errDuplicateExercise = &apperr.Error{
		Message: "exercise %q is defined more than once",
	}

	errUnknownExercise = &apperr.Error{
		Message: "unknown exercise: %s",
	}

	errUnknownKind = &apperr.Error{
		Message: "%s: unknown kind %q (must be breathing or meditation)",
	}

	errInvalidPhaseDuration = &apperr.Error{
		Message: "%s: %s duration must be between 0s and %v",
	}

	errUnpacedBreathing = &apperr.Error{
		Message: "%s: a breathing exercise needs at least one non-zero phase",
	}

	errInvalidTarget = &apperr.Error{
		Message: "%s: target duration must be between 0s and %v",
	}

	errInvalidDailyGoal = &apperr.Error{
		Message: "daily goal must be between 0s and %v",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
	}

	errInvalidLogFormat = &apperr.Error{
		Message: "unknown log format: %s (must be text or json)",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration: %v",
	}

	errPrompt = &apperr.Error{
		Message: "exercise prompt failed",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse date: %s",
	}
)
