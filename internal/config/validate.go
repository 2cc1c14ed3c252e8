package config

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/breathe/internal/breathing"
)

var (
	maxPhaseDuration  = 5 * time.Minute
	maxTargetDuration = 12 * time.Hour
	maxDailyGoal      = 24 * time.Hour

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	soundExts  = []string{".mp3", ".ogg", ".flac", ".wav"}
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if len(c.Exercises) == 0 {
		return errNoExercises
	}

	seen := make(map[string]bool, len(c.Exercises))

	for i := range c.Exercises {
		ex := c.Exercises[i]

		if strings.TrimSpace(ex.Name) == "" {
			return errEmptyExerciseName.Fmt(i + 1)
		}

		key := strings.ToLower(ex.Name)
		if seen[key] {
			return errDuplicateExercise.Fmt(ex.Name)
		}

		seen[key] = true

		if err := validateExercise(ex); err != nil {
			return err
		}
	}

	if c.Settings.DefaultExercise != "" {
		if _, ok := c.Exercise(c.Settings.DefaultExercise); !ok {
			return errUnknownExercise.Fmt(c.Settings.DefaultExercise)
		}
	}

	if c.Settings.DailyGoal < 0 || c.Settings.DailyGoal > maxDailyGoal {
		return errInvalidDailyGoal.Fmt(maxDailyGoal)
	}

	if c.Settings.PhaseSound != "" {
		ext := strings.ToLower(filepath.Ext(c.Settings.PhaseSound))
		if !slices.Contains(soundExts, ext) {
			return errInvalidSoundFormat.Fmt(c.Settings.PhaseSound)
		}
	}

	if c.Log.Level != "" && !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Log.Format != "" && !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return errInvalidLogFormat.Fmt(c.Log.Format)
	}

	return nil
}

// validateExercise validates an individual exercise definition.
func validateExercise(ex breathing.Exercise) error {
	switch ex.Kind {
	case breathing.KindBreathing, breathing.KindMeditation:
	default:
		return errUnknownKind.Fmt(ex.Name, ex.Kind)
	}

	for _, p := range []breathing.Phase{
		breathing.Inhale,
		breathing.Hold,
		breathing.Exhale,
	} {
		d := ex.Duration(p)
		if d < 0 || d > maxPhaseDuration {
			return errInvalidPhaseDuration.Fmt(ex.Name, p, maxPhaseDuration)
		}
	}

	if ex.Kind == breathing.KindBreathing && !ex.Paced() {
		return errUnpacedBreathing.Fmt(ex.Name)
	}

	if ex.Target < 0 || ex.Target > maxTargetDuration {
		return errInvalidTarget.Fmt(ex.Name, maxTargetDuration)
	}

	if !hexColorRegex.MatchString(ex.Color) {
		return errInvalidColor.Fmt(ex.Name, ex.Color)
	}

	return nil
}
