package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/breathe/internal/breathing"
)

const (
	keyExercises       = "exercises"
	keyDefaultExercise = "settings.default_exercise"
	keyPhaseSound      = "settings.phase_sound"
	keyNotify          = "settings.notify"
	keyCmd             = "settings.cmd"
	keyDailyGoal       = "settings.daily_goal"
	keyTwentyFourHour  = "settings.24hr_clock"
	keyDarkTheme       = "display.dark_theme"
	keyLogLevel        = "log.level"
	keyLogFormat       = "log.format"
)

const defaultDailyGoal = 20 * time.Minute

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A file with default values is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setDefaults registers the default value of every key.
func setDefaults(v *viper.Viper) {
	defaults := breathing.Defaults()

	v.SetDefault(keyExercises, exerciseDefaults(defaults))
	v.SetDefault(keyDefaultExercise, defaults[0].Name)
	v.SetDefault(keyPhaseSound, "")
	v.SetDefault(keyNotify, true)
	v.SetDefault(keyCmd, "")
	v.SetDefault(keyDailyGoal, defaultDailyGoal.String())
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
}

// exerciseDefaults converts exercises to the shape they take in the config
// file, with durations written as strings.
func exerciseDefaults(exercises []breathing.Exercise) []map[string]any {
	out := make([]map[string]any, len(exercises))

	for i, ex := range exercises {
		out[i] = map[string]any{
			"name":        ex.Name,
			"description": ex.Description,
			"kind":        string(ex.Kind),
			"color":       ex.Color,
			"inhale":      ex.Inhale.String(),
			"hold":        ex.Hold.String(),
			"exhale":      ex.Exhale.String(),
			"target":      ex.Target.String(),
		}
	}

	return out
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	for i := range c.Exercises {
		if c.Exercises[i].Kind == "" {
			c.Exercises[i].Kind = breathing.KindBreathing
		}
	}

	return nil
}
