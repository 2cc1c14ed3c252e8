// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ayoisaiah/breathe/internal/breathing"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Exercises []breathing.Exercise `mapstructure:"exercises"`
		Settings  SettingsConfig       `mapstructure:"settings"`
		Display   DisplayConfig        `mapstructure:"display"`
		Log       LogConfig            `mapstructure:"log"`
	}

	// SettingsConfig holds behaviour settings.
	SettingsConfig struct {
		DefaultExercise string `mapstructure:"default_exercise"`
		PhaseSound      string `mapstructure:"phase_sound"`
		Cmd             string `mapstructure:"cmd"`
		// DailyGoal is the practice time aimed for each day. Zero disables
		// the goal.
		DailyGoal      time.Duration `mapstructure:"daily_goal"`
		Notify         bool          `mapstructure:"notify"`
		TwentyFourHour bool          `mapstructure:"24hr_clock"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// LogConfig holds logger settings.
	LogConfig struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Exercise looks up an exercise by name, ignoring case.
func (c *Config) Exercise(name string) (breathing.Exercise, bool) {
	i := c.exerciseIndex(name)
	if i < 0 {
		return breathing.Exercise{}, false
	}

	return c.Exercises[i], true
}

// Selected returns the exercise a new session starts with.
func (c *Config) Selected() breathing.Exercise {
	if ex, ok := c.Exercise(c.Settings.DefaultExercise); ok {
		return ex
	}

	if len(c.Exercises) > 0 {
		return c.Exercises[0]
	}

	return breathing.DefaultExercise()
}

// ExerciseNames returns the names of all configured exercises in order.
func (c *Config) ExerciseNames() []string {
	names := make([]string, len(c.Exercises))

	for i := range c.Exercises {
		names[i] = c.Exercises[i].Name
	}

	return names
}

func (c *Config) exerciseIndex(name string) int {
	name = strings.TrimSpace(name)

	for i := range c.Exercises {
		if strings.EqualFold(c.Exercises[i].Name, name) {
			return i
		}
	}

	return -1
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"exercises=%d default=%q notify=%t",
		len(c.Exercises),
		c.Settings.DefaultExercise,
		c.Settings.Notify,
	)
}
