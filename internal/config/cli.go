package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/breathing"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Exercise      string
	Inhale        string
	Hold          string
	Exhale        string
	PhaseSound    string
	Cmd           string
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Exercise:      ctx.String("exercise"),
			Inhale:        ctx.String("inhale"),
			Hold:          ctx.String("hold"),
			Exhale:        ctx.String("exhale"),
			PhaseSound:    ctx.String("phase-sound"),
			Cmd:           ctx.String("cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Exercise != "" {
		i := c.exerciseIndex(opts.Exercise)
		if i < 0 {
			return errUnknownExercise.Fmt(opts.Exercise)
		}

		c.Settings.DefaultExercise = c.Exercises[i].Name
	}

	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.PhaseSound != "" {
		if opts.PhaseSound == "off" {
			c.Settings.PhaseSound = ""
		} else {
			c.Settings.PhaseSound = opts.PhaseSound
		}
	}

	if opts.Cmd != "" {
		c.Settings.Cmd = opts.Cmd
	}

	if opts.DisableNotify {
		c.Settings.Notify = false
	}

	return nil
}

// applyCLIDurations overrides the phase durations of the selected exercise.
// Overriding any phase of a meditation turns it into a paced exercise.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	overrides := []struct {
		phase breathing.Phase
		value string
	}{
		{breathing.Inhale, opts.Inhale},
		{breathing.Hold, opts.Hold},
		{breathing.Exhale, opts.Exhale},
	}

	i := c.exerciseIndex(c.Selected().Name)
	if i < 0 {
		return nil
	}

	ex := &c.Exercises[i]

	for _, o := range overrides {
		if o.value == "" {
			continue
		}

		d, err := parseDuration(o.value)
		if err != nil {
			return errInvalidCLIDuration.Fmt(o.phase, err)
		}

		switch o.phase {
		case breathing.Inhale:
			ex.Inhale = d
		case breathing.Hold:
			ex.Hold = d
		case breathing.Exhale:
			ex.Exhale = d
		}

		ex.Kind = breathing.KindBreathing
	}

	return nil
}

// parseDuration accepts Go duration strings and bare numbers of seconds.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "s")
}
