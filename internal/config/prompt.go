package config

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// runForm displays a form and waits for it to be completed.
var runForm = func(form *huh.Form) error {
	return form.Run()
}

// WithPromptConfig returns an Option that lets the user pick the exercise
// interactively. It does nothing unless enabled is true.
func WithPromptConfig(enabled bool) Option {
	return func(c *Config) error {
		if !enabled || len(c.Exercises) == 0 {
			return nil
		}

		selected := c.Selected().Name

		options := make([]huh.Option[string], len(c.Exercises))

		for i := range c.Exercises {
			ex := c.Exercises[i]
			label := fmt.Sprintf("%s: %s", ex.Name, ex.Description)

			options[i] = huh.NewOption(label, ex.Name).
				Selected(ex.Name == selected)
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Choose your practice").
					Options(options...).
					Value(&selected),
			),
		)

		if err := runForm(form); err != nil {
			return errPrompt.Wrap(err)
		}

		c.Settings.DefaultExercise = selected

		return nil
	}
}
