// Package app defines the breathe command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the breathe app instance.
func Get() *cli.App {
	breatheApp := &cli.App{
		Name: "breathe",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Breathe is a paced breathing and meditation timer for the command-line.
		It guides you through inhale, hold and exhale phases and keeps a history
		of your practice.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "exercises",
				Usage:  "List the configured exercises",
				Action: exercisesAction,
			},
			{
				Name:    "history",
				Aliases: []string{"list"},
				Usage: `
				List recorded sessions. Defaults to a reporting period of 7 days`,
				Flags:  append(filterFlags(), jsonFlag),
				Action: historyAction,
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with statistics, streaks and achievements.
				Defaults to a reporting period of 7 days`,
				Flags:  append(filterFlags(), jsonFlag),
				Action: statsAction,
			},
			{
				Name:   "delete",
				Usage:  "Delete recorded sessions",
				Flags:  filterFlags(),
				Action: deleteAction,
			},
		},
		Flags: []cli.Flag{
			exerciseFlag,
			selectFlag,
			inhaleFlag,
			holdFlag,
			exhaleFlag,
			phaseSoundFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return breatheApp
}
