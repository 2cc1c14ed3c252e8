package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	exerciseFlag = &cli.StringFlag{
		Name:    "exercise",
		Aliases: []string{"e"},
		Usage:   "Name of the exercise to practise (see the exercises command)",
	}

	selectFlag = &cli.BoolFlag{
		Name:    "select",
		Aliases: []string{"s"},
		Usage:   "Choose the exercise from an interactive list",
	}

	inhaleFlag = &cli.StringFlag{
		Name:    "inhale",
		Aliases: []string{"i"},
		Usage:   "Inhale duration for the selected exercise (e.g. 4s or 4)",
	}

	holdFlag = &cli.StringFlag{
		Name:  "hold",
		Usage: "Hold duration for the selected exercise (e.g. 7s or 7)",
	}

	exhaleFlag = &cli.StringFlag{
		Name:    "exhale",
		Aliases: []string{"x"},
		Usage:   "Exhale duration for the selected exercise (e.g. 8s or 8)",
	}

	phaseSoundFlag = &cli.StringFlag{
		Name:  "phase-sound",
		Usage: "Sound file (mp3, ogg, flac or wav) played when the phase changes. Disable by setting to 'off'",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a session reaches its target",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after each recorded session",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: all-time, today, yesterday, 7days, 14days, 30days, 90days, 180days or 365days",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Start date of the reporting period (e.g. '2024-03-01' or '2 weeks ago')",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "End date of the reporting period. Defaults to now",
	}

	filterExerciseFlag = &cli.StringFlag{
		Name:    "exercise",
		Aliases: []string{"e"},
		Usage:   "Comma-separated list of exercises to include",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}
)

func filterFlags() []cli.Flag {
	return []cli.Flag{periodFlag, startFlag, endFlag, filterExerciseFlag}
}
