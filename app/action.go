package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/breathing"
	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/logging"
	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/internal/osutil"
	"github.com/ayoisaiah/breathe/internal/pathutil"
	"github.com/ayoisaiah/breathe/internal/ui"
	"github.com/ayoisaiah/breathe/report"
	"github.com/ayoisaiah/breathe/stats"
	"github.com/ayoisaiah/breathe/store"
	"github.com/ayoisaiah/breathe/timer"
)

const (
	envNoColor        = "NO_COLOR"
	envBreatheNoColor = "BREATHE_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file without command-line overrides.
func loadConfig() (*config.Config, error) {
	return config.New(config.WithViperConfig(pathutil.ConfigFilePath()))
}

func sessionHelper(
	ctx *cli.Context,
) ([]*models.Session, store.DB, *config.FilterConfig, error) {
	filter, err := config.Filter(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, nil, err
	}

	sessions, err := db.GetSessions(
		filter.StartTime,
		filter.EndTime,
		filter.Exercises,
	)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	return sessions, db, filter, nil
}

// deleteAction handles the delete command which deletes one or more
// sessions.
func deleteAction(ctx *cli.Context) error {
	sessions, db, filter, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	deleted, err := stats.Delete(
		db,
		sessions,
		filter.StartTime,
		os.Stdin,
		os.Stdout,
	)
	if err != nil {
		return err
	}

	if deleted > 0 {
		report.SessionsDeleted(deleted)
	}

	return nil
}

// editConfigAction handles the edit-config command which opens the breathe
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(runtime.GOOS),
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// exerciseRows builds the table of configured exercises, sorted by name.
func exerciseRows(cfg *config.Config) [][]string {
	exercises := slices.Clone(cfg.Exercises)

	slices.SortStableFunc(exercises, func(a, b breathing.Exercise) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}

		return 0
	})

	selected := cfg.Selected().Name

	rows := [][]string{{"", "NAME", "KIND", "PATTERN", "TARGET", "DESCRIPTION"}}

	for _, ex := range exercises {
		marker := ""
		if ex.Name == selected {
			marker = "*"
		}

		pattern := "unpaced"
		if ex.Paced() {
			pattern = fmt.Sprintf("%s / %s / %s", ex.Inhale, ex.Hold, ex.Exhale)
		}

		target := "-"
		if ex.Target > 0 {
			target = ex.Target.String()
		}

		rows = append(rows, []string{
			marker,
			ui.Hex(ex.Color, ex.Name),
			string(ex.Kind),
			pattern,
			target,
			ex.Description,
		})
	}

	return rows
}

func printExercises(w io.Writer, cfg *config.Config) {
	ui.PrintTable(exerciseRows(cfg), w)

	if cfg.Settings.PhaseSound != "" {
		fmt.Fprintf(
			w,
			"Phase sound: %s\n",
			pathutil.StripExtension(filepath.Base(cfg.Settings.PhaseSound)),
		)
	}
}

// exercisesAction handles the exercises command.
func exercisesAction(_ *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	printExercises(os.Stdout, cfg)

	return nil
}

// historyAction handles the history command and prints a table of all the
// sessions started within a time period.
func historyAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sessions, db, filter, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sessions = stats.StartedFrom(sessions, filter.StartTime)

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	stats.List(os.Stdout, sessions, cfg.Settings.TwentyFourHour)

	return nil
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sessions, db, filter, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	now := time.Now()

	history, err := db.GetSessions(time.Time{}, now, nil)
	if err != nil {
		return err
	}

	s := stats.Compute(sessions, history, stats.Opts{
		StartTime: filter.StartTime,
		EndTime:   filter.EndTime,
		Now:       now,
		DailyGoal: cfg.Settings.DailyGoal,
	})

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	s.Render(os.Stdout)

	return nil
}

// defaultAction opens the breathing timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
		config.WithPromptConfig(ctx.Bool("select")),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	dbClient, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer dbClient.Close()

	t, err := timer.New(dbClient, cfg)
	if err != nil {
		return err
	}

	defer t.Close()

	slog.InfoContext(
		ctx.Context,
		"starting timer",
		slog.String("exercise", cfg.Selected().Name),
	)

	p := tea.NewProgram(t, tea.WithAltScreen())

	_, err = p.Run()

	return err
}

// initLogging installs the file logger. An unreadable config falls back to
// the default log settings so that edit-config keeps working.
func initLogging() {
	opts := logging.Options{
		Path: pathutil.LogFilePath(),
	}

	cfg, err := loadConfig()
	if err == nil {
		opts.Level = cfg.Log.Level
		opts.Format = cfg.Log.Format
		ui.DarkTheme = cfg.Display.DarkTheme
	}

	logging.Init(opts)

	if err != nil {
		slog.Warn("using default log settings", slog.Any("error", err))
	}
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/breathe/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if BREATHE_NO_COLOR is set
	if _, exists := os.LookupEnv(envBreatheNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	initLogging()

	slog.InfoContext(
		ctx.Context,
		"running breathe",
		slog.String("version", config.Version),
		slog.Any("args", ctx.Args().Slice()),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting breathe")

	return nil
}
