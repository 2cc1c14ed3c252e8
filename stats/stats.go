// Package stats reports statistics for recorded breathing sessions
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/internal/timeutil"
	"github.com/ayoisaiah/breathe/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
	dayLayout     = "2006-01-02"

	// daily breakdowns are only shown for ranges up to a month
	maxDailyBreakdown = 31
)

type (
	// Opts is the reporting period.
	Opts struct {
		StartTime time.Time
		EndTime   time.Time
		// Now is used to decide whether the current streak is still alive.
		Now time.Time
		// DailyGoal is the practice time aimed for each day. Zero disables
		// goal tracking.
		DailyGoal time.Duration
	}

	// GoalProgress is the practice time logged today against the daily goal.
	GoalProgress struct {
		GoalSeconds      int  `json:"goal_seconds"`
		TodaySeconds     int  `json:"today_seconds"`
		RemainingSeconds int  `json:"remaining_seconds"`
		Reached          bool `json:"reached"`
	}

	// ExerciseTotal is the practice time spent on one exercise.
	ExerciseTotal struct {
		Name     string `json:"name"`
		Seconds  int    `json:"seconds"`
		Sessions int    `json:"sessions"`
	}

	// DayTotal is the practice time on one calendar day.
	DayTotal struct {
		Date    string `json:"date"`
		Seconds int    `json:"seconds"`
	}

	// Achievement is a milestone earned over the whole practice history.
	Achievement struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Earned      bool   `json:"earned"`
	}

	// Stats summarises the sessions in a reporting period.
	Stats struct {
		StartTime     time.Time       `json:"start_time"`
		EndTime       time.Time       `json:"end_time"`
		Exercises     []ExerciseTotal `json:"exercises"`
		Daily         []DayTotal      `json:"daily"`
		Achievements  []Achievement   `json:"achievements"`
		DailyGoal     *GoalProgress   `json:"daily_goal,omitempty"`
		TotalSeconds  int             `json:"total_seconds"`
		Sessions      int             `json:"sessions"`
		Completed     int             `json:"completed"`
		Cycles        int             `json:"cycles"`
		CurrentStreak int             `json:"current_streak"`
		LongestStreak int             `json:"longest_streak"`
	}
)

// sessionSeconds returns the active seconds of a session that fall within
// the reporting period.
func sessionSeconds(sess *models.Session, opts Opts) int {
	start := sess.StartTime
	end := sess.StartTime.Add(sess.Duration())

	if start.Before(opts.StartTime) {
		start = opts.StartTime
	}

	if !opts.EndTime.IsZero() && end.After(opts.EndTime) {
		end = opts.EndTime
	}

	if !end.After(start) {
		return 0
	}

	return timeutil.Round(end.Sub(start).Seconds())
}

// filterSessions ensures that sessions with an invalid end date are ignored.
func filterSessions(sessions []*models.Session) []*models.Session {
	filtered := make([]*models.Session, 0, len(sessions))

	for _, sess := range sessions {
		if sess.EndTime.IsZero() || sess.EndTime.Before(sess.StartTime) {
			continue
		}

		filtered = append(filtered, sess)
	}

	return filtered
}

// practiceDays returns the distinct days in loc with at least one session in
// ascending order.
func practiceDays(sessions []*models.Session, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool)

	var days []time.Time

	for _, sess := range sessions {
		d := timeutil.RoundToStart(sess.StartTime.In(loc))
		if seen[d] {
			continue
		}

		seen[d] = true

		days = append(days, d)
	}

	slices.SortFunc(days, func(a, b time.Time) int {
		return a.Compare(b)
	})

	return days
}

func nextDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}

// streaks returns the current and longest run of consecutive practice days.
// The current streak survives until the end of the day after the last
// session.
func streaks(sessions []*models.Session, now time.Time) (current, longest int) {
	days := practiceDays(sessions, now.Location())
	if len(days) == 0 {
		return 0, 0
	}

	run := 0

	for i, d := range days {
		if i > 0 && nextDay(days[i-1]).Equal(d) {
			run++
		} else {
			run = 1
		}

		longest = max(longest, run)
	}

	today := timeutil.RoundToStart(now)
	last := days[len(days)-1]

	if last.Equal(today) || nextDay(last).Equal(today) {
		current = run
	}

	return current, longest
}

// achievements evaluates the milestones over the full practice history.
func achievements(sessions []*models.Session, longest int) []Achievement {
	completed := slices.ContainsFunc(sessions, func(s *models.Session) bool {
		return s.Completed
	})

	//nolint:mnd // streak milestones
	return []Achievement{
		{
			Name:        "Mindful Moment",
			Description: "Completed your first session",
			Earned:      completed,
		},
		{
			Name:        "7-Day Streak",
			Description: "Practised every day for a week",
			Earned:      longest >= 7,
		},
		{
			Name:        "30-Day Journey",
			Description: "Practised every day for a month",
			Earned:      longest >= 30,
		},
	}
}

// Compute calculates the statistics for sessions in the reporting period.
// Streaks and achievements are taken from history, which holds every
// recorded session.
func Compute(sessions, history []*models.Session, opts Opts) *Stats {
	sessions = filterSessions(sessions)
	history = filterSessions(history)

	// For all-time, set start time to the date of the first session
	if opts.StartTime.IsZero() && len(sessions) > 0 {
		opts.StartTime = timeutil.RoundToStart(sessions[0].StartTime)
	}

	s := &Stats{
		StartTime: opts.StartTime,
		EndTime:   opts.EndTime,
	}

	exercises := make(map[string]*ExerciseTotal)
	daily := make(map[string]int)

	for _, sess := range sessions {
		secs := sessionSeconds(sess, opts)

		s.TotalSeconds += secs
		s.Sessions++
		s.Cycles += sess.Cycles

		if sess.Completed {
			s.Completed++
		}

		ex, ok := exercises[sess.Exercise]
		if !ok {
			ex = &ExerciseTotal{Name: sess.Exercise}
			exercises[sess.Exercise] = ex
		}

		ex.Seconds += secs
		ex.Sessions++

		day := sess.StartTime.In(opts.StartTime.Location())
		daily[day.Format(dayLayout)] += secs
	}

	s.Exercises = make([]ExerciseTotal, 0, len(exercises))
	for _, ex := range exercises {
		s.Exercises = append(s.Exercises, *ex)
	}

	slices.SortFunc(s.Exercises, func(a, b ExerciseTotal) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}

		return 0
	})

	s.Daily = dailyTotals(daily, opts)

	s.CurrentStreak, s.LongestStreak = streaks(history, opts.Now)
	s.Achievements = achievements(history, s.LongestStreak)
	s.DailyGoal = dailyGoal(history, opts)

	return s
}

// dailyGoal measures the practice time on the day of opts.Now against the
// daily goal. It returns nil if no goal is set.
func dailyGoal(history []*models.Session, opts Opts) *GoalProgress {
	if opts.DailyGoal <= 0 {
		return nil
	}

	today := Opts{
		StartTime: timeutil.RoundToStart(opts.Now),
		EndTime:   timeutil.RoundToEnd(opts.Now),
	}

	var secs int

	for _, sess := range history {
		secs += sessionSeconds(sess, today)
	}

	goal := timeutil.Round(opts.DailyGoal.Seconds())

	return &GoalProgress{
		GoalSeconds:      goal,
		TodaySeconds:     secs,
		RemainingSeconds: max(goal-secs, 0),
		Reached:          secs >= goal,
	}
}

// dailyTotals returns one entry per day of the reporting period, including
// days without practice. It returns nil for periods longer than a month.
func dailyTotals(daily map[string]int, opts Opts) []DayTotal {
	if opts.StartTime.IsZero() || opts.EndTime.IsZero() {
		return nil
	}

	start := timeutil.RoundToStart(opts.StartTime)

	var totals []DayTotal

	for d := start; !d.After(opts.EndTime); d = nextDay(d) {
		if len(totals) == maxDailyBreakdown {
			return nil
		}

		key := d.Format(dayLayout)

		totals = append(totals, DayTotal{
			Date:    key,
			Seconds: daily[key],
		})
	}

	return totals
}

// ToJSON returns the statistics as indented JSON.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func formatSeconds(secs int) string {
	d := time.Duration(secs) * time.Second
	if d == 0 {
		return "0 seconds"
	}

	//nolint:mnd // limit to first 2 units
	return durafmt.Parse(d).LimitToUnit("hours").LimitFirstN(2).String()
}

// getSummary retrieves the session summary for the reporting period.
func (s *Stats) getSummary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	timeLogged := fmt.Sprintf(
		"Time practised: %s\n",
		ui.Green(formatSeconds(s.TotalSeconds)),
	)

	sessions := fmt.Sprintln("Sessions:", ui.Green(s.Sessions))
	completed := fmt.Sprintln("Sessions completed:", ui.Green(s.Completed))
	cycles := fmt.Sprintln("Breathing cycles:", ui.Green(s.Cycles))

	return header + timeLogged + sessions + completed + cycles
}

func (s *Stats) getStreaks() string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Streaks"))

	current := fmt.Sprintf("Current streak: %s\n", ui.Green(days(s.CurrentStreak)))
	longest := fmt.Sprintf("Longest streak: %s\n", ui.Green(days(s.LongestStreak)))

	return header + current + longest
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", n)
}

// getExercises retrieves the exercise breakdown for the reporting period.
func (s *Stats) getExercises() string {
	if len(s.Exercises) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Exercises")))

	for _, ex := range s.Exercises {
		builder.WriteString(fmt.Sprintf(
			"%s: %s (%d sessions)\n",
			ex.Name,
			ui.Green(formatSeconds(ex.Seconds)),
			ex.Sessions,
		))
	}

	return builder.String()
}

func (s *Stats) getAchievements() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Achievements")))

	for _, a := range s.Achievements {
		mark := ui.Red("✗")
		if a.Earned {
			mark = ui.Green("✓")
		}

		builder.WriteString(fmt.Sprintf("%s %s: %s\n", mark, a.Name, a.Description))
	}

	return builder.String()
}

func (s *Stats) getDailyGoal() string {
	if s.DailyGoal == nil {
		return ""
	}

	g := s.DailyGoal

	header := fmt.Sprintf("\n%s\n", ui.Blue("Daily goal"))

	progress := fmt.Sprintf(
		"Today: %s of %s\n",
		ui.Green(formatSeconds(g.TodaySeconds)),
		formatSeconds(g.GoalSeconds),
	)

	if g.Reached {
		return header + progress + ui.Green("Daily goal reached") + "\n"
	}

	return header + progress + fmt.Sprintf(
		"%s more to reach your daily goal\n",
		ui.Yellow(formatSeconds(g.RemainingSeconds)),
	)
}

func (s *Stats) getBarChart() string {
	if len(s.Daily) == 0 {
		return ""
	}

	header := ui.Blue("\nDaily breakdown (minutes)")

	bars := make(pterm.Bars, 0, len(s.Daily))

	for _, d := range s.Daily {
		date, err := time.Parse(dayLayout, d.Date)
		if err != nil {
			continue
		}

		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(float64(d.Seconds) / 60),
			Label: date.Format("Jan 02, 2006"),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// Render writes the statistics to w.
func (s *Stats) Render(w io.Writer) {
	if s.Sessions == 0 {
		pterm.Info.Println(noSessionsMsg)
	}

	reportingStart := s.StartTime.Format("January 02, 2006")
	reportingEnd := s.EndTime.Format("January 02, 2006")
	timePeriod := "Reporting period: " + reportingStart + " - " + reportingEnd

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	output := fmt.Sprint(
		header,
		s.getSummary(),
		s.getStreaks(),
		s.getDailyGoal(),
		s.getExercises(),
		s.getAchievements(),
		s.getBarChart(),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}
