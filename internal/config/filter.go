package config

import (
	"slices"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/timeutil"
)

// FilterConfig represents a configuration to filter recorded sessions by
// their start time and exercise.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Exercises []string
}

// FilterOptions are the raw filter flags.
type FilterOptions struct {
	Period   string
	Start    string
	End      string
	Exercise string
}

// Filter initializes and returns a configuration to filter sessions from
// command-line arguments.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	opts := FilterOptions{
		Period:   ctx.String("period"),
		Start:    ctx.String("start"),
		End:      ctx.String("end"),
		Exercise: ctx.String("exercise"),
	}

	return NewFilter(opts, time.Now())
}

// NewFilter builds a filter relative to now. Without a period or start date
// it covers the last 7 days.
func NewFilter(opts FilterOptions, now time.Time) (*FilterConfig, error) {
	filterCfg := &FilterConfig{}

	if opts.Exercise != "" {
		filterCfg.Exercises = splitAndTrim(opts.Exercise)
	}

	period := timeutil.Period(strings.TrimSpace(opts.Period))

	if period != "" && !slices.Contains(timeutil.PeriodCollection, period) {
		return nil, errInvalidPeriod
	}

	if period == "" && opts.Start == "" {
		period = timeutil.Period7Days
	}

	if period != "" {
		filterCfg.StartTime, filterCfg.EndTime = timeutil.TimeRange(period, now)

		return filterCfg, nil
	}

	start, err := parseDate(opts.Start, now)
	if err != nil {
		return nil, err
	}

	filterCfg.StartTime = start

	if now.After(filterCfg.StartTime) {
		filterCfg.EndTime = now
	} else {
		filterCfg.EndTime = timeutil.RoundToEnd(filterCfg.StartTime)
	}

	if opts.End != "" {
		filterCfg.EndTime, err = parseDate(opts.End, now)
		if err != nil {
			return nil, err
		}
	}

	if filterCfg.EndTime.Before(filterCfg.StartTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}

func parseDate(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	split := strings.Split(s, ",")

	trimmed := make([]string, 0, len(split))

	for _, v := range split {
		v = strings.TrimSpace(v)
		if v != "" {
			trimmed = append(trimmed, v)
		}
	}

	return trimmed
}
