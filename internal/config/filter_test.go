package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filterNow = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.Local)

func TestFilterDefaultsToSevenDays(t *testing.T) {
	cfg, err := NewFilter(FilterOptions{}, filterNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local), cfg.StartTime)
	assert.Equal(t, time.Date(2024, time.March, 10, 23, 59, 59, 0, time.Local), cfg.EndTime)
	assert.Empty(t, cfg.Exercises)
}

func TestFilterPeriod(t *testing.T) {
	cfg, err := NewFilter(FilterOptions{
		Period:   "today",
		Exercise: "Box Breathing, Body Scan,",
	}, filterNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local), cfg.StartTime)
	assert.Equal(t, []string{"Box Breathing", "Body Scan"}, cfg.Exercises)
}

func TestFilterInvalidPeriod(t *testing.T) {
	_, err := NewFilter(FilterOptions{Period: "fortnight"}, filterNow)

	assert.ErrorIs(t, err, errInvalidPeriod)
}

func TestFilterDates(t *testing.T) {
	cfg, err := NewFilter(FilterOptions{
		Start: "2024-03-01",
		End:   "2024-03-05",
	}, filterNow)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.StartTime.Day())
	assert.Equal(t, time.March, cfg.StartTime.Month())
	assert.Equal(t, 5, cfg.EndTime.Day())
}

func TestFilterStartOnlyEndsNow(t *testing.T) {
	cfg, err := NewFilter(FilterOptions{Start: "2024-03-01"}, filterNow)
	require.NoError(t, err)

	assert.Equal(t, filterNow, cfg.EndTime)
}

func TestFilterInvalidRange(t *testing.T) {
	_, err := NewFilter(FilterOptions{
		Start: "2024-03-05",
		End:   "2024-03-01",
	}, filterNow)

	assert.ErrorIs(t, err, errInvalidDateRange)
}

func TestFilterUnparseableDate(t *testing.T) {
	_, err := NewFilter(FilterOptions{Start: "not a date at all"}, filterNow)

	assert.ErrorIs(t, err, errInvalidDate)
}
