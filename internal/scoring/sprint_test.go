package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamhealth/internal/scoring"
)

func mustConfig(t *testing.T, startDay, weeks int, base time.Time) *scoring.SprintConfig {
	t.Helper()
	cfg, err := scoring.NewSprintConfig(startDay, weeks, base)
	require.NoError(t, err)
	return cfg
}

func TestNewSprintConfig_Validation(t *testing.T) {
	base := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	_, err := scoring.NewSprintConfig(-1, 1, base)
	assert.ErrorIs(t, err, scoring.ErrInvalidSprintConfig)

	_, err = scoring.NewSprintConfig(7, 1, base)
	assert.ErrorIs(t, err, scoring.ErrInvalidSprintConfig)

	_, err = scoring.NewSprintConfig(6, 0, base)
	assert.ErrorIs(t, err, scoring.ErrInvalidSprintConfig)

	_, err = scoring.NewSprintConfig(6, 1, time.Time{})
	assert.ErrorIs(t, err, scoring.ErrInvalidSprintConfig)
}

func TestSprintStartDate_RollsBackToStartDay(t *testing.T) {
	// Спринты начинаются в субботу (weekday 6)
	cfg := mustConfig(t, 6, 1, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))

	// Среда 10 января откатывается к субботе 6 января
	start := cfg.SprintStartDate(time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), start)

	// Дата уже приходится на субботу - откат на 0 дней, только нормализация к полуночи
	start = cfg.SprintStartDate(time.Date(2024, 1, 6, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), start)
}

func TestSprintNumberFor_WeeklySaturdaySprints(t *testing.T) {
	// База - суббота 6 января 2024, спринты по одной неделе
	cfg := mustConfig(t, 6, 1, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		date   time.Time
		number int
	}{
		{date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), number: 1},
		{date: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), number: 1},
		{date: time.Date(2024, 1, 12, 23, 59, 59, 0, time.UTC), number: 1},
		{date: time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), number: 2},
		{date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), number: 3},
		// Даты раньше базового спринта дают нулевой или отрицательный номер
		{date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), number: 0},
		{date: time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC), number: -2},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.number, cfg.SprintNumberFor(tc.date).Int(), "date %s", tc.date)
	}
}

func TestSprintPeriodFor_MatchesNumber(t *testing.T) {
	cfg := mustConfig(t, 6, 1, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))

	period, err := cfg.SprintPeriodFor(scoring.NewSprintNumberAllowPast(1))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), period.Start)
	// Конец периода - последняя наносекунда пятницы 12 января
	assert.Equal(t, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), period.End)
}

// Свойство согласованности: дата всегда попадает в период спринта со своим номером
func TestSprintNumberAndPeriod_Consistent(t *testing.T) {
	cfg := mustConfig(t, 1, 2, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))

	date := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		number := cfg.SprintNumberFor(date)
		period, err := cfg.SprintPeriodFor(number)
		require.NoError(t, err)
		assert.True(t, period.Contains(date), "date %s must fall into sprint %d period [%s, %s]",
			date, number.Int(), period.Start, period.End)
		date = date.AddDate(0, 0, 1)
	}
}

func TestCurrentSprintAndOffset(t *testing.T) {
	cfg := mustConfig(t, 6, 1, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

	current, err := cfg.CurrentSprint(now)
	require.NoError(t, err)
	assert.Equal(t, 2, current.Number.Int())
	assert.True(t, current.IsCurrent)
	assert.True(t, current.Period.Contains(now))

	previous, err := cfg.SprintWithOffset(now, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, previous.Number.Int())
	assert.False(t, previous.IsCurrent)

	next, err := cfg.SprintWithOffset(now, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, next.Number.Int())
	assert.False(t, next.IsCurrent)
}

func TestNewSprintNumber(t *testing.T) {
	number, err := scoring.NewSprintNumber(1)
	require.NoError(t, err)
	assert.Equal(t, 1, number.Int())

	_, err = scoring.NewSprintNumber(0)
	assert.ErrorIs(t, err, scoring.ErrSprintNumberTooSmall)

	// Для прошлых дат допустимы номера меньше 1
	assert.Equal(t, -3, scoring.NewSprintNumberAllowPast(-3).Int())
}

func TestNewSprintPeriod_Invalid(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	_, err := scoring.NewSprintPeriod(start, start.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, scoring.ErrInvalidSprintPeriod)
}
