package scoring

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidSprintConfig возвращается для конфигурации спринта вне допустимых границ
	ErrInvalidSprintConfig = errors.New("invalid sprint configuration")

	// ErrSprintNumberTooSmall возвращается когда "текущий" номер спринта меньше 1
	ErrSprintNumberTooSmall = errors.New("sprint number must be >= 1")

	// ErrInvalidSprintPeriod возвращается когда конец периода раньше начала
	ErrInvalidSprintPeriod = errors.New("sprint period end must not be before start")
)

// SprintNumber - порядковый номер спринта относительно базовой даты
type SprintNumber int

// NewSprintNumber создаёт номер текущего или будущего спринта, требует значение >= 1
func NewSprintNumber(n int) (SprintNumber, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrSprintNumberTooSmall, n)
	}
	return SprintNumber(n), nil
}

// NewSprintNumberAllowPast создаёт номер спринта без ограничения снизу.
// Нулевые и отрицательные номера допустимы для дат раньше базового спринта.
func NewSprintNumberAllowPast(n int) SprintNumber {
	return SprintNumber(n)
}

// Int возвращает числовое значение номера спринта
func (n SprintNumber) Int() int {
	return int(n)
}

// SprintPeriod - полуинклюзивный по суткам период спринта: [Start 00:00, End конец дня]
type SprintPeriod struct {
	Start time.Time
	End   time.Time
}

// NewSprintPeriod создаёт период с проверкой что конец не раньше начала
func NewSprintPeriod(start, end time.Time) (SprintPeriod, error) {
	if end.Before(start) {
		return SprintPeriod{}, fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidSprintPeriod, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return SprintPeriod{Start: start, End: end}, nil
}

// Contains проверяет попадание даты в период
func (p SprintPeriod) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Sprint - номер спринта вместе с его периодом
type Sprint struct {
	Number    SprintNumber
	Period    SprintPeriod
	IsCurrent bool
}

// SprintConfig - конфигурация расчёта спринтов репозитория
type SprintConfig struct {
	// День недели начала спринта: 0 - воскресенье ... 6 - суббота
	StartDayOfWeek int

	// Длительность спринта в неделях, обычно 1 или 2
	DurationWeeks int

	// Базовая дата, от которой считается спринт номер 1
	BaseDate time.Time
}

// NewSprintConfig создаёт конфигурацию с валидацией границ
func NewSprintConfig(startDayOfWeek, durationWeeks int, baseDate time.Time) (*SprintConfig, error) {
	if startDayOfWeek < 0 || startDayOfWeek > 6 {
		return nil, fmt.Errorf("%w: start day of week must be in [0, 6], got %d",
			ErrInvalidSprintConfig, startDayOfWeek)
	}
	if durationWeeks < 1 {
		return nil, fmt.Errorf("%w: duration must be a positive number of weeks, got %d",
			ErrInvalidSprintConfig, durationWeeks)
	}
	if baseDate.IsZero() {
		return nil, fmt.Errorf("%w: base date is required", ErrInvalidSprintConfig)
	}

	return &SprintConfig{
		StartDayOfWeek: startDayOfWeek,
		DurationWeeks:  durationWeeks,
		BaseDate:       baseDate,
	}, nil
}

// lengthDays возвращает длину спринта в днях
func (c *SprintConfig) lengthDays() int {
	return c.DurationWeeks * 7
}

// SprintStartDate нормализует дату к полуночи и откатывается назад к ближайшему
// StartDayOfWeek. Если дата уже приходится на этот день недели - откат на 0 дней.
func (c *SprintConfig) SprintStartDate(d time.Time) time.Time {
	midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	back := (int(midnight.Weekday()) - c.StartDayOfWeek + 7) % 7
	return midnight.AddDate(0, 0, -back)
}

// SprintNumberFor возвращает номер спринта для даты: количество полных бакетов
// длиной DurationWeeks*7 дней между стартами спринтов базовой даты и d, плюс 1.
// Для дат раньше базового спринта результат может быть нулевым или отрицательным.
func (c *SprintConfig) SprintNumberFor(d time.Time) SprintNumber {
	base := c.SprintStartDate(c.BaseDate)
	start := c.SprintStartDate(d)

	diffDays := int(start.Sub(base).Hours() / 24)
	return NewSprintNumberAllowPast(floorDiv(diffDays, c.lengthDays()) + 1)
}

// SprintPeriodFor возвращает период спринта с данным номером
func (c *SprintConfig) SprintPeriodFor(n SprintNumber) (SprintPeriod, error) {
	base := c.SprintStartDate(c.BaseDate)
	start := base.AddDate(0, 0, (n.Int()-1)*c.lengthDays())
	// Конец периода - последняя наносекунда последнего дня спринта
	end := start.AddDate(0, 0, c.lengthDays()).Add(-time.Nanosecond)
	return NewSprintPeriod(start, end)
}

// CurrentSprint возвращает спринт, в который попадает момент now
func (c *SprintConfig) CurrentSprint(now time.Time) (*Sprint, error) {
	return c.SprintWithOffset(now, 0)
}

// SprintWithOffset возвращает спринт со сдвигом offset относительно текущего.
// IsCurrent вычисляется повторным выводом текущего номера, а не кэшируется.
func (c *SprintConfig) SprintWithOffset(now time.Time, offset int) (*Sprint, error) {
	current, err := NewSprintNumber(c.SprintNumberFor(now).Int())
	if err != nil {
		return nil, err
	}

	number := NewSprintNumberAllowPast(current.Int() + offset)
	period, err := c.SprintPeriodFor(number)
	if err != nil {
		return nil, err
	}

	return &Sprint{
		Number:    number,
		Period:    period,
		IsCurrent: number == c.SprintNumberFor(now),
	}, nil
}

// floorDiv - целочисленное деление с округлением вниз, корректное для отрицательных чисел
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
