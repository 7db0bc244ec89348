package scoring

import (
	"fmt"
	"time"
)

// Шкала скорости закрытия issue. Это открытая четырёхуровневая шкала со значениями
// 120/100/70/40 - она НЕ совпадает со шкалой Score [0, 100] и не должна с ней смешиваться.
type speedTier struct {
	maxHours float64
	score    int
	grade    Grade
}

// Уровни перебираются в порядке возрастания maxHours, берётся первый подходящий
var speedTiers = []speedTier{
	{maxHours: 24, score: 120, grade: GradeS},
	{maxHours: 72, score: 100, grade: GradeA},
	{maxHours: 120, score: 70, grade: GradeB},
}

// Уровень по умолчанию для issue, закрытых дольше 120 часов
var speedFallbackTier = speedTier{score: 40, grade: GradeC}

// SpeedResult - результат детерминированной оценки скорости
type SpeedResult struct {
	Score        int
	Grade        Grade
	ElapsedHours float64
}

// SpeedFromElapsed вычисляет балл скорости по времени от создания до закрытия issue.
// Отрицательное время - ошибка валидации, без молчаливого clamp.
func SpeedFromElapsed(elapsed time.Duration) (*SpeedResult, error) {
	if elapsed < 0 {
		return nil, fmt.Errorf("%w: got %s", ErrNegativeElapsed, elapsed)
	}

	hours := elapsed.Hours()
	for _, tier := range speedTiers {
		if hours <= tier.maxHours {
			return &SpeedResult{Score: tier.score, Grade: tier.grade, ElapsedHours: hours}, nil
		}
	}

	return &SpeedResult{
		Score:        speedFallbackTier.score,
		Grade:        speedFallbackTier.grade,
		ElapsedHours: hours,
	}, nil
}

// Шкала lead time в днях - отдельная пятиуровневая метрика.
// Баллы этой шкалы не маппятся на буквенные оценки шкалы скорости.
type leadTimeTier struct {
	maxDays float64
	score   int
}

var leadTimeTiers = []leadTimeTier{
	{maxDays: 2, score: 100},
	{maxDays: 3, score: 80},
	{maxDays: 4, score: 60},
	{maxDays: 5, score: 40},
}

const leadTimeFallbackScore = 20

// LeadTimeFromElapsed вычисляет балл lead time по времени жизни issue в днях
func LeadTimeFromElapsed(elapsed time.Duration) (int, error) {
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: got %s", ErrNegativeElapsed, elapsed)
	}

	days := elapsed.Hours() / 24
	for _, tier := range leadTimeTiers {
		if days <= tier.maxDays {
			return tier.score, nil
		}
	}
	return leadTimeFallbackScore, nil
}
