package scoring

import (
	"errors"
	"fmt"
)

// Ошибки валидации value objects. Это всегда ошибка программиста или конфигурации,
// ретраи не имеют смысла.
var (
	// ErrScoreOutOfRange возвращается для score вне диапазона [0, 100]
	ErrScoreOutOfRange = errors.New("score must be in range [0, 100]")

	// ErrNegativeElapsed возвращается когда issue закрыт раньше, чем создан
	ErrNegativeElapsed = errors.New("elapsed time must not be negative")

	// ErrCategoryCountMismatch возвращается при несовпадении количества категорий и весов
	ErrCategoryCountMismatch = errors.New("category scores count does not match weights count")

	// ErrInvalidDeduction возвращается для вычета с отрицательными баллами или пустой причиной
	ErrInvalidDeduction = errors.New("deduction must have non-negative points and a non-empty reason")
)

// Score - итоговый балл оценки в диапазоне [0, 100]
type Score int

// NewScore создаёт Score с валидацией диапазона
func NewScore(value int) (Score, error) {
	if value < 0 || value > 100 {
		return 0, fmt.Errorf("%w: got %d", ErrScoreOutOfRange, value)
	}
	return Score(value), nil
}

// Int возвращает числовое значение балла
func (s Score) Int() int {
	return int(s)
}

// Grade - буквенная оценка, полученная из балла по фиксированной таблице
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

// gradeThreshold - нижняя граница диапазона для буквенной оценки.
// Диапазоны покрывают [0, 100] полностью, без разрывов и пересечений.
type gradeThreshold struct {
	min   int
	grade Grade
}

// Таблица для шкалы [0, 100]: A 81-100, B 61-80, C 41-60, D 21-40, E 0-20
var fiveTierTable = []gradeThreshold{
	{min: 81, grade: GradeA},
	{min: 61, grade: GradeB},
	{min: 41, grade: GradeC},
	{min: 21, grade: GradeD},
	{min: 0, grade: GradeE},
}

// GradeOf возвращает буквенную оценку по пятиуровневой таблице
func (s Score) GradeOf() Grade {
	for _, t := range fiveTierTable {
		if int(s) >= t.min {
			return t.grade
		}
	}
	return GradeE
}

// ClampCategoryScore приводит балл категории в диапазон [0, weight]
func ClampCategoryScore(value, weight int) int {
	if value < 0 {
		return 0
	}
	if value > weight {
		return weight
	}
	return value
}

// ScoreFromCategories нормализует баллы по категориям: каждый балл ограничивается
// весом своей категории, сумма ограничивается сверху значением 100.
// Никогда не возвращает ошибку диапазона - только несоответствие длин.
func ScoreFromCategories(values []int, weights []int) (Score, error) {
	if len(values) != len(weights) {
		return 0, fmt.Errorf("%w: %d values, %d weights", ErrCategoryCountMismatch, len(values), len(weights))
	}

	total := 0
	for i, v := range values {
		total += ClampCategoryScore(v, weights[i])
	}
	if total > 100 {
		total = 100
	}

	return Score(total), nil
}

// Deduction - отдельный вычет для вычитательного представления consistency-оценки
type Deduction struct {
	Points int
	Reason string
}

// ScoreFromDeductions сворачивает вычеты в каноническую Score: старт со 100,
// каждый вычет уменьшает балл, результат не опускается ниже 0.
// Представление через вычеты - view поверх той же шкалы и той же таблицы оценок.
func ScoreFromDeductions(deductions []Deduction) (Score, error) {
	total := 100
	for _, d := range deductions {
		if d.Points < 0 || d.Reason == "" {
			return 0, fmt.Errorf("%w: points=%d reason=%q", ErrInvalidDeduction, d.Points, d.Reason)
		}
		total -= d.Points
	}
	if total < 0 {
		total = 0
	}
	return Score(total), nil
}
