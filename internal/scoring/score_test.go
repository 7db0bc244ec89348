package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamhealth/internal/scoring"
)

func TestNewScore_Range(t *testing.T) {
	for _, value := range []int{0, 1, 50, 100} {
		score, err := scoring.NewScore(value)
		require.NoError(t, err)
		assert.Equal(t, value, score.Int())
	}

	for _, value := range []int{-1, 101, 1000} {
		_, err := scoring.NewScore(value)
		assert.ErrorIs(t, err, scoring.ErrScoreOutOfRange)
	}
}

func TestGradeOf_FiveTierTable(t *testing.T) {
	cases := []struct {
		score int
		grade scoring.Grade
	}{
		{score: 100, grade: scoring.GradeA},
		{score: 81, grade: scoring.GradeA},
		{score: 80, grade: scoring.GradeB},
		{score: 61, grade: scoring.GradeB},
		{score: 60, grade: scoring.GradeC},
		{score: 41, grade: scoring.GradeC},
		{score: 40, grade: scoring.GradeD},
		{score: 21, grade: scoring.GradeD},
		{score: 20, grade: scoring.GradeE},
		{score: 0, grade: scoring.GradeE},
	}

	for _, tc := range cases {
		score, err := scoring.NewScore(tc.score)
		require.NoError(t, err)
		assert.Equal(t, tc.grade, score.GradeOf(), "score %d", tc.score)
	}
}

func TestSpeedFromElapsed_Tiers(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		score   int
		grade   scoring.Grade
	}{
		{name: "within a day", elapsed: 23 * time.Hour, score: 120, grade: scoring.GradeS},
		{name: "exactly 24 hours", elapsed: 24 * time.Hour, score: 120, grade: scoring.GradeS},
		{name: "just over 24 hours", elapsed: 24*time.Hour + time.Minute, score: 100, grade: scoring.GradeA},
		{name: "exactly 72 hours", elapsed: 72 * time.Hour, score: 100, grade: scoring.GradeA},
		{name: "within 5 days", elapsed: 100 * time.Hour, score: 70, grade: scoring.GradeB},
		{name: "exactly 120 hours", elapsed: 120 * time.Hour, score: 70, grade: scoring.GradeB},
		{name: "nine days", elapsed: 216 * time.Hour, score: 40, grade: scoring.GradeC},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := scoring.SpeedFromElapsed(tc.elapsed)
			require.NoError(t, err)
			assert.Equal(t, tc.score, result.Score)
			assert.Equal(t, tc.grade, result.Grade)
			assert.InDelta(t, tc.elapsed.Hours(), result.ElapsedHours, 0.001)
		})
	}
}

func TestSpeedFromElapsed_Negative(t *testing.T) {
	_, err := scoring.SpeedFromElapsed(-time.Hour)
	assert.ErrorIs(t, err, scoring.ErrNegativeElapsed)
}

// Более быстрое закрытие никогда не даёт меньший балл
func TestSpeedFromElapsed_Monotonic(t *testing.T) {
	previous := 1000
	for hours := 0; hours <= 300; hours += 6 {
		result, err := scoring.SpeedFromElapsed(time.Duration(hours) * time.Hour)
		require.NoError(t, err)
		assert.LessOrEqual(t, result.Score, previous, "score must not grow with elapsed hours")
		previous = result.Score
	}
}

func TestLeadTimeFromElapsed_DayTiers(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		score   int
	}{
		{elapsed: 12 * time.Hour, score: 100},
		{elapsed: 48 * time.Hour, score: 100},
		{elapsed: 49 * time.Hour, score: 80},
		{elapsed: 72 * time.Hour, score: 80},
		{elapsed: 96 * time.Hour, score: 60},
		{elapsed: 120 * time.Hour, score: 40},
		{elapsed: 240 * time.Hour, score: 20},
	}

	for _, tc := range cases {
		score, err := scoring.LeadTimeFromElapsed(tc.elapsed)
		require.NoError(t, err)
		assert.Equal(t, tc.score, score, "elapsed %s", tc.elapsed)
	}

	_, err := scoring.LeadTimeFromElapsed(-time.Minute)
	assert.ErrorIs(t, err, scoring.ErrNegativeElapsed)
}

func TestScoreFromCategories(t *testing.T) {
	weights := scoring.Weights(scoring.QualityRubric)
	require.Equal(t, []int{25, 25, 30, 20}, weights)

	// Обычный случай: сумма баллов по категориям
	score, err := scoring.ScoreFromCategories([]int{20, 18, 25, 15}, weights)
	require.NoError(t, err)
	assert.Equal(t, 78, score.Int())
	assert.Equal(t, scoring.GradeB, score.GradeOf())

	// Баллы выше весов зажимаются, итог не превышает 100
	score, err = scoring.ScoreFromCategories([]int{100, 100, 100, 100}, weights)
	require.NoError(t, err)
	assert.Equal(t, 100, score.Int())

	// Отрицательные баллы зажимаются в ноль
	score, err = scoring.ScoreFromCategories([]int{-5, 25, 30, 20}, weights)
	require.NoError(t, err)
	assert.Equal(t, 75, score.Int())

	_, err = scoring.ScoreFromCategories([]int{1, 2}, weights)
	assert.ErrorIs(t, err, scoring.ErrCategoryCountMismatch)
}

func TestClampCategoryScore(t *testing.T) {
	assert.Equal(t, 0, scoring.ClampCategoryScore(-3, 25))
	assert.Equal(t, 25, scoring.ClampCategoryScore(40, 25))
	assert.Equal(t, 17, scoring.ClampCategoryScore(17, 25))
}

func TestScoreFromDeductions(t *testing.T) {
	score, err := scoring.ScoreFromDeductions([]scoring.Deduction{
		{Points: 15, Reason: "scope mismatch"},
		{Points: 10, Reason: "missing description"},
	})
	require.NoError(t, err)
	assert.Equal(t, 75, score.Int())

	// Вычеты больше 100 дают 0, не отрицательный балл
	score, err = scoring.ScoreFromDeductions([]scoring.Deduction{
		{Points: 70, Reason: "a"},
		{Points: 70, Reason: "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, score.Int())

	// Пустой список вычетов - максимальный балл
	score, err = scoring.ScoreFromDeductions(nil)
	require.NoError(t, err)
	assert.Equal(t, 100, score.Int())

	_, err = scoring.ScoreFromDeductions([]scoring.Deduction{{Points: -1, Reason: "x"}})
	assert.ErrorIs(t, err, scoring.ErrInvalidDeduction)

	_, err = scoring.ScoreFromDeductions([]scoring.Deduction{{Points: 5, Reason: ""}})
	assert.ErrorIs(t, err, scoring.ErrInvalidDeduction)
}

func TestRubricWeightsSumTo100(t *testing.T) {
	for _, rubric := range [][]scoring.RubricCategory{scoring.QualityRubric, scoring.ConsistencyRubric} {
		sum := 0
		for _, category := range rubric {
			sum += category.Weight
		}
		assert.Equal(t, 100, sum)
	}
}
