package service

import (
	"fmt"
	"strings"

	"teamhealth/internal/domain"
	"teamhealth/internal/scoring"
)

// Параметры запросов к scoring-сервису: низкая температура ради
// воспроизводимости оценок
const (
	scoringTemperature = 0.2
	scoringMaxTokens   = 2000
)

// writeRubric добавляет в промпт описание категорий рубрики с весами
func writeRubric(b *strings.Builder, rubric []scoring.RubricCategory) {
	b.WriteString("Score each category from 0 to its maximum weight:\n")
	for _, category := range rubric {
		fmt.Fprintf(b, "- %s (max %d points): %s\n", category.Name, category.Weight, category.Guidance)
	}
}

// writeIssue добавляет в промпт заголовок и тело issue
func writeIssue(b *strings.Builder, issue *domain.Issue) {
	fmt.Fprintf(b, "\nIssue #%d\nTitle: %s\n", issue.GitHubNumber, issue.Title)
	if strings.TrimSpace(issue.Body) == "" {
		b.WriteString("Body: (empty)\n")
	} else {
		fmt.Fprintf(b, "Body:\n%s\n", issue.Body)
	}
}

// normalizeCategories приводит ответ модели к форме рубрики:
// категории упорядочиваются как в рубрике, баллы зажимаются в [0, вес],
// а отсутствующая в ответе категория получает 0 баллов вместо ошибки
func normalizeCategories(rubric []scoring.RubricCategory, answered []domain.CategoryResult) ([]domain.CategoryResult, scoring.Score, error) {
	byName := make(map[string]domain.CategoryResult, len(answered))
	for _, c := range answered {
		byName[c.Name] = c
	}

	normalized := make([]domain.CategoryResult, 0, len(rubric))
	values := make([]int, 0, len(rubric))
	for _, category := range rubric {
		result, ok := byName[category.Name]
		if !ok {
			result = domain.CategoryResult{
				Name:     category.Name,
				Feedback: "could not be evaluated",
			}
		}
		result.Name = category.Name
		result.Score = scoring.ClampCategoryScore(result.Score, category.Weight)

		normalized = append(normalized, result)
		values = append(values, result.Score)
	}

	total, err := scoring.ScoreFromCategories(values, scoring.Weights(rubric))
	if err != nil {
		return nil, 0, err
	}

	return normalized, total, nil
}
