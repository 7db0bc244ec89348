package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/metrics"
	"teamhealth/internal/scoring"
	"teamhealth/internal/storage"
)

// JSON Schema structured output оценки качества: модель обязана вернуть
// баллы по категориям, общий комментарий и конкретные предложения
const qualitySchema = `{
	"type": "object",
	"properties": {
		"categories": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"score": {"type": "integer"},
					"feedback": {"type": "string"}
				},
				"required": ["name", "score", "feedback"],
				"additionalProperties": false
			}
		},
		"overall_feedback": {"type": "string"},
		"suggestions": {
			"type": "array",
			"items": {"type": "string"},
			"maxItems": 3
		}
	},
	"required": ["categories", "overall_feedback", "suggestions"],
	"additionalProperties": false
}`

// maxQualitySuggestions - сколько предложений по улучшению сохраняется в детализации
const maxQualitySuggestions = 3

// qualityResponse - форма ответа scoring-сервиса на запрос оценки качества
type qualityResponse struct {
	Categories      []domain.CategoryResult `json:"categories"`
	OverallFeedback string                  `json:"overall_feedback"`
	Suggestions     []string                `json:"suggestions"`
}

// EvaluateQuality вычисляет AI-оценку качества описания issue.
// Ответ модели не принимается на веру: баллы по категориям зажимаются
// в пределы весов, пропущенная категория получает ноль.
func (s *Service) EvaluateQuality(outerCtx context.Context, issueID string) (*domain.QualityEvaluationResult, error) {
	const op = "service.EvaluateQuality"
	requestID := logger.GetRequestID(outerCtx)
	started := time.Now()

	var issue *domain.Issue
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		issue, err = tx.IssueRepo().GetByID(ctx, issueID)
		return err
	})
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("quality", "failed").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	raw, err := s.scoring.GenerateStructured(outerCtx, &domain.StructuredOutputRequest{
		Name:        "issue_quality",
		Schema:      json.RawMessage(qualitySchema),
		Prompt:      buildQualityPrompt(issue),
		Temperature: scoringTemperature,
		MaxTokens:   scoringMaxTokens,
	})
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("quality", "failed").Inc()
		return nil, domain.WrapError(err, domain.ErrEvaluationFailed.Status, domain.ErrorCodeEvaluationFailed,
			"scoring service request failed")
	}

	var answer qualityResponse
	if err := json.Unmarshal(raw, &answer); err != nil {
		metrics.EvaluationsTotal.WithLabelValues("quality", "failed").Inc()
		return nil, domain.WrapError(err, domain.ErrEvaluationFailed.Status, domain.ErrorCodeEvaluationFailed,
			"scoring service returned malformed response")
	}

	categories, total, err := normalizeCategories(scoring.QualityRubric, answer.Categories)
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("quality", "failed").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	// Схема ограничивает suggestions тремя элементами, но ответ модели
	// не принимается на веру и обрезается и здесь
	suggestions := answer.Suggestions
	if len(suggestions) > maxQualitySuggestions {
		suggestions = suggestions[:maxQualitySuggestions]
	}

	detail := domain.QualityDetail{
		Categories:      categories,
		OverallFeedback: answer.OverallFeedback,
		Suggestions:     suggestions,
	}

	detailJSON, err := json.Marshal(detail)
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("quality", "failed").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	grade := string(total.GradeOf())
	calculatedAt := time.Now().UTC()

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		return tx.EvaluationRepo().UpsertQuality(ctx, issueID, total.Int(), grade, detailJSON, calculatedAt)
	})
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("quality", "failed").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.EvaluationsTotal.WithLabelValues("quality", "evaluated").Inc()
	metrics.EvaluationDuration.WithLabelValues("quality").Observe(time.Since(started).Seconds())

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("issue_id", issueID).
		Int("score", total.Int()).
		Str("grade", grade).
		Msg("successfully evaluated issue quality")

	return &domain.QualityEvaluationResult{
		IssueID: issueID,
		Score:   total.Int(),
		Grade:   grade,
		Detail:  detail,
	}, nil
}

// buildQualityPrompt собирает промпт оценки качества из рубрики и текста issue
func buildQualityPrompt(issue *domain.Issue) string {
	var b strings.Builder
	b.WriteString("You are reviewing how well a GitHub issue is written.\n")
	writeRubric(&b, scoring.QualityRubric)
	writeIssue(&b, issue)
	b.WriteString("\nFor every category return its name, an integer score and a one-sentence feedback.\n")
	b.WriteString("Also return overall_feedback and up to three concrete suggestions for the author.\n")
	return b.String()
}
