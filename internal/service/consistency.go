package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/metrics"
	"teamhealth/internal/scoring"
	"teamhealth/internal/storage"
)

// JSON Schema structured output оценки согласованности issue и связанных PR
const consistencySchema = `{
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
		"overall_feedback": {"type": "string"}
	},
	"required": ["categories", "overall_feedback"],
	"additionalProperties": false
}`

// consistencyResponse - форма ответа scoring-сервиса на запрос оценки согласованности
type consistencyResponse struct {
	Categories      []domain.CategoryResult `json:"categories"`
	OverallFeedback string                  `json:"overall_feedback"`
}

// EvaluateConsistency вычисляет AI-оценку согласованности issue и связанных PR.
// Issue без связанных PR пропускается без обращения к scoring-сервису:
// Skipped=true с причиной, это не ошибка.
func (s *Service) EvaluateConsistency(outerCtx context.Context, issueID string) (*domain.ConsistencyEvaluationResult, error) {
	const op = "service.EvaluateConsistency"
	requestID := logger.GetRequestID(outerCtx)
	started := time.Now()

	var (
		issue        *domain.Issue
		pullRequests []domain.PullRequest
	)
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		issue, err = tx.IssueRepo().GetByID(ctx, issueID)
		if err != nil {
			return err
		}
		pullRequests, err = tx.PullRequestRepo().ListByIssue(ctx, issueID)
		return err
	})
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("consistency", "failed").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	if len(pullRequests) == 0 {
		metrics.EvaluationsTotal.WithLabelValues("consistency", "skipped").Inc()
		log.Info().
			Str("request_id", requestID).
			Str("layer", "service").
			Str("issue_id", issueID).
			Msg("issue has no linked pull requests, consistency evaluation skipped")
		return &domain.ConsistencyEvaluationResult{
			IssueID:    issueID,
			Skipped:    true,
			SkipReason: "no linked pull requests",
		}, nil
	}

	raw, err := s.scoring.GenerateStructured(outerCtx, &domain.StructuredOutputRequest{
		Name:        "issue_consistency",
		Schema:      json.RawMessage(consistencySchema),
		Prompt:      buildConsistencyPrompt(issue, pullRequests),
		Temperature: scoringTemperature,
		MaxTokens:   scoringMaxTokens,
	})
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("consistency", "failed").Inc()
		return nil, domain.WrapError(err, domain.ErrEvaluationFailed.Status, domain.ErrorCodeEvaluationFailed,
			"scoring service request failed")
	}

	var answer consistencyResponse
	if err := json.Unmarshal(raw, &answer); err != nil {
		metrics.EvaluationsTotal.WithLabelValues("consistency", "failed").Inc()
		return nil, domain.WrapError(err, domain.ErrEvaluationFailed.Status, domain.ErrorCodeEvaluationFailed,
			"scoring service returned malformed response")
	}

	categories, total, err := normalizeCategories(scoring.ConsistencyRubric, answer.Categories)
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("consistency", "failed").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	prIDs := make([]string, 0, len(pullRequests))
	for _, pr := range pullRequests {
		prIDs = append(prIDs, pr.ID)
	}

	detail := domain.ConsistencyDetail{
		Categories:      categories,
		OverallFeedback: answer.OverallFeedback,
		PullRequestIDs:  prIDs,
	}

	detailJSON, err := json.Marshal(detail)
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("consistency", "failed").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	grade := string(total.GradeOf())
	calculatedAt := time.Now().UTC()

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		return tx.EvaluationRepo().UpsertConsistency(ctx, issueID, total.Int(), grade, detailJSON, calculatedAt)
	})
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("consistency", "failed").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.EvaluationsTotal.WithLabelValues("consistency", "evaluated").Inc()
	metrics.EvaluationDuration.WithLabelValues("consistency").Observe(time.Since(started).Seconds())

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("issue_id", issueID).
		Int("score", total.Int()).
		Str("grade", grade).
		Int("pull_requests_count", len(pullRequests)).
		Msg("successfully evaluated issue consistency")

	score := total.Int()
	return &domain.ConsistencyEvaluationResult{
		IssueID: issueID,
		Score:   &score,
		Grade:   &grade,
		Detail:  &detail,
	}, nil
}

// buildConsistencyPrompt собирает промпт оценки согласованности
// из рубрики, текста issue и сводки связанных PR
func buildConsistencyPrompt(issue *domain.Issue, pullRequests []domain.PullRequest) string {
	var b strings.Builder
	b.WriteString("You are reviewing whether pull requests match the GitHub issue they close.\n")
	writeRubric(&b, scoring.ConsistencyRubric)
	writeIssue(&b, issue)

	b.WriteString("\nLinked pull requests:\n")
	for _, pr := range pullRequests {
		fmt.Fprintf(&b, "\nPR #%d\nTitle: %s\nState: %s\n", pr.GitHubNumber, pr.Title, pr.State)
		fmt.Fprintf(&b, "Changes: +%d -%d across %d files\n", pr.Additions, pr.Deletions, pr.ChangedFiles)
		if pr.MergedAt != nil {
			fmt.Fprintf(&b, "Merged at: %s\n", pr.MergedAt.Format(time.RFC3339))
		}
		if strings.TrimSpace(pr.Body) == "" {
			b.WriteString("Description: (empty)\n")
		} else {
			fmt.Fprintf(&b, "Description:\n%s\n", pr.Body)
		}
	}

	b.WriteString("\nFor every category return its name, an integer score and a one-sentence feedback.\n")
	b.WriteString("Also return overall_feedback summarizing how consistent the work is.\n")
	return b.String()
}
