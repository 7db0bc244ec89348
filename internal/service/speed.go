package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/metrics"
	"teamhealth/internal/scoring"
	"teamhealth/internal/storage"
)

// EvaluateSpeed вычисляет детерминированную оценку скорости закрытия issue.
// Открытый issue не оценивается и это не ошибка: Evaluated=false без записи слота.
func (s *Service) EvaluateSpeed(outerCtx context.Context, issueID string) (*domain.SpeedEvaluationResult, error) {
	const op = "service.EvaluateSpeed"
	requestID := logger.GetRequestID(outerCtx)
	started := time.Now()

	result := &domain.SpeedEvaluationResult{IssueID: issueID}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		issue, err := tx.IssueRepo().GetByID(ctx, issueID)
		if err != nil {
			return err
		}

		if issue.State != domain.IssueStateClosed || issue.GitHubClosedAt == nil {
			log.Info().
				Str("request_id", requestID).
				Str("layer", "service").
				Str("issue_id", issueID).
				Msg("issue is not closed, speed evaluation skipped")
			return nil
		}

		elapsed := issue.GitHubClosedAt.Sub(issue.GitHubCreatedAt)
		speed, err := scoring.SpeedFromElapsed(elapsed)
		if err != nil {
			if errors.Is(err, scoring.ErrNegativeElapsed) {
				return domain.NewValidationError(err)
			}
			return err
		}

		calculatedAt := time.Now().UTC()
		if err := tx.EvaluationRepo().UpsertSpeed(ctx, issueID, speed.Score, string(speed.Grade), calculatedAt); err != nil {
			return err
		}

		score := speed.Score
		grade := string(speed.Grade)
		elapsedHours := speed.ElapsedHours

		result.Evaluated = true
		result.Score = &score
		result.Grade = &grade
		result.ElapsedHours = &elapsedHours
		return nil
	})
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("speed", "failed").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	outcome := "skipped"
	if result.Evaluated {
		outcome = "evaluated"
	}
	metrics.EvaluationsTotal.WithLabelValues("speed", outcome).Inc()
	metrics.EvaluationDuration.WithLabelValues("speed").Observe(time.Since(started).Seconds())

	if result.Evaluated {
		log.Info().
			Str("request_id", requestID).
			Str("layer", "service").
			Str("issue_id", issueID).
			Int("score", *result.Score).
			Str("grade", *result.Grade).
			Msg("successfully evaluated issue speed")
	}

	return result, nil
}

// GetEvaluation возвращает запись оценок issue
func (s *Service) GetEvaluation(outerCtx context.Context, issueID string) (*domain.Evaluation, error) {
	const op = "service.GetEvaluation"
	var evaluation *domain.Evaluation

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		// Сначала проверяется существование issue, чтобы различать
		// "нет такого issue" и "issue ещё не оценивался"
		if _, err := tx.IssueRepo().GetByID(ctx, issueID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.ErrIssueNotFound
			}
			return err
		}

		var err error
		evaluation, err = tx.EvaluationRepo().GetByIssueID(ctx, issueID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.ErrEvaluationNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return evaluation, nil
}
