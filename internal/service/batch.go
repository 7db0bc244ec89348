package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/storage"
)

// Число параллельных воркеров батч-оценки; выше поднимать осторожно -
// каждая AI-оценка это отдельный запрос к scoring-сервису
const batchWorkers = 3

// EvaluateRepository прогоняет выбранные виды оценок по всем issues репозитория.
// Ошибка оценки одного issue не прерывает батч: исходы собираются поштучно
// и агрегируются в счётчики evaluated/skipped/failed.
func (s *Service) EvaluateRepository(outerCtx context.Context, input *domain.BatchEvaluationInput) (*domain.BatchEvaluationResult, error) {
	const op = "service.EvaluateRepository"
	requestID := logger.GetRequestID(outerCtx)

	kinds, err := normalizeKinds(input.Kinds)
	if err != nil {
		return nil, domain.NewValidationError(err)
	}

	repo, err := s.loadRepository(outerCtx, op, input.RepositoryID)
	if err != nil {
		return nil, err
	}

	var issues []domain.Issue
	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		issues, err = tx.IssueRepo().ListByRepository(ctx, repo.ID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("repository_id", repo.ID).
		Int("issues_count", len(issues)).
		Int("kinds_count", len(kinds)).
		Msg("starting batch evaluation")

	var (
		mu    sync.Mutex
		items []domain.BatchItemResult
	)

	jobs := make(chan domain.Issue)
	var wg sync.WaitGroup

	for w := 0; w < batchWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for issue := range jobs {
				for _, kind := range kinds {
					item := s.evaluateOne(outerCtx, issue, kind)
					mu.Lock()
					items = append(items, item)
					mu.Unlock()
				}
			}
		}()
	}

	for _, issue := range issues {
		jobs <- issue
	}
	close(jobs)
	wg.Wait()

	// Детерминированный порядок для пагинации глазами: по номеру issue, затем по виду
	sort.Slice(items, func(i, j int) bool {
		if items[i].GitHubNumber != items[j].GitHubNumber {
			return items[i].GitHubNumber < items[j].GitHubNumber
		}
		return items[i].Kind < items[j].Kind
	})

	result := &domain.BatchEvaluationResult{
		RepositoryID: repo.ID,
		Items:        items,
	}
	for _, item := range items {
		switch item.Outcome {
		case domain.EvaluationOutcomeEvaluated:
			result.Evaluated++
		case domain.EvaluationOutcomeSkipped:
			result.Skipped++
		case domain.EvaluationOutcomeFailed:
			result.Failed++
		}
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("repository_id", repo.ID).
		Int("evaluated", result.Evaluated).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("finished batch evaluation")

	return result, nil
}

// evaluateOne выполняет одну оценку одного issue и классифицирует исход
func (s *Service) evaluateOne(ctx context.Context, issue domain.Issue, kind domain.EvaluationKind) domain.BatchItemResult {
	item := domain.BatchItemResult{
		IssueID:      issue.ID,
		GitHubNumber: issue.GitHubNumber,
		Kind:         kind,
	}

	switch kind {
	case domain.EvaluationKindSpeed:
		result, err := s.EvaluateSpeed(ctx, issue.ID)
		switch {
		case err != nil:
			item.Outcome = domain.EvaluationOutcomeFailed
			item.Reason = err.Error()
		case !result.Evaluated:
			item.Outcome = domain.EvaluationOutcomeSkipped
			item.Reason = "issue is not closed"
		default:
			item.Outcome = domain.EvaluationOutcomeEvaluated
		}

	case domain.EvaluationKindQuality:
		_, err := s.EvaluateQuality(ctx, issue.ID)
		if err != nil {
			item.Outcome = domain.EvaluationOutcomeFailed
			item.Reason = err.Error()
		} else {
			item.Outcome = domain.EvaluationOutcomeEvaluated
		}

	case domain.EvaluationKindConsistency:
		result, err := s.EvaluateConsistency(ctx, issue.ID)
		switch {
		case err != nil:
			item.Outcome = domain.EvaluationOutcomeFailed
			item.Reason = err.Error()
		case result.Skipped:
			item.Outcome = domain.EvaluationOutcomeSkipped
			item.Reason = result.SkipReason
		default:
			item.Outcome = domain.EvaluationOutcomeEvaluated
		}
	}

	return item
}

// normalizeKinds валидирует запрошенные виды оценок; пустой список означает все три
func normalizeKinds(kinds []domain.EvaluationKind) ([]domain.EvaluationKind, error) {
	if len(kinds) == 0 {
		return []domain.EvaluationKind{
			domain.EvaluationKindSpeed,
			domain.EvaluationKindQuality,
			domain.EvaluationKindConsistency,
		}, nil
	}

	seen := make(map[domain.EvaluationKind]bool, len(kinds))
	normalized := make([]domain.EvaluationKind, 0, len(kinds))
	for _, kind := range kinds {
		switch kind {
		case domain.EvaluationKindSpeed, domain.EvaluationKindQuality, domain.EvaluationKindConsistency:
		default:
			return nil, fmt.Errorf("unknown evaluation kind %q", kind)
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		normalized = append(normalized, kind)
	}

	return normalized, nil
}
