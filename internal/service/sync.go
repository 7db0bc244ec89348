package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/metrics"
	"teamhealth/internal/scoring"
	"teamhealth/internal/storage"
)

// SyncIssues синхронизирует issues репозитория начиная с input.Since (nil - все).
// Watermark продвигается в одной транзакции с записью батча: момент берётся
// до выборки, так что при откате транзакции точка отсчёта не теряется.
func (s *Service) SyncIssues(outerCtx context.Context, input *domain.SyncIssuesInput) (*domain.SyncIssuesResult, error) {
	const op = "service.SyncIssues"
	requestID := logger.GetRequestID(outerCtx)
	started := time.Now()

	repo, err := s.loadRepository(outerCtx, op, input.RepositoryID)
	if err != nil {
		return nil, err
	}

	sprintCfg, err := scoring.NewSprintConfig(repo.SprintStartDayOfWeek, repo.SprintDurationWeeks, repo.TrackingStartDate)
	if err != nil {
		return nil, domain.NewValidationError(err)
	}

	watermark := syncInstant()

	remoteIssues, err := s.github.GetIssues(outerCtx, repo.Owner, repo.Name, input.Since)
	if err != nil {
		metrics.SyncFailuresTotal.WithLabelValues("issues").Inc()
		return nil, domain.WrapError(err, domain.ErrGitHubFetch.Status, domain.ErrorCodeGitHubFetchFailed,
			"failed to fetch issues from GitHub")
	}

	result := &domain.SyncIssuesResult{RepositoryID: repo.ID}

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		collaborators, err := tx.CollaboratorRepo().ListByRepository(ctx, repo.ID)
		if err != nil {
			return err
		}
		logins := collaboratorLoginIndex(collaborators)

		issues := make([]domain.Issue, 0, len(remoteIssues))
		for _, remote := range remoteIssues {
			// Эндпоинт issues отдаёт и pull request'ы - их синхронизирует SyncPullRequests
			if remote.IsPullRequest {
				continue
			}
			if remote.CreatedAt.Before(repo.TrackingStartDate) {
				continue
			}

			state := domain.IssueStateOpen
			if remote.State == "closed" {
				state = domain.IssueStateClosed
			}

			issues = append(issues, domain.Issue{
				ID:              uuid.New().String(),
				RepositoryID:    repo.ID,
				GitHubNumber:    remote.Number,
				Title:           remote.Title,
				Body:            remote.Body,
				State:           state,
				AuthorID:        resolveLogin(logins, remote.AuthorLogin),
				AssigneeID:      resolveLogin(logins, remote.AssigneeLogin),
				SprintNumber:    sprintCfg.SprintNumberFor(remote.CreatedAt).Int(),
				GitHubCreatedAt: remote.CreatedAt,
				GitHubClosedAt:  remote.ClosedAt,
			})
		}

		if len(issues) > 0 {
			if err := tx.IssueRepo().UpsertBatch(ctx, issues); err != nil {
				return err
			}
		}

		if err := tx.SyncMetadataRepo().Upsert(ctx, repo.ID, watermark); err != nil {
			return err
		}

		result.SyncedCount = len(issues)
		return nil
	})
	if err != nil {
		metrics.SyncFailuresTotal.WithLabelValues("issues").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.IssuesSyncedTotal.Add(float64(result.SyncedCount))
	metrics.SyncDuration.WithLabelValues("issues").Observe(time.Since(started).Seconds())

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("repository_id", repo.ID).
		Int("synced_count", result.SyncedCount).
		Msg("successfully synced issues")

	return result, nil
}

// SyncPullRequests синхронизирует pull request'ы репозитория начиная с input.Since.
// Существующие связи PR с issues при обновлении не затираются.
func (s *Service) SyncPullRequests(outerCtx context.Context, input *domain.SyncPullRequestsInput) (*domain.SyncPullRequestsResult, error) {
	const op = "service.SyncPullRequests"
	requestID := logger.GetRequestID(outerCtx)
	started := time.Now()

	repo, err := s.loadRepository(outerCtx, op, input.RepositoryID)
	if err != nil {
		return nil, err
	}

	watermark := syncInstant()

	remotePRs, err := s.github.GetPullRequests(outerCtx, repo.Owner, repo.Name, input.Since)
	if err != nil {
		metrics.SyncFailuresTotal.WithLabelValues("pull_requests").Inc()
		return nil, domain.WrapError(err, domain.ErrGitHubFetch.Status, domain.ErrorCodeGitHubFetchFailed,
			"failed to fetch pull requests from GitHub")
	}

	result := &domain.SyncPullRequestsResult{RepositoryID: repo.ID}

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		collaborators, err := tx.CollaboratorRepo().ListByRepository(ctx, repo.ID)
		if err != nil {
			return err
		}
		logins := collaboratorLoginIndex(collaborators)

		pullRequests := make([]domain.PullRequest, 0, len(remotePRs))
		for _, remote := range remotePRs {
			if remote.CreatedAt.Before(repo.TrackingStartDate) {
				continue
			}

			pullRequests = append(pullRequests, domain.PullRequest{
				ID:              uuid.New().String(),
				RepositoryID:    repo.ID,
				GitHubNumber:    remote.Number,
				Title:           remote.Title,
				Body:            remote.Body,
				State:           remote.State,
				AuthorID:        resolveLogin(logins, remote.AuthorLogin),
				Additions:       remote.Additions,
				Deletions:       remote.Deletions,
				ChangedFiles:    remote.ChangedFiles,
				GitHubCreatedAt: remote.CreatedAt,
				MergedAt:        remote.MergedAt,
			})
		}

		if len(pullRequests) > 0 {
			if err := tx.PullRequestRepo().UpsertBatch(ctx, pullRequests); err != nil {
				return err
			}
		}

		if err := tx.SyncMetadataRepo().Upsert(ctx, repo.ID, watermark); err != nil {
			return err
		}

		result.SyncedCount = len(pullRequests)
		return nil
	})
	if err != nil {
		metrics.SyncFailuresTotal.WithLabelValues("pull_requests").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.PullRequestsSyncedTotal.Add(float64(result.SyncedCount))
	metrics.SyncDuration.WithLabelValues("pull_requests").Observe(time.Since(started).Seconds())

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("repository_id", repo.ID).
		Int("synced_count", result.SyncedCount).
		Msg("successfully synced pull requests")

	return result, nil
}

// LinkPullRequests связывает несвязанные PR с закрываемыми ими issues
// через GraphQL-поиск closing references. Отказ поиска по одному PR
// не прерывает линковку остальных.
func (s *Service) LinkPullRequests(outerCtx context.Context, repositoryID string) (*domain.LinkPullRequestsResult, error) {
	const op = "service.LinkPullRequests"
	requestID := logger.GetRequestID(outerCtx)

	repo, err := s.loadRepository(outerCtx, op, repositoryID)
	if err != nil {
		return nil, err
	}

	var pullRequests []domain.PullRequest
	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		pullRequests, err = tx.PullRequestRepo().ListByRepository(ctx, repo.ID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	result := &domain.LinkPullRequestsResult{RepositoryID: repo.ID}

	// Номера закрываемых issues по каждому PR без связи
	linkedNumbers := make(map[string][]int)
	for _, pr := range pullRequests {
		if pr.IssueID != nil {
			continue
		}

		numbers, err := s.github.GetLinkedIssuesForPR(outerCtx, repo.Owner, repo.Name, pr.GitHubNumber)
		if err != nil {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "service").
				Str("pull_request_id", pr.ID).
				Int("pr_number", pr.GitHubNumber).
				Err(err).
				Msg("failed to resolve closing issues for pull request")
			result.FailedCount++
			continue
		}
		if len(numbers) > 0 {
			linkedNumbers[pr.ID] = numbers
		}
	}

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		for prID, numbers := range linkedNumbers {
			// PR закрывает несколько issues - связь хранится одна, берём первый номер
			issue, err := tx.IssueRepo().GetByNumber(ctx, repo.ID, numbers[0])
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					result.FailedCount++
					continue
				}
				return err
			}

			if err := tx.PullRequestRepo().LinkToIssue(ctx, prID, issue.ID); err != nil {
				return err
			}
			result.LinkedCount++
		}
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.PullRequestsLinkedTotal.Add(float64(result.LinkedCount))

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("repository_id", repo.ID).
		Int("linked_count", result.LinkedCount).
		Int("failed_count", result.FailedCount).
		Msg("successfully linked pull requests")

	return result, nil
}

// SyncAll запускает синхронизацию issues и PR от сохранённого watermark.
// Части независимы: отказ одной не отменяет другую, ошибки возвращаются раздельно.
func (s *Service) SyncAll(outerCtx context.Context, repositoryID string) (*domain.SyncAllResult, error) {
	const op = "service.SyncAll"

	repo, err := s.loadRepository(outerCtx, op, repositoryID)
	if err != nil {
		return nil, err
	}

	var since *time.Time
	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		meta, err := tx.SyncMetadataRepo().Get(ctx, repo.ID)
		if err != nil {
			// Отсутствие watermark означает первую синхронизацию - полная выборка
			if errors.Is(err, storage.ErrNotFound) {
				return nil
			}
			return err
		}
		since = &meta.LastSyncAt
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	result := &domain.SyncAllResult{RepositoryID: repo.ID}

	issues, err := s.SyncIssues(outerCtx, &domain.SyncIssuesInput{RepositoryID: repo.ID, Since: since})
	if err != nil {
		result.IssuesError = err.Error()
	} else {
		result.Issues = issues
	}

	pullRequests, err := s.SyncPullRequests(outerCtx, &domain.SyncPullRequestsInput{RepositoryID: repo.ID, Since: since})
	if err != nil {
		result.PullRequestsError = err.Error()
	} else {
		result.PullRequests = pullRequests
	}

	return result, nil
}

// loadRepository читает репозиторий отдельной короткой транзакцией
func (s *Service) loadRepository(outerCtx context.Context, op, repositoryID string) (*domain.Repository, error) {
	var repo *domain.Repository
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		repo, err = tx.RepositoryRepo().GetByID(ctx, repositoryID)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, domain.ErrRepositoryNotFound
		}
		return nil, s.formatError(outerCtx, op, err)
	}
	return repo, nil
}
