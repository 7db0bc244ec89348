package gorm

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/storage"
)

type pullRequestRepository struct {
	db *gorm.DB
}

// NewPullRequestRepository создаёт новый репозиторий pull request'ов
func NewPullRequestRepository(db *gorm.DB) storage.PullRequestRepository {
	return &pullRequestRepository{db: db}
}

// UpsertBatch вставляет или обновляет PR по ключу (repository_id, github_number).
// issue_id намеренно исключён из обновляемых колонок: связь с issue
// устанавливается отдельной операцией линковки и не должна затираться синхронизацией.
func (r *pullRequestRepository) UpsertBatch(ctx context.Context, pullRequests []domain.PullRequest) error {
	if len(pullRequests) == 0 {
		return nil
	}

	dbPRs := make([]PullRequest, len(pullRequests))
	for i, pr := range pullRequests {
		dbPRs[i] = PullRequest{
			ID:              pr.ID,
			RepositoryID:    pr.RepositoryID,
			GitHubNumber:    pr.GitHubNumber,
			Title:           pr.Title,
			Body:            pr.Body,
			State:           pr.State,
			IssueID:         pr.IssueID,
			AuthorID:        pr.AuthorID,
			Additions:       pr.Additions,
			Deletions:       pr.Deletions,
			ChangedFiles:    pr.ChangedFiles,
			GitHubCreatedAt: pr.GitHubCreatedAt,
			MergedAt:        pr.MergedAt,
		}
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "repository_id"}, {Name: "github_number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "body", "state",
				"author_id",
				"additions", "deletions", "changed_files",
				"merged_at",
				"updated_at",
			}),
		}).
		Create(&dbPRs)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Int("count", len(pullRequests)).
			Msg("error upserting pull requests")
		return result.Error
	}

	log.Info().
		Str("request_id", logger.GetRequestID(ctx)).
		Str("layer", "storage").
		Int("count", len(pullRequests)).
		Msg("upserted pull requests batch")

	return nil
}

// ListByRepository возвращает все PR репозитория в порядке номеров
func (r *pullRequestRepository) ListByRepository(ctx context.Context, repositoryID string) ([]domain.PullRequest, error) {
	var dbPRs []PullRequest
	result := r.db.WithContext(ctx).
		Where("repository_id = ?", repositoryID).
		Order("github_number").
		Find(&dbPRs)
	if result.Error != nil {
		return nil, result.Error
	}

	return toDomainPullRequests(dbPRs), nil
}

// ListByIssue возвращает PR, связанные с issue
func (r *pullRequestRepository) ListByIssue(ctx context.Context, issueID string) ([]domain.PullRequest, error) {
	var dbPRs []PullRequest
	result := r.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Order("github_number").
		Find(&dbPRs)
	if result.Error != nil {
		return nil, result.Error
	}

	return toDomainPullRequests(dbPRs), nil
}

// LinkToIssue устанавливает связь PR с issue
func (r *pullRequestRepository) LinkToIssue(ctx context.Context, pullRequestID, issueID string) error {
	result := r.db.WithContext(ctx).
		Model(&PullRequest{}).
		Where("id = ?", pullRequestID).
		Update("issue_id", issueID)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("pull_request_id", pullRequestID).
			Str("issue_id", issueID).
			Msg("error linking pull request to issue")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func toDomainPullRequests(dbPRs []PullRequest) []domain.PullRequest {
	pullRequests := make([]domain.PullRequest, len(dbPRs))
	for i, dbPR := range dbPRs {
		pullRequests[i] = domain.PullRequest{
			ID:              dbPR.ID,
			RepositoryID:    dbPR.RepositoryID,
			GitHubNumber:    dbPR.GitHubNumber,
			Title:           dbPR.Title,
			Body:            dbPR.Body,
			State:           dbPR.State,
			IssueID:         dbPR.IssueID,
			AuthorID:        dbPR.AuthorID,
			Additions:       dbPR.Additions,
			Deletions:       dbPR.Deletions,
			ChangedFiles:    dbPR.ChangedFiles,
			GitHubCreatedAt: dbPR.GitHubCreatedAt,
			MergedAt:        dbPR.MergedAt,
			CreatedAt:       dbPR.CreatedAt,
			UpdatedAt:       dbPR.UpdatedAt,
		}
	}
	return pullRequests
}
