package gorm

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/storage"
)

type issueRepository struct {
	db *gorm.DB
}

// NewIssueRepository создаёт новый репозиторий issues
func NewIssueRepository(db *gorm.DB) storage.IssueRepository {
	return &issueRepository{db: db}
}

// UpsertBatch вставляет или обновляет issues по ключу (repository_id, github_number).
// При конфликте перезаписываются title/body/state/ссылки/sprint_number/closed_at
// и поднимается updated_at; дублей не возникает.
func (r *issueRepository) UpsertBatch(ctx context.Context, issues []domain.Issue) error {
	if len(issues) == 0 {
		return nil
	}

	dbIssues := make([]Issue, len(issues))
	for i, issue := range issues {
		dbIssues[i] = Issue{
			ID:              issue.ID,
			RepositoryID:    issue.RepositoryID,
			GitHubNumber:    issue.GitHubNumber,
			Title:           issue.Title,
			Body:            issue.Body,
			State:           string(issue.State),
			AuthorID:        issue.AuthorID,
			AssigneeID:      issue.AssigneeID,
			SprintNumber:    issue.SprintNumber,
			GitHubCreatedAt: issue.GitHubCreatedAt,
			GitHubClosedAt:  issue.GitHubClosedAt,
		}
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "repository_id"}, {Name: "github_number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "body", "state",
				"author_id", "assignee_id",
				"sprint_number", "github_closed_at",
				"updated_at",
			}),
		}).
		Create(&dbIssues)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Int("count", len(issues)).
			Msg("error upserting issues")
		return result.Error
	}

	log.Info().
		Str("request_id", logger.GetRequestID(ctx)).
		Str("layer", "storage").
		Int("count", len(issues)).
		Msg("upserted issues batch")

	return nil
}

// GetByID возвращает issue по ID
func (r *issueRepository) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	var dbIssue Issue
	result := r.db.WithContext(ctx).First(&dbIssue, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "storage").
				Str("issue_id", id).
				Msg("issue not found")
			return nil, storage.ErrNotFound
		}
		return nil, result.Error
	}

	return toDomainIssue(&dbIssue), nil
}

// GetByNumber возвращает issue по номеру в рамках репозитория
func (r *issueRepository) GetByNumber(ctx context.Context, repositoryID string, githubNumber int) (*domain.Issue, error) {
	var dbIssue Issue
	result := r.db.WithContext(ctx).
		First(&dbIssue, "repository_id = ? AND github_number = ?", repositoryID, githubNumber)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, result.Error
	}

	return toDomainIssue(&dbIssue), nil
}

// ListByRepository возвращает все issues репозитория в порядке номеров
func (r *issueRepository) ListByRepository(ctx context.Context, repositoryID string) ([]domain.Issue, error) {
	var dbIssues []Issue
	result := r.db.WithContext(ctx).
		Where("repository_id = ?", repositoryID).
		Order("github_number").
		Find(&dbIssues)
	if result.Error != nil {
		return nil, result.Error
	}

	issues := make([]domain.Issue, len(dbIssues))
	for i, dbIssue := range dbIssues {
		issues[i] = *toDomainIssue(&dbIssue)
	}

	return issues, nil
}

func toDomainIssue(dbIssue *Issue) *domain.Issue {
	return &domain.Issue{
		ID:              dbIssue.ID,
		RepositoryID:    dbIssue.RepositoryID,
		GitHubNumber:    dbIssue.GitHubNumber,
		Title:           dbIssue.Title,
		Body:            dbIssue.Body,
		State:           domain.IssueState(dbIssue.State),
		AuthorID:        dbIssue.AuthorID,
		AssigneeID:      dbIssue.AssigneeID,
		SprintNumber:    dbIssue.SprintNumber,
		GitHubCreatedAt: dbIssue.GitHubCreatedAt,
		GitHubClosedAt:  dbIssue.GitHubClosedAt,
		CreatedAt:       dbIssue.CreatedAt,
		UpdatedAt:       dbIssue.UpdatedAt,
	}
}
