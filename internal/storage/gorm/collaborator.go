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

type collaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository создаёт новый репозиторий коллабораторов
func NewCollaboratorRepository(db *gorm.DB) storage.CollaboratorRepository {
	return &collaboratorRepository{db: db}
}

// ListByRepository возвращает всех коллабораторов репозитория
func (r *collaboratorRepository) ListByRepository(ctx context.Context, repositoryID string) ([]domain.Collaborator, error) {
	var dbCollaborators []Collaborator
	result := r.db.WithContext(ctx).
		Where("repository_id = ?", repositoryID).
		Order("github_user_name").
		Find(&dbCollaborators)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("repository_id", repositoryID).
			Msg("error listing collaborators")
		return nil, result.Error
	}

	collaborators := make([]domain.Collaborator, len(dbCollaborators))
	for i, c := range dbCollaborators {
		collaborators[i] = domain.Collaborator{
			ID:             c.ID,
			RepositoryID:   c.RepositoryID,
			GitHubUserName: c.GitHubUserName,
			Name:           c.Name,
			CreatedAt:      c.CreatedAt,
		}
	}

	return collaborators, nil
}

// CreateBatch создаёт нескольких коллабораторов; конфликт по (repository_id, github_user_name)
// игнорируется, чтобы параллельная синхронизация не падала на гонке вставок
func (r *collaboratorRepository) CreateBatch(ctx context.Context, collaborators []domain.Collaborator) error {
	if len(collaborators) == 0 {
		return nil
	}

	dbCollaborators := make([]Collaborator, len(collaborators))
	for i, c := range collaborators {
		dbCollaborators[i] = Collaborator{
			ID:             c.ID,
			RepositoryID:   c.RepositoryID,
			GitHubUserName: c.GitHubUserName,
			Name:           c.Name,
		}
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "repository_id"}, {Name: "github_user_name"}},
			DoNothing: true,
		}).
		Create(&dbCollaborators)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Int("count", len(collaborators)).
			Msg("error creating collaborators")
		return result.Error
	}

	log.Info().
		Str("request_id", logger.GetRequestID(ctx)).
		Str("layer", "storage").
		Int("count", len(collaborators)).
		Msg("created collaborators batch")

	return nil
}
