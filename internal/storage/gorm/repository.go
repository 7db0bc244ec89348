package gorm

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/storage"
)

type repositoryRepository struct {
	db *gorm.DB
}

// NewRepositoryRepository создаёт новый репозиторий отслеживаемых репозиториев
func NewRepositoryRepository(db *gorm.DB) storage.RepositoryRepository {
	return &repositoryRepository{db: db}
}

// Create создаёт запись репозитория; дубликат (owner, name) - ErrAlreadyExists
func (r *repositoryRepository) Create(ctx context.Context, repo *domain.Repository) error {
	requestID := logger.GetRequestID(ctx)

	dbRepo := toDBRepository(repo)

	result := r.db.WithContext(ctx).Create(dbRepo)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == storage.UniqueViolation {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Str("owner", repo.Owner).
				Str("repo", repo.Name).
				Msg("repository already registered")
			return storage.ErrAlreadyExists
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("owner", repo.Owner).
			Str("repo", repo.Name).
			Msg("error creating repository")
		return result.Error
	}

	repo.CreatedAt = dbRepo.CreatedAt
	repo.UpdatedAt = dbRepo.UpdatedAt

	return nil
}

// GetByID возвращает репозиторий по ID
func (r *repositoryRepository) GetByID(ctx context.Context, id string) (*domain.Repository, error) {
	var dbRepo Repository
	result := r.db.WithContext(ctx).First(&dbRepo, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "storage").
				Str("repository_id", id).
				Msg("repository not found")
			return nil, storage.ErrNotFound
		}
		return nil, result.Error
	}

	return toDomainRepository(&dbRepo), nil
}

// GetByOwnerAndName возвращает репозиторий по owner и name
func (r *repositoryRepository) GetByOwnerAndName(ctx context.Context, owner, name string) (*domain.Repository, error) {
	var dbRepo Repository
	result := r.db.WithContext(ctx).First(&dbRepo, "owner = ? AND name = ?", owner, name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, result.Error
	}

	return toDomainRepository(&dbRepo), nil
}

func toDBRepository(repo *domain.Repository) *Repository {
	return &Repository{
		ID:                   repo.ID,
		Owner:                repo.Owner,
		Name:                 repo.Name,
		AccessTokenEncrypted: repo.AccessToken,
		TrackingStartDate:    repo.TrackingStartDate,
		SprintStartDayOfWeek: repo.SprintStartDayOfWeek,
		SprintDurationWeeks:  repo.SprintDurationWeeks,
	}
}

// toDomainRepository возвращает domain-модель; AccessToken остаётся зашифрованным,
// расшифровку выполняет сервисный слой
func toDomainRepository(dbRepo *Repository) *domain.Repository {
	return &domain.Repository{
		ID:                   dbRepo.ID,
		Owner:                dbRepo.Owner,
		Name:                 dbRepo.Name,
		AccessToken:          dbRepo.AccessTokenEncrypted,
		TrackingStartDate:    dbRepo.TrackingStartDate,
		SprintStartDayOfWeek: dbRepo.SprintStartDayOfWeek,
		SprintDurationWeeks:  dbRepo.SprintDurationWeeks,
		CreatedAt:            dbRepo.CreatedAt,
		UpdatedAt:            dbRepo.UpdatedAt,
	}
}
