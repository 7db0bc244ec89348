package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/storage"
)

type syncMetadataRepository struct {
	db *gorm.DB
}

// NewSyncMetadataRepository создаёт новый репозиторий watermark'ов синхронизации
func NewSyncMetadataRepository(db *gorm.DB) storage.SyncMetadataRepository {
	return &syncMetadataRepository{db: db}
}

// Get возвращает watermark репозитория; отсутствие записи - ErrNotFound
func (r *syncMetadataRepository) Get(ctx context.Context, repositoryID string) (*domain.SyncMetadata, error) {
	var dbMeta SyncMetadata
	result := r.db.WithContext(ctx).First(&dbMeta, "repository_id = ?", repositoryID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, result.Error
	}

	return &domain.SyncMetadata{
		RepositoryID: dbMeta.RepositoryID,
		LastSyncAt:   dbMeta.LastSyncAt,
	}, nil
}

// Upsert продвигает watermark репозитория. Вызывается только в одной
// транзакции с batch upsert'ом - watermark не двигается при частичном успехе.
func (r *syncMetadataRepository) Upsert(ctx context.Context, repositoryID string, lastSyncAt time.Time) error {
	dbMeta := SyncMetadata{
		RepositoryID: repositoryID,
		LastSyncAt:   lastSyncAt,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "repository_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_sync_at"}),
		}).
		Create(&dbMeta)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("repository_id", repositoryID).
			Msg("error upserting sync metadata")
		return result.Error
	}

	return nil
}
