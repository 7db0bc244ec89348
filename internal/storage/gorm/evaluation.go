package gorm

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/storage"
)

type evaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository создаёт новый репозиторий оценок
func NewEvaluationRepository(db *gorm.DB) storage.EvaluationRepository {
	return &evaluationRepository{db: db}
}

// GetByIssueID возвращает запись оценок issue
func (r *evaluationRepository) GetByIssueID(ctx context.Context, issueID string) (*domain.Evaluation, error) {
	var dbEval Evaluation
	result := r.db.WithContext(ctx).First(&dbEval, "issue_id = ?", issueID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, result.Error
	}

	return &domain.Evaluation{
		ID:                      dbEval.ID,
		IssueID:                 dbEval.IssueID,
		SpeedScore:              dbEval.SpeedScore,
		SpeedGrade:              dbEval.SpeedGrade,
		SpeedCalculatedAt:       dbEval.SpeedCalculatedAt,
		QualityScore:            dbEval.QualityScore,
		QualityGrade:            dbEval.QualityGrade,
		QualityDetail:           dbEval.QualityDetail,
		QualityCalculatedAt:     dbEval.QualityCalculatedAt,
		ConsistencyScore:        dbEval.ConsistencyScore,
		ConsistencyGrade:        dbEval.ConsistencyGrade,
		ConsistencyDetail:       dbEval.ConsistencyDetail,
		ConsistencyCalculatedAt: dbEval.ConsistencyCalculatedAt,
		CreatedAt:               dbEval.CreatedAt,
		UpdatedAt:               dbEval.UpdatedAt,
	}, nil
}

// UpsertSpeed записывает слот скорости; запись создаётся лениво при первой оценке.
// Перезапись слота - last-write-wins, без проверки версий.
func (r *evaluationRepository) UpsertSpeed(ctx context.Context, issueID string, score int, grade string, calculatedAt time.Time) error {
	dbEval := Evaluation{
		ID:                uuid.New().String(),
		IssueID:           issueID,
		SpeedScore:        &score,
		SpeedGrade:        &grade,
		SpeedCalculatedAt: &calculatedAt,
	}

	return r.upsertSlot(ctx, &dbEval, []string{
		"speed_score", "speed_grade", "speed_calculated_at", "updated_at",
	})
}

// UpsertQuality записывает слот качества с детализацией
func (r *evaluationRepository) UpsertQuality(ctx context.Context, issueID string, score int, grade string, detail json.RawMessage, calculatedAt time.Time) error {
	dbEval := Evaluation{
		ID:                  uuid.New().String(),
		IssueID:             issueID,
		QualityScore:        &score,
		QualityGrade:        &grade,
		QualityDetail:       detail,
		QualityCalculatedAt: &calculatedAt,
	}

	return r.upsertSlot(ctx, &dbEval, []string{
		"quality_score", "quality_grade", "quality_detail", "quality_calculated_at", "updated_at",
	})
}

// UpsertConsistency записывает слот согласованности с детализацией
func (r *evaluationRepository) UpsertConsistency(ctx context.Context, issueID string, score int, grade string, detail json.RawMessage, calculatedAt time.Time) error {
	dbEval := Evaluation{
		ID:                      uuid.New().String(),
		IssueID:                 issueID,
		ConsistencyScore:        &score,
		ConsistencyGrade:        &grade,
		ConsistencyDetail:       detail,
		ConsistencyCalculatedAt: &calculatedAt,
	}

	return r.upsertSlot(ctx, &dbEval, []string{
		"consistency_score", "consistency_grade", "consistency_detail", "consistency_calculated_at", "updated_at",
	})
}

// upsertSlot выполняет вставку с обновлением только колонок одного слота
// при конфликте по issue_id; остальные слоты не затрагиваются
func (r *evaluationRepository) upsertSlot(ctx context.Context, dbEval *Evaluation, columns []string) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "issue_id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(dbEval)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("issue_id", dbEval.IssueID).
			Msg("error upserting evaluation slot")
		return result.Error
	}

	return nil
}
