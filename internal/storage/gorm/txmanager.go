package gorm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"teamhealth/internal/config"
	"teamhealth/internal/metrics"
	"teamhealth/internal/storage"
)

// txManager реализует storage.TxManager для GORM
type txManager struct {
	db *gorm.DB
}

// NewTxManager создаёт новый менеджер транзакций для GORM
func NewTxManager(envConf *config.Config) (storage.TxManager, error) {
	db, err := ConnectDB(envConf)
	if err != nil {
		return nil, err
	}

	// Получаем *sql.DB для мониторинга connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Запускаем коллектор метрик connection pool
	stopCh := make(chan struct{})
	go metrics.StartDBStatsCollector(sqlDB, 5*time.Second, stopCh)

	// Запускаем горутину пересчёта метрик покрытия оценками из БД
	go runCoverageMetricsLoop(db, 30*time.Second)

	return &txManager{db: db}, nil
}

// NewTxManagerWithDB создаёт менеджер транзакций поверх готового подключения (для тестов)
func NewTxManagerWithDB(db *gorm.DB) storage.TxManager {
	return &txManager{db: db}
}

// Do выполняет fn внутри транзакции; ошибка fn откатывает транзакцию
func (m *txManager) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	return m.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(ctx, &tx{db: gtx})
	})
}

// tx реализует storage.Tx поверх транзакционного *gorm.DB
type tx struct {
	db *gorm.DB
}

func (t *tx) RepositoryRepo() storage.RepositoryRepository {
	return NewRepositoryRepository(t.db)
}

func (t *tx) CollaboratorRepo() storage.CollaboratorRepository {
	return NewCollaboratorRepository(t.db)
}

func (t *tx) IssueRepo() storage.IssueRepository {
	return NewIssueRepository(t.db)
}

func (t *tx) PullRequestRepo() storage.PullRequestRepository {
	return NewPullRequestRepository(t.db)
}

func (t *tx) EvaluationRepo() storage.EvaluationRepository {
	return NewEvaluationRepository(t.db)
}

func (t *tx) SyncMetadataRepo() storage.SyncMetadataRepository {
	return NewSyncMetadataRepository(t.db)
}

// runCoverageMetricsLoop периодически пересчитывает gauge-метрики
// количества issues и покрытия оценками по репозиториям
func runCoverageMetricsLoop(db *gorm.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	type coverageRow struct {
		Repository string
		Total      int
		Evaluated  int
	}

	for range ticker.C {
		var rows []coverageRow
		err := db.Raw(`
			SELECT
				r.owner || '/' || r.name AS repository,
				COUNT(i.id) AS total,
				COUNT(e.id) FILTER (
					WHERE e.speed_score IS NOT NULL
					   OR e.quality_score IS NOT NULL
					   OR e.consistency_score IS NOT NULL
				) AS evaluated
			FROM repositories r
			LEFT JOIN issues i ON i.repository_id = r.id
			LEFT JOIN evaluations e ON e.issue_id = i.id
			GROUP BY r.id, r.owner, r.name`).Scan(&rows).Error
		if err != nil {
			log.Error().Err(err).Msg("failed to query evaluation coverage")
			continue
		}

		for _, row := range rows {
			metrics.RepositoryIssuesCount.WithLabelValues(row.Repository).Set(float64(row.Total))
			metrics.RepositoryEvaluatedIssuesCount.WithLabelValues(row.Repository).Set(float64(row.Evaluated))
		}
	}
}
