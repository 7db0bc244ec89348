package metrics

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
)

// StartDBStatsCollector запускает горутину для периодического сбора статистики connection pool.
// Первый снимок снимается сразу, дальше по тикеру.
func StartDBStatsCollector(sqlDB *sql.DB, interval time.Duration, stopCh <-chan struct{}) {
	collectDBStats(sqlDB)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			collectDBStats(sqlDB)

		case <-stopCh:
			log.Info().Msg("stopping db stats collector")
			return
		}
	}
}

func collectDBStats(sqlDB *sql.DB) {
	stats := sqlDB.Stats()

	DBConnectionPoolActive.Set(float64(stats.InUse))
	DBConnectionPoolIdle.Set(float64(stats.Idle))
	DBConnectionWaitTotal.Set(float64(stats.WaitCount))

	log.Debug().
		Int("in_use", stats.InUse).
		Int("idle", stats.Idle).
		Int64("wait_count", stats.WaitCount).
		Int("max_open", stats.MaxOpenConnections).
		Msg("updated db connection pool metrics")
}
