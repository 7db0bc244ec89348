package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sync Metrics
var (
	// IssuesSyncedTotal - количество синхронизированных issues
	IssuesSyncedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_issues_total",
		Help: "Total number of issues synchronized from GitHub",
	})

	// PullRequestsSyncedTotal - количество синхронизированных pull request'ов
	PullRequestsSyncedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_pull_requests_total",
		Help: "Total number of pull requests synchronized from GitHub",
	})

	// PullRequestsLinkedTotal - количество PR, связанных с issues
	PullRequestsLinkedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_pull_requests_linked_total",
		Help: "Total number of pull requests linked to their closing issues",
	})

	// CollaboratorsRegisteredTotal - количество зарегистрированных коллабораторов
	CollaboratorsRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_collaborators_registered_total",
		Help: "Total number of newly registered collaborators",
	})

	// SyncDuration - время одной синхронизации по типу сущности
	SyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sync_duration_seconds",
		Help:    "Duration of one sync invocation in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity"})

	// SyncFailuresTotal - отказы синхронизации по типу сущности
	SyncFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_failures_total",
		Help: "Total number of failed sync invocations",
	}, []string{"entity"})
)

// Evaluation Metrics
var (
	// EvaluationsTotal - количество оценок по виду и исходу
	EvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evaluations_total",
		Help: "Total number of issue evaluations by kind and outcome",
	}, []string{"kind", "outcome"})

	// EvaluationDuration - время одной оценки по виду
	EvaluationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "evaluation_duration_seconds",
		Help:    "Duration of one issue evaluation in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
)

// Repository Metrics
var (
	// RepositoryIssuesCount - количество issues по репозиториям
	RepositoryIssuesCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "repository_issues_count",
		Help: "Number of locally stored issues by repository",
	}, []string{"repository"})

	// RepositoryEvaluatedIssuesCount - количество оценённых issues по репозиториям
	RepositoryEvaluatedIssuesCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "repository_evaluated_issues_count",
		Help: "Number of issues with at least one evaluation slot by repository",
	}, []string{"repository"})
)

// HTTP Metrics
var (
	// HTTPRequestsTotal - общее количество HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration - время обработки запроса
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP request in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// Database Metrics
var (
	// DBConnectionPoolActive - используемые соединения пула
	DBConnectionPoolActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_active",
		Help: "Number of database connections currently in use",
	})

	// DBConnectionPoolIdle - простаивающие соединения пула
	DBConnectionPoolIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_idle",
		Help: "Number of idle database connections",
	})

	// DBConnectionWaitTotal - сколько раз запросу пришлось ждать свободного соединения
	DBConnectionWaitTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_wait_total",
		Help: "Cumulative number of times a connection was waited for",
	})
)
