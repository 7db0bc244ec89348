package domain

import "context"

// SyncService - интерфейс инкрементальной синхронизации Issue/PR из GitHub
//
//go:generate mockery --name=SyncService --output=../mocks --outpkg=mocks --filename=sync_service_mock.go
type SyncService interface {
	// RegisterRepository регистрирует репозиторий с конфигурацией спринтов
	RegisterRepository(ctx context.Context, input *RegisterRepositoryInput) (*Repository, error)

	// GetRepository возвращает репозиторий по owner и name
	GetRepository(ctx context.Context, owner, name string) (*Repository, error)

	// SyncIssues синхронизирует issues репозитория начиная с Since (nil - полная синхронизация)
	SyncIssues(ctx context.Context, input *SyncIssuesInput) (*SyncIssuesResult, error)

	// SyncPullRequests синхронизирует pull request'ы репозитория
	SyncPullRequests(ctx context.Context, input *SyncPullRequestsInput) (*SyncPullRequestsResult, error)

	// LinkPullRequests связывает PR с закрываемыми ими issues через GraphQL-поиск
	LinkPullRequests(ctx context.Context, repositoryID string) (*LinkPullRequestsResult, error)

	// RegisterCollaborators регистрирует новых коллабораторов репозитория,
	// пробуя источники по цепочке: collaborators -> contributors -> авторы issues
	RegisterCollaborators(ctx context.Context, input *RegisterCollaboratorsInput) (*RegisterCollaboratorsResult, error)

	// SyncAll запускает синхронизацию issues и PR независимо друг от друга,
	// используя сохранённый watermark как точку отсчёта
	SyncAll(ctx context.Context, repositoryID string) (*SyncAllResult, error)
}

// EvaluationService - интерфейс вычисления оценок issue
//
//go:generate mockery --name=EvaluationService --output=../mocks --outpkg=mocks --filename=evaluation_service_mock.go
type EvaluationService interface {
	// EvaluateSpeed вычисляет детерминированную оценку скорости закрытия issue
	EvaluateSpeed(ctx context.Context, issueID string) (*SpeedEvaluationResult, error)

	// EvaluateQuality вычисляет AI-оценку качества описания issue
	EvaluateQuality(ctx context.Context, issueID string) (*QualityEvaluationResult, error)

	// EvaluateConsistency вычисляет AI-оценку согласованности issue и связанных PR
	EvaluateConsistency(ctx context.Context, issueID string) (*ConsistencyEvaluationResult, error)

	// EvaluateRepository прогоняет выбранные виды оценок по всем issues репозитория,
	// собирая исходы поштучно и не прерывая батч на ошибках отдельных issue
	EvaluateRepository(ctx context.Context, input *BatchEvaluationInput) (*BatchEvaluationResult, error)

	// GetEvaluation возвращает запись оценок issue
	GetEvaluation(ctx context.Context, issueID string) (*Evaluation, error)
}
