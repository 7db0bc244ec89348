package storage

import (
	"context"
	"encoding/json"
	"time"

	"teamhealth/internal/domain"
)

// TxManager управляет транзакциями базы данных
//
//go:generate mockery --name=TxManager --output=../mocks --outpkg=mocks --filename=tx_manager_mock.go
type TxManager interface {
	// Do выполняет функцию fn внутри транзакции
	// Если fn возвращает ошибку, транзакция откатывается
	// Иначе транзакция коммитится
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx представляет транзакцию с доступом к репозиториям
//
//go:generate mockery --name=Tx --output=../mocks --outpkg=mocks --filename=tx_mock.go
type Tx interface {
	RepositoryRepo() RepositoryRepository
	CollaboratorRepo() CollaboratorRepository
	IssueRepo() IssueRepository
	PullRequestRepo() PullRequestRepository
	EvaluationRepo() EvaluationRepository
	SyncMetadataRepo() SyncMetadataRepository
}

// RepositoryRepository определяет операции с отслеживаемыми репозиториями
//
//go:generate mockery --name=RepositoryRepository --output=../mocks --outpkg=mocks --filename=repository_repository_mock.go
type RepositoryRepository interface {
	// Create создаёт репозиторий; нарушение уникальности (owner, name) - ErrAlreadyExists
	Create(ctx context.Context, repo *domain.Repository) error

	// GetByID возвращает репозиторий по ID
	GetByID(ctx context.Context, id string) (*domain.Repository, error)

	// GetByOwnerAndName возвращает репозиторий по owner и name
	GetByOwnerAndName(ctx context.Context, owner, name string) (*domain.Repository, error)
}

// CollaboratorRepository определяет операции с коллабораторами
//
//go:generate mockery --name=CollaboratorRepository --output=../mocks --outpkg=mocks --filename=collaborator_repository_mock.go
type CollaboratorRepository interface {
	// ListByRepository возвращает всех коллабораторов репозитория
	ListByRepository(ctx context.Context, repositoryID string) ([]domain.Collaborator, error)

	// CreateBatch создаёт нескольких коллабораторов за раз
	CreateBatch(ctx context.Context, collaborators []domain.Collaborator) error
}

// IssueRepository определяет операции с issues
//
//go:generate mockery --name=IssueRepository --output=../mocks --outpkg=mocks --filename=issue_repository_mock.go
type IssueRepository interface {
	// UpsertBatch вставляет или обновляет issues по ключу (repository_id, github_number)
	UpsertBatch(ctx context.Context, issues []domain.Issue) error

	// GetByID возвращает issue по ID
	GetByID(ctx context.Context, id string) (*domain.Issue, error)

	// GetByNumber возвращает issue по номеру в рамках репозитория
	GetByNumber(ctx context.Context, repositoryID string, githubNumber int) (*domain.Issue, error)

	// ListByRepository возвращает все issues репозитория
	ListByRepository(ctx context.Context, repositoryID string) ([]domain.Issue, error)
}

// PullRequestRepository определяет операции с pull request'ами
//
//go:generate mockery --name=PullRequestRepository --output=../mocks --outpkg=mocks --filename=pull_request_repository_mock.go
type PullRequestRepository interface {
	// UpsertBatch вставляет или обновляет PR по ключу (repository_id, github_number);
	// существующая связь с issue при обновлении не затирается
	UpsertBatch(ctx context.Context, pullRequests []domain.PullRequest) error

	// ListByRepository возвращает все PR репозитория
	ListByRepository(ctx context.Context, repositoryID string) ([]domain.PullRequest, error)

	// ListByIssue возвращает PR, связанные с issue
	ListByIssue(ctx context.Context, issueID string) ([]domain.PullRequest, error)

	// LinkToIssue устанавливает связь PR с issue
	LinkToIssue(ctx context.Context, pullRequestID, issueID string) error
}

// EvaluationRepository определяет операции со слотами оценок.
// Запись Evaluation создаётся лениво при первой записи любого слота;
// повторная запись слота перезаписывает прежнее значение (last-write-wins).
//
//go:generate mockery --name=EvaluationRepository --output=../mocks --outpkg=mocks --filename=evaluation_repository_mock.go
type EvaluationRepository interface {
	// GetByIssueID возвращает запись оценок issue
	GetByIssueID(ctx context.Context, issueID string) (*domain.Evaluation, error)

	// UpsertSpeed записывает слот скорости
	UpsertSpeed(ctx context.Context, issueID string, score int, grade string, calculatedAt time.Time) error

	// UpsertQuality записывает слот качества с детализацией
	UpsertQuality(ctx context.Context, issueID string, score int, grade string, detail json.RawMessage, calculatedAt time.Time) error

	// UpsertConsistency записывает слот согласованности с детализацией
	UpsertConsistency(ctx context.Context, issueID string, score int, grade string, detail json.RawMessage, calculatedAt time.Time) error
}

// SyncMetadataRepository определяет операции с watermark синхронизации
//
//go:generate mockery --name=SyncMetadataRepository --output=../mocks --outpkg=mocks --filename=sync_metadata_repository_mock.go
type SyncMetadataRepository interface {
	// Get возвращает watermark репозитория; отсутствие записи - ErrNotFound
	Get(ctx context.Context, repositoryID string) (*domain.SyncMetadata, error)

	// Upsert продвигает watermark репозитория
	Upsert(ctx context.Context, repositoryID string, lastSyncAt time.Time) error
}
