package domain

import (
	"context"
	"encoding/json"
	"time"
)

// SourceControlClient - клиент source-control хостинга (GitHub).
// Любой метод может вернуть транспортную или авторизационную ошибку;
// use case'ы превращают её в типизированный отказ синхронизации.
//
//go:generate mockery --name=SourceControlClient --output=../mocks --outpkg=mocks --filename=source_control_client_mock.go
type SourceControlClient interface {
	// GetRepositoryInfo возвращает метаданные репозитория
	GetRepositoryInfo(ctx context.Context, owner, repo string) (*RemoteRepository, error)

	// GetCollaborators возвращает коллабораторов репозитория (требует авторизации)
	GetCollaborators(ctx context.Context, owner, repo string) ([]RemoteUser, error)

	// GetContributors возвращает контрибьюторов репозитория
	GetContributors(ctx context.Context, owner, repo string) ([]RemoteUser, error)

	// GetIssueAuthors возвращает уникальных авторов issues - последний fallback
	// когда права токена не позволяют получить коллабораторов и контрибьюторов
	GetIssueAuthors(ctx context.Context, owner, repo string) ([]RemoteUser, error)

	// GetIssues возвращает issues, обновлённые после since (nil - все),
	// с постраничной выборкой; pull request'ы отфильтрованы
	GetIssues(ctx context.Context, owner, repo string, since *time.Time) ([]RemoteIssue, error)

	// GetPullRequests возвращает pull request'ы, обновлённые после since (nil - все).
	// У REST-эндпоинта нет параметра since, фильтрация выполняется на стороне клиента.
	GetPullRequests(ctx context.Context, owner, repo string, since *time.Time) ([]RemotePullRequest, error)

	// GetLinkedIssuesForPR возвращает номера issues, которые закрывает данный PR
	GetLinkedIssuesForPR(ctx context.Context, owner, repo string, prNumber int) ([]int, error)
}

// StructuredOutputRequest - запрос к scoring-сервису со схемой ожидаемого JSON-ответа
type StructuredOutputRequest struct {
	// Name - имя схемы для structured output
	Name string

	// Schema - декларативное JSON Schema описание формы ответа
	Schema json.RawMessage

	// Prompt - текст запроса с рубрикой и данными issue
	Prompt string

	Temperature float32
	MaxTokens   int
}

// ScoringClient - внешний сервис оценивания с структурированным выводом.
// Ответ возвращается сырым JSON и валидируется на стороне вызывающего:
// parse-or-fail вместо доверия к форме ответа.
//
//go:generate mockery --name=ScoringClient --output=../mocks --outpkg=mocks --filename=scoring_client_mock.go
type ScoringClient interface {
	GenerateStructured(ctx context.Context, req *StructuredOutputRequest) (json.RawMessage, error)
}
