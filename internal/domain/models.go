package domain

import (
	"encoding/json"
	"time"
)

// IssueState - состояние issue на стороне GitHub
type IssueState string

const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
)

// Repository - отслеживаемый GitHub-репозиторий со своей конфигурацией спринтов
type Repository struct {
	ID    string
	Owner string
	Name  string

	// Токен доступа в расшифрованном виде; в БД хранится зашифрованным
	AccessToken string

	TrackingStartDate    time.Time
	SprintStartDayOfWeek int
	SprintDurationWeeks  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Collaborator - участник репозитория, ключ уникальности (RepositoryID, GitHubUserName)
type Collaborator struct {
	ID             string
	RepositoryID   string
	GitHubUserName string
	Name           string
	CreatedAt      time.Time
}

// Issue - локальная копия issue, ключ уникальности (RepositoryID, GitHubNumber).
// Ссылки на автора и исполнителя слабые: при неудачном разрешении логина остаются nil.
type Issue struct {
	ID           string
	RepositoryID string
	GitHubNumber int
	Title        string
	Body         string
	State        IssueState

	AuthorID   *string
	AssigneeID *string

	// Номер спринта, производный от даты создания issue, а не данные GitHub
	SprintNumber int

	GitHubCreatedAt time.Time
	GitHubClosedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PullRequest - локальная копия pull request, ключ уникальности (RepositoryID, GitHubNumber).
// Связь с issue слабая и устанавливается отдельной операцией линковки.
type PullRequest struct {
	ID           string
	RepositoryID string
	GitHubNumber int
	Title        string
	Body         string
	State        string

	IssueID  *string
	AuthorID *string

	Additions    int
	Deletions    int
	ChangedFiles int

	GitHubCreatedAt time.Time
	MergedAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Evaluation - оценки issue, не более одной записи на issue.
// Три слота независимы: каждый nullable до первого вычисления,
// повторное вычисление перезаписывает слот без сохранения истории.
type Evaluation struct {
	ID      string
	IssueID string

	SpeedScore        *int
	SpeedGrade        *string
	SpeedCalculatedAt *time.Time

	QualityScore        *int
	QualityGrade        *string
	QualityDetail       json.RawMessage
	QualityCalculatedAt *time.Time

	ConsistencyScore        *int
	ConsistencyGrade        *string
	ConsistencyDetail       json.RawMessage
	ConsistencyCalculatedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SyncMetadata - watermark последней успешной синхронизации репозитория
type SyncMetadata struct {
	RepositoryID string
	LastSyncAt   time.Time
}

// Remote-модели - данные внешнего source-control API до разрешения в локальные записи

// RemoteRepository - репозиторий на стороне GitHub
type RemoteRepository struct {
	Owner         string
	Name          string
	DefaultBranch string
	Private       bool
}

// RemoteUser - пользователь GitHub
type RemoteUser struct {
	Login string
	Name  string
}

// RemoteIssue - issue на стороне GitHub
type RemoteIssue struct {
	Number        int
	Title         string
	Body          string
	State         string
	AuthorLogin   string
	AssigneeLogin string

	// GitHub отдаёт pull request'ы тем же issues-эндпоинтом, помечая их флагом
	IsPullRequest bool

	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedAt  *time.Time
}

// RemotePullRequest - pull request на стороне GitHub
type RemotePullRequest struct {
	Number      int
	Title       string
	Body        string
	State       string
	AuthorLogin string

	Additions    int
	Deletions    int
	ChangedFiles int

	CreatedAt time.Time
	UpdatedAt time.Time
	MergedAt  *time.Time
}

// Input/Output DTOs для методов сервисов

// RegisterRepositoryInput - входные данные регистрации репозитория
type RegisterRepositoryInput struct {
	Owner                string
	Name                 string
	AccessToken          string
	TrackingStartDate    time.Time
	SprintStartDayOfWeek int
	SprintDurationWeeks  int
}

// SyncIssuesInput - входные данные синхронизации issues.
// Since == nil означает полную синхронизацию.
type SyncIssuesInput struct {
	RepositoryID string
	Since        *time.Time
}

// SyncIssuesResult - результат синхронизации issues
type SyncIssuesResult struct {
	RepositoryID string
	SyncedCount  int
}

// SyncPullRequestsInput - входные данные синхронизации pull request'ов
type SyncPullRequestsInput struct {
	RepositoryID string
	Since        *time.Time
}

// SyncPullRequestsResult - результат синхронизации pull request'ов
type SyncPullRequestsResult struct {
	RepositoryID string
	SyncedCount  int
}

// LinkPullRequestsResult - результат линковки PR к закрываемым ими issues
type LinkPullRequestsResult struct {
	RepositoryID string
	LinkedCount  int
	FailedCount  int
}

// RegisterCollaboratorsInput - входные данные регистрации коллабораторов.
// Непустой AllowedLogins ограничивает вставку перечисленными логинами.
type RegisterCollaboratorsInput struct {
	RepositoryID  string
	AllowedLogins []string
}

// RegisterCollaboratorsResult - полный набор коллабораторов после регистрации
type RegisterCollaboratorsResult struct {
	Collaborators []Collaborator
	AddedCount    int
}

// SyncAllResult - результат общей синхронизации. Неудача одной части
// не отменяет другую, поэтому ошибки возвращаются раздельно.
type SyncAllResult struct {
	RepositoryID string

	Issues            *SyncIssuesResult
	IssuesError       string
	PullRequests      *SyncPullRequestsResult
	PullRequestsError string
}

// EvaluationKind - вид оценки issue
type EvaluationKind string

const (
	EvaluationKindSpeed       EvaluationKind = "speed"
	EvaluationKindQuality     EvaluationKind = "quality"
	EvaluationKindConsistency EvaluationKind = "consistency"
)

// EvaluationOutcome - исход одной оценки в батче
type EvaluationOutcome string

const (
	EvaluationOutcomeEvaluated EvaluationOutcome = "evaluated"
	EvaluationOutcomeSkipped   EvaluationOutcome = "skipped"
	EvaluationOutcomeFailed    EvaluationOutcome = "failed"
)

// SpeedEvaluationResult - результат детерминированной оценки скорости.
// Открытый или незакрытый issue не оценивается: Evaluated=false, это не ошибка.
type SpeedEvaluationResult struct {
	IssueID      string
	Evaluated    bool
	Score        *int
	Grade        *string
	ElapsedHours *float64
}

// CategoryResult - балл и комментарий по одной категории рубрики
type CategoryResult struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// QualityDetail - структурированная детализация оценки качества описания
type QualityDetail struct {
	Categories      []CategoryResult `json:"categories"`
	OverallFeedback string           `json:"overall_feedback"`
	Suggestions     []string         `json:"suggestions"`
}

// QualityEvaluationResult - результат оценки качества описания issue
type QualityEvaluationResult struct {
	IssueID string
	Score   int
	Grade   string
	Detail  QualityDetail
}

// ConsistencyDetail - структурированная детализация оценки согласованности
type ConsistencyDetail struct {
	Categories      []CategoryResult `json:"categories"`
	OverallFeedback string           `json:"overall_feedback"`
	PullRequestIDs  []string         `json:"pull_request_ids"`
}

// ConsistencyEvaluationResult - результат оценки согласованности issue и связанных PR.
// Issue без связанных PR пропускается: Skipped=true с причиной, это не ошибка.
type ConsistencyEvaluationResult struct {
	IssueID    string
	Skipped    bool
	SkipReason string
	Score      *int
	Grade      *string
	Detail     *ConsistencyDetail
}

// BatchEvaluationInput - входные данные батч-оценки репозитория.
// Пустой Kinds означает все три вида оценок.
type BatchEvaluationInput struct {
	RepositoryID string
	Kinds        []EvaluationKind
}

// BatchItemResult - исход одной оценки одного issue в батче
type BatchItemResult struct {
	IssueID      string
	GitHubNumber int
	Kind         EvaluationKind
	Outcome      EvaluationOutcome
	Reason       string
}

// BatchEvaluationResult - агрегированный результат батч-оценки:
// счётчики по исходам плюс поимённые причины, никогда не единая непрозрачная ошибка
type BatchEvaluationResult struct {
	RepositoryID string
	Evaluated    int
	Skipped      int
	Failed       int
	Items        []BatchItemResult
}
