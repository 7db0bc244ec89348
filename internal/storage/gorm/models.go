package gorm

import (
	"encoding/json"
	"time"
)

// Repository - модель БД для отслеживаемого репозитория
type Repository struct {
	ID    string `gorm:"column:id;type:uuid;primaryKey"`
	Owner string `gorm:"column:owner;not null;uniqueIndex:idx_repositories_owner_name"`
	Name  string `gorm:"column:name;not null;uniqueIndex:idx_repositories_owner_name"`

	// Токен хранится зашифрованным (AES-GCM, base64)
	AccessTokenEncrypted string `gorm:"column:access_token_encrypted"`

	TrackingStartDate    time.Time `gorm:"column:tracking_start_date;not null"`
	SprintStartDayOfWeek int       `gorm:"column:sprint_start_day_of_week;not null"`
	SprintDurationWeeks  int       `gorm:"column:sprint_duration_weeks;not null;default:1"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Repository) TableName() string {
	return "repositories"
}

// Collaborator - модель БД для коллаборатора репозитория
type Collaborator struct {
	ID             string    `gorm:"column:id;type:uuid;primaryKey"`
	RepositoryID   string    `gorm:"column:repository_id;type:uuid;not null;uniqueIndex:idx_collaborators_repo_login"`
	GitHubUserName string    `gorm:"column:github_user_name;not null;uniqueIndex:idx_collaborators_repo_login"`
	Name           string    `gorm:"column:name;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Collaborator) TableName() string {
	return "collaborators"
}

// Issue - модель БД для issue
type Issue struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey"`
	RepositoryID string `gorm:"column:repository_id;type:uuid;not null;uniqueIndex:idx_issues_repo_number"`
	GitHubNumber int    `gorm:"column:github_number;not null;uniqueIndex:idx_issues_repo_number"`
	Title        string `gorm:"column:title;not null"`
	Body         string `gorm:"column:body"`
	State        string `gorm:"column:state;not null"`

	AuthorID   *string `gorm:"column:author_id;type:uuid"`
	AssigneeID *string `gorm:"column:assignee_id;type:uuid"`

	SprintNumber int `gorm:"column:sprint_number;not null"`

	GitHubCreatedAt time.Time  `gorm:"column:github_created_at;not null"`
	GitHubClosedAt  *time.Time `gorm:"column:github_closed_at"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Issue) TableName() string {
	return "issues"
}

// PullRequest - модель БД для pull request
type PullRequest struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey"`
	RepositoryID string `gorm:"column:repository_id;type:uuid;not null;uniqueIndex:idx_pull_requests_repo_number"`
	GitHubNumber int    `gorm:"column:github_number;not null;uniqueIndex:idx_pull_requests_repo_number"`
	Title        string `gorm:"column:title;not null"`
	Body         string `gorm:"column:body"`
	State        string `gorm:"column:state;not null"`

	IssueID  *string `gorm:"column:issue_id;type:uuid"`
	AuthorID *string `gorm:"column:author_id;type:uuid"`

	Additions    int `gorm:"column:additions;not null;default:0"`
	Deletions    int `gorm:"column:deletions;not null;default:0"`
	ChangedFiles int `gorm:"column:changed_files;not null;default:0"`

	GitHubCreatedAt time.Time  `gorm:"column:github_created_at;not null"`
	MergedAt        *time.Time `gorm:"column:merged_at"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
}

func (PullRequest) TableName() string {
	return "pull_requests"
}

// Evaluation - модель БД для оценок issue, не более одной записи на issue
type Evaluation struct {
	ID      string `gorm:"column:id;type:uuid;primaryKey"`
	IssueID string `gorm:"column:issue_id;type:uuid;not null;uniqueIndex:idx_evaluations_issue"`

	SpeedScore        *int       `gorm:"column:speed_score"`
	SpeedGrade        *string    `gorm:"column:speed_grade"`
	SpeedCalculatedAt *time.Time `gorm:"column:speed_calculated_at"`

	QualityScore        *int            `gorm:"column:quality_score"`
	QualityGrade        *string         `gorm:"column:quality_grade"`
	QualityDetail       json.RawMessage `gorm:"column:quality_detail;type:jsonb"`
	QualityCalculatedAt *time.Time      `gorm:"column:quality_calculated_at"`

	ConsistencyScore        *int            `gorm:"column:consistency_score"`
	ConsistencyGrade        *string         `gorm:"column:consistency_grade"`
	ConsistencyDetail       json.RawMessage `gorm:"column:consistency_detail;type:jsonb"`
	ConsistencyCalculatedAt *time.Time      `gorm:"column:consistency_calculated_at"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

// SyncMetadata - модель БД для watermark синхронизации
type SyncMetadata struct {
	RepositoryID string    `gorm:"column:repository_id;type:uuid;primaryKey"`
	LastSyncAt   time.Time `gorm:"column:last_sync_at;not null"`
}

func (SyncMetadata) TableName() string {
	return "sync_metadata"
}
