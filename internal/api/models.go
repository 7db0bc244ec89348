package api

import (
	"encoding/json"
	"time"
)

const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeRepositoryExists = "REPOSITORY_EXISTS"
	ErrCodeValidation       = "VALIDATION"
	ErrCodeGitHubFetch      = "GITHUB_FETCH_FAILED"
	ErrCodeEvaluation       = "EVALUATION_FAILED"

	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
)

// Error represents a standardized error structure
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error Error `json:"error"`
}

// Repository - представление отслеживаемого репозитория в API;
// токен доступа наружу не отдаётся
type Repository struct {
	ID                   string    `json:"id"`
	Owner                string    `json:"owner"`
	Name                 string    `json:"name"`
	TrackingStartDate    time.Time `json:"tracking_start_date"`
	SprintStartDayOfWeek int       `json:"sprint_start_day_of_week"`
	SprintDurationWeeks  int       `json:"sprint_duration_weeks"`
	CreatedAt            time.Time `json:"created_at"`
}

// Collaborator - представление коллаборатора в API
type Collaborator struct {
	ID             string `json:"id"`
	GitHubUserName string `json:"github_user_name"`
	Name           string `json:"name"`
}

// EvaluationSlot - один слот оценки; nil до первого вычисления
type EvaluationSlot struct {
	Score        int             `json:"score"`
	Grade        string          `json:"grade"`
	Detail       json.RawMessage `json:"detail,omitempty"`
	CalculatedAt time.Time       `json:"calculated_at"`
}

// Evaluation - представление записи оценок issue в API
type Evaluation struct {
	IssueID     string          `json:"issue_id"`
	Speed       *EvaluationSlot `json:"speed"`
	Quality     *EvaluationSlot `json:"quality"`
	Consistency *EvaluationSlot `json:"consistency"`
}

// BatchItem - исход одной оценки одного issue в батче
type BatchItem struct {
	IssueID      string `json:"issue_id"`
	GitHubNumber int    `json:"github_number"`
	Kind         string `json:"kind"`
	Outcome      string `json:"outcome"`
	Reason       string `json:"reason,omitempty"`
}
