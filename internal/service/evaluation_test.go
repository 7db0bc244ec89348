package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"teamhealth/internal/domain"
	"teamhealth/internal/mocks"
	"teamhealth/internal/storage"
)

func closedIssue(id string, number int, elapsed time.Duration) *domain.Issue {
	createdAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	closedAt := createdAt.Add(elapsed)
	return &domain.Issue{
		ID:              id,
		RepositoryID:    "repo-1",
		GitHubNumber:    number,
		Title:           "Fix login",
		Body:            "Steps to reproduce: open the login form",
		State:           domain.IssueStateClosed,
		GitHubCreatedAt: createdAt,
		GitHubClosedAt:  &closedAt,
	}
}

func TestEvaluateSpeed_ClosedIssue(t *testing.T) {
	svc, mockTx, _, _ := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)
	mockEvalRepo := mocks.NewEvaluationRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockTx.On("EvaluationRepo").Return(mockEvalRepo)

	// 30 часов от создания до закрытия - попадание во второй порог
	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(closedIssue("issue-1", 42, 30*time.Hour), nil)
	mockEvalRepo.On("UpsertSpeed", mock.Anything, "issue-1", 100, "A", mock.AnythingOfType("time.Time")).Return(nil)

	result, err := svc.EvaluateSpeed(context.Background(), "issue-1")

	require.NoError(t, err)
	assert.True(t, result.Evaluated)
	require.NotNil(t, result.Score)
	assert.Equal(t, 100, *result.Score)
	require.NotNil(t, result.Grade)
	assert.Equal(t, "A", *result.Grade)
	require.NotNil(t, result.ElapsedHours)
	assert.InDelta(t, 30.0, *result.ElapsedHours, 0.001)
}

func TestEvaluateSpeed_OpenIssueIsSkippedWithoutWrite(t *testing.T) {
	svc, mockTx, _, _ := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)

	// EvaluationRepo не настроен: запись слота для открытого issue провалит тест
	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(&domain.Issue{
		ID:              "issue-1",
		GitHubNumber:    42,
		State:           domain.IssueStateOpen,
		GitHubCreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	}, nil)

	result, err := svc.EvaluateSpeed(context.Background(), "issue-1")

	require.NoError(t, err)
	assert.False(t, result.Evaluated)
	assert.Nil(t, result.Score)
	assert.Nil(t, result.Grade)
}

func TestEvaluateSpeed_IssueNotFound(t *testing.T) {
	svc, mockTx, _, _ := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockIssueRepo.On("GetByID", mock.Anything, "missing").Return(nil, storage.ErrNotFound)

	result, err := svc.EvaluateSpeed(context.Background(), "missing")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrIssueNotFound)
}

func TestEvaluateQuality_Success(t *testing.T) {
	svc, mockTx, _, mockScoring := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)
	mockEvalRepo := mocks.NewEvaluationRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockTx.On("EvaluationRepo").Return(mockEvalRepo)

	issue := closedIssue("issue-1", 42, 30*time.Hour)
	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(issue, nil)

	answer, err := json.Marshal(map[string]any{
		"categories": []map[string]any{
			{"name": "clarity", "score": 20, "feedback": "clear title"},
			{"name": "completion_criteria", "score": 18, "feedback": "criteria listed"},
			{"name": "context", "score": 25, "feedback": "good background"},
			{"name": "actionability", "score": 15, "feedback": "mostly actionable"},
		},
		"overall_feedback": "solid issue",
		"suggestions":      []string{"add screenshots"},
	})
	require.NoError(t, err)

	mockScoring.On("GenerateStructured", mock.Anything, mock.MatchedBy(func(req *domain.StructuredOutputRequest) bool {
		return req.Name == "issue_quality" &&
			strings.Contains(req.Prompt, "Fix login") &&
			strings.Contains(req.Prompt, "clarity (max 25 points)")
	})).Return(json.RawMessage(answer), nil)

	mockEvalRepo.On("UpsertQuality", mock.Anything, "issue-1", 78, "B",
		mock.AnythingOfType("json.RawMessage"), mock.AnythingOfType("time.Time")).Return(nil)

	result, err := svc.EvaluateQuality(context.Background(), "issue-1")

	require.NoError(t, err)
	assert.Equal(t, 78, result.Score)
	assert.Equal(t, "B", result.Grade)
	require.Len(t, result.Detail.Categories, 4)
	assert.Equal(t, "solid issue", result.Detail.OverallFeedback)
	assert.Equal(t, []string{"add screenshots"}, result.Detail.Suggestions)
}

func TestEvaluateQuality_TruncatesExcessSuggestions(t *testing.T) {
	svc, mockTx, _, mockScoring := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)
	mockEvalRepo := mocks.NewEvaluationRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockTx.On("EvaluationRepo").Return(mockEvalRepo)

	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(closedIssue("issue-1", 42, 30*time.Hour), nil)

	// Модель игнорирует ограничение схемы и возвращает пять предложений
	answer := `{
		"categories": [
			{"name": "clarity", "score": 20, "feedback": "clear title"},
			{"name": "completion_criteria", "score": 18, "feedback": "criteria listed"},
			{"name": "context", "score": 25, "feedback": "good background"},
			{"name": "actionability", "score": 15, "feedback": "mostly actionable"}
		],
		"overall_feedback": "solid issue",
		"suggestions": ["one", "two", "three", "four", "five"]
	}`
	mockScoring.On("GenerateStructured", mock.Anything, mock.MatchedBy(func(req *domain.StructuredOutputRequest) bool {
		return req.Name == "issue_quality" && strings.Contains(string(req.Schema), `"maxItems": 3`)
	})).Return(json.RawMessage(answer), nil)

	mockEvalRepo.On("UpsertQuality", mock.Anything, "issue-1", 78, "B",
		mock.AnythingOfType("json.RawMessage"), mock.AnythingOfType("time.Time")).Return(nil)

	result, err := svc.EvaluateQuality(context.Background(), "issue-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, result.Detail.Suggestions)
}

func TestEvaluateQuality_NormalizesMissingAndOverflowingCategories(t *testing.T) {
	svc, mockTx, _, mockScoring := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)
	mockEvalRepo := mocks.NewEvaluationRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockTx.On("EvaluationRepo").Return(mockEvalRepo)

	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(closedIssue("issue-1", 42, 30*time.Hour), nil)

	// clarity выше веса зажимается до 25, две категории отсутствуют
	answer := `{
		"categories": [
			{"name": "clarity", "score": 40, "feedback": "over the top"},
			{"name": "context", "score": 30, "feedback": "full background"}
		],
		"overall_feedback": "partial answer",
		"suggestions": []
	}`
	mockScoring.On("GenerateStructured", mock.Anything, mock.Anything).Return(json.RawMessage(answer), nil)

	mockEvalRepo.On("UpsertQuality", mock.Anything, "issue-1", 55, "C",
		mock.AnythingOfType("json.RawMessage"), mock.AnythingOfType("time.Time")).Return(nil)

	result, err := svc.EvaluateQuality(context.Background(), "issue-1")

	require.NoError(t, err)
	assert.Equal(t, 55, result.Score)
	assert.Equal(t, "C", result.Grade)

	// Категории выстроены в порядке рубрики, пропущенные получили ноль
	require.Len(t, result.Detail.Categories, 4)
	assert.Equal(t, "clarity", result.Detail.Categories[0].Name)
	assert.Equal(t, 25, result.Detail.Categories[0].Score)
	assert.Equal(t, "completion_criteria", result.Detail.Categories[1].Name)
	assert.Equal(t, 0, result.Detail.Categories[1].Score)
	assert.Equal(t, "could not be evaluated", result.Detail.Categories[1].Feedback)
	assert.Equal(t, 30, result.Detail.Categories[2].Score)
	assert.Equal(t, 0, result.Detail.Categories[3].Score)
}

func TestEvaluateQuality_MalformedResponse(t *testing.T) {
	svc, mockTx, _, mockScoring := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(closedIssue("issue-1", 42, 30*time.Hour), nil)

	// EvaluationRepo не настроен: до записи дело дойти не должно
	mockScoring.On("GenerateStructured", mock.Anything, mock.Anything).
		Return(json.RawMessage(`sorry, I cannot do that`), nil)

	result, err := svc.EvaluateQuality(context.Background(), "issue-1")

	assert.Nil(t, result)
	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrorCodeEvaluationFailed, domainErr.Code)
}

func TestEvaluateQuality_ScoringServiceUnavailable(t *testing.T) {
	svc, mockTx, _, mockScoring := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(closedIssue("issue-1", 42, 30*time.Hour), nil)

	mockScoring.On("GenerateStructured", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	result, err := svc.EvaluateQuality(context.Background(), "issue-1")

	assert.Nil(t, result)
	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrorCodeEvaluationFailed, domainErr.Code)
}

func TestEvaluateConsistency_NoLinkedPullRequests(t *testing.T) {
	svc, mockTx, _, _ := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)
	mockPRRepo := mocks.NewPullRequestRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockTx.On("PullRequestRepo").Return(mockPRRepo)

	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(closedIssue("issue-1", 42, 30*time.Hour), nil)
	// Без связанных PR scoring-сервис не вызывается: mockScoring без ожиданий
	mockPRRepo.On("ListByIssue", mock.Anything, "issue-1").Return(nil, nil)

	result, err := svc.EvaluateConsistency(context.Background(), "issue-1")

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, "no linked pull requests", result.SkipReason)
	assert.Nil(t, result.Score)
	assert.Nil(t, result.Detail)
}

func TestEvaluateConsistency_Success(t *testing.T) {
	svc, mockTx, _, mockScoring := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)
	mockPRRepo := mocks.NewPullRequestRepository(t)
	mockEvalRepo := mocks.NewEvaluationRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockTx.On("PullRequestRepo").Return(mockPRRepo)
	mockTx.On("EvaluationRepo").Return(mockEvalRepo)

	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(closedIssue("issue-1", 42, 30*time.Hour), nil)

	mergedAt := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	mockPRRepo.On("ListByIssue", mock.Anything, "issue-1").Return([]domain.PullRequest{
		{
			ID:           "pr-1",
			GitHubNumber: 101,
			Title:        "Fix login form",
			State:        "closed",
			Additions:    120,
			Deletions:    40,
			ChangedFiles: 5,
			MergedAt:     &mergedAt,
		},
	}, nil)

	answer := `{
		"categories": [
			{"name": "purpose_alignment", "score": 20, "feedback": "addresses the goal"},
			{"name": "implementation_coverage", "score": 30, "feedback": "full coverage"},
			{"name": "scope_consistency", "score": 20, "feedback": "proportional"},
			{"name": "description_accuracy", "score": 20, "feedback": "accurate"},
			{"name": "traceability", "score": 10, "feedback": "explicitly linked"}
		],
		"overall_feedback": "consistent work"
	}`
	mockScoring.On("GenerateStructured", mock.Anything, mock.MatchedBy(func(req *domain.StructuredOutputRequest) bool {
		return req.Name == "issue_consistency" &&
			strings.Contains(req.Prompt, "PR #101") &&
			strings.Contains(req.Prompt, "+120 -40 across 5 files")
	})).Return(json.RawMessage(answer), nil)

	mockEvalRepo.On("UpsertConsistency", mock.Anything, "issue-1", 100, "A",
		mock.AnythingOfType("json.RawMessage"), mock.AnythingOfType("time.Time")).Return(nil)

	result, err := svc.EvaluateConsistency(context.Background(), "issue-1")

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	require.NotNil(t, result.Score)
	assert.Equal(t, 100, *result.Score)
	require.NotNil(t, result.Grade)
	assert.Equal(t, "A", *result.Grade)
	require.NotNil(t, result.Detail)
	assert.Equal(t, []string{"pr-1"}, result.Detail.PullRequestIDs)
}

func TestEvaluateRepository_SpeedOutcomes(t *testing.T) {
	svc, mockTx, _, _ := newTestService(t)
	mockRepoRepo := mocks.NewRepositoryRepository(t)
	mockIssueRepo := mocks.NewIssueRepository(t)
	mockEvalRepo := mocks.NewEvaluationRepository(t)

	mockTx.On("RepositoryRepo").Return(mockRepoRepo)
	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockTx.On("EvaluationRepo").Return(mockEvalRepo)

	mockRepoRepo.On("GetByID", mock.Anything, "repo-1").Return(testRepository(), nil)

	closed := closedIssue("issue-1", 42, 30*time.Hour)
	open := &domain.Issue{
		ID:              "issue-2",
		RepositoryID:    "repo-1",
		GitHubNumber:    43,
		State:           domain.IssueStateOpen,
		GitHubCreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	}

	mockIssueRepo.On("ListByRepository", mock.Anything, "repo-1").Return([]domain.Issue{*closed, *open}, nil)
	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(closed, nil)
	mockIssueRepo.On("GetByID", mock.Anything, "issue-2").Return(open, nil)

	mockEvalRepo.On("UpsertSpeed", mock.Anything, "issue-1", 100, "A", mock.AnythingOfType("time.Time")).Return(nil)

	result, err := svc.EvaluateRepository(context.Background(), &domain.BatchEvaluationInput{
		RepositoryID: "repo-1",
		Kinds:        []domain.EvaluationKind{domain.EvaluationKindSpeed},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Evaluated)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)

	require.Len(t, result.Items, 2)
	assert.Equal(t, 42, result.Items[0].GitHubNumber)
	assert.Equal(t, domain.EvaluationOutcomeEvaluated, result.Items[0].Outcome)
	assert.Equal(t, 43, result.Items[1].GitHubNumber)
	assert.Equal(t, domain.EvaluationOutcomeSkipped, result.Items[1].Outcome)
	assert.Equal(t, "issue is not closed", result.Items[1].Reason)
}

func TestEvaluateRepository_FailureDoesNotStopBatch(t *testing.T) {
	svc, mockTx, _, mockScoring := newTestService(t)
	mockRepoRepo := mocks.NewRepositoryRepository(t)
	mockIssueRepo := mocks.NewIssueRepository(t)
	mockEvalRepo := mocks.NewEvaluationRepository(t)

	mockTx.On("RepositoryRepo").Return(mockRepoRepo)
	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockTx.On("EvaluationRepo").Return(mockEvalRepo)

	mockRepoRepo.On("GetByID", mock.Anything, "repo-1").Return(testRepository(), nil)

	first := closedIssue("issue-1", 42, 30*time.Hour)
	second := closedIssue("issue-2", 43, 30*time.Hour)
	mockIssueRepo.On("ListByRepository", mock.Anything, "repo-1").Return([]domain.Issue{*first, *second}, nil)
	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(first, nil)
	mockIssueRepo.On("GetByID", mock.Anything, "issue-2").Return(second, nil)

	goodAnswer := `{
		"categories": [
			{"name": "clarity", "score": 20, "feedback": "ok"},
			{"name": "completion_criteria", "score": 20, "feedback": "ok"},
			{"name": "context", "score": 25, "feedback": "ok"},
			{"name": "actionability", "score": 15, "feedback": "ok"}
		],
		"overall_feedback": "fine",
		"suggestions": []
	}`

	// Для одного issue scoring-сервис отвечает, для другого падает
	mockScoring.On("GenerateStructured", mock.Anything, mock.MatchedBy(func(req *domain.StructuredOutputRequest) bool {
		return strings.Contains(req.Prompt, "Issue #42")
	})).Return(json.RawMessage(goodAnswer), nil)
	mockScoring.On("GenerateStructured", mock.Anything, mock.MatchedBy(func(req *domain.StructuredOutputRequest) bool {
		return strings.Contains(req.Prompt, "Issue #43")
	})).Return(nil, errors.New("model overloaded"))

	mockEvalRepo.On("UpsertQuality", mock.Anything, "issue-1", 80, "B",
		mock.AnythingOfType("json.RawMessage"), mock.AnythingOfType("time.Time")).Return(nil)

	result, err := svc.EvaluateRepository(context.Background(), &domain.BatchEvaluationInput{
		RepositoryID: "repo-1",
		Kinds:        []domain.EvaluationKind{domain.EvaluationKindQuality},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Evaluated)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 1, result.Failed)

	require.Len(t, result.Items, 2)
	assert.Equal(t, domain.EvaluationOutcomeEvaluated, result.Items[0].Outcome)
	assert.Equal(t, domain.EvaluationOutcomeFailed, result.Items[1].Outcome)
	assert.NotEmpty(t, result.Items[1].Reason)
}

func TestEvaluateRepository_UnknownKind(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	result, err := svc.EvaluateRepository(context.Background(), &domain.BatchEvaluationInput{
		RepositoryID: "repo-1",
		Kinds:        []domain.EvaluationKind{"velocity"},
	})

	assert.Nil(t, result)
	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrorCodeValidation, domainErr.Code)
}

func TestGetEvaluation_NotEvaluatedYet(t *testing.T) {
	svc, mockTx, _, _ := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)
	mockEvalRepo := mocks.NewEvaluationRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockTx.On("EvaluationRepo").Return(mockEvalRepo)

	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(closedIssue("issue-1", 42, 30*time.Hour), nil)
	mockEvalRepo.On("GetByIssueID", mock.Anything, "issue-1").Return(nil, storage.ErrNotFound)

	evaluation, err := svc.GetEvaluation(context.Background(), "issue-1")

	assert.Nil(t, evaluation)
	assert.ErrorIs(t, err, domain.ErrEvaluationNotFound)
}

func TestGetEvaluation_IssueNotFound(t *testing.T) {
	svc, mockTx, _, _ := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockIssueRepo.On("GetByID", mock.Anything, "missing").Return(nil, storage.ErrNotFound)

	evaluation, err := svc.GetEvaluation(context.Background(), "missing")

	assert.Nil(t, evaluation)
	assert.ErrorIs(t, err, domain.ErrIssueNotFound)
}

func TestGetEvaluation_Success(t *testing.T) {
	svc, mockTx, _, _ := newTestService(t)
	mockIssueRepo := mocks.NewIssueRepository(t)
	mockEvalRepo := mocks.NewEvaluationRepository(t)

	mockTx.On("IssueRepo").Return(mockIssueRepo)
	mockTx.On("EvaluationRepo").Return(mockEvalRepo)

	mockIssueRepo.On("GetByID", mock.Anything, "issue-1").Return(closedIssue("issue-1", 42, 30*time.Hour), nil)

	score := 100
	grade := "A"
	stored := &domain.Evaluation{ID: "eval-1", IssueID: "issue-1", SpeedScore: &score, SpeedGrade: &grade}
	mockEvalRepo.On("GetByIssueID", mock.Anything, "issue-1").Return(stored, nil)

	evaluation, err := svc.GetEvaluation(context.Background(), "issue-1")

	require.NoError(t, err)
	assert.Equal(t, stored, evaluation)
}