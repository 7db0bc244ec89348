package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"teamhealth/internal/api/handlers"
	"teamhealth/internal/domain"
	"teamhealth/internal/mocks"
)

func setupTestRouter(syncService *mocks.SyncService, evalService *mocks.EvaluationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	_ = os.Setenv("ADMIN_TOKEN", "test-admin-token")
	_ = os.Setenv("USER_TOKEN", "test-user-token")
	handler := handlers.NewHandler(syncService, evalService)
	return handler.InitRoutes()
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddRepositoryHandler_Success(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	requestBody := map[string]interface{}{
		"owner":                    "acme",
		"name":                     "backend",
		"access_token":             "ghp_secret",
		"tracking_start_date":      "2024-01-01",
		"sprint_start_day_of_week": 6,
		"sprint_duration_weeks":    1,
	}

	expectedRepo := &domain.Repository{
		ID:                   "repo-1",
		Owner:                "acme",
		Name:                 "backend",
		AccessToken:          "ghp_secret",
		TrackingStartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		SprintStartDayOfWeek: 6,
		SprintDurationWeeks:  1,
	}

	mockSync.On("RegisterRepository", mock.Anything, mock.MatchedBy(func(input *domain.RegisterRepositoryInput) bool {
		return input.Owner == "acme" &&
			input.Name == "backend" &&
			input.AccessToken == "ghp_secret" &&
			input.TrackingStartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	})).Return(expectedRepo, nil)

	// Act
	w := doJSON(router, http.MethodPost, "/repository/add", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, "repo-1", response["id"])
	assert.Equal(t, "acme", response["owner"])

	// Токен доступа в ответ попадать не должен
	_, hasToken := response["access_token"]
	assert.False(t, hasToken)

	mockSync.AssertExpectations(t)
}

func TestAddRepositoryHandler_InvalidDate(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	requestBody := map[string]interface{}{
		"owner":                 "acme",
		"name":                  "backend",
		"tracking_start_date":   "01.01.2024",
		"sprint_duration_weeks": 1,
	}

	// Act
	w := doJSON(router, http.MethodPost, "/repository/add", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	errorObj := response["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_REQUEST", errorObj["code"])
}

func TestAddRepositoryHandler_Duplicate(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	requestBody := map[string]interface{}{
		"owner":                 "acme",
		"name":                  "backend",
		"tracking_start_date":   "2024-01-01",
		"sprint_duration_weeks": 1,
	}

	mockSync.On("RegisterRepository", mock.Anything, mock.Anything).
		Return(nil, domain.ErrRepositoryExists)

	// Act
	w := doJSON(router, http.MethodPost, "/repository/add", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	errorObj := response["error"].(map[string]interface{})
	assert.Equal(t, "REPOSITORY_EXISTS", errorObj["code"])

	mockSync.AssertExpectations(t)
}

func TestAddRepositoryHandler_RequiresAdmin(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	requestBody := map[string]interface{}{
		"owner":                 "acme",
		"name":                  "backend",
		"tracking_start_date":   "2024-01-01",
		"sprint_duration_weeks": 1,
	}

	// Act: пользовательский токен недостаточен для регистрации
	w := doJSON(router, http.MethodPost, "/repository/add", "test-user-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetRepositoryHandler_Success(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	mockSync.On("GetRepository", mock.Anything, "acme", "backend").
		Return(&domain.Repository{ID: "repo-1", Owner: "acme", Name: "backend"}, nil)

	// Act
	w := doJSON(router, http.MethodGet, "/repository/get?owner=acme&name=backend", "test-user-token", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "repo-1", response["id"])

	mockSync.AssertExpectations(t)
}

func TestGetRepositoryHandler_NotFound(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	mockSync.On("GetRepository", mock.Anything, "acme", "ghost").
		Return(nil, domain.ErrRepositoryNotFound)

	// Act
	w := doJSON(router, http.MethodGet, "/repository/get?owner=acme&name=ghost", "test-user-token", nil)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	errorObj := response["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errorObj["code"])
}

func TestGetRepositoryHandler_MissingParams(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	// Act
	w := doJSON(router, http.MethodGet, "/repository/get?owner=acme", "test-user-token", nil)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncIssuesHandler_Success(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	since := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mockSync.On("SyncIssues", mock.Anything, mock.MatchedBy(func(input *domain.SyncIssuesInput) bool {
		return input.RepositoryID == "repo-1" && input.Since != nil && input.Since.Equal(since)
	})).Return(&domain.SyncIssuesResult{RepositoryID: "repo-1", SyncedCount: 7}, nil)

	requestBody := map[string]interface{}{
		"repository_id": "repo-1",
		"since":         "2024-02-01T00:00:00Z",
	}

	// Act
	w := doJSON(router, http.MethodPost, "/sync/issues", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(7), response["synced_count"])

	mockSync.AssertExpectations(t)
}

func TestSyncIssuesHandler_InvalidSince(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	requestBody := map[string]interface{}{
		"repository_id": "repo-1",
		"since":         "yesterday",
	}

	// Act
	w := doJSON(router, http.MethodPost, "/sync/issues", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncAllHandler_PartialFailure(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	mockSync.On("SyncAll", mock.Anything, "repo-1").Return(&domain.SyncAllResult{
		RepositoryID: "repo-1",
		IssuesError:  "failed to fetch issues from GitHub",
		PullRequests: &domain.SyncPullRequestsResult{RepositoryID: "repo-1", SyncedCount: 3},
	}, nil)

	requestBody := map[string]interface{}{"repository_id": "repo-1"}

	// Act
	w := doJSON(router, http.MethodPost, "/sync/all", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, "failed to fetch issues from GitHub", response["issues_error"])
	assert.Equal(t, float64(3), response["pull_requests_synced"])

	_, hasIssuesSynced := response["issues_synced"]
	assert.False(t, hasIssuesSynced)

	mockSync.AssertExpectations(t)
}

func TestSyncCollaboratorsHandler_Success(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	mockSync.On("RegisterCollaborators", mock.Anything, mock.MatchedBy(func(input *domain.RegisterCollaboratorsInput) bool {
		return input.RepositoryID == "repo-1" &&
			len(input.AllowedLogins) == 1 && input.AllowedLogins[0] == "alice"
	})).Return(&domain.RegisterCollaboratorsResult{
		Collaborators: []domain.Collaborator{{ID: "collab-1", GitHubUserName: "alice", Name: "Alice"}},
		AddedCount:    1,
	}, nil)

	requestBody := map[string]interface{}{
		"repository_id":  "repo-1",
		"allowed_logins": []string{"alice"},
	}

	// Act
	w := doJSON(router, http.MethodPost, "/sync/collaborators", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, float64(1), response["added_count"])
	collaborators := response["collaborators"].([]interface{})
	assert.Equal(t, 1, len(collaborators))

	mockSync.AssertExpectations(t)
}

func TestEvaluateSpeedHandler_Evaluated(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	score := 100
	grade := "A"
	elapsed := 30.0
	mockEval.On("EvaluateSpeed", mock.Anything, "issue-1").Return(&domain.SpeedEvaluationResult{
		IssueID:      "issue-1",
		Evaluated:    true,
		Score:        &score,
		Grade:        &grade,
		ElapsedHours: &elapsed,
	}, nil)

	requestBody := map[string]interface{}{"issue_id": "issue-1"}

	// Act
	w := doJSON(router, http.MethodPost, "/evaluation/speed", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, true, response["evaluated"])
	assert.Equal(t, float64(100), response["score"])
	assert.Equal(t, "A", response["grade"])

	mockEval.AssertExpectations(t)
}

func TestEvaluateSpeedHandler_NotClosed(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	mockEval.On("EvaluateSpeed", mock.Anything, "issue-1").
		Return(&domain.SpeedEvaluationResult{IssueID: "issue-1", Evaluated: false}, nil)

	requestBody := map[string]interface{}{"issue_id": "issue-1"}

	// Act
	w := doJSON(router, http.MethodPost, "/evaluation/speed", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, false, response["evaluated"])
	_, hasScore := response["score"]
	assert.False(t, hasScore)
}

func TestEvaluateConsistencyHandler_Skipped(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	mockEval.On("EvaluateConsistency", mock.Anything, "issue-1").Return(&domain.ConsistencyEvaluationResult{
		IssueID:    "issue-1",
		Skipped:    true,
		SkipReason: "no linked pull requests",
	}, nil)

	requestBody := map[string]interface{}{"issue_id": "issue-1"}

	// Act
	w := doJSON(router, http.MethodPost, "/evaluation/consistency", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, true, response["skipped"])
	assert.Equal(t, "no linked pull requests", response["skip_reason"])
}

func TestEvaluateRepositoryHandler_Success(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	mockEval.On("EvaluateRepository", mock.Anything, mock.MatchedBy(func(input *domain.BatchEvaluationInput) bool {
		return input.RepositoryID == "repo-1" &&
			len(input.Kinds) == 1 && input.Kinds[0] == domain.EvaluationKindSpeed
	})).Return(&domain.BatchEvaluationResult{
		RepositoryID: "repo-1",
		Evaluated:    1,
		Skipped:      1,
		Items: []domain.BatchItemResult{
			{IssueID: "issue-1", GitHubNumber: 42, Kind: domain.EvaluationKindSpeed, Outcome: domain.EvaluationOutcomeEvaluated},
			{IssueID: "issue-2", GitHubNumber: 43, Kind: domain.EvaluationKindSpeed, Outcome: domain.EvaluationOutcomeSkipped, Reason: "issue is not closed"},
		},
	}, nil)

	requestBody := map[string]interface{}{
		"repository_id": "repo-1",
		"kinds":         []string{"speed"},
	}

	// Act
	w := doJSON(router, http.MethodPost, "/evaluation/run", "test-admin-token", requestBody)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, float64(1), response["evaluated"])
	assert.Equal(t, float64(1), response["skipped"])
	items := response["items"].([]interface{})
	assert.Equal(t, 2, len(items))

	mockEval.AssertExpectations(t)
}

func TestGetEvaluationHandler_Success(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	score := 100
	grade := "A"
	calculatedAt := time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)
	mockEval.On("GetEvaluation", mock.Anything, "issue-1").Return(&domain.Evaluation{
		ID:                "eval-1",
		IssueID:           "issue-1",
		SpeedScore:        &score,
		SpeedGrade:        &grade,
		SpeedCalculatedAt: &calculatedAt,
	}, nil)

	// Act
	w := doJSON(router, http.MethodGet, "/evaluation/get?issue_id=issue-1", "test-user-token", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "issue-1", response["issue_id"])

	speed := response["speed"].(map[string]interface{})
	assert.Equal(t, float64(100), speed["score"])
	assert.Equal(t, "A", speed["grade"])

	// Слоты без вычисленных оценок остаются null
	assert.Nil(t, response["quality"])
	assert.Nil(t, response["consistency"])

	mockEval.AssertExpectations(t)
}

func TestGetEvaluationHandler_NotFound(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	mockEval.On("GetEvaluation", mock.Anything, "issue-1").
		Return(nil, domain.ErrEvaluationNotFound)

	// Act
	w := doJSON(router, http.MethodGet, "/evaluation/get?issue_id=issue-1", "test-user-token", nil)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	errorObj := response["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errorObj["code"])
}

func TestHealthzHandler_NoAuthRequired(t *testing.T) {
	// Arrange
	mockSync := mocks.NewSyncService(t)
	mockEval := mocks.NewEvaluationService(t)
	router := setupTestRouter(mockSync, mockEval)

	// Act
	w := doJSON(router, http.MethodGet, "/healthz", "", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
}
