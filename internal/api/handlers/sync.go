package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"teamhealth/internal/api/middleware"
	"teamhealth/internal/domain"
)

// parseSince разбирает опциональный параметр since в формате RFC3339
func parseSince(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// SyncIssues обрабатывает ручной запуск синхронизации issues
func (h *Handler) SyncIssues(c *gin.Context) {
	var req struct {
		RepositoryID string `json:"repository_id" binding:"required"`
		Since        string `json:"since"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	since, ok := parseSince(req.Since)
	if !ok {
		badRequest(c, "since must be in RFC3339 format")
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("repository_id", req.RepositoryID).
		Msg("syncing issues")

	result, err := h.syncService.SyncIssues(c.Request.Context(), &domain.SyncIssuesInput{
		RepositoryID: req.RepositoryID,
		Since:        since,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"repository_id": result.RepositoryID,
		"synced_count":  result.SyncedCount,
	})
}

// SyncPullRequests обрабатывает ручной запуск синхронизации pull request'ов
func (h *Handler) SyncPullRequests(c *gin.Context) {
	var req struct {
		RepositoryID string `json:"repository_id" binding:"required"`
		Since        string `json:"since"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	since, ok := parseSince(req.Since)
	if !ok {
		badRequest(c, "since must be in RFC3339 format")
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("repository_id", req.RepositoryID).
		Msg("syncing pull requests")

	result, err := h.syncService.SyncPullRequests(c.Request.Context(), &domain.SyncPullRequestsInput{
		RepositoryID: req.RepositoryID,
		Since:        since,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"repository_id": result.RepositoryID,
		"synced_count":  result.SyncedCount,
	})
}

// SyncAll обрабатывает инкрементальную синхронизацию issues и PR от watermark
func (h *Handler) SyncAll(c *gin.Context) {
	var req struct {
		RepositoryID string `json:"repository_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("repository_id", req.RepositoryID).
		Msg("syncing repository")

	result, err := h.syncService.SyncAll(c.Request.Context(), req.RepositoryID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response := gin.H{"repository_id": result.RepositoryID}
	if result.Issues != nil {
		response["issues_synced"] = result.Issues.SyncedCount
	}
	if result.IssuesError != "" {
		response["issues_error"] = result.IssuesError
	}
	if result.PullRequests != nil {
		response["pull_requests_synced"] = result.PullRequests.SyncedCount
	}
	if result.PullRequestsError != "" {
		response["pull_requests_error"] = result.PullRequestsError
	}

	c.JSON(http.StatusOK, response)
}

// SyncCollaborators обрабатывает регистрацию коллабораторов репозитория
func (h *Handler) SyncCollaborators(c *gin.Context) {
	var req struct {
		RepositoryID  string   `json:"repository_id" binding:"required"`
		AllowedLogins []string `json:"allowed_logins"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("repository_id", req.RepositoryID).
		Msg("registering collaborators")

	result, err := h.syncService.RegisterCollaborators(c.Request.Context(), &domain.RegisterCollaboratorsInput{
		RepositoryID:  req.RepositoryID,
		AllowedLogins: req.AllowedLogins,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"collaborators": mapCollaboratorsToAPI(result.Collaborators),
		"added_count":   result.AddedCount,
	})
}

// LinkPullRequests обрабатывает линковку PR к закрываемым ими issues
func (h *Handler) LinkPullRequests(c *gin.Context) {
	var req struct {
		RepositoryID string `json:"repository_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("repository_id", req.RepositoryID).
		Msg("linking pull requests")

	result, err := h.syncService.LinkPullRequests(c.Request.Context(), req.RepositoryID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"repository_id": result.RepositoryID,
		"linked_count":  result.LinkedCount,
		"failed_count":  result.FailedCount,
	})
}
