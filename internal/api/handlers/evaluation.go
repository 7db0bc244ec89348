package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"teamhealth/internal/api/middleware"
	"teamhealth/internal/domain"
)

// EvaluateSpeed обрабатывает запуск оценки скорости закрытия одного issue
func (h *Handler) EvaluateSpeed(c *gin.Context) {
	var req struct {
		IssueID string `json:"issue_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("issue_id", req.IssueID).
		Msg("evaluating issue speed")

	result, err := h.evalService.EvaluateSpeed(c.Request.Context(), req.IssueID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response := gin.H{
		"issue_id":  result.IssueID,
		"evaluated": result.Evaluated,
	}
	if result.Evaluated {
		response["score"] = *result.Score
		response["grade"] = *result.Grade
		response["elapsed_hours"] = *result.ElapsedHours
	}

	c.JSON(http.StatusOK, response)
}

// EvaluateQuality обрабатывает запуск AI-оценки качества описания одного issue
func (h *Handler) EvaluateQuality(c *gin.Context) {
	var req struct {
		IssueID string `json:"issue_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("issue_id", req.IssueID).
		Msg("evaluating issue quality")

	result, err := h.evalService.EvaluateQuality(c.Request.Context(), req.IssueID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issue_id": result.IssueID,
		"score":    result.Score,
		"grade":    result.Grade,
		"detail":   result.Detail,
	})
}

// EvaluateConsistency обрабатывает запуск AI-оценки согласованности одного issue
func (h *Handler) EvaluateConsistency(c *gin.Context) {
	var req struct {
		IssueID string `json:"issue_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("issue_id", req.IssueID).
		Msg("evaluating issue consistency")

	result, err := h.evalService.EvaluateConsistency(c.Request.Context(), req.IssueID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response := gin.H{"issue_id": result.IssueID}
	if result.Skipped {
		response["skipped"] = true
		response["skip_reason"] = result.SkipReason
	} else {
		response["score"] = *result.Score
		response["grade"] = *result.Grade
		response["detail"] = *result.Detail
	}

	c.JSON(http.StatusOK, response)
}

// EvaluateRepository обрабатывает батч-оценку всех issues репозитория
func (h *Handler) EvaluateRepository(c *gin.Context) {
	var req struct {
		RepositoryID string   `json:"repository_id" binding:"required"`
		Kinds        []string `json:"kinds"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	kinds := make([]domain.EvaluationKind, len(req.Kinds))
	for i, kind := range req.Kinds {
		kinds[i] = domain.EvaluationKind(kind)
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("repository_id", req.RepositoryID).
		Msg("starting batch evaluation")

	result, err := h.evalService.EvaluateRepository(c.Request.Context(), &domain.BatchEvaluationInput{
		RepositoryID: req.RepositoryID,
		Kinds:        kinds,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("repository_id", result.RepositoryID).
		Int("evaluated", result.Evaluated).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("finished batch evaluation")

	c.JSON(http.StatusOK, gin.H{
		"repository_id": result.RepositoryID,
		"evaluated":     result.Evaluated,
		"skipped":       result.Skipped,
		"failed":        result.Failed,
		"items":         mapBatchItemsToAPI(result.Items),
	})
}

// GetEvaluation обрабатывает получение записи оценок issue
func (h *Handler) GetEvaluation(c *gin.Context) {
	issueID := c.Query("issue_id")
	if issueID == "" {
		badRequest(c, "issue_id parameter is required")
		return
	}

	evaluation, err := h.evalService.GetEvaluation(c.Request.Context(), issueID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapEvaluationToAPI(evaluation))
}
