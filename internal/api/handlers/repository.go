package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"teamhealth/internal/api/middleware"
	"teamhealth/internal/domain"
)

// AddRepository обрабатывает регистрацию репозитория для отслеживания
func (h *Handler) AddRepository(c *gin.Context) {
	var req struct {
		Owner                string `json:"owner" binding:"required"`
		Name                 string `json:"name" binding:"required"`
		AccessToken          string `json:"access_token"`
		TrackingStartDate    string `json:"tracking_start_date" binding:"required"`
		SprintStartDayOfWeek int    `json:"sprint_start_day_of_week"`
		SprintDurationWeeks  int    `json:"sprint_duration_weeks" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error().
			Err(err).
			Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
			Str("layer", "handler").
			Msg("failed to parse request")

		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	trackingStart, err := time.Parse("2006-01-02", req.TrackingStartDate)
	if err != nil {
		badRequest(c, "tracking_start_date must be in YYYY-MM-DD format")
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("owner", req.Owner).
		Str("name", req.Name).
		Msg("registering repository")

	input := &domain.RegisterRepositoryInput{
		Owner:                req.Owner,
		Name:                 req.Name,
		AccessToken:          req.AccessToken,
		TrackingStartDate:    trackingStart,
		SprintStartDayOfWeek: req.SprintStartDayOfWeek,
		SprintDurationWeeks:  req.SprintDurationWeeks,
	}

	repo, err := h.syncService.RegisterRepository(c.Request.Context(), input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("repository_id", repo.ID).
		Msg("successfully registered repository")

	c.JSON(http.StatusCreated, mapRepositoryToAPI(repo))
}

// GetRepository обрабатывает получение репозитория по owner и name
func (h *Handler) GetRepository(c *gin.Context) {
	owner := c.Query("owner")
	name := c.Query("name")
	if owner == "" || name == "" {
		badRequest(c, "owner and name parameters are required")
		return
	}

	repo, err := h.syncService.GetRepository(c.Request.Context(), owner, name)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapRepositoryToAPI(repo))
}
