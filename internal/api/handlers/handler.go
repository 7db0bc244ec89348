package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"teamhealth/internal/api/middleware"
	"teamhealth/internal/domain"
)

const (
	RepositoryPathRoute = "/repository"
	AddRepositoryRoute  = "/add"
	GetRepositoryRoute  = "/get"

	SyncPathRoute          = "/sync"
	SyncIssuesRoute        = "/issues"
	SyncPullRequestsRoute  = "/pullRequests"
	SyncAllRoute           = "/all"
	SyncCollaboratorsRoute = "/collaborators"
	LinkPullRequestsRoute  = "/linkPullRequests"

	EvaluationPathRoute      = "/evaluation"
	EvaluateSpeedRoute       = "/speed"
	EvaluateQualityRoute     = "/quality"
	EvaluateConsistencyRoute = "/consistency"
	EvaluateRepositoryRoute  = "/run"
	GetEvaluationRoute       = "/get"
)

type Handler struct {
	syncService domain.SyncService
	evalService domain.EvaluationService
}

func NewHandler(syncService domain.SyncService, evalService domain.EvaluationService) *Handler {
	return &Handler{
		syncService: syncService,
		evalService: evalService,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.LoggerMiddleware(),
		middleware.RecoveryMiddleware(),
		middleware.CORSMiddleware(),
		middleware.MetricsMiddleware(),
	)

	// Служебные эндпоинты без авторизации
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authorized := r.Group("", middleware.AuthMiddleware())

	repositoryGroup := authorized.Group(RepositoryPathRoute)
	{
		repositoryGroup.POST(AddRepositoryRoute, middleware.RequireAdmin(), h.AddRepository)
		repositoryGroup.GET(GetRepositoryRoute, middleware.RequireUser(), h.GetRepository)
	}

	syncGroup := authorized.Group(SyncPathRoute, middleware.RequireAdmin())
	{
		syncGroup.POST(SyncIssuesRoute, h.SyncIssues)
		syncGroup.POST(SyncPullRequestsRoute, h.SyncPullRequests)
		syncGroup.POST(SyncAllRoute, h.SyncAll)
		syncGroup.POST(SyncCollaboratorsRoute, h.SyncCollaborators)
		syncGroup.POST(LinkPullRequestsRoute, h.LinkPullRequests)
	}

	evaluationGroup := authorized.Group(EvaluationPathRoute)
	{
		evaluationGroup.POST(EvaluateSpeedRoute, middleware.RequireAdmin(), h.EvaluateSpeed)
		evaluationGroup.POST(EvaluateQualityRoute, middleware.RequireAdmin(), h.EvaluateQuality)
		evaluationGroup.POST(EvaluateConsistencyRoute, middleware.RequireAdmin(), h.EvaluateConsistency)
		evaluationGroup.POST(EvaluateRepositoryRoute, middleware.RequireAdmin(), h.EvaluateRepository)
		evaluationGroup.GET(GetEvaluationRoute, middleware.RequireUser(), h.GetEvaluation)
	}

	return r
}
