package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/qs3c/course_comment_server/config"
	"github.com/qs3c/course_comment_server/internal/api/handler"
	"github.com/qs3c/course_comment_server/internal/api/middleware"
	"github.com/qs3c/course_comment_server/internal/metrics"
)

type Router struct {
	commentHandler   *handler.CommentHandler
	websocketHandler *handler.WebSocketHandler
	healthHandler    *handler.HealthHandler
	cfg              *config.Config
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

func NewRouter(
	commentHandler *handler.CommentHandler,
	websocketHandler *handler.WebSocketHandler,
	healthHandler *handler.HealthHandler,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		commentHandler:   commentHandler,
		websocketHandler: websocketHandler,
		healthHandler:    healthHandler,
		cfg:              cfg,
		metrics:          m,
		logger:           logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	switch r.cfg.Server.Mode {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(r.logger))
	engine.Use(middleware.Logger(r.logger))
	engine.Use(middleware.CORS(r.cfg.CORS))
	engine.Use(middleware.Metrics(r.metrics))

	engine.GET("/health", r.healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	{
		api.GET("/comments", r.commentHandler.List)
		api.POST("/comment", r.commentHandler.Submit)
		api.GET("/statistics", r.commentHandler.Statistics)

		// WebSocket
		api.GET("/ws", r.websocketHandler.Handle)
	}

	return engine
}
