package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/qs3c/course_comment_server/config"
	"github.com/qs3c/course_comment_server/internal/api"
	"github.com/qs3c/course_comment_server/internal/api/handler"
	"github.com/qs3c/course_comment_server/internal/database"
	"github.com/qs3c/course_comment_server/internal/metrics"
	"github.com/qs3c/course_comment_server/internal/pkg/logger"
	"github.com/qs3c/course_comment_server/internal/pkg/pubsub"
	"github.com/qs3c/course_comment_server/internal/pkg/sentiment"
	"github.com/qs3c/course_comment_server/internal/pkg/ws"
	"github.com/qs3c/course_comment_server/internal/repository"
	"github.com/qs3c/course_comment_server/internal/service"
)

func main() {
	// 加载配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()

	// 初始化数据库
	db, err := database.Open(&cfg.Database, cfg.Server.Mode == "debug")
	if err != nil {
		zlog.Fatal("Failed to connect database", zap.Error(err))
	}
	if err := database.EnsureSchema(db, zlog); err != nil {
		zlog.Fatal("Failed to ensure schema", zap.Error(err))
	}
	zlog.Info("Database ready", zap.String("driver", cfg.Database.Driver))

	m := metrics.New()

	// 初始化情感分析
	analyzer, err := sentiment.New(&cfg.Sentiment, m)
	if err != nil {
		zlog.Fatal("Failed to init sentiment analyzer", zap.Error(err))
	}
	zlog.Info("Sentiment analyzer ready", zap.String("provider", analyzer.Name()))

	// 初始化 WebSocket Hub
	wsHub := ws.NewHub(zlog)
	wsHub.OnChange(m.SetWebSocketConnections)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 启用 Redis 时跨实例广播，否则直接推送本地连接
	var notifier service.EventNotifier = service.NewHubNotifier(wsHub)
	if cfg.Redis.Enabled {
		rdb, err := database.NewRedis(&cfg.Redis)
		if err != nil {
			zlog.Fatal("Failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
		zlog.Info("Redis connected")

		notifier = service.NewRedisNotifier(pubsub.NewPublisher(rdb))
		subscriber := pubsub.NewSubscriber(rdb, zlog)
		go func() {
			if err := subscriber.Subscribe(ctx, service.ForwardToHub(wsHub)); err != nil && !errors.Is(err, context.Canceled) {
				zlog.Error("Event subscriber stopped", zap.Error(err))
			}
		}()
	}

	// 初始化 Repository / Service
	commentRepo := repository.NewCommentRepository(db)
	commentService := service.NewCommentService(commentRepo, analyzer, notifier, m, zlog)

	// 初始化 Handler
	commentHandler := handler.NewCommentHandler(commentService, zlog)
	websocketHandler := handler.NewWebSocketHandler(wsHub, zlog)
	healthHandler := handler.NewHealthHandler(commentRepo)

	// 初始化 Router
	router := api.NewRouter(
		commentHandler,
		websocketHandler,
		healthHandler,
		cfg,
		m,
		zlog,
	)
	engine := router.Setup()

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: engine,
	}

	// 启动服务器
	go func() {
		zlog.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}
	wsHub.CloseAll()
	if err := database.Close(db); err != nil {
		zlog.Warn("Failed to close database", zap.Error(err))
	}

	zlog.Info("Server exited")
}
