package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/qs3c/course_comment_server/config"
	"github.com/qs3c/course_comment_server/internal/database"
	"github.com/qs3c/course_comment_server/internal/pkg/logger"
	"github.com/qs3c/course_comment_server/internal/pkg/sentiment"
	"github.com/qs3c/course_comment_server/internal/repository"
	"github.com/qs3c/course_comment_server/internal/service"
)

var (
	inputFile = flag.String("file", "", "CSV file with header course_name,comment")
	dryRun    = flag.Bool("dry-run", false, "Score rows without writing to the database")
)

func main() {
	flag.Parse()

	if *inputFile == "" {
		log.Fatal("-file is required")
	}

	// 加载配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()

	analyzer, err := sentiment.New(&cfg.Sentiment, nil)
	if err != nil {
		zlog.Fatal("Failed to init sentiment analyzer", zap.Error(err))
	}

	f, err := os.Open(*inputFile)
	if err != nil {
		zlog.Fatal("Failed to open input", zap.Error(err))
	}
	defer f.Close()

	rows, err := readRows(f)
	if err != nil {
		zlog.Fatal("Failed to read input", zap.Error(err))
	}

	ctx := context.Background()

	if *dryRun {
		for _, row := range rows {
			score, err := scoreRow(ctx, analyzer, row)
			if err != nil {
				zlog.Warn("Scoring failed", zap.Int("line", row.Line), zap.Error(err))
				continue
			}
			zlog.Info("Scored row",
				zap.Int("line", row.Line),
				zap.String("course_name", row.CourseName),
				zap.Float64("score", score),
				zap.String("bucket", service.Bucket(score)),
			)
		}
		return
	}

	db, err := database.Open(&cfg.Database, false)
	if err != nil {
		zlog.Fatal("Failed to connect database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.EnsureSchema(db, zlog); err != nil {
		zlog.Fatal("Failed to ensure schema", zap.Error(err))
	}

	commentService := service.NewCommentService(
		repository.NewCommentRepository(db),
		analyzer,
		nil,
		nil,
		zlog,
	)

	summary := importRows(ctx, commentService, rows, zlog)
	zlog.Info("Import finished",
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
}
