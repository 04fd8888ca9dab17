package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/qs3c/course_comment_server/internal/metrics"
	"github.com/qs3c/course_comment_server/internal/model"
	"github.com/qs3c/course_comment_server/internal/model/dto"
	"github.com/qs3c/course_comment_server/internal/pkg/sentiment"
	"github.com/qs3c/course_comment_server/internal/repository"
)

// 情感分桶阈值：正面 > 0.6，负面 < 0.4，其余为中性
const (
	PositiveThreshold = 0.6
	NegativeThreshold = 0.4
)

const (
	BucketPositive = "positive"
	BucketNeutral  = "neutral"
	BucketNegative = "negative"
)

var (
	ErrInvalidComment = errors.New("课程名称和评价内容不能为空")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	analyzer    sentiment.Analyzer
	notifier    EventNotifier
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	analyzer sentiment.Analyzer,
	notifier EventNotifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CommentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentService{
		commentRepo: commentRepo,
		analyzer:    analyzer,
		notifier:    notifier,
		metrics:     m,
		logger:      logger,
	}
}

// Bucket 按阈值返回情感分桶
func Bucket(score float64) string {
	switch {
	case score > PositiveThreshold:
		return BucketPositive
	case score < NegativeThreshold:
		return BucketNegative
	default:
		return BucketNeutral
	}
}

// List 获取全部评价，最新在前
func (s *CommentService) List(ctx context.Context) ([]*dto.CommentItem, error) {
	comments, err := s.commentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommentItem, len(comments))
	for i, c := range comments {
		items[i] = buildCommentItem(c)
	}
	return items, nil
}

// Submit 对评价进行情感分析并保存
func (s *CommentService) Submit(ctx context.Context, req *dto.SubmitCommentRequest) (*dto.SubmitResult, error) {
	if req == nil || req.CourseName == "" || req.Comment == "" {
		return nil, ErrInvalidComment
	}

	raw, err := s.analyzer.Score(ctx, req.Comment)
	if err != nil {
		return nil, fmt.Errorf("sentiment analysis failed: %w", err)
	}
	if !sentiment.ValidScore(raw) {
		return nil, fmt.Errorf("%w: %v", sentiment.ErrScoreOutOfRange, raw)
	}
	score := sentiment.Round4(raw)

	comment := &model.Comment{
		CourseName: req.CourseName,
		Comment:    req.Comment,
		Score:      score,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.metrics.RecordCommentSubmitted(Bucket(score))
	s.logger.Debug("Comment stored",
		zap.Int64("id", comment.ID),
		zap.String("course_name", comment.CourseName),
		zap.Float64("score", score),
		zap.String("analyzer", s.analyzer.Name()),
	)

	s.notify(ctx, comment)

	return &dto.SubmitResult{Score: score}, nil
}

// notify 推送新评价，失败不影响提交结果
func (s *CommentService) notify(ctx context.Context, comment *model.Comment) {
	if s.notifier == nil {
		return
	}

	event := &dto.CommentEvent{Comment: buildCommentItem(comment)}
	if stats, err := s.Statistics(ctx); err == nil {
		event.Statistics = stats
	} else {
		s.logger.Warn("Failed to load statistics for event", zap.Error(err))
	}

	if err := s.notifier.NotifyCommentCreated(ctx, event); err != nil {
		s.logger.Warn("Failed to notify comment created",
			zap.Int64("id", comment.ID),
			zap.Error(err),
		)
	}
}

// Statistics 统计正面/负面/中性评价数量
//
// 中性数量由总数减去正面与负面得到，因此得分恰为 0.4 或 0.6 的评价计为中性。
func (s *CommentService) Statistics(ctx context.Context) (*dto.Statistics, error) {
	total, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	positive, err := s.commentRepo.CountScoreAbove(ctx, PositiveThreshold)
	if err != nil {
		return nil, err
	}

	negative, err := s.commentRepo.CountScoreBelow(ctx, NegativeThreshold)
	if err != nil {
		return nil, err
	}

	return &dto.Statistics{
		Total:    total,
		Positive: positive,
		Negative: negative,
		Neutral:  total - positive - negative,
	}, nil
}

func buildCommentItem(c *model.Comment) *dto.CommentItem {
	return &dto.CommentItem{
		ID:         c.ID,
		CourseName: c.CourseName,
		Comment:    c.Comment,
		Score:      c.Score,
		CreateTime: c.CreateTime.Format(dto.TimeLayout),
	}
}
