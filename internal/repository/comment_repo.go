package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/qs3c/course_comment_server/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 插入一条评价
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListAll 获取全部评价，按创建时间倒序
func (r *CommentRepository) ListAll(ctx context.Context) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Order("create_time DESC").
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Count 评价总数
func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Count(&count).Error
	return count, err
}

// CountScoreAbove 得分严格大于阈值的评价数
func (r *CommentRepository) CountScoreAbove(ctx context.Context, threshold float64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("score > ?", threshold).Count(&count).Error
	return count, err
}

// CountScoreBelow 得分严格小于阈值的评价数
func (r *CommentRepository) CountScoreBelow(ctx context.Context, threshold float64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("score < ?", threshold).Count(&count).Error
	return count, err
}

// Ping 检查数据库连接
func (r *CommentRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
