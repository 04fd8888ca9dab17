package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/course_comment_server/internal/model"
)

// TestComment 创建测试评价
func TestComment(t *testing.T, db *gorm.DB, score float64, opts ...func(*model.Comment)) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		CourseName: "CS101",
		Comment:    "Test comment",
		Score:      score,
	}

	for _, opt := range opts {
		opt(comment)
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return comment
}

// WithCourse 设置课程名
func WithCourse(name string) func(*model.Comment) {
	return func(c *model.Comment) {
		c.CourseName = name
	}
}

// WithText 设置评价内容
func WithText(text string) func(*model.Comment) {
	return func(c *model.Comment) {
		c.Comment = text
	}
}

// WithCreateTime 设置创建时间
func WithCreateTime(ts time.Time) func(*model.Comment) {
	return func(c *model.Comment) {
		c.CreateTime = ts
	}
}

// StubAnalyzer 返回固定分数的情感分析器
type StubAnalyzer struct {
	Value float64
	Err   error
	Calls []string
}

func (s *StubAnalyzer) Score(_ context.Context, text string) (float64, error) {
	s.Calls = append(s.Calls, text)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Value, nil
}

// Name 分析器名称
func (s *StubAnalyzer) Name() string {
	return "stub"
}
