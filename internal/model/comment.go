package model

import (
	"time"
)

// Comment 课程评价，创建后不可修改
type Comment struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseName string    `gorm:"column:course_name;type:text;not null" json:"course_name"`
	Comment    string    `gorm:"column:comment;type:text;not null" json:"comment"`
	Score      float64   `gorm:"column:score;not null" json:"score"` // 情感得分（0-1，越高越正面）
	CreateTime time.Time `gorm:"column:create_time;type:timestamp;autoCreateTime;default:CURRENT_TIMESTAMP" json:"create_time"`
}

func (Comment) TableName() string {
	return "course_comments"
}
