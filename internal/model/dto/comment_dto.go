package dto

// TimeLayout 评价时间输出格式
const TimeLayout = "2006-01-02 15:04:05"

// SubmitCommentRequest 提交评价请求
type SubmitCommentRequest struct {
	CourseName string `json:"courseName" binding:"required"`
	Comment    string `json:"comment" binding:"required"`
}

// SubmitResult 提交结果
type SubmitResult struct {
	Score float64 `json:"score"`
}

// CommentItem 评价项
type CommentItem struct {
	ID         int64   `json:"id"`
	CourseName string  `json:"course_name"`
	Comment    string  `json:"comment"`
	Score      float64 `json:"score"`
	CreateTime string  `json:"create_time"`
}

// Statistics 情感统计
type Statistics struct {
	Total    int64 `json:"total"`
	Positive int64 `json:"positive"`
	Negative int64 `json:"negative"`
	Neutral  int64 `json:"neutral"`
}

// CommentEvent 新评价推送
type CommentEvent struct {
	Comment    *CommentItem `json:"comment"`
	Statistics *Statistics  `json:"statistics,omitempty"`
}
