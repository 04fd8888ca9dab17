package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qs3c/course_comment_server/internal/model/dto"
	"github.com/qs3c/course_comment_server/internal/pkg/response"
	"github.com/qs3c/course_comment_server/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
	logger         *zap.Logger
}

func NewCommentHandler(commentService *service.CommentService, logger *zap.Logger) *CommentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// List 获取所有课程评价
// GET /api/comments
func (h *CommentHandler) List(c *gin.Context) {
	items, err := h.commentService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list comments", zap.Error(err))
		response.ServerError(c, "查询失败："+err.Error())
		return
	}

	response.SuccessWithMessage(c, "查询成功", items)
}

// Submit 提交课程评价并进行情感分析
// POST /api/comment
func (h *CommentHandler) Submit(c *gin.Context) {
	var req dto.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, service.ErrInvalidComment.Error())
		return
	}

	result, err := h.commentService.Submit(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidComment) {
			response.ParamError(c, err.Error())
			return
		}
		h.logger.Error("Failed to submit comment",
			zap.String("course_name", req.CourseName),
			zap.Error(err),
		)
		response.ServerError(c, "提交失败："+err.Error())
		return
	}

	response.SuccessWithMessage(c, "评价提交成功", result)
}

// Statistics 获取评价统计（正面/负面/中性）
// GET /api/statistics
func (h *CommentHandler) Statistics(c *gin.Context) {
	stats, err := h.commentService.Statistics(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load statistics", zap.Error(err))
		response.ServerError(c, "统计失败："+err.Error())
		return
	}

	response.SuccessWithMessage(c, "统计成功", stats)
}
