package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qs3c/course_comment_server/internal/pkg/response"
)

// Recovery 捕获 panic 并返回 500 信封
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.Stack("stacktrace"),
				)

				response.ServerError(c, fmt.Sprintf("服务器内部错误：%v", err))
				c.Abort()
			}
		}()

		c.Next()
	}
}
