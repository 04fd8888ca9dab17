package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码定义，业务码与 HTTP 状态码同值，HTTP 状态始终为 200
const (
	CodeSuccess     = 200
	CodeParamError  = 400
	CodeServerError = 500
)

// 错误码对应的默认消息
var codeMessages = map[int]string{
	CodeParamError:  "参数错误",
	CodeServerError: "服务器内部错误",
}

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"msg"`
}

// SuccessWithMessage 带自定义消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Data:    data,
		Message: message,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	if message == "" {
		message = codeMessages[code]
	}
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// ParamError 参数错误
func ParamError(c *gin.Context, message string) {
	Error(c, CodeParamError, message)
}

// ServerError 服务器错误
func ServerError(c *gin.Context, message string) {
	Error(c, CodeServerError, message)
}
