package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

func serve(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/test", handler)

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSuccessWithMessage(t *testing.T) {
	w := serve(func(c *gin.Context) {
		SuccessWithMessage(c, "查询成功", []int{})
	})

	resp := parseResponse(t, w)
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "查询成功", resp.Message)

	// 空列表仍需输出 data 字段
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw, "data")
	assert.Equal(t, []interface{}{}, raw["data"])
}

func TestParamError(t *testing.T) {
	w := serve(func(c *gin.Context) {
		ParamError(c, "课程名称和评价内容不能为空")
	})

	assert.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	assert.Equal(t, CodeParamError, resp.Code)
	assert.Equal(t, "课程名称和评价内容不能为空", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestServerError(t *testing.T) {
	w := serve(func(c *gin.Context) {
		ServerError(c, "统计失败：disk I/O error")
	})

	assert.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	assert.Equal(t, CodeServerError, resp.Code)
	assert.Equal(t, "统计失败：disk I/O error", resp.Message)
}

func TestError_DefaultMessage(t *testing.T) {
	w := serve(func(c *gin.Context) {
		ServerError(c, "")
	})

	resp := parseResponse(t, w)
	assert.Equal(t, "服务器内部错误", resp.Message)

	// 失败响应不包含 data 字段
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "data")
	assert.Contains(t, raw, "msg")
	assert.Contains(t, raw, "code")
}
