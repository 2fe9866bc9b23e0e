package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    string      `json:"code"`    // 业务状态码
	Message string      `json:"message"` // 提示消息
	Result  interface{} `json:"result"`  // 数据内容
}

// Page 分页数据块，作为列表响应的 result 下发
type Page struct {
	TotalElements int64       `json:"totalElements"`
	TotalPages    int64       `json:"totalPages"`
	PageSize      int         `json:"pageSize"`
	PageNum       int         `json:"pageNum"`
	Content       interface{} `json:"content"`
}

// Success 成功响应
func Success(c *gin.Context, result interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Result:  result,
	})
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, page Page) {
	Success(c, page)
}

// Error 错误响应，业务错误统一 HTTP 200 下发
func Error(c *gin.Context, code string, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Result:  attachRequestID(c, nil),
	})
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	Error(c, CodeNotFound, message)
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, CodeBadRequest, message)
}

// Internal 内部错误响应
func Internal(c *gin.Context, message string) {
	Error(c, CodeInternal, message)
}

func attachRequestID(c *gin.Context, result interface{}) interface{} {
	requestID := ""
	if c != nil {
		if value, ok := c.Get("request_id"); ok {
			if id, ok := value.(string); ok {
				requestID = id
			}
		}
	}
	if requestID == "" {
		return result
	}
	if result == nil {
		return gin.H{"requestId": requestID}
	}
	if v, ok := result.(gin.H); ok {
		if _, exists := v["requestId"]; !exists {
			v["requestId"] = requestID
		}
		return v
	}
	return result
}
