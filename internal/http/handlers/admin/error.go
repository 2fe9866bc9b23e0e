package admin

import (
	"errors"

	"github.com/shiptrack-next/internal/http/response"
	"github.com/shiptrack-next/internal/logger"
	"github.com/shiptrack-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLog 提供携带 request_id 的日志实例
func requestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// respondError 返回错误响应，并在有原始错误时记录日志
func respondError(c *gin.Context, code string, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		requestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// respondServiceError 业务哨兵错误到响应码的统一映射
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrTrackingNodeNotFound),
		errors.Is(err, service.ErrExceptionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrTrackingNodeExists):
		response.BadRequest(c, err.Error())
	default:
		respondError(c, response.CodeInternal, err.Error(), nil)
	}
}
