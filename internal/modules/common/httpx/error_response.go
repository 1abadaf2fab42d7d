package httpx

import (
	"net/http"

	"dam-workspace-server/internal/logging"
	"dam-workspace-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var statusByCode = map[service.ErrorCode]int{
	service.ErrorCodeValidation: http.StatusBadRequest,
	service.ErrorCodeNotFound:   http.StatusNotFound,
	service.ErrorCodeConflict:   http.StatusConflict,
	service.ErrorCodeInternal:   http.StatusInternalServerError,
}

// WriteServiceError 将业务错误写成 {"error", "code"} 响应。
// 非 ServiceError 一律按 internal 处理并使用 fallbackMessage，内部原因只写日志。
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	code := service.ErrorCodeInternal
	message := fallbackMessage
	if serviceErr, ok := service.AsServiceError(err); ok {
		code = serviceErr.Code
		message = serviceErr.Message
	}

	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		logging.Named("http").Error(message,
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": message, "code": code})
}
