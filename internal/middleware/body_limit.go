package middleware

import (
	"fmt"
	"net/http"

	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

const defaultBodyLimitMB = 2

// bodyLimitMB 读取请求体上限，未配置或非法时使用默认值
func bodyLimitMB(appService *service.AppService) int {
	if mb := appService.GetInt(consts.ConfigMaxRequestBodySize); mb > 0 {
		return mb
	}
	return defaultBodyLimitMB
}

// BodyLimitMiddleware 声明长度超限直接返回 413；未声明长度的请求在读取时截断
func BodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		limitMB := bodyLimitMB(appService)
		maxBytes := int64(limitMB) << 20
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("请求体不能超过 %dMB", limitMB),
				"code":  "validation",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
