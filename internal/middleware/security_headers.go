package middleware

import "github.com/gin-gonic/gin"

// apiSecurityHeaders 纯 JSON/SSE 接口，不加载任何资源，也不允许被嵌入
var apiSecurityHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	"Referrer-Policy":         "no-referrer",
	"Cache-Control":           "no-store",
}

func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range apiSecurityHeaders {
			c.Header(k, v)
		}
		c.Next()
	}
}
