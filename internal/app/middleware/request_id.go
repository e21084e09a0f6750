package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID 请求ID所在的请求头/响应头
const HeaderRequestID = "X-Request-ID"

// ContextKeyRequestID 请求ID在 gin.Context 中的键
const ContextKeyRequestID = "request_id"

// RequestID 为每个请求分配一个ID。客户端带了就沿用，否则生成新的 UUID。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)

		start := time.Now()
		c.Next()

		// 只记录失败的请求，正常请求由 gin.Logger 负责
		if status := c.Writer.Status(); status >= 500 {
			log.Printf("⚠️ [%s] %s %s -> %d (%s)", id, c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		}
	}
}
