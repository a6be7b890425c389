package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger 访问日志中间件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		if status >= 500 {
			log.Printf("❌ [API] %s %s %d %s", c.Request.Method, path, status, latency)
			return
		}
		log.Printf("[API] %s %s %d %s", c.Request.Method, path, status, latency)
	}
}
