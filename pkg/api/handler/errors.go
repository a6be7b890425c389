package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LENAX/dag-manager/pkg/core/events"
)

// EventPublisher 创建事件发布接口，nil表示不发布
type EventPublisher interface {
	Publish(ctx context.Context, eventType events.EventType, payload any) error
}

// writeStorageError 把存储错误转换为500响应，响应体为错误原文
// 所有实体接口的错误响应都只经过这里
func writeStorageError(c *gin.Context, err error) {
	log.Printf("❌ [API] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, err.Error())
}

// writeBadRequest 请求体不是合法JSON（或字段类型不匹配）时返回400
func writeBadRequest(c *gin.Context, err error) {
	c.String(http.StatusBadRequest, "Failed to parse the request body as JSON: %v", err)
}

// publish 发布创建事件，失败只记录日志，不影响响应
func publish(c *gin.Context, pub EventPublisher, eventType events.EventType, payload any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(c.Request.Context(), eventType, payload); err != nil {
		log.Printf("⚠️ [API] 发布事件%s失败: %v", eventType, err)
	}
}
