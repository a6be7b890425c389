package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/LENAX/dag-manager/pkg/core/events"
)

const eventWriteTimeout = 10 * time.Second

// EventSubscriber 创建事件订阅接口
type EventSubscriber interface {
	Subscribe(ctx context.Context, types ...events.EventType) (<-chan *events.Event, error)
}

// EventsHandler 创建事件的WebSocket推送处理器
type EventsHandler struct {
	bus      EventSubscriber
	upgrader websocket.Upgrader
}

// NewEventsHandler 创建EventsHandler
func NewEventsHandler(bus EventSubscriber) *EventsHandler {
	return &EventsHandler{
		bus: bus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Stream 以JSON文本帧推送创建事件，可用?type=dag.created过滤
// GET /events/ws
func (h *EventsHandler) Stream(c *gin.Context) {
	var types []events.EventType
	for _, t := range c.QueryArray("type") {
		types = append(types, events.EventType(t))
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// 先订阅再升级，握手完成后发布的事件不会丢失
	ch, err := h.bus.Subscribe(ctx, types...)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("⚠️ [Events] WebSocket升级失败: %v", err)
		return
	}
	defer conn.Close()

	// 读循环只用于感知客户端断开
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(eventWriteTimeout))
			if err := conn.WriteJSON(evt); err != nil {
				log.Printf("⚠️ [Events] 推送事件失败: %v", err)
				return
			}
		}
	}
}
