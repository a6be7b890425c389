package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Bus 创建事件总线（对外导出）
// 非持久化：没有订阅者时发布的事件直接丢弃
type Bus struct {
	pubsub     *gochannel.GoChannel
	logger     watermill.LoggerAdapter
	bufferSize int

	mu     sync.Mutex
	router *message.Router
}

// NewBus 创建事件总线
func NewBus(bufferSize int, debug bool) *Bus {
	logger := watermill.NewStdLogger(debug, false)
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{
				OutputChannelBuffer:            int64(bufferSize),
				Persistent:                     false,
				BlockPublishUntilSubscriberAck: false,
			},
			logger,
		),
		logger:     logger,
		bufferSize: bufferSize,
	}
}

// Publish 发布事件，payload序列化为JSON
func (b *Bus) Publish(ctx context.Context, eventType EventType, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化事件负载失败: %w", err)
	}

	event := Event{
		ID:        watermill.NewUUID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   data,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("序列化事件失败: %w", err)
	}

	msg := message.NewMessage(event.ID, body)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", string(eventType))
	msg.Metadata.Set("timestamp", event.Timestamp.Format(time.RFC3339Nano))

	if err := b.pubsub.Publish(string(eventType), msg); err != nil {
		return fmt.Errorf("发布事件失败: %w", err)
	}
	return nil
}

// Subscribe 订阅指定类型的事件（不指定时订阅全部类型）
// ctx取消或总线关闭后返回的channel会被关闭
func (b *Bus) Subscribe(ctx context.Context, types ...EventType) (<-chan *Event, error) {
	if len(types) == 0 {
		types = AllTypes
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan *Event, b.bufferSize)
	var wg sync.WaitGroup

	for _, t := range types {
		messages, err := b.pubsub.Subscribe(ctx, string(t))
		if err != nil {
			cancel()
			return nil, fmt.Errorf("订阅%s失败: %w", t, err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			for msg := range messages {
				var event Event
				if err := json.Unmarshal(msg.Payload, &event); err != nil {
					b.logger.Error("解析事件失败", err, watermill.LogFields{"message_uuid": msg.UUID})
					msg.Ack()
					continue
				}
				select {
				case out <- &event:
				case <-ctx.Done():
				}
				msg.Ack()
			}
		}()
	}

	go func() {
		wg.Wait()
		cancel()
		close(out)
	}()

	return out, nil
}

// StartAuditLog 启动审计日志处理器，把每个创建事件写入日志
func (b *Bus) StartAuditLog(ctx context.Context) error {
	router, err := message.NewRouter(message.RouterConfig{}, b.logger)
	if err != nil {
		return fmt.Errorf("创建消息路由器失败: %w", err)
	}

	for _, t := range AllTypes {
		router.AddNoPublisherHandler(
			"audit_"+string(t),
			string(t),
			b.pubsub,
			auditHandler,
		)
	}

	b.mu.Lock()
	b.router = router
	b.mu.Unlock()

	go func() {
		if err := router.Run(ctx); err != nil {
			log.Printf("❌ [Events] 审计路由器退出: %v", err)
		}
	}()
	<-router.Running()

	log.Println("✅ [Events] 审计日志已启动")
	return nil
}

// auditHandler 审计日志处理函数
func auditHandler(msg *message.Message) error {
	var event Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		// 格式错误的消息重试也无法恢复，直接丢弃
		log.Printf("⚠️ [Events] 无法解析事件 %s: %v", msg.UUID, err)
		return nil
	}
	log.Printf("📣 [Events] %s id=%s payload=%s", event.Type, event.ID, event.Payload)
	return nil
}

// Close 关闭路由器和事件总线
func (b *Bus) Close() error {
	b.mu.Lock()
	router := b.router
	b.router = nil
	b.mu.Unlock()

	if router != nil {
		if err := router.Close(); err != nil {
			log.Printf("⚠️ [Events] 关闭路由器失败: %v", err)
		}
	}
	return b.pubsub.Close()
}
