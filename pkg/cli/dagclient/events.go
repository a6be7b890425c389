package dagclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/LENAX/dag-manager/pkg/core/events"
)

// WatchEvents 订阅服务端的创建事件推送，每收到一个事件调用一次handle
// ctx取消时返回nil；handle返回错误时停止并返回该错误
func (c *Client) WatchEvents(ctx context.Context, types []events.EventType, handle func(*events.Event) error) error {
	wsURL, err := c.eventsURL(types)
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("连接事件推送失败: %w", err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		var evt events.Event
		if err := conn.ReadJSON(&evt); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("读取事件失败: %w", err)
		}
		if err := handle(&evt); err != nil {
			return err
		}
	}
}

func (c *Client) eventsURL(types []events.EventType) (string, error) {
	u, err := url.Parse(c.baseURL + "/events/ws")
	if err != nil {
		return "", fmt.Errorf("服务器地址无效: %w", err)
	}

	switch {
	case strings.EqualFold(u.Scheme, "https"):
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	q := u.Query()
	for _, t := range types {
		q.Add("type", string(t))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
