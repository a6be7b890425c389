// Package events 提供实体创建事件的进程内发布/订阅（基于Watermill GoChannel）
package events

import (
	"encoding/json"
	"time"
)

// EventType 事件类型
type EventType string

const (
	EventDAGCreated  EventType = "dag.created"  // DAG已创建
	EventNodeCreated EventType = "node.created" // Node已创建
	EventEdgeCreated EventType = "edge.created" // Edge已创建
)

// AllTypes 全部事件类型
var AllTypes = []EventType{EventDAGCreated, EventNodeCreated, EventEdgeCreated}

// Event 创建事件
type Event struct {
	ID        string          `json:"id"`        // 事件ID
	Type      EventType       `json:"type"`      // 事件类型
	Timestamp time.Time       `json:"timestamp"` // 事件时间（UTC）
	Payload   json.RawMessage `json:"payload"`   // 新建的实体记录
}
