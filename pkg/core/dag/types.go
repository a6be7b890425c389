package dag

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DAG 有向图记录（对外导出）
// 仅保存名称，不校验无环性，也不要求名称唯一
type DAG struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Node DAG节点记录（对外导出）
// DagID 不校验是否指向已存在的DAG
type Node struct {
	ID    uuid.UUID `json:"id"`
	DagID uuid.UUID `json:"dag_id"`
	Label string    `json:"label"`
}

// Edge 两个节点之间的有向边（对外导出）
// 允许自环（Source == Target）以及重复边
type Edge struct {
	ID     uuid.UUID `json:"id"`
	Source uuid.UUID `json:"source"`
	Target uuid.UUID `json:"target"`
	DagID  uuid.UUID `json:"dag_id"`
}

// CreateDAGPayload 创建DAG的请求体
type CreateDAGPayload struct {
	Name string `json:"name"`
}

// CreateNodePayload 创建Node的请求体
type CreateNodePayload struct {
	DagID uuid.UUID `json:"dag_id"`
	Label string    `json:"label"`
}

// CreateEdgePayload 创建Edge的请求体
type CreateEdgePayload struct {
	Source uuid.UUID `json:"source"`
	Target uuid.UUID `json:"target"`
	DagID  uuid.UUID `json:"dag_id"`
}

// UnmarshalJSON 要求name字段存在且不为null，允许空字符串
func (p *CreateDAGPayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name *string `json:"name"`
	}
	if err := decodeObject(data, &raw); err != nil {
		return err
	}
	if raw.Name == nil {
		return missingField("name")
	}
	*p = CreateDAGPayload{Name: *raw.Name}
	return nil
}

// UnmarshalJSON 要求dag_id和label都存在且不为null，nil UUID作为合法值接受
func (p *CreateNodePayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		DagID *uuid.UUID `json:"dag_id"`
		Label *string    `json:"label"`
	}
	if err := decodeObject(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.DagID == nil:
		return missingField("dag_id")
	case raw.Label == nil:
		return missingField("label")
	}
	*p = CreateNodePayload{DagID: *raw.DagID, Label: *raw.Label}
	return nil
}

// UnmarshalJSON 要求source、target、dag_id都存在且不为null
func (p *CreateEdgePayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Source *uuid.UUID `json:"source"`
		Target *uuid.UUID `json:"target"`
		DagID  *uuid.UUID `json:"dag_id"`
	}
	if err := decodeObject(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Source == nil:
		return missingField("source")
	case raw.Target == nil:
		return missingField("target")
	case raw.DagID == nil:
		return missingField("dag_id")
	}
	*p = CreateEdgePayload{Source: *raw.Source, Target: *raw.Target, DagID: *raw.DagID}
	return nil
}

// decodeObject 请求体必须是JSON对象，null不被当作空对象
func decodeObject(data []byte, v any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("invalid type: null, expected a JSON object")
	}
	return json.Unmarshal(data, v)
}

func missingField(name string) error {
	return fmt.Errorf("missing field `%s`", name)
}

// NewDAG 根据请求体构造DAG，分配随机ID（UUID v4）
func NewDAG(p CreateDAGPayload) *DAG {
	return &DAG{
		ID:   uuid.New(),
		Name: p.Name,
	}
}

// NewNode 根据请求体构造Node，分配随机ID
func NewNode(p CreateNodePayload) *Node {
	return &Node{
		ID:    uuid.New(),
		DagID: p.DagID,
		Label: p.Label,
	}
}

// NewEdge 根据请求体构造Edge，分配随机ID
func NewEdge(p CreateEdgePayload) *Edge {
	return &Edge{
		ID:     uuid.New(),
		Source: p.Source,
		Target: p.Target,
		DagID:  p.DagID,
	}
}
