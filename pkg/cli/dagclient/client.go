// Package dagclient DAG Manager HTTP API客户端
package dagclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LENAX/dag-manager/pkg/core/dag"
)

// DefaultServerURL 服务端固定监听地址
const DefaultServerURL = "http://127.0.0.1:3000"

// Client DAG Manager HTTP API客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New 创建客户端
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError 服务端返回的非2xx响应，Message为响应体原文
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// ========== DAG API ==========

// CreateDAG 创建DAG
func (c *Client) CreateDAG(ctx context.Context, name string) (*dag.DAG, error) {
	var d dag.DAG
	if err := c.post(ctx, "/dags", dag.CreateDAGPayload{Name: name}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDAGs 列出所有DAG
func (c *Client) ListDAGs(ctx context.Context) ([]dag.DAG, error) {
	var dags []dag.DAG
	if err := c.get(ctx, "/dags", &dags); err != nil {
		return nil, err
	}
	return dags, nil
}

// ========== Node API ==========

// CreateNode 创建Node
func (c *Client) CreateNode(ctx context.Context, payload dag.CreateNodePayload) (*dag.Node, error) {
	var n dag.Node
	if err := c.post(ctx, "/nodes", payload, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListNodes 列出所有Node
func (c *Client) ListNodes(ctx context.Context) ([]dag.Node, error) {
	var nodes []dag.Node
	if err := c.get(ctx, "/nodes", &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

// ========== Edge API ==========

// CreateEdge 创建Edge
func (c *Client) CreateEdge(ctx context.Context, payload dag.CreateEdgePayload) (*dag.Edge, error) {
	var e dag.Edge
	if err := c.post(ctx, "/edges", payload, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEdges 列出所有Edge
func (c *Client) ListEdges(ctx context.Context) ([]dag.Edge, error) {
	var edges []dag.Edge
	if err := c.get(ctx, "/edges", &edges); err != nil {
		return nil, err
	}
	return edges, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	return c.do(req, result)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("序列化请求体失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应体失败: %w", err)
	}

	// 错误响应是纯文本
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("解析响应失败: %w, body: %s", err, string(body))
	}
	return nil
}
